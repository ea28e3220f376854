// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package engine evaluates the bodies of independent symbols concurrently.
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/platformguard/internal/evaluate"
)

// Evaluator checks the body of a single symbol.
type Evaluator interface {
	Evaluate(task evaluate.Task) ([]evaluate.Violation, error)
}

// Result is the outcome of one task.
type Result struct {
	Violations []evaluate.Violation
	Err        error
}

// Run evaluates tasks concurrently and returns the results in task order.
//
// A failed task does not cancel the others; all failures are joined into the
// returned error. ctx is checked before each task is started.
func Run(ctx context.Context, e Evaluator, tasks []evaluate.Task) ([]Result, error) {
	results := make([]Result, len(tasks))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(tasks); j++ {
				results[j].Err = err
			}

			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			violations, err := e.Evaluate(task)
			if err != nil {
				err = fmt.Errorf("evaluating %v: %w", task.Caller, err)
			}

			results[i] = Result{Violations: violations, Err: err} // indices are unique per goroutine

			return nil
		})
	}

	_ = g.Wait() // errors are collected per task

	errs := make([]error, 0, len(results))
	for _, r := range results {
		errs = append(errs, r.Err)
	}

	return results, errors.Join(errs...)
}
