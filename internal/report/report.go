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

// Package report formats platform violations as analysis diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/platformguard/internal/astutil"
	"fillmore-labs.com/platformguard/internal/evaluate"
)

// Category is the stable identifier of platformguard diagnostics.
const Category = "platformguard"

// Namer returns the display name of a callee symbol, e.g. "api.Win10" or "api.T.M".
type Namer func(sym any) string

// Violations emits one diagnostic per violation, skipping call sites with a nolint comment.
func Violations(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, violations []evaluate.Violation, name Namer) {
	if len(violations) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "ReportViolations").End()

	for _, v := range violations {
		if currentFile.NoLintComment(v.Pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      v.Pos,
			End:      v.End,
			Category: Category,
			Message:  Message(v, name(v.Callee)),
		})
	}
}
