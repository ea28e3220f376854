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

package tracker

import (
	"iter"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/operation"
	"fillmore-labs.com/platformguard/internal/resolve"
)

// Tracker walks operation graphs, recognizing guards with its lookup.
type Tracker struct {
	lookup guard.Lookup
	extend bool
}

// New creates a [Tracker]. With extend set, narrowings of a branch whose
// alternative terminates apply to the remainder of the enclosing body.
func New(lookup guard.Lookup, extend bool) Tracker {
	return Tracker{lookup: lookup, extend: extend}
}

// Sites returns the invocations in body in depth-first order, paired with the
// caller state at each of them.
func (t Tracker) Sites(declared resolve.Context, base []guard.Narrowing, body operation.Body) iter.Seq2[*State, operation.Invoke] {
	return func(yield func(*State, operation.Invoke) bool) {
		w := walker{Tracker: t, state: NewState(declared, base...), yield: yield}
		w.body(body)
	}
}

type walker struct {
	Tracker
	state *State
	yield func(*State, operation.Invoke) bool
}

// body walks b and reports whether the walk should continue.
func (w *walker) body(b operation.Body) bool {
	depth := len(w.state.narrowings)
	defer w.state.truncate(depth) // release extended narrowings

	unreachable := false

	for _, op := range b {
		if unreachable {
			if _, ok := op.(operation.Label); !ok {
				continue
			}

			unreachable = false
		}

		switch op := op.(type) {
		case operation.Invoke:
			if !w.yield(w.state, op) {
				return false
			}

		case operation.Branch:
			res := guard.Recognize(w.lookup, op.Cond)

			if !w.branch(res.True, op.Then) || !w.branch(res.False, op.Else) {
				return false
			}

			if !w.extend {
				continue
			}

			switch thenExits, elseExits := op.Then.Terminates(), op.Else.Terminates(); {
			case thenExits && elseExits:
				unreachable = true

			case thenExits:
				w.state.push(res.False)

			case elseExits:
				w.state.push(res.True)
			}

		case operation.Block:
			if !w.body(op.Body) {
				return false
			}

		case operation.Exit:
			unreachable = w.extend

		case operation.Label:
			w.state.truncate(depth) // reachable by jumps that bypassed the extended guards
		}
	}

	return true
}

func (w *walker) branch(ns []guard.Narrowing, b operation.Body) bool {
	release := w.state.enter(ns)
	defer release()

	return w.body(b)
}
