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

package evaluate

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/lattice"
	"fillmore-labs.com/platformguard/internal/operation"
	"fillmore-labs.com/platformguard/internal/platform"
	"fillmore-labs.com/platformguard/internal/resolve"
	"fillmore-labs.com/platformguard/internal/tracker"
)

// ErrSitePanic wraps a panic recovered while evaluating a single call site.
var ErrSitePanic = errors.New("panic evaluating call site")

// Task is the body of one caller symbol.
type Task struct {
	Caller any
	Base   []guard.Narrowing // narrowings holding for the whole body, e.g. from build constraints
	Body   operation.Body
}

// Evaluator checks call sites. It is safe for concurrent use when its resolver is.
type Evaluator struct {
	resolver *resolve.Resolver
	tracker  tracker.Tracker
	targets  []platform.Name
	logger   *slog.Logger
}

// New creates an [Evaluator]. A non-empty targets list restricts the checked platforms.
func New(resolver *resolve.Resolver, tr tracker.Tracker, targets []platform.Name, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Evaluator{resolver: resolver, tracker: tr, targets: targets, logger: logger}
}

// Evaluate checks all invocations in the body of task, in walk order.
//
// Failures of single call sites are joined into the returned error and do not
// affect other call sites.
func (e *Evaluator) Evaluate(task Task) ([]Violation, error) {
	declared, err := e.resolver.Resolve(task.Caller)
	if err != nil {
		return nil, fmt.Errorf("resolving caller %v: %w", task.Caller, err)
	}

	var (
		violations []Violation
		errs       []error
	)

	for state, inv := range e.tracker.Sites(declared, task.Base, task.Body) {
		v, found, err := e.site(state, inv)

		switch {
		case err != nil:
			errs = append(errs, err)

		case found:
			v.Caller = task.Caller
			violations = append(violations, v)
		}
	}

	return violations, errors.Join(errs...)
}

// other stands for every platform not named by caller, callee or narrowing.
const other platform.Name = ""

func (e *Evaluator) site(state *tracker.State, inv operation.Invoke) (v Violation, found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w at %v: %v", ErrSitePanic, inv.Pos, r)
		}
	}()

	if inv.Callee == nil {
		e.logger.Debug("Skipping unresolved callee", slog.Int("pos", int(inv.Pos)))

		return Violation{}, false, nil
	}

	callee, err := e.resolver.Resolve(inv.Callee)
	if err != nil {
		return Violation{}, false, fmt.Errorf("resolving callee %v: %w", inv.Callee, err)
	}

	if !callee.Constrained() {
		return Violation{}, false, nil
	}

	platforms := e.platforms(state, callee)

	violated := make(map[platform.Name]platform.Version)

	for _, p := range platforms {
		callerAvailability, calleeAvailability := state.Default(), callee.Default()
		if p != other {
			callerAvailability, calleeAvailability = state.Availability(p), callee.Availability(p)
		}

		if minVersion, ok := lattice.FirstViolation(callerAvailability, calleeAvailability); ok {
			violated[p] = minVersion
		}
	}

	if len(violated) == 0 {
		return Violation{}, false, nil
	}

	v = Violation{
		Callee: inv.Callee,
		Pos:    inv.Pos,
		End:    inv.End,
		Reach:  reach(state, slices.DeleteFunc(platforms, func(p platform.Name) bool { return p == other }), len(e.targets) > 0),
	}

	if callee.Mode() == resolve.AllowList {
		v.Reason = OnlySupported

		for _, p := range callee.Platforms() {
			if l := callee.Availability(p); !l.IsNever() {
				v.Entries = append(v.Entries, Entry{Platform: p, Intervals: l.Intervals(), MinVersion: violated[p]})
			}
		}
	} else {
		v.Reason = Unsupported

		for _, p := range callee.Platforms() {
			if minVersion, ok := violated[p]; ok {
				v.Entries = append(v.Entries, Entry{
					Platform:   p,
					Intervals:  callee.Availability(p).Complement().Intervals(),
					MinVersion: minVersion,
				})
			}
		}
	}

	return v, true, nil
}

// platforms returns the platforms to check: the targets if configured, otherwise
// every platform named by caller, narrowings or callee and the representative
// of all other platforms.
func (e *Evaluator) platforms(state *tracker.State, callee resolve.Context) []platform.Name {
	if len(e.targets) > 0 {
		return slices.Clone(e.targets)
	}

	var names []platform.Name

	for _, list := range [...][]platform.Name{state.Declared().Platforms(), state.Narrowed(), callee.Platforms()} {
		for _, p := range list {
			if !slices.Contains(names, p) {
				names = append(names, p)
			}
		}
	}

	return append(names, other)
}

// reach describes where the call site is reachable. With restricted set, only
// names were checked and the reach is phrased in terms of them.
func reach(state *tracker.State, names []platform.Name, restricted bool) Reach {
	var r Reach

	if !restricted && !state.Default().IsNever() {
		for _, p := range names {
			if l := state.Availability(p); !l.IsAlways() {
				r.Unreachable = append(r.Unreachable, Entry{Platform: p, Intervals: l.Complement().Intervals()})
			}
		}

		r.All = len(r.Unreachable) == 0

		return r
	}

	for _, p := range names {
		if l := state.Availability(p); !l.IsNever() {
			r.Reachable = append(r.Reachable, Entry{Platform: p, Intervals: l.Intervals()})
		}
	}

	return r
}
