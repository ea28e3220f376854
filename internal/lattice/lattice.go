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

// Package lattice turns ordered platform requirements into a per-version availability step function.
package lattice

import (
	"slices"
	"strings"

	"fillmore-labs.com/platformguard/internal/platform"
)

// Breakpoint is a version at which availability changes.
type Breakpoint struct {
	Version   platform.Version
	Available bool // availability from Version onward
}

// Lattice is an immutable step function from versions to availability.
//
// Breakpoints are strictly increasing in version and alternate in polarity,
// the first one differing from the initial availability.
type Lattice struct {
	initial     bool
	breakpoints []Breakpoint
}

// Always is available on all versions.
func Always() Lattice { return Lattice{initial: true} }

// Never is unavailable on all versions.
func Never() Lattice { return Lattice{} }

// AtLeast is available from version v onward.
func AtLeast(v platform.Version) Lattice {
	if v.IsZero() {
		return Always()
	}

	return Lattice{breakpoints: []Breakpoint{{Version: v, Available: true}}}
}

// Below is available for versions less than v.
func Below(v platform.Version) Lattice {
	if v.IsZero() {
		return Never()
	}

	return Lattice{initial: true, breakpoints: []Breakpoint{{Version: v, Available: false}}}
}

// Build constructs the step function for the requirements of a single platform.
//
// Requirements are ordered by version, keeping declaration order for equal versions
// so that the later declaration wins. The interval before the first requirement has
// the opposite availability of that requirement.
func Build(reqs []platform.Requirement) Lattice {
	if len(reqs) == 0 {
		return Always()
	}

	sorted := slices.Clone(reqs)
	slices.SortStableFunc(sorted, func(a, b platform.Requirement) int { return a.Version.Compare(b.Version) })

	l := Lattice{initial: !sorted[0].Kind.Available()}
	current := l.initial

	for i, r := range sorted {
		if i+1 < len(sorted) && sorted[i+1].Version == r.Version {
			continue // a later declaration for the same version wins
		}

		available := r.Kind.Available()

		if r.Version.IsZero() {
			l.initial, current = available, available
			continue
		}

		if available == current {
			continue
		}

		l.breakpoints = append(l.breakpoints, Breakpoint{Version: r.Version, Available: available})
		current = available
	}

	return l
}

// Breakpoints returns a copy of the version breakpoints.
func (l Lattice) Breakpoints() []Breakpoint { return slices.Clone(l.breakpoints) }

// IsAvailable reports whether version v is available.
func (l Lattice) IsAvailable(v platform.Version) bool {
	available := l.initial

	for _, b := range l.breakpoints {
		if b.Version.Compare(v) > 0 {
			break
		}

		available = b.Available
	}

	return available
}

// IsAlways reports whether all versions are available.
func (l Lattice) IsAlways() bool { return l.initial && len(l.breakpoints) == 0 }

// IsNever reports whether no version is available.
func (l Lattice) IsNever() bool { return !l.initial && len(l.breakpoints) == 0 }

// Intersect returns the versions available in both l and o.
func (l Lattice) Intersect(o Lattice) Lattice {
	return combine(l, o, func(a, b bool) bool { return a && b })
}

// Complement returns the versions not available in l.
func (l Lattice) Complement() Lattice {
	c := Lattice{initial: !l.initial}

	if len(l.breakpoints) > 0 {
		c.breakpoints = make([]Breakpoint, len(l.breakpoints))
		for i, b := range l.breakpoints {
			c.breakpoints[i] = Breakpoint{Version: b.Version, Available: !b.Available}
		}
	}

	return c
}

// FirstViolation returns the smallest version where caller is available but callee is not.
func FirstViolation(caller, callee Lattice) (platform.Version, bool) {
	if caller.initial && !callee.initial {
		return platform.Version{}, true
	}

	for _, v := range mergeVersions(caller, callee) {
		if caller.IsAvailable(v) && !callee.IsAvailable(v) {
			return v, true
		}
	}

	return platform.Version{}, false
}

// Interval is a half-open version range [From, To). From zero means "from the first version".
type Interval struct {
	From, To  platform.Version
	Unbounded bool // no upper limit, To is unused
}

// Intervals returns the available version ranges in ascending order.
func (l Lattice) Intervals() []Interval {
	var (
		intervals []Interval
		start     platform.Version
		open      = l.initial
	)

	for _, b := range l.breakpoints {
		if b.Available {
			start, open = b.Version, true
			continue
		}

		intervals = append(intervals, Interval{From: start, To: b.Version})
		open = false
	}

	if open {
		intervals = append(intervals, Interval{From: start, Unbounded: true})
	}

	return intervals
}

// String describes the step function, e.g. "unavailable, available from 11.0".
func (l Lattice) String() string {
	var b strings.Builder

	b.WriteString(availability(l.initial))

	for _, bp := range l.breakpoints {
		b.WriteString(", ")
		b.WriteString(availability(bp.Available))
		b.WriteString(" from ")
		b.WriteString(bp.Version.String())
	}

	return b.String()
}

func availability(available bool) string {
	if available {
		return "available"
	}

	return "unavailable"
}

func combine(l, o Lattice, op func(a, b bool) bool) Lattice {
	c := Lattice{initial: op(l.initial, o.initial)}
	current := c.initial

	for _, v := range mergeVersions(l, o) {
		available := op(l.IsAvailable(v), o.IsAvailable(v))
		if available == current {
			continue
		}

		c.breakpoints = append(c.breakpoints, Breakpoint{Version: v, Available: available})
		current = available
	}

	return c
}

// mergeVersions returns the sorted, distinct breakpoint versions of both lattices.
func mergeVersions(l, o Lattice) []platform.Version {
	versions := make([]platform.Version, 0, len(l.breakpoints)+len(o.breakpoints))

	for _, b := range l.breakpoints {
		versions = append(versions, b.Version)
	}

	for _, b := range o.breakpoints {
		versions = append(versions, b.Version)
	}

	slices.SortFunc(versions, platform.Version.Compare)

	return slices.Compact(versions)
}
