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
	"slices"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/lattice"
	"fillmore-labs.com/platformguard/internal/platform"
	"fillmore-labs.com/platformguard/internal/resolve"
)

// State is the caller context at a program point: the declared context of the
// enclosing symbol overlaid with the active narrowings.
//
// A State passed to a visitor is only valid during the visit.
type State struct {
	declared   resolve.Context
	narrowings []guard.Narrowing
}

// NewState creates a state from the declared context and base narrowings.
func NewState(declared resolve.Context, base ...guard.Narrowing) *State {
	return &State{declared: declared, narrowings: slices.Clone(base)}
}

// Declared returns the context of the enclosing symbol before narrowing.
func (s *State) Declared() resolve.Context { return s.declared }

// Narrowed returns the platforms named by active narrowings, in order of appearance.
func (s *State) Narrowed() []platform.Name {
	var names []platform.Name

	for _, n := range s.narrowings {
		if !slices.Contains(names, n.Platform) {
			names = append(names, n.Platform)
		}
	}

	return names
}

// Availability returns the versions of p reachable at this point.
//
// Positive narrowings for p replace the declared availability, positive
// narrowings for other platforms make p unreachable, and negative narrowings
// exclude their version range.
func (s *State) Availability(p platform.Name) lattice.Lattice {
	return s.availability(p, s.declared.Availability(p))
}

// Default returns the availability of platforms neither declared nor narrowed.
func (s *State) Default() lattice.Lattice {
	return s.availability("", s.declared.Default())
}

func (s *State) availability(p platform.Name, declared lattice.Lattice) lattice.Lattice {
	var (
		proven = lattice.Always()
		other  bool
		seen   bool
	)

	for _, n := range s.narrowings {
		switch {
		case n.Platform != p:
			other = other || !n.Negated

		case n.Negated:
			declared = declared.Intersect(lattice.Below(n.Version))
			proven = proven.Intersect(lattice.Below(n.Version))

		default:
			proven = proven.Intersect(lattice.AtLeast(n.Version))
			seen = true
		}
	}

	switch {
	case other:
		return lattice.Never()

	case seen:
		return proven

	default:
		return declared
	}
}

func (s *State) push(ns []guard.Narrowing) { s.narrowings = append(s.narrowings, ns...) }

func (s *State) truncate(depth int) { s.narrowings = s.narrowings[:depth] }

// enter pushes ns and returns the release restoring the previous depth.
func (s *State) enter(ns []guard.Narrowing) (release func()) {
	depth := len(s.narrowings)
	s.push(ns)

	return func() { s.truncate(depth) }
}
