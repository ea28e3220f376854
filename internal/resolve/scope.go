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

package resolve

import (
	"errors"
	"fmt"

	"fillmore-labs.com/platformguard/internal/platform"
)

// Symbol is an opaque, comparable host symbol.
type Symbol = any

// Graph is the containment structure supplied by the host.
type Graph interface {
	// Parent returns the enclosing symbol (member → type → module).
	Parent(sym Symbol) (Symbol, bool)
	// Requirements returns the requirements declared directly on sym, in declaration order.
	Requirements(sym Symbol) []platform.Requirement
}

// ErrCyclicContainment is returned when a containment chain revisits a symbol.
var ErrCyclicContainment = errors.New("cyclic symbol containment")

// ScopeAttributes are the requirements declared directly at one containment level.
type ScopeAttributes struct {
	Symbol       Symbol
	Requirements []platform.Requirement
}

// Declared reports whether the scope has any requirement.
func (s ScopeAttributes) Declared() bool { return len(s.Requirements) > 0 }

// AllowList reports whether the scope declares any supported requirement.
func (s ScopeAttributes) AllowList() bool {
	for _, r := range s.Requirements {
		if r.Kind == platform.Supported {
			return true
		}
	}

	return false
}

// Names reports whether the scope declares a requirement for p.
func (s ScopeAttributes) Names(p platform.Name) bool {
	for _, r := range s.Requirements {
		if r.Platform == p {
			return true
		}
	}

	return false
}

// For returns the requirements for p, in declaration order.
func (s ScopeAttributes) For(p platform.Name) []platform.Requirement {
	var reqs []platform.Requirement

	for _, r := range s.Requirements {
		if r.Platform == p {
			reqs = append(reqs, r)
		}
	}

	return reqs
}

// Scopes returns the containment chain of sym, nearest scope first.
func Scopes(g Graph, sym Symbol) ([]ScopeAttributes, error) {
	var (
		scopes []ScopeAttributes
		seen   = make(map[Symbol]struct{})
	)

	for current, ok := sym, true; ok; current, ok = g.Parent(current) {
		if _, dup := seen[current]; dup {
			return nil, fmt.Errorf("%w at %v", ErrCyclicContainment, current)
		}

		seen[current] = struct{}{}

		scopes = append(scopes, ScopeAttributes{Symbol: current, Requirements: g.Requirements(current)})
	}

	return scopes, nil
}
