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
	"slices"

	"fillmore-labs.com/platformguard/internal/lattice"
	"fillmore-labs.com/platformguard/internal/platform"
)

// Context is the effective platform availability of a symbol before guards.
type Context struct {
	mode     Mode
	lattices map[platform.Name]lattice.Lattice
	order    []platform.Name
}

// Build computes the effective context from a containment chain, nearest scope first.
//
// With strict set, an allow-list scope further out than the scope supplying a
// platform drops supported platforms it does not name.
func Build(scopes []ScopeAttributes, strict bool) Context {
	decisive := slices.IndexFunc(scopes, ScopeAttributes.Declared)
	if decisive < 0 {
		return Context{}
	}

	c := Context{mode: DenyList, lattices: make(map[platform.Name]lattice.Lattice)}
	if scopes[decisive].AllowList() {
		c.mode = AllowList
	}

	source := make(map[platform.Name]int)

	for i, scope := range scopes[decisive:] {
		for _, r := range scope.Requirements {
			if _, ok := c.lattices[r.Platform]; ok {
				continue // shadowed by a nearer scope or already built
			}

			c.lattices[r.Platform] = lattice.Build(scope.For(r.Platform))
			c.order = append(c.order, r.Platform)
			source[r.Platform] = decisive + i
		}
	}

	if strict && c.mode == AllowList {
		for _, p := range c.order {
			for _, outer := range scopes[source[p]+1:] {
				if outer.AllowList() && !outer.Names(p) {
					c.lattices[p] = lattice.Never()
					break
				}
			}
		}
	}

	return c
}

// Mode returns how undeclared platforms are treated.
func (c Context) Mode() Mode { return c.mode }

// Constrained reports whether any requirement applies.
func (c Context) Constrained() bool { return c.mode != Unconstrained }

// Platforms returns the declared platform names, nearest scope first, then in declaration order.
func (c Context) Platforms() []platform.Name { return slices.Clone(c.order) }

// Names reports whether p is declared.
func (c Context) Names(p platform.Name) bool {
	_, ok := c.lattices[p]

	return ok
}

// Availability returns the availability of platform p.
func (c Context) Availability(p platform.Name) lattice.Lattice {
	if l, ok := c.lattices[p]; ok {
		return l
	}

	return c.Default()
}

// Default returns the availability of undeclared platforms.
func (c Context) Default() lattice.Lattice {
	if c.mode == AllowList {
		return lattice.Never()
	}

	return lattice.Always()
}
