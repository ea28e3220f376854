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

import "sync"

// Resolver memoizes effective contexts per symbol for one analysis pass.
//
// Resolver is safe for concurrent use. Each symbol is computed at most once;
// concurrent callers wait for the first computation.
type Resolver struct {
	graph  Graph
	strict bool
	cache  sync.Map // Symbol → *entry
}

type entry struct {
	once sync.Once
	ctx  Context
	err  error
}

// NewResolver creates a [Resolver] over g. strict enables outer allow-list restriction, see [Build].
func NewResolver(g Graph, strict bool) *Resolver {
	return &Resolver{graph: g, strict: strict}
}

// Resolve returns the effective context of sym.
func (r *Resolver) Resolve(sym Symbol) (Context, error) {
	e, ok := r.cache.Load(sym)
	if !ok {
		e, _ = r.cache.LoadOrStore(sym, &entry{})
	}

	en := e.(*entry)
	en.once.Do(func() {
		scopes, err := Scopes(r.graph, sym)
		if err != nil {
			en.err = err
			return
		}

		en.ctx = Build(scopes, r.strict)
	})

	return en.ctx, en.err
}
