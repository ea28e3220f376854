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

package host

import (
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/platform"
	"fillmore-labs.com/platformguard/internal/resolve"
)

// Graph is the symbol containment graph of a package and its dependencies.
//
// Symbols are [*types.Package], [*types.TypeName], [*types.Func], [*types.Var] and [*types.Const].
// A Graph is read-only after construction and safe for concurrent use.
type Graph struct {
	requirements map[any][]platform.Requirement
	guards       map[types.Object]guard.Spec
	declared     *Declarations
}

var (
	_ resolve.Graph = (*Graph)(nil)
	_ guard.Lookup  = (*Graph)(nil)
)

// NewGraph snapshots the facts visible to the pass. Call it after [Collect].
func NewGraph(pass *analysis.Pass, declared *Declarations) *Graph {
	g := &Graph{
		requirements: make(map[any][]platform.Requirement),
		guards:       make(map[types.Object]guard.Spec),
		declared:     declared,
	}

	for _, f := range pass.AllObjectFacts() {
		switch fact := f.Fact.(type) {
		case *requirementsFact:
			g.requirements[f.Object] = fact.Requirements

		case *guardFact:
			g.guards[f.Object] = fact.Spec
		}
	}

	for _, f := range pass.AllPackageFacts() {
		if fact, ok := f.Fact.(*requirementsFact); ok {
			g.requirements[f.Package] = fact.Requirements
		}
	}

	return g
}

// Constrained reports whether any symbol visible to the pass declares requirements.
func (g *Graph) Constrained() bool {
	return len(g.requirements) > 0 || g.declared.constrained()
}

// Parent returns the receiver type of methods and the package of other symbols.
func (g *Graph) Parent(sym resolve.Symbol) (resolve.Symbol, bool) {
	switch s := sym.(type) {
	case *types.Package:
		return nil, false

	case *types.Func:
		if tn := receiverTypeName(s); tn != nil {
			return tn, true
		}

		return packageOf(s)

	case types.Object:
		return packageOf(s)

	default:
		return nil, false
	}
}

// Requirements returns source annotations, falling back to configured declarations.
func (g *Graph) Requirements(sym resolve.Symbol) []platform.Requirement {
	if reqs := g.requirements[sym]; len(reqs) > 0 {
		return reqs
	}

	return g.declared.requirementsOf(sym)
}

// Guard recognizes runtime.GOOS, annotated guards and configured guards.
func (g *Graph) Guard(sym any) (guard.Spec, bool) {
	obj, ok := sym.(types.Object)
	if !ok {
		return guard.Spec{}, false
	}

	if isGOOS(obj) {
		return guard.Spec{Kind: guard.PlatformAccessor}, true
	}

	if spec, ok := g.guards[obj]; ok {
		return spec, true
	}

	return g.declared.guardOf(obj)
}

// DisplayName renders sym for diagnostics, like "pkg.F", "pkg.T.M" or "pkg.T".
func DisplayName(sym any) string {
	switch s := sym.(type) {
	case *types.Package:
		return s.Name()

	case *types.Func:
		name := s.Name()
		if tn := receiverTypeName(s); tn != nil {
			name = tn.Name() + "." + name
		}

		if pkg := s.Pkg(); pkg != nil {
			name = pkg.Name() + "." + name
		}

		return name

	case types.Object:
		if pkg := s.Pkg(); pkg != nil {
			return pkg.Name() + "." + s.Name()
		}

		return s.Name()

	default:
		return "<unknown>"
	}
}

func isGOOS(obj types.Object) bool {
	pkg := obj.Pkg()

	return pkg != nil && pkg.Path() == "runtime" && obj.Name() == "GOOS"
}

func packageOf(obj types.Object) (resolve.Symbol, bool) {
	if pkg := obj.Pkg(); pkg != nil {
		return pkg, true
	}

	return nil, false
}

// receiverTypeName returns the origin type name of a method receiver, or nil for functions.
func receiverTypeName(fun *types.Func) *types.TypeName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	named, ok := recv.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return nil
	}

	return named.Origin().Obj()
}
