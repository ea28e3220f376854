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

package lower

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/platformguard/internal/operation"
)

func (l *lowerer) exprs(out operation.Body, list []ast.Expr) operation.Body {
	for _, e := range list {
		out = l.expr(out, e)
	}

	return out
}

// expr appends the invocations of e in evaluation order.
//
// Operands of && and || are nested under a branch on the left operand, function literals are inlined.
func (l *lowerer) expr(out operation.Body, e ast.Expr) operation.Body {
	if e == nil {
		return out
	}

	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			out = append(out, operation.Block{Body: l.stmts(n.Body.List)})
			return false

		case *ast.BinaryExpr:
			if n.Op != token.LAND && n.Op != token.LOR {
				return true
			}

			out = l.expr(out, n.X)

			y := l.expr(nil, n.Y)
			if len(y) == 0 {
				return false
			}

			branch := operation.Branch{Cond: l.cond(n.X)}
			if n.Op == token.LAND {
				branch.Then = y
			} else {
				branch.Else = y
			}

			out = append(out, branch)

			return false

		case *ast.CallExpr:
			out = l.call(out, n)
			return false

		case *ast.CompositeLit:
			for _, elt := range n.Elts {
				out = l.expr(out, elt)
			}

			if tn := namedType(l.info.TypeOf(n)); tn != nil {
				out = append(out, operation.Invoke{Callee: tn, Pos: n.Pos(), End: n.End()})
			}

			return false

		case *ast.KeyValueExpr:
			if _, ok := n.Key.(*ast.Ident); !ok {
				out = l.expr(out, n.Key)
			}

			out = l.expr(out, n.Value)

			return false

		case *ast.SelectorExpr:
			if !l.isPackageName(n.X) {
				out = l.expr(out, n.X)
			}

			if sym := l.member(n.Sel); sym != nil {
				out = append(out, operation.Invoke{Callee: sym, Pos: n.Pos(), End: n.End()})
			}

			return false

		case *ast.Ident:
			if sym := l.member(n); sym != nil {
				out = append(out, operation.Invoke{Callee: sym, Pos: n.Pos(), End: n.End()})
			}

			return false

		case ast.Expr:
			if tv, ok := l.info.Types[n]; ok && tv.IsType() {
				return false // type expressions
			}
		}

		return true
	})

	return out
}

// call appends the invocations of the callee operand and arguments, then the call itself.
func (l *lowerer) call(out operation.Body, call *ast.CallExpr) operation.Body {
	fun := ast.Unparen(call.Fun)

	if tv, ok := l.info.Types[fun]; ok && tv.IsType() { // conversion
		out = l.exprs(out, call.Args)

		if tn := namedType(tv.Type); tn != nil {
			out = append(out, operation.Invoke{Callee: tn, Pos: call.Pos(), End: call.End()})
		}

		return out
	}

	callee := l.callee(call)
	if callee == nil {
		out = l.expr(out, fun)
	} else {
		out = l.receiver(out, fun)
	}

	out = l.exprs(out, call.Args)

	if callee != nil {
		out = append(out, operation.Invoke{Callee: callee, Pos: call.Pos(), End: call.End()})
	}

	return out
}

// receiver appends the invocations of a method receiver expression.
func (l *lowerer) receiver(out operation.Body, fun ast.Expr) operation.Body {
	for {
		switch f := fun.(type) {
		case *ast.IndexExpr:
			fun = ast.Unparen(f.X)

		case *ast.IndexListExpr:
			fun = ast.Unparen(f.X)

		case *ast.SelectorExpr:
			if l.isPackageName(f.X) {
				return out
			}

			return l.expr(out, f.X)

		default:
			return out
		}
	}
}

// callee returns the statically known function or method of a call.
func (l *lowerer) callee(call *ast.CallExpr) *types.Func {
	fun, ok := typeutil.Callee(l.info, call).(*types.Func)
	if !ok {
		return nil
	}

	return fun.Origin()
}

// member returns the package level function, method, variable or constant denoted by id.
func (l *lowerer) member(id *ast.Ident) types.Object {
	switch obj := l.info.Uses[id].(type) {
	case *types.Func:
		return obj.Origin()

	case *types.Var:
		if obj.IsField() || !packageLevel(obj) {
			return nil
		}

		return obj

	case *types.Const:
		if !packageLevel(obj) {
			return nil
		}

		return obj

	default:
		return nil
	}
}

// object returns the object denoted by an identifier or qualified identifier.
func (l *lowerer) object(e ast.Expr) types.Object {
	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		return l.info.Uses[e]

	case *ast.SelectorExpr:
		return l.info.Uses[e.Sel]

	default:
		return nil
	}
}

func (l *lowerer) isPackageName(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	if !ok {
		return false
	}

	_, ok = l.info.Uses[id].(*types.PkgName)

	return ok
}

func packageLevel(obj types.Object) bool {
	pkg := obj.Pkg()

	return pkg != nil && obj.Parent() == pkg.Scope()
}

// namedType returns the origin type name of a defined type, dereferencing pointers.
func namedType(t types.Type) *types.TypeName {
	if t == nil {
		return nil
	}

	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return nil
	}

	return named.Origin().Obj()
}
