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

	"fillmore-labs.com/platformguard/internal/operation"
)

// cond lowers a branch condition. Unrecognized shapes are [operation.Opaque].
func (l *lowerer) cond(e ast.Expr) operation.Cond {
	switch e := ast.Unparen(e).(type) {
	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			return operation.Not{X: l.cond(e.X)}
		}

	case *ast.BinaryExpr:
		switch e.Op {
		case token.LAND:
			return operation.And{X: l.cond(e.X), Y: l.cond(e.Y)}

		case token.LOR:
			return operation.Or{X: l.cond(e.X), Y: l.cond(e.Y)}

		case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
			return operation.Compare{Op: e.Op, X: l.operand(e.X), Y: l.operand(e.Y)}

		default:
		}

	case *ast.CallExpr:
		if fun := l.callee(e); fun != nil {
			args := make([]operation.Operand, 0, len(e.Args))
			for _, a := range e.Args {
				args = append(args, l.operand(a))
			}

			return operation.Predicate{Symbol: fun, Args: args}
		}

	case *ast.Ident, *ast.SelectorExpr:
		if obj := l.object(e); obj != nil {
			if _, ok := l.lookup.Guard(obj); ok {
				return operation.Predicate{Symbol: obj}
			}
		}
	}

	return operation.Opaque{}
}

// operand lowers a comparison or call argument.
//
// Guard symbols are references even when constant, like runtime.GOOS.
func (l *lowerer) operand(e ast.Expr) operation.Operand {
	e = ast.Unparen(e)

	obj := l.object(e)
	if obj != nil {
		if _, ok := l.lookup.Guard(obj); ok {
			return operation.Ref{Symbol: obj}
		}
	}

	if tv, ok := l.info.Types[e]; ok && tv.Value != nil {
		return operation.Const{Value: tv.Value}
	}

	if call, ok := e.(*ast.CallExpr); ok && len(call.Args) == 0 {
		if fun := l.callee(call); fun != nil {
			return operation.Ref{Symbol: fun}
		}
	}

	if obj != nil {
		return operation.Ref{Symbol: obj}
	}

	return operation.Unknown{}
}
