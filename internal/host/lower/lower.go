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

// Package lower translates Go function bodies into operation graphs.
package lower

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/operation"
)

// Func lowers a function body.
//
// Conditions that are not recognizable guards are kept opaque. Unexpected syntax is
// reported in the returned error, the body is lowered as far as possible.
func Func(info *types.Info, lookup guard.Lookup, body *ast.BlockStmt) (operation.Body, error) {
	if body == nil {
		return nil, nil
	}

	l := lowerer{info: info, lookup: lookup, gotos: gotoTargets(info, body)}
	ops := l.stmts(body.List)

	return ops, errors.Join(l.errs...)
}

// Expr lowers the invocations of an expression, like a package level variable initializer.
func Expr(info *types.Info, lookup guard.Lookup, e ast.Expr) (operation.Body, error) {
	l := lowerer{info: info, lookup: lookup, gotos: gotoTargets(info, e)}
	ops := l.expr(nil, e)

	return ops, errors.Join(l.errs...)
}

// lowerer constructs the operation graph.
//
// The lowering methods take the operations so far and return them with the new ones appended.
type lowerer struct {
	info   *types.Info
	lookup guard.Lookup
	gotos  map[types.Object]struct{} // labels targeted by goto statements
	errs   []error
}

// gotoTargets collects the labels used by goto statements in node.
func gotoTargets(info *types.Info, node ast.Node) map[types.Object]struct{} {
	targets := make(map[types.Object]struct{})

	ast.Inspect(node, func(n ast.Node) bool {
		if b, ok := n.(*ast.BranchStmt); ok && b.Tok == token.GOTO && b.Label != nil {
			if obj := info.Uses[b.Label]; obj != nil {
				targets[obj] = struct{}{}
			}
		}

		return true
	})

	return targets
}

// jumpTarget reports whether a goto can enter the labeled statement from outside.
//
// Labels of break and continue statements are only reachable from within the
// labeled statement and are no join points.
func (l *lowerer) jumpTarget(label *ast.Ident) bool {
	obj := l.info.Defs[label]
	if obj == nil {
		return true
	}

	_, ok := l.gotos[obj]

	return ok
}

func (l *lowerer) stmts(list []ast.Stmt) operation.Body {
	var out operation.Body
	for _, s := range list {
		out = l.stmt(out, s)
	}

	return out
}

func (l *lowerer) stmt(out operation.Body, stmt ast.Stmt) operation.Body {
	switch stmt := stmt.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt:
		out = l.exprs(out, stmt.Rhs)
		return l.exprs(out, stmt.Lhs)

	case *ast.BadStmt, *ast.EmptyStmt:
		return out

	case *ast.BlockStmt:
		return append(out, l.stmts(stmt.List)...)

	case *ast.BranchStmt:
		if stmt.Tok == token.FALLTHROUGH {
			return out // handled by the switch
		}

		return append(out, operation.Exit{Pos: stmt.Pos()})

	case *ast.DeclStmt:
		if d, ok := stmt.Decl.(*ast.GenDecl); ok && d.Tok == token.VAR {
			for _, spec := range d.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					out = l.exprs(out, vs.Values)
				}
			}
		}

		return out

	case *ast.DeferStmt:
		return l.expr(out, stmt.Call)

	case *ast.ExprStmt:
		out = l.expr(out, stmt.X)

		if call, ok := ast.Unparen(stmt.X).(*ast.CallExpr); ok && CantReturn(l.info, call) {
			out = append(out, operation.Exit{Pos: stmt.End()})
		}

		return out

	case *ast.ForStmt:
		return l.forStmt(out, stmt)

	case *ast.GoStmt:
		return l.expr(out, stmt.Call)

	case *ast.IfStmt:
		return l.ifStmt(out, stmt)

	case *ast.IncDecStmt:
		return l.expr(out, stmt.X)

	case *ast.LabeledStmt:
		if l.jumpTarget(stmt.Label) {
			out = append(out, operation.Label{Pos: stmt.Pos()})
		}

		return l.stmt(out, stmt.Stmt)

	case *ast.RangeStmt:
		out = l.expr(out, stmt.X)
		return append(out, operation.Block{Body: l.stmts(stmt.Body.List)})

	case *ast.ReturnStmt:
		out = l.exprs(out, stmt.Results)
		return append(out, operation.Exit{Pos: stmt.Pos()})

	case *ast.SelectStmt:
		return l.selectStmt(out, stmt)

	case *ast.SendStmt:
		out = l.expr(out, stmt.Chan)
		return l.expr(out, stmt.Value)

	case *ast.SwitchStmt:
		return l.switchStmt(out, stmt)

	case *ast.TypeSwitchStmt:
		return l.typeSwitchStmt(out, stmt)

	default: // *ast.CaseClause and *ast.CommClause
		l.errs = append(l.errs, fmt.Errorf("unexpected statement type %T at %d", stmt, stmt.Pos()))
		return out
		// keep-sorted end
	}
}

// ifStmt lowers the condition invocations followed by the branch.
func (l *lowerer) ifStmt(out operation.Body, stmt *ast.IfStmt) operation.Body {
	if stmt.Init != nil {
		out = l.stmt(out, stmt.Init)
	}

	out = l.expr(out, stmt.Cond)

	branch := operation.Branch{
		Cond: l.cond(stmt.Cond),
		Then: l.stmts(stmt.Body.List),
	}

	if stmt.Else != nil {
		branch.Else = l.stmt(nil, stmt.Else)
	}

	return append(out, branch)
}

// forStmt lowers a loop into a block, the body guarded by the loop condition.
func (l *lowerer) forStmt(out operation.Body, stmt *ast.ForStmt) operation.Body {
	if stmt.Init != nil {
		out = l.stmt(out, stmt.Init)
	}

	body := l.stmts(stmt.Body.List)
	if stmt.Post != nil {
		body = l.stmt(body, stmt.Post)
	}

	if stmt.Cond == nil {
		return append(out, operation.Block{Body: body})
	}

	loop := l.expr(nil, stmt.Cond)
	loop = append(loop, operation.Branch{Cond: l.cond(stmt.Cond), Then: body})

	return append(out, operation.Block{Body: loop})
}

// switchStmt lowers an expression switch into an if-else chain with the default clause last.
func (l *lowerer) switchStmt(out operation.Body, stmt *ast.SwitchStmt) operation.Body {
	if stmt.Init != nil {
		out = l.stmt(out, stmt.Init)
	}

	var tag operation.Operand
	if stmt.Tag != nil {
		out = l.expr(out, stmt.Tag)
		tag = l.operand(stmt.Tag)
	}

	type clause struct {
		cond operation.Cond // nil for default
		body operation.Body
	}

	var (
		clauses     []clause
		deflt       operation.Body
		hasDefault  bool
		fallThrough bool // previous clause ends with fallthrough
		entered     bool // default is entered by fallthrough
	)

	for _, c := range stmt.Body.List {
		cc, ok := c.(*ast.CaseClause)
		if !ok {
			continue
		}

		out = l.exprs(out, cc.List)
		body := l.stmts(cc.Body)

		if cc.List == nil {
			deflt, hasDefault, entered = body, true, fallThrough
		} else {
			cond := l.caseCond(tag, cc.List)
			if fallThrough {
				cond = operation.Or{X: operation.Opaque{}, Y: cond}
			}

			clauses = append(clauses, clause{cond: cond, body: body})
		}

		fallThrough = endsWithFallthrough(cc)
	}

	var chain operation.Body
	if hasDefault && !entered {
		chain = deflt
	}

	for i := len(clauses) - 1; i >= 0; i-- {
		chain = operation.Body{operation.Branch{Cond: clauses[i].cond, Then: clauses[i].body, Else: chain}}
	}

	if hasDefault && entered {
		chain = append(chain, operation.Block{Body: deflt})
	}

	if breaks(stmt.Body) {
		return append(out, operation.Block{Body: chain})
	}

	return append(out, chain...)
}

func (l *lowerer) caseCond(tag operation.Operand, list []ast.Expr) operation.Cond {
	var cond operation.Cond

	for _, e := range list {
		var c operation.Cond
		if tag != nil {
			c = operation.Compare{Op: token.EQL, X: tag, Y: l.operand(e)}
		} else {
			c = l.cond(e)
		}

		if cond == nil {
			cond = c
		} else {
			cond = operation.Or{X: cond, Y: c}
		}
	}

	return cond
}

// typeSwitchStmt lowers every clause into a block.
func (l *lowerer) typeSwitchStmt(out operation.Body, stmt *ast.TypeSwitchStmt) operation.Body {
	if stmt.Init != nil {
		out = l.stmt(out, stmt.Init)
	}

	out = l.stmt(out, stmt.Assign)

	for _, c := range stmt.Body.List {
		if cc, ok := c.(*ast.CaseClause); ok {
			out = append(out, operation.Block{Body: l.stmts(cc.Body)})
		}
	}

	return out
}

// selectStmt evaluates all channel operands first, then lowers every clause into a block.
func (l *lowerer) selectStmt(out operation.Body, stmt *ast.SelectStmt) operation.Body {
	clauses := make([]*ast.CommClause, 0, len(stmt.Body.List))

	for _, c := range stmt.Body.List {
		cc, ok := c.(*ast.CommClause)
		if !ok {
			continue
		}

		clauses = append(clauses, cc)

		switch comm := cc.Comm.(type) {
		case nil: // default

		case *ast.SendStmt:
			out = l.expr(out, comm.Chan)
			out = l.expr(out, comm.Value)

		case *ast.AssignStmt:
			out = l.exprs(out, comm.Rhs)

		case *ast.ExprStmt:
			out = l.expr(out, comm.X)

		default:
			l.errs = append(l.errs, fmt.Errorf("unexpected communication clause %T at %d", comm, comm.Pos()))
		}
	}

	for _, cc := range clauses {
		out = append(out, operation.Block{Body: l.stmts(cc.Body)})
	}

	return out
}

func endsWithFallthrough(cc *ast.CaseClause) bool {
	if len(cc.Body) == 0 {
		return false
	}

	b, ok := cc.Body[len(cc.Body)-1].(*ast.BranchStmt)

	return ok && b.Tok == token.FALLTHROUGH
}

// breaks reports whether a switch body contains break statements, ignoring function literals.
func breaks(body *ast.BlockStmt) bool {
	found := false

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.BranchStmt:
			if n.Tok == token.BREAK {
				found = true
			}
		}

		return !found
	})

	return found
}
