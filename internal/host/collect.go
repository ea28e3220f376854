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
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/platformguard/internal/platform"
)

// Collect exports the //platform: annotations of the package as facts and returns malformed directives.
func Collect(pass *analysis.Pass) []DirectiveError {
	c := collector{pass: pass}

	for _, f := range pass.Files {
		c.file(f)
	}

	if len(c.pkg) > 0 {
		pass.ExportPackageFact(&requirementsFact{Requirements: c.pkg})
	}

	return c.errs
}

type collector struct {
	pass *analysis.Pass
	pkg  []platform.Requirement
	errs []DirectiveError
}

func (c *collector) file(f *ast.File) {
	d, errs := ParseDirectives(f.Doc)
	c.errs = append(c.errs, errs...)
	c.pkg = append(c.pkg, d.Requirements...)

	if d.Guard != nil {
		c.errs = append(c.errs, DirectiveError{Pos: f.Doc.Pos(), Err: errPackageGuard})
	}

	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			c.declare(decl.Doc, decl.Name)

		case *ast.GenDecl:
			c.genDecl(decl)
		}
	}
}

func (c *collector) genDecl(decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		switch spec := spec.(type) {
		case *ast.TypeSpec:
			c.declare(specDoc(decl, spec.Doc), spec.Name)

			if iface, ok := spec.Type.(*ast.InterfaceType); ok {
				for _, m := range iface.Methods.List {
					if _, ok := m.Type.(*ast.FuncType); ok && len(m.Names) == 1 {
						c.declare(m.Doc, m.Names[0])
					}
				}
			}

		case *ast.ValueSpec:
			if decl.Tok != token.VAR && decl.Tok != token.CONST {
				continue
			}

			doc := specDoc(decl, spec.Doc)
			for _, name := range spec.Names {
				c.declare(doc, name)
			}
		}
	}
}

// specDoc returns the doc comment of a spec, inheriting the declaration doc for ungrouped declarations.
func specDoc(decl *ast.GenDecl, doc *ast.CommentGroup) *ast.CommentGroup {
	if doc == nil && !decl.Lparen.IsValid() {
		return decl.Doc
	}

	return doc
}

func (c *collector) declare(doc *ast.CommentGroup, name *ast.Ident) {
	if doc == nil || name == nil || name.Name == "_" {
		return
	}

	d, errs := ParseDirectives(doc)
	c.errs = append(c.errs, errs...)

	obj := c.pass.TypesInfo.Defs[name]
	if obj == nil {
		return
	}

	if fun, ok := obj.(*types.Func); ok {
		obj = fun.Origin()
	}

	if len(d.Requirements) > 0 {
		c.pass.ExportObjectFact(obj, &requirementsFact{Requirements: d.Requirements})
	}

	if d.Guard != nil {
		c.pass.ExportObjectFact(obj, &guardFact{Spec: *d.Guard})
	}
}
