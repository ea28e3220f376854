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
	"strings"
)

// FuncName is the qualified name of a function or method.
type FuncName struct {
	Path     string // package path, empty for universe methods
	Receiver string // receiver type name, empty for functions
	Name     string
}

// FuncNameOf returns the qualified name of fun. Pointer receivers and aliases are resolved to the named type.
func FuncNameOf(fun *types.Func) FuncName {
	fun = fun.Origin()

	var path string
	if pkg := fun.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return FuncName{Path: path, Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch r := recv.(type) {
	case *types.Named:
		obj := r.Origin().Obj()
		if obj.Pkg() == nil {
			path = ""
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

// String renders the name as "path.Name" or "(path.Receiver).Name".
func (f FuncName) String() string {
	var b strings.Builder

	if f.Receiver != "" {
		b.WriteByte('(')
	}

	if f.Path != "" {
		b.WriteString(f.Path)
		b.WriteByte('.')
	}

	if f.Receiver != "" {
		b.WriteString(f.Receiver)
		b.WriteString(").")
	}

	b.WriteString(f.Name)

	return b.String()
}

// QualifiedName returns the configuration name of a package, type, function or method object.
func QualifiedName(sym any) (string, bool) {
	switch s := sym.(type) {
	case *types.Package:
		return s.Path(), true

	case *types.Func:
		return FuncNameOf(s).String(), true

	case types.Object:
		if s.Pkg() == nil {
			return s.Name(), true
		}

		return s.Pkg().Path() + "." + s.Name(), true

	default:
		return "", false
	}
}
