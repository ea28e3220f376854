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

// Package buildtag derives platform narrowings from build constraints and file names.
package buildtag

import (
	"go/ast"
	"go/build/constraint"
	"path/filepath"
	"slices"
	"strings"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/platform"
)

// Narrowings returns the platform narrowings that hold in every function of a file.
//
// When all operating systems the file builds for belong to one family, like linux and android,
// the result is a positive narrowing. Otherwise, operating systems the constraint names but excludes
// are negative narrowings.
func Narrowings(f *ast.File, filename string) []guard.Narrowing {
	expr := fileConstraint(f)
	suffix := suffixOS(filename)

	if expr == nil && suffix == "" {
		return nil
	}

	mentioned := make(map[string]bool)
	if expr != nil {
		tags(expr, mentioned)
	}

	if suffix != "" {
		mentioned[suffix] = true
	}

	if mentioned["unix"] {
		for _, goos := range unixOS {
			mentioned[goos] = true
		}
	}

	var possible []string

	for _, goos := range knownOS {
		if suffix != "" && !matchOS(suffix, goos) {
			continue
		}

		if expr != nil && !satisfiable(expr, goos) {
			continue
		}

		possible = append(possible, goos)
	}

	if fam, ok := family(possible); ok {
		return []guard.Narrowing{{Platform: platform.ParseName(fam)}}
	}

	var ns []guard.Narrowing

	for _, goos := range knownOS {
		if mentioned[goos] && !slices.Contains(possible, goos) {
			ns = append(ns, guard.Narrowing{Platform: platform.ParseName(goos), Negated: true})
		}
	}

	return ns
}

// fileConstraint returns the //go:build constraint of a file, falling back to // +build lines.
func fileConstraint(f *ast.File) constraint.Expr {
	var plus constraint.Expr

	for _, g := range f.Comments {
		if g.Pos() >= f.Package {
			break
		}

		for _, c := range g.List {
			switch {
			case constraint.IsGoBuild(c.Text):
				if x, err := constraint.Parse(c.Text); err == nil {
					return x
				}

			case constraint.IsPlusBuild(c.Text):
				x, err := constraint.Parse(c.Text)
				if err != nil {
					continue
				}

				if plus == nil {
					plus = x
				} else {
					plus = &constraint.AndExpr{X: plus, Y: x}
				}
			}
		}
	}

	return plus
}

// suffixOS returns the operating system of a _GOOS or _GOOS_GOARCH file name suffix.
func suffixOS(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), ".go")
	name = strings.TrimSuffix(name, "_test")

	_, name, ok := strings.Cut(name, "_")
	if !ok {
		return ""
	}

	l := strings.Split(name, "_")
	n := len(l)

	if n >= 2 && slices.Contains(knownOS, l[n-2]) && slices.Contains(knownArch, l[n-1]) {
		return l[n-2]
	}

	if slices.Contains(knownOS, l[n-1]) {
		return l[n-1]
	}

	return ""
}

// satisfiable reports whether expr can hold on goos, with all other tags either set or unset.
func satisfiable(expr constraint.Expr, goos string) bool {
	for _, others := range [...]bool{true, false} {
		if expr.Eval(func(tag string) bool {
			switch {
			case tag == "unix":
				return slices.Contains(unixOS, goos)

			case slices.Contains(knownOS, tag):
				return matchOS(tag, goos)

			default:
				return others
			}
		}) {
			return true
		}
	}

	return false
}

func tags(expr constraint.Expr, seen map[string]bool) {
	switch x := expr.(type) {
	case *constraint.TagExpr:
		seen[x.Tag] = true

	case *constraint.NotExpr:
		tags(x.X, seen)

	case *constraint.AndExpr:
		tags(x.X, seen)
		tags(x.Y, seen)

	case *constraint.OrExpr:
		tags(x.X, seen)
		tags(x.Y, seen)
	}
}

// family returns the operating system all others in list imply.
func family(list []string) (string, bool) {
	for _, c := range list {
		if !slices.ContainsFunc(list, func(goos string) bool { return !matchOS(c, goos) }) {
			return c, true
		}
	}

	return "", false
}

// matchOS reports whether the build tag is satisfied on goos.
func matchOS(tag, goos string) bool {
	if tag == goos {
		return true
	}

	switch goos {
	case "android":
		return tag == "linux"
	case "illumos":
		return tag == "solaris"
	case "ios":
		return tag == "darwin"
	default:
		return false
	}
}
