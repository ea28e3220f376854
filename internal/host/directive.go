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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/platform"
)

const directivePrefix = "//platform:"

var errPackageGuard = errors.New("guard directives are not allowed on packages")

// Directives are the platform annotations of one declaration.
type Directives struct {
	Requirements []platform.Requirement
	Guard        *guard.Spec
}

// DirectiveError describes a malformed annotation.
type DirectiveError struct {
	Pos token.Pos
	Err error
}

func (e DirectiveError) Error() string { return e.Err.Error() }

func (e DirectiveError) Unwrap() error { return e.Err }

// ParseDirectives reads //platform: annotations from a doc comment.
//
//	//platform:supported windows10.0 browser
//	//platform:unsupported windows
//	//platform:guard windows10.0
//	//platform:version windows
//
// Malformed versions degrade to version 0 and are reported as errors.
func ParseDirectives(doc *ast.CommentGroup) (Directives, []DirectiveError) {
	var (
		d    Directives
		errs []DirectiveError
	)

	if doc == nil {
		return d, nil
	}

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}

		verb, args, _ := strings.Cut(text, " ")
		args, _, _ = strings.Cut(args, "//") // trailing comment
		fields := strings.Fields(args)

		fail := func(err error) { errs = append(errs, DirectiveError{Pos: c.Pos(), Err: err}) }

		switch verb {
		case "supported", "unsupported":
			var kind platform.Kind
			if err := kind.UnmarshalText([]byte(verb)); err != nil {
				fail(err)
				continue
			}

			if len(fields) == 0 {
				fail(fmt.Errorf("%s%s: missing platform", directivePrefix, verb))
			}

			for _, f := range fields {
				r, err := platform.ParseRequirement(kind, f)
				if err != nil {
					fail(fmt.Errorf("%s%s %s: %w", directivePrefix, verb, f, err))
				}

				if r.Platform != "" {
					d.Requirements = append(d.Requirements, r)
				}
			}

		case "guard":
			spec, err := parseGuard(verb, guard.PlatformCheck, fields)
			if err != nil {
				fail(err)
			}

			d.Guard = &spec

		case "version":
			if len(fields) != 1 {
				fail(fmt.Errorf("%sversion: expected one platform", directivePrefix))
				continue
			}

			spec, err := parseGuard(verb, guard.VersionAccessor, fields)
			if err != nil {
				fail(err)
			}

			spec.Version = platform.Version{}
			d.Guard = &spec

		case "accessor":
			d.Guard = &guard.Spec{Kind: guard.PlatformAccessor}

		default:
			fail(fmt.Errorf("unknown directive %s%s", directivePrefix, verb))
		}
	}

	return d, errs
}

// parseGuard parses an optional platform specification of a guard.
func parseGuard(verb string, kind guard.SpecKind, fields []string) (guard.Spec, error) {
	spec := guard.Spec{Kind: kind}

	switch len(fields) {
	case 0:
		return spec, nil

	case 1:
		r, err := platform.ParseRequirement(platform.Supported, fields[0])
		spec.Platform, spec.Version = r.Platform, r.Version

		if err != nil {
			return spec, fmt.Errorf("%s%s %s: %w", directivePrefix, verb, fields[0], err)
		}

		return spec, nil

	default:
		return spec, fmt.Errorf("%s%s: too many arguments", directivePrefix, verb)
	}
}
