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

package guard

import (
	"go/constant"
	"go/token"

	"fillmore-labs.com/platformguard/internal/operation"
	"fillmore-labs.com/platformguard/internal/platform"
)

// Recognize classifies cond, returning the narrowings for its branches.
//
// Conjunctions narrow their true branch with the narrowings of all recognized
// conjuncts and leave the false branch alone. Disjunctions narrow nothing.
func Recognize(l Lookup, cond operation.Cond) Result {
	switch c := cond.(type) {
	case operation.Not:
		return Recognize(l, c.X).swap()

	case operation.And:
		x, y := Recognize(l, c.X), Recognize(l, c.Y)
		if len(x.True)+len(y.True) == 0 {
			return Result{}
		}

		return Result{True: append(append([]Narrowing(nil), x.True...), y.True...)}

	case operation.Compare:
		return compare(l, c)

	case operation.Predicate:
		return predicate(l, c)

	default:
		return Result{}
	}
}

func compare(l Lookup, c operation.Compare) Result {
	op, other := c.Op, c.Y

	spec, ok := refGuard(l, c.X)
	if !ok {
		if spec, ok = refGuard(l, c.Y); !ok {
			return Result{}
		}

		op, other = mirror(c.Op), c.X
	}

	val, ok := other.(operation.Const)
	if !ok || val.Value == nil {
		return Result{}
	}

	switch spec.Kind {
	case PlatformAccessor:
		return platformCompare(op, val.Value)

	case VersionAccessor:
		return versionCompare(spec.Platform, op, val.Value)

	default:
		return Result{}
	}
}

func refGuard(l Lookup, o operation.Operand) (Spec, bool) {
	ref, ok := o.(operation.Ref)
	if !ok {
		return Spec{}, false
	}

	spec, ok := l.Guard(ref.Symbol)
	if !ok || spec.Kind == PlatformCheck {
		return Spec{}, false
	}

	return spec, true
}

// mirror returns the operator for swapped operands.
func mirror(op token.Token) token.Token {
	switch op {
	case token.LSS:
		return token.GTR
	case token.GTR:
		return token.LSS
	case token.LEQ:
		return token.GEQ
	case token.GEQ:
		return token.LEQ
	default:
		return op
	}
}

func platformCompare(op token.Token, val constant.Value) Result {
	if val.Kind() != constant.String {
		return Result{}
	}

	p := platform.ParseName(constant.StringVal(val))
	if p == "" {
		return Result{}
	}

	switch op {
	case token.EQL:
		return atLeast(p, platform.Version{})

	case token.NEQ:
		return atLeast(p, platform.Version{}).swap()

	default:
		return Result{}
	}
}

func versionCompare(p platform.Name, op token.Token, val constant.Value) Result {
	major, ok := component(val)
	if !ok || p == "" {
		return Result{}
	}

	v := platform.Version{major}
	next := v.NextMajor()

	switch op {
	case token.GEQ:
		if v.IsZero() {
			return Result{}
		}

		return atLeast(p, v)

	case token.GTR:
		return atLeast(p, next)

	case token.LSS:
		if v.IsZero() {
			return Result{}
		}

		return atLeast(p, v).swap()

	case token.LEQ:
		return atLeast(p, next).swap()

	case token.EQL, token.NEQ:
		if v.IsZero() {
			return Result{}
		}

		exact := []Narrowing{{Platform: p, Version: v}, {Platform: p, Version: next, Negated: true}}
		if op == token.NEQ {
			return Result{False: exact}
		}

		return Result{True: exact}

	default:
		return Result{}
	}
}

func predicate(l Lookup, c operation.Predicate) Result {
	spec, ok := l.Guard(c.Symbol)
	if !ok || spec.Kind != PlatformCheck {
		return Result{}
	}

	args, p := c.Args, spec.Platform
	if p == "" {
		if len(args) == 0 {
			return Result{}
		}

		s, ok := constString(args[0])
		if !ok {
			return Result{}
		}

		if p = platform.ParseName(s); p == "" {
			return Result{}
		}

		args = args[1:]
	}

	v, known := spec.Version, true
	if v.IsZero() && len(args) > 0 {
		v, known = versionArgs(args)
	}

	r := atLeast(p, v)
	if !known {
		r.False = nil // the platform is proven, the version is not
	}

	return r
}

// versionArgs reads a version from a single constant string or from constant integer components.
func versionArgs(args []operation.Operand) (platform.Version, bool) {
	if s, ok := constString(args[0]); ok && len(args) == 1 {
		v, err := platform.ParseVersion(s)

		return v, err == nil
	}

	parts := make([]int64, len(args))

	for i, arg := range args {
		c, ok := arg.(operation.Const)
		if !ok || c.Value == nil {
			return platform.Version{}, false
		}

		if parts[i], ok = component(c.Value); !ok {
			return platform.Version{}, false
		}
	}

	v, err := platform.NewVersion(parts...)

	return v, err == nil
}

func constString(o operation.Operand) (string, bool) {
	c, ok := o.(operation.Const)
	if !ok || c.Value == nil || c.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(c.Value), true
}

func component(val constant.Value) (int64, bool) {
	i := constant.ToInt(val)
	if i.Kind() != constant.Int {
		return 0, false
	}

	return constant.Int64Val(i)
}
