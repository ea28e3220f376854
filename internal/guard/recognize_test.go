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

package guard_test

import (
	"go/constant"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/operation"
	"fillmore-labs.com/platformguard/internal/platform"
)

type lookup map[string]Spec

func (l lookup) Guard(sym any) (Spec, bool) {
	name, ok := sym.(string)
	if !ok {
		return Spec{}, false
	}

	spec, ok := l[name]

	return spec, ok
}

var guards = lookup{
	"GOOS":          {Kind: PlatformAccessor},
	"WindowsMajor":  {Kind: VersionAccessor, Platform: "windows"},
	"IsVersion":     {Kind: PlatformCheck},
	"IsWindows":     {Kind: PlatformCheck, Platform: "windows"},
	"IsWindows10":   {Kind: PlatformCheck, Platform: "windows", Version: ver(10)},
	"UnrelatedFlag": {Kind: PlatformCheck, Platform: "linux"},
}

func str(s string) operation.Operand { return operation.Const{Value: constant.MakeString(s)} }
func num(n int64) operation.Operand  { return operation.Const{Value: constant.MakeInt64(n)} }
func ref(s string) operation.Operand { return operation.Ref{Symbol: s} }

func call(sym string, args ...operation.Operand) operation.Cond {
	return operation.Predicate{Symbol: sym, Args: args}
}

func is(p string, v ...int64) Narrowing {
	return Narrowing{Platform: platform.Name(p), Version: ver(v...)}
}

func not(p string, v ...int64) Narrowing {
	return Narrowing{Platform: platform.Name(p), Version: ver(v...), Negated: true}
}

func TestRecognize(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		cond operation.Cond
		want Result
	}{
		{
			name: "goos equal",
			cond: operation.Compare{Op: token.EQL, X: ref("GOOS"), Y: str("Windows")},
			want: Result{True: []Narrowing{is("windows")}, False: []Narrowing{not("windows")}},
		},
		{
			name: "goos not equal reversed",
			cond: operation.Compare{Op: token.NEQ, X: str("linux"), Y: ref("GOOS")},
			want: Result{True: []Narrowing{not("linux")}, False: []Narrowing{is("linux")}},
		},
		{
			name: "goos ordered",
			cond: operation.Compare{Op: token.LSS, X: ref("GOOS"), Y: str("linux")},
			want: Result{},
		},
		{
			name: "goos unknown",
			cond: operation.Compare{Op: token.EQL, X: ref("GOOS"), Y: operation.Unknown{}},
			want: Result{},
		},
		{
			name: "version at least",
			cond: operation.Compare{Op: token.GEQ, X: ref("WindowsMajor"), Y: num(10)},
			want: Result{True: []Narrowing{is("windows", 10)}, False: []Narrowing{not("windows", 10)}},
		},
		{
			name: "version greater reversed",
			cond: operation.Compare{Op: token.LSS, X: num(10), Y: ref("WindowsMajor")},
			want: Result{True: []Narrowing{is("windows", 11)}, False: []Narrowing{not("windows", 11)}},
		},
		{
			name: "version below",
			cond: operation.Compare{Op: token.LSS, X: ref("WindowsMajor"), Y: num(10)},
			want: Result{True: []Narrowing{not("windows", 10)}, False: []Narrowing{is("windows", 10)}},
		},
		{
			name: "version at most",
			cond: operation.Compare{Op: token.LEQ, X: ref("WindowsMajor"), Y: num(10)},
			want: Result{True: []Narrowing{not("windows", 11)}, False: []Narrowing{is("windows", 11)}},
		},
		{
			name: "version tautology",
			cond: operation.Compare{Op: token.GEQ, X: ref("WindowsMajor"), Y: num(0)},
			want: Result{},
		},
		{
			name: "version negative",
			cond: operation.Compare{Op: token.GEQ, X: ref("WindowsMajor"), Y: num(-1)},
			want: Result{},
		},
		{
			name: "predicate with platform argument",
			cond: call("IsVersion", str("windows"), num(10), num(0), num(19041)),
			want: Result{True: []Narrowing{is("windows", 10, 0, 19041)}, False: []Narrowing{not("windows", 10, 0, 19041)}},
		},
		{
			name: "predicate with version string",
			cond: call("IsVersion", str("ios"), str("14.2")),
			want: Result{True: []Narrowing{is("ios", 14, 2)}, False: []Narrowing{not("ios", 14, 2)}},
		},
		{
			name: "negative version component",
			cond: call("IsVersion", str("windows"), num(-1)),
			want: Result{True: []Narrowing{is("windows")}},
		},
		{
			name: "too many version components",
			cond: call("IsVersion", str("windows"), num(10), num(0), num(1), num(2), num(3)),
			want: Result{True: []Narrowing{is("windows")}},
		},
		{
			name: "predicate with fixed platform",
			cond: call("IsWindows", num(11)),
			want: Result{True: []Narrowing{is("windows", 11)}, False: []Narrowing{not("windows", 11)}},
		},
		{
			name: "predicate with fixed version",
			cond: call("IsWindows10", num(12)),
			want: Result{True: []Narrowing{is("windows", 10)}, False: []Narrowing{not("windows", 10)}},
		},
		{
			name: "predicate with variable version",
			cond: call("IsWindows", operation.Unknown{}),
			want: Result{True: []Narrowing{is("windows")}},
		},
		{
			name: "predicate with variable platform",
			cond: call("IsVersion", operation.Unknown{}, num(10)),
			want: Result{},
		},
		{
			name: "unknown predicate",
			cond: call("Println", str("windows")),
			want: Result{},
		},
		{
			name: "not",
			cond: operation.Not{X: call("IsWindows")},
			want: Result{True: []Narrowing{not("windows")}, False: []Narrowing{is("windows")}},
		},
		{
			name: "and",
			cond: operation.And{X: call("IsWindows"), Y: operation.Compare{Op: token.GEQ, X: ref("WindowsMajor"), Y: num(10)}},
			want: Result{True: []Narrowing{is("windows"), is("windows", 10)}},
		},
		{
			name: "and with opaque",
			cond: operation.And{X: operation.Opaque{}, Y: call("IsWindows")},
			want: Result{True: []Narrowing{is("windows")}},
		},
		{
			name: "not and",
			cond: operation.Not{X: operation.And{X: operation.Opaque{}, Y: call("IsWindows")}},
			want: Result{False: []Narrowing{is("windows")}},
		},
		{
			name: "or",
			cond: operation.Or{X: call("IsWindows"), Y: call("UnrelatedFlag")},
			want: Result{},
		},
		{
			name: "opaque",
			cond: operation.Opaque{},
			want: Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Recognize(guards, tt.cond)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNarrowingString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "windows>=10.0", is("windows", 10).String())
	assert.Equal(t, "!linux", not("linux").String())
	assert.Equal(t, "check windows10.0", Spec{Kind: PlatformCheck, Platform: "windows", Version: ver(10)}.String())
}

func ver(parts ...int64) platform.Version {
	v, _ := platform.NewVersion(parts...)

	return v
}

func TestSpecKindUnmarshal(t *testing.T) {
	t.Parallel()

	var k SpecKind
	assert.NoError(t, k.UnmarshalText([]byte("version")))
	assert.Equal(t, VersionAccessor, k)
	assert.ErrorIs(t, k.UnmarshalText([]byte("maybe")), ErrUnknownSpecKind)
}
