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

package resolve_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/platformguard/internal/lattice"
	"fillmore-labs.com/platformguard/internal/platform"
	. "fillmore-labs.com/platformguard/internal/resolve"
)

type graph struct {
	parent map[string]string
	reqs   map[string][]platform.Requirement
}

func (g graph) Parent(sym Symbol) (Symbol, bool) {
	p, ok := g.parent[sym.(string)]

	return p, ok
}

func (g graph) Requirements(sym Symbol) []platform.Requirement { return g.reqs[sym.(string)] }

func req(kind platform.Kind, spec string) platform.Requirement {
	r, _ := platform.ParseRequirement(kind, spec)

	return r
}

func sup(spec string) platform.Requirement   { return req(platform.Supported, spec) }
func unsup(spec string) platform.Requirement { return req(platform.Unsupported, spec) }

func chain(member, typ, module []platform.Requirement) graph {
	return graph{
		parent: map[string]string{"member": "type", "type": "module"},
		reqs:   map[string][]platform.Requirement{"member": member, "type": typ, "module": module},
	}
}

func TestScopes(t *testing.T) {
	t.Parallel()

	g := chain([]platform.Requirement{sup("windows")}, nil, []platform.Requirement{unsup("linux")})

	scopes, err := Scopes(g, "member")
	require.NoError(t, err)

	require.Len(t, scopes, 3)
	assert.Equal(t, "member", scopes[0].Symbol)
	assert.True(t, scopes[0].Declared())
	assert.False(t, scopes[1].Declared())
	assert.True(t, scopes[2].Names("linux"))
}

func TestScopesCycle(t *testing.T) {
	t.Parallel()

	g := graph{parent: map[string]string{"a": "b", "b": "a"}}

	_, err := Scopes(g, "a")
	require.ErrorIs(t, err, ErrCyclicContainment)

	_, err = NewResolver(g, false).Resolve("a")
	require.ErrorIs(t, err, ErrCyclicContainment)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	v10 := ver(10)
	v11 := ver(11)

	tests := [...]struct {
		name      string
		g         graph
		mode      Mode
		platforms []platform.Name
		check     map[platform.Name]lattice.Lattice
	}{
		{
			name: "unconstrained",
			g:    chain(nil, nil, nil),
			mode: Unconstrained,
			check: map[platform.Name]lattice.Lattice{
				"windows": lattice.Always(),
			},
		},
		{
			name:      "member allow list",
			g:         chain([]platform.Requirement{sup("windows10.0"), sup("browser")}, nil, nil),
			mode:      AllowList,
			platforms: []platform.Name{"windows", "browser"},
			check: map[platform.Name]lattice.Lattice{
				"windows": lattice.AtLeast(v10),
				"browser": lattice.Always(),
				"linux":   lattice.Never(),
			},
		},
		{
			name:      "deny list from type",
			g:         chain([]platform.Requirement{unsup("browser")}, []platform.Requirement{unsup("windows")}, nil),
			mode:      DenyList,
			platforms: []platform.Name{"browser", "windows"},
			check: map[platform.Name]lattice.Lattice{
				"windows": lattice.Never(),
				"browser": lattice.Never(),
				"linux":   lattice.Always(),
			},
		},
		{
			name:      "member shadows type",
			g:         chain([]platform.Requirement{sup("windows11.0")}, []platform.Requirement{sup("windows10.0")}, nil),
			mode:      AllowList,
			platforms: []platform.Name{"windows"},
			check: map[platform.Name]lattice.Lattice{
				"windows": lattice.AtLeast(v11),
			},
		},
		{
			name:      "mode fixed by nearest scope",
			g:         chain(nil, []platform.Requirement{unsup("browser")}, []platform.Requirement{sup("windows")}),
			mode:      DenyList,
			platforms: []platform.Name{"browser", "windows"},
			check: map[platform.Name]lattice.Lattice{
				"windows": lattice.Always(),
				"linux":   lattice.Always(),
				"browser": lattice.Never(),
			},
		},
		{
			name:      "version window on type",
			g:         chain(nil, []platform.Requirement{unsup("windows"), sup("windows11.0")}, nil),
			mode:      AllowList,
			platforms: []platform.Name{"windows"},
			check: map[platform.Name]lattice.Lattice{
				"windows": lattice.AtLeast(v11),
				"linux":   lattice.Never(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, err := NewResolver(tt.g, false).Resolve("member")
			require.NoError(t, err)

			assert.Equal(t, tt.mode, ctx.Mode())
			assert.Equal(t, tt.platforms, ctx.Platforms())

			for p, want := range tt.check {
				assert.Equal(t, want.String(), ctx.Availability(p).String(), "platform %s", p)
			}
		})
	}
}

func TestStrictAllowList(t *testing.T) {
	t.Parallel()

	g := chain([]platform.Requirement{sup("browser")}, []platform.Requirement{sup("windows")}, nil)

	lenient, err := NewResolver(g, false).Resolve("member")
	require.NoError(t, err)
	assert.True(t, lenient.Availability("browser").IsAlways())

	strict, err := NewResolver(g, true).Resolve("member")
	require.NoError(t, err)
	assert.True(t, strict.Availability("browser").IsNever(), "browser support ignored")
	assert.True(t, strict.Availability("windows").IsAlways())
}

func TestResolveConcurrent(t *testing.T) {
	t.Parallel()

	g := chain([]platform.Requirement{sup("windows10.0")}, nil, nil)
	r := NewResolver(g, false)

	const n = 16

	results := make([]Context, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], _ = r.Resolve("member")
		}()
	}

	wg.Wait()

	for _, ctx := range results[1:] {
		assert.Equal(t, results[0], ctx)
	}
}

func ver(parts ...int64) platform.Version {
	v, _ := platform.NewVersion(parts...)

	return v
}
