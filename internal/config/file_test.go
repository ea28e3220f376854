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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/platformguard/internal/config"
)

const sample = `
platforms: [linux, windows]
guards:
  - name: golang.org/x/sys/windows.IsWindows10OrGreater
    kind: check
    platform: windows10.0
  - name: example.com/osver.WindowsMajor
    kind: version
    platform: windows
symbols:
  - name: golang.org/x/sys/windows
    supported: [windows]
  - name: (os/user.User).GroupIds
    unsupported: [plan9, "windows 10.0"]
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"linux", "windows"}, f.Platforms)
	require.Len(t, f.Guards, 2)
	assert.Equal(t, Guard{Name: "golang.org/x/sys/windows.IsWindows10OrGreater", Kind: "check", Platform: "windows10.0"}, f.Guards[0])
	require.Len(t, f.Symbols, 2)
	assert.Equal(t, []string{"plan9", "windows 10.0"}, f.Symbols[1].Unsupported)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		data string
	}{
		{name: "unknown kind", data: "guards: [{name: a.B, kind: maybe}]"},
		{name: "missing name", data: "guards: [{kind: check}]"},
		{name: "version without platform", data: "guards: [{name: a.B, kind: version}]"},
		{name: "symbol without name", data: "symbols: [{supported: [linux]}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("targets: [linux]"))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Platforms)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "platformguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Symbols, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()
	assert.True(t, b.Enabled(BuildConstraints))
	assert.True(t, b.Enabled(ExtendGuards))
	assert.False(t, b.Enabled(IncludeGenerated))
	assert.False(t, b.Enabled(StrictAllowList))
}
