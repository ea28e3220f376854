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
	"errors"
	"fmt"

	"fillmore-labs.com/platformguard/internal/platform"
)

//go:generate go tool stringer -type SpecKind -linecomment

// SpecKind classifies guard symbols.
type SpecKind uint8

const (
	// PlatformAccessor evaluates to the current platform name, like runtime.GOOS.
	PlatformAccessor SpecKind = iota // accessor
	// VersionAccessor evaluates to the major version of Platform, 0 on other platforms.
	VersionAccessor // version
	// PlatformCheck is a predicate that holds on Platform from Version onward.
	PlatformCheck // check
)

// ErrUnknownSpecKind is returned when unmarshaling an unknown guard kind.
var ErrUnknownSpecKind = errors.New("unknown guard kind")

// MarshalText implements [encoding.TextMarshaler].
func (k SpecKind) MarshalText() ([]byte, error) {
	if k > PlatformCheck {
		return nil, fmt.Errorf("%w %d", ErrUnknownSpecKind, k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText parses "accessor", "version" or "check".
func (k *SpecKind) UnmarshalText(text []byte) error {
	for c := range PlatformCheck + 1 {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}

	return fmt.Errorf("%w %q", ErrUnknownSpecKind, text)
}

// Spec describes a guard symbol.
//
// For a [PlatformCheck] with an empty Platform the platform is taken from the
// first constant string argument. A zero Version is taken from the remaining
// constant arguments.
type Spec struct {
	Kind     SpecKind
	Platform platform.Name
	Version  platform.Version
}

func (s Spec) String() string {
	switch {
	case s.Platform == "":
		return s.Kind.String()

	case s.Version.IsZero():
		return fmt.Sprintf("%s %s", s.Kind, s.Platform)

	default:
		return fmt.Sprintf("%s %s%s", s.Kind, s.Platform, s.Version)
	}
}

// Lookup resolves guard symbols.
type Lookup interface {
	Guard(sym any) (Spec, bool)
}

// Narrowing is a platform fact known to hold on a branch.
//
// A positive narrowing proves the current platform is Platform at Version or
// later. A negated one proves the current platform is not Platform at Version
// or later; with a zero Version it is not Platform at all.
type Narrowing struct {
	Platform platform.Name
	Version  platform.Version
	Negated  bool
}

func (n Narrowing) String() string {
	var not string
	if n.Negated {
		not = "!"
	}

	if n.Version.IsZero() {
		return not + string(n.Platform)
	}

	return fmt.Sprintf("%s%s>=%s", not, n.Platform, n.Version)
}

// Result holds the narrowings for both branches of a condition.
type Result struct {
	True, False []Narrowing
}

func (r Result) swap() Result { return Result{True: r.False, False: r.True} }

// atLeast narrows to p at version v or later.
func atLeast(p platform.Name, v platform.Version) Result {
	return Result{
		True:  []Narrowing{{Platform: p, Version: v}},
		False: []Narrowing{{Platform: p, Version: v, Negated: true}},
	}
}
