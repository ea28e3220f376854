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

package platform

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMissingPlatform is returned for platform specifications without a platform name, like "10.0".
var ErrMissingPlatform = errors.New("missing platform name")

// Requirement is the atomic fact that a platform is supported or unsupported from a version onward.
type Requirement struct {
	Platform Name
	Version  Version
	Kind     Kind
}

// ParseRequirement parses a platform specification like "windows10.0" or "windows 10.0".
//
// A malformed version degrades to version 0; the returned error reports the problem,
// but the requirement is still usable. A requirement without platform name is not.
func ParseRequirement(kind Kind, spec string) (Requirement, error) {
	name, version := SplitSpec(spec)
	if name == "" {
		return Requirement{Kind: kind}, fmt.Errorf("%w in %q", ErrMissingPlatform, spec)
	}

	v, err := ParseVersion(version)

	return Requirement{Platform: name, Version: v, Kind: kind}, err
}

// SplitSpec separates a platform specification into the platform name and the version string.
func SplitSpec(spec string) (Name, string) {
	spec = strings.TrimSpace(spec)

	if name, version, ok := strings.Cut(spec, " "); ok {
		return ParseName(name), strings.TrimSpace(version)
	}

	i := strings.IndexFunc(spec, unicode.IsDigit)
	if i < 0 {
		return ParseName(spec), ""
	}

	return ParseName(spec[:i]), spec[i:]
}

// String renders the requirement in directive form, e.g. "supported windows10.0".
func (r Requirement) String() string {
	var b strings.Builder

	b.WriteString(r.Kind.String())
	b.WriteByte(' ')
	b.WriteString(string(r.Platform))

	if !r.Version.IsZero() {
		b.WriteString(r.Version.String())
	}

	return b.String()
}
