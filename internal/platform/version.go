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
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Version is a dotted numeric version with up to four components (major.minor.build.revision).
//
// Missing trailing components are zero, so "10" and "10.0" are the same version.
// The zero value is version 0, meaning "all versions".
type Version [maxComponents]uint32

const maxComponents = 4

// ErrMalformedVersion is returned for version strings that are not dotted numeric tuples.
var ErrMalformedVersion = errors.New("malformed version")

// ParseVersion parses a dotted numeric version. The empty string is version 0.
func ParseVersion(s string) (Version, error) {
	var v Version

	s = strings.TrimSpace(s)
	if s == "" {
		return v, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) > maxComponents {
		return Version{}, fmt.Errorf("%w %q: more than %d components", ErrMalformedVersion, s, maxComponents)
	}

	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("%w %q: %w", ErrMalformedVersion, s, err)
		}

		v[i] = uint32(n)
	}

	return v, nil
}

// NewVersion creates a version from integer components, as found in constant guard arguments.
func NewVersion(parts ...int64) (Version, error) {
	var v Version

	if len(parts) > maxComponents {
		return Version{}, fmt.Errorf("%w: %d components", ErrMalformedVersion, len(parts))
	}

	for i, p := range parts {
		n, err := safecast.Conv[uint32](p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: component %d: %w", ErrMalformedVersion, i, err)
		}

		v[i] = n
	}

	return v, nil
}

// Compare returns -1, 0 or +1 depending on whether v is less than, equal to or greater than w.
func (v Version) Compare(w Version) int {
	for i := range maxComponents {
		if c := cmp.Compare(v[i], w[i]); c != 0 {
			return c
		}
	}

	return 0
}

// IsZero reports whether v is version 0.
func (v Version) IsZero() bool {
	return v == Version{}
}

// NextMajor returns the first version of the following major release.
func (v Version) NextMajor() Version {
	return Version{v[0] + 1}
}

// String renders at least major.minor and omits trailing zero components beyond that.
func (v Version) String() string {
	n := maxComponents
	for n > 2 && v[n-1] == 0 {
		n--
	}

	var b strings.Builder
	for i := range n {
		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(strconv.FormatUint(uint64(v[i]), 10))
	}

	return b.String()
}
