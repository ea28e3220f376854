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

import "strings"

// Name is a normalized, lowercase platform identifier such as "windows" or "browser".
//
// The set of platform names is open: unknown names are valid and compared opaquely.
type Name string

// ParseName normalizes a platform identifier.
func ParseName(s string) Name {
	return Name(strings.ToLower(strings.TrimSpace(s)))
}

// ParseNames normalizes a list of platform identifiers, dropping empty and duplicate entries.
func ParseNames(list []string) []Name {
	var names []Name

	for _, s := range list {
		n := ParseName(s)
		if n == "" || containsName(names, n) {
			continue
		}

		names = append(names, n)
	}

	return names
}

func (n Name) String() string { return string(n) }

// Quoted returns the name enclosed in single quotes, the way diagnostics print it.
func (n Name) Quoted() string { return "'" + string(n) + "'" }

func containsName(names []Name, n Name) bool {
	for _, m := range names {
		if m == n {
			return true
		}
	}

	return false
}
