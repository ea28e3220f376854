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
	"fmt"
	"strings"
)

// Kind states whether a requirement declares support or lack of support.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment

const (
	// Supported declares a platform as available from a version onward.
	Supported Kind = iota // supported

	// Unsupported declares a platform as unavailable from a version onward.
	Unsupported // unsupported
)

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Supported, Unsupported:
		return []byte(k.String()), nil

	default:
		return nil, fmt.Errorf("unknown requirement kind %d", k)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "supported":
		*k = Supported

	case "unsupported":
		*k = Unsupported

	default:
		return fmt.Errorf("unknown requirement kind %q", string(text))
	}

	return nil
}

// Available returns the availability a requirement of this kind establishes.
func (k Kind) Available() bool {
	return k == Supported
}
