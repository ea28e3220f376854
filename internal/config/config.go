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

package config

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// BuildConstraints derives the platform of a file from its build constraints and file name.
	BuildConstraints

	// StrictAllowList lets outer allow-list scopes restrict the supported platforms of inner scopes.
	StrictAllowList

	// ExtendGuards applies guard narrowings to the code following a branch that returns.
	ExtendGuards
)

// Behavior holds the enabled [Config] flags.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default analyzer behavior.
func DefaultBehavior() Behavior {
	return NewBitMask(BuildConstraints | ExtendGuards)
}
