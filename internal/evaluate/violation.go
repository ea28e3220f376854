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

package evaluate

import (
	"go/token"

	"fillmore-labs.com/platformguard/internal/lattice"
	"fillmore-labs.com/platformguard/internal/platform"
)

//go:generate go tool stringer -type Reason -linecomment

// Reason classifies a violation by the mode of the callee.
type Reason uint8

const (
	// OnlySupported means the callee is supported on the listed platforms only.
	OnlySupported Reason = iota // only
	// Unsupported means the callee is unsupported on the listed platforms.
	Unsupported // unsup
)

// Entry describes one platform of a violation.
type Entry struct {
	Platform platform.Name
	// Intervals are the available versions for [OnlySupported], the unavailable versions for [Unsupported].
	Intervals []lattice.Interval
	// MinVersion is the smallest version reachable by the caller where the callee is unavailable.
	MinVersion platform.Version
}

// Reach describes where a call site is reachable.
type Reach struct {
	// All is set when the call site is reachable on all platforms.
	All bool
	// Reachable lists the reachable platforms when platforms outside of the list are unreachable.
	Reachable []Entry
	// Unreachable lists the unreachable versions when all other platforms are reachable.
	Unreachable []Entry
}

// Violation is a call site where the callee may be unavailable.
type Violation struct {
	Caller, Callee any
	Pos, End       token.Pos
	Reason         Reason
	Entries        []Entry
	Reach          Reach
}
