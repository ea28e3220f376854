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

// Package api declares platform specific functions.
package api

//platform:supported windows10.0
func Win10() {}

//platform:supported windows
func Win() {}

//platform:unsupported windows
func NotWin() {}

//platform:supported linux
func Linux() {}

//platform:supported windows linux
func Desktop() {}

//platform:unsupported windows10.0
func Legacy() {}

//platform:guard windows10.0
func IsWindows10() bool { return false }

//platform:guard
func IsPlatform(string) bool { return false }

//platform:version windows
func WindowsMajor() int { return 0 }

// Handle is a windows handle.
//
//platform:supported windows
type Handle struct{}

// Close releases the handle.
func (Handle) Close() {}
