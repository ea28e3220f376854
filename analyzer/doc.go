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

// Package analyzer implements the platformguard static analysis pass.
//
// # Overview
//
// PlatformGuard reports call sites of platform-specific APIs that are reachable
// on platforms where the API is not available.
//
// Packages, types, functions and methods declare their platforms with directives
// in their doc comments:
//
//	//platform:supported windows10.0 linux
//	//platform:unsupported browser
//
// A supported list makes the declaration an allow-list: only the named platforms
// are supported. An unsupported list alone is a deny-list. Declarations inherit
// from their receiver type and package.
//
// # Guards
//
// Calls are checked against the platforms their caller runs on, narrowed by
// guards in enclosing conditions:
//
//	if runtime.GOOS == "windows" {
//	    api.Win10() // only reported when windows 10.0 is not known
//	}
//
// Functions, constants and variables declare themselves as guards with
//
//	//platform:guard windows10.0  // predicate: holds on windows 10.0 and later
//	//platform:version windows    // accessor: the major version on windows, 0 elsewhere
//	//platform:accessor           // accessor: the current platform name
//
// # Example
//
//	//platform:supported windows
//	func Registry() {}
//
//	func Setup() {
//	    Registry() // This call site is reachable on all platforms. 'api.Registry' is only supported on: 'windows'.
//	}
//
// Build constraints and _GOOS file name suffixes narrow all functions of a file.
package analyzer
