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

package caller

import (
	"runtime"

	"test/api"
)

func Unguarded() {
	api.Win10() // want `This call site is reachable on all platforms\. 'api\.Win10' is only supported on: 'windows' 10\.0 and later\. \(pg:only\)`
}

func PlatformOnly() {
	if runtime.GOOS == "windows" {
		api.Win10() // want `This call site is reachable on: 'windows'\. 'api\.Win10' is only supported on: 'windows' 10\.0 and later\.`
		api.Win()
	}
}

func VersionCheck() {
	if api.IsWindows10() {
		api.Win10()
	}

	if api.IsPlatform("windows") {
		api.Win()
	}
}

func VersionAccessor() {
	if api.WindowsMajor() >= 10 {
		api.Win10()
	}
}

func EarlyReturn() {
	if runtime.GOOS != "windows" {
		return
	}

	api.Win()
}

func LoopLabel(items []int) {
	if runtime.GOOS != "windows" {
		return
	}

outer:
	for _, i := range items {
		for range i {
			continue outer
		}
	}

	api.Win()
}

func GotoJoin(n int) {
	if n > 0 {
		goto call
	}

	if runtime.GOOS != "windows" {
		return
	}

call:
	api.Win() // want `This call site is reachable on all platforms\. 'api\.Win' is only supported on: 'windows'\.`
}

func Switch() {
	switch runtime.GOOS {
	case "windows":
		api.Win()
	case "linux":
		api.Linux()
	default:
		api.Win() // want `This call site is unreachable on: 'windows', 'linux'\. 'api\.Win' is only supported on: 'windows'\.`
	}
}

func Disjunction() {
	if runtime.GOOS == "linux" || runtime.GOOS == "windows" {
		api.Desktop() // want `This call site is reachable on all platforms\. 'api\.Desktop' is only supported on: 'windows', 'linux'\.`
	}
}

func DenyList() {
	api.NotWin() // want `This call site is reachable on all platforms\. 'api\.NotWin' is unsupported on: 'windows'\. \(pg:unsup\)`

	if runtime.GOOS != "windows" {
		api.NotWin()
	}
}

func DenyListVersion() {
	api.Legacy() // want `'api\.Legacy' is unsupported on: 'windows' 10\.0 and later\.`

	if api.WindowsMajor() < 10 {
		api.Legacy()
	}
}

func Methods() {
	var h api.Handle
	h.Close() // want `'api\.Handle\.Close' is only supported on: 'windows'\.`

	_ = api.Handle{} // want `'api\.Handle' is only supported on: 'windows'\.`
}

func FuncValue() {
	f := api.Win // want `'api\.Win' is only supported on: 'windows'\.`
	f()
}

func Closure() {
	if runtime.GOOS == "windows" {
		func() {
			api.Win()
		}()
	}
}

//platform:supported windows
func WindowsOnly() {
	api.Win()
	api.Win10() // want `This call site is reachable on: 'windows'\. 'api\.Win10' is only supported on: 'windows' 10\.0 and later\.`
}

//platform:supported windows10.0
func Windows10Only() {
	api.Win10()
	api.Desktop()
}

func Suppressed() {
	api.Win() //nolint:platformguard
}

//nolint:platformguard
func SuppressedFunc() {
	api.Win()
}

var initialized = func() bool {
	api.Win() // want `'api\.Win' is only supported on: 'windows'\.`

	return true
}()

//platform:supported windows10.x // want `Invalid platform directive: //platform:supported windows10\.x: malformed version`
func Malformed() {}

//platform:maybe linux // want `Invalid platform directive: unknown directive //platform:maybe`
func Unknown() {}
