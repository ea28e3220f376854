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

package analyzer

import (
	"flag"
	"strings"

	"fillmore-labs.com/platformguard/internal/config"
	"fillmore-labs.com/platformguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, f := range []struct {
		name  string
		value config.Config
		usage string
	}{
		{"generated", config.IncludeGenerated, "check generated files"},
		{"build-constraints", config.BuildConstraints, "narrow files by build constraints and file names"},
		{"strict-allow-list", config.StrictAllowList, "let outer allow-lists restrict inner declarations"},
		{"extend-guards", config.ExtendGuards, "apply guards to the code following an early return"},
	} {
		flags.Var(boolValue[config.Config, *config.Behavior]{flags: &r.Behavior, value: f.value}, f.name, f.usage)
	}

	flags.Var(listValue{&r.Platforms}, "platforms", "comma separated list of platforms to check (default all)")
	flags.StringVar(&r.ConfigPath, "config", r.ConfigPath, "YAML file with additional platform declarations")
}

// listValue is a comma separated [flag.Value].
type listValue struct{ list *[]string }

// Set implements [flag.Value].
func (l listValue) Set(s string) error {
	var list []string

	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	*l.list = list

	return nil
}

// String implements [flag.Value].
func (l listValue) String() string {
	if l.list == nil {
		return ""
	}

	return strings.Join(*l.list, ",")
}
