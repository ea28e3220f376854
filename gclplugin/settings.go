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

package gclplugin

import platformguard "fillmore-labs.com/platformguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// BuildConstraints narrows files by build constraints and file names.
	BuildConstraints *bool `json:"build-constraints,omitzero"`
	// StrictAllowList lets outer allow-lists restrict inner declarations.
	StrictAllowList *bool `json:"strict-allow-list,omitzero"`
	// ExtendGuards applies guards to the code following an early return.
	ExtendGuards *bool `json:"extend-guards,omitzero"`
	// Platforms restricts the checked platforms.
	Platforms []string `json:"platforms,omitzero"`
	// Config is a YAML file with additional platform declarations.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [platformguard.Option] for the platformguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []platformguard.Option {
	var opts []platformguard.Option

	opts = appendOption(opts, s.BuildConstraints, platformguard.WithBuildConstraints)
	opts = appendOption(opts, s.StrictAllowList, platformguard.WithStrictAllowList)
	opts = appendOption(opts, s.ExtendGuards, platformguard.WithExtendGuards)
	opts = appendOption(opts, s.Config, platformguard.WithConfig)

	if s.Platforms != nil {
		opts = append(opts, platformguard.WithPlatforms(s.Platforms...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [platformguard.Option] list.
func appendOption[T any](opts []platformguard.Option, value *T, constructor func(T) platformguard.Option) []platformguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
