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

package run

import (
	"log/slog"
	"sync"

	"fillmore-labs.com/platformguard/internal/config"
	"fillmore-labs.com/platformguard/internal/host"
	"fillmore-labs.com/platformguard/internal/platform"
)

// Options represent configuration options for the platformguard analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Platforms restricts the checked platforms, overriding the configuration file.
	Platforms []string

	// ConfigPath is the optional YAML configuration file with additional declarations.
	ConfigPath string

	// Logger receives debug output, defaults to [slog.Default].
	Logger *slog.Logger

	once     sync.Once
	declared *host.Declarations
	targets  []platform.Name
	err      error
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("build-constraints", o.Behavior.Enabled(config.BuildConstraints)),
		slog.Bool("strict-allow-list", o.Behavior.Enabled(config.StrictAllowList)),
		slog.Bool("extend-guards", o.Behavior.Enabled(config.ExtendGuards)),
		slog.Any("platforms", o.Platforms),
		slog.String("config", o.ConfigPath),
	)
}

// setup loads the configuration file once, on first use.
func (o *Options) setup() (*host.Declarations, []platform.Name, error) {
	o.once.Do(func() {
		var file config.File
		if o.ConfigPath != "" {
			if file, o.err = config.Load(o.ConfigPath); o.err != nil {
				return
			}
		}

		o.declared, o.err = host.NewDeclarations(file)

		targets := o.Platforms
		if len(targets) == 0 {
			targets = file.Platforms
		}

		o.targets = platform.ParseNames(targets)
	})

	return o.declared, o.targets, o.err
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}
