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
	"log/slog"

	"fillmore-labs.com/platformguard/internal/config"
	"fillmore-labs.com/platformguard/internal/run"
)

// Option configures specific behavior of a [New] platformguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return behaviorOption{"generated", config.IncludeGenerated, generated} }

// WithBuildConstraints is an [Option] to configure narrowing by build constraints and file names.
func WithBuildConstraints(constraints bool) Option {
	return behaviorOption{"build-constraints", config.BuildConstraints, constraints}
}

// WithStrictAllowList is an [Option] to let outer allow-lists restrict inner declarations.
func WithStrictAllowList(strict bool) Option {
	return behaviorOption{"strict-allow-list", config.StrictAllowList, strict}
}

// WithExtendGuards is an [Option] to apply guards to the code following an early return.
func WithExtendGuards(extend bool) Option { return behaviorOption{"extend-guards", config.ExtendGuards, extend} }

type behaviorOption struct {
	name  string
	flag  config.Config
	value bool
}

func (o behaviorOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.value)
}

// WithPlatforms is an [Option] to restrict the checked platforms.
func WithPlatforms(platforms ...string) Option { return platformsOption{platforms: platforms} }

type platformsOption struct{ platforms []string }

func (o platformsOption) apply(r *run.Options) {
	r.Platforms = o.platforms
}

func (o platformsOption) LogAttr() slog.Attr {
	return slog.Any("platforms", o.platforms)
}

// WithConfig is an [Option] to read additional declarations from a YAML file.
func WithConfig(path string) Option { return configOption{path: path} }

type configOption struct{ path string }

func (o configOption) apply(r *run.Options) {
	r.ConfigPath = o.path
}

func (o configOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithLogger is an [Option] to set the logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
