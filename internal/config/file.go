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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML configuration file of the analyzer.
//
//	platforms: [linux, windows]
//	guards:
//	  - name: golang.org/x/sys/windows.IsWindows10OrGreater
//	    kind: check
//	    platform: windows10.0
//	symbols:
//	  - name: golang.org/x/sys/windows
//	    supported: [windows]
type File struct {
	// Platforms restricts the checked platforms.
	Platforms []string `yaml:"platforms,omitempty"`
	// Guards declares additional guard functions and accessors.
	Guards []Guard `yaml:"guards,omitempty"`
	// Symbols declares requirements of packages, types and functions without source annotations.
	Symbols []Symbol `yaml:"symbols,omitempty"`
}

// Guard declares a guard symbol by its qualified name.
type Guard struct {
	// Name is "path.Name" for functions, constants and variables or "(path.Type).Method" for methods.
	Name string `yaml:"name"`
	// Kind is one of "accessor", "version" or "check".
	Kind string `yaml:"kind"`
	// Platform is the checked platform with optional minimum version, e.g. "windows10.0".
	Platform string `yaml:"platform,omitempty"`
}

// Symbol declares the requirements of a package path, "path.Type", "path.Func" or "(path.Type).Method".
//
// Supported entries are declared before unsupported entries, so for the same
// platform and version an unsupported entry takes precedence.
type Symbol struct {
	Name        string   `yaml:"name"`
	Supported   []string `yaml:"supported,omitempty"`
	Unsupported []string `yaml:"unsupported,omitempty"`
}

// ErrInvalidConfig is returned for configuration files with missing or invalid entries.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads a configuration file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("load config %q: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	return f, nil
}

// Parse decodes a configuration, rejecting unknown fields.
func Parse(data []byte) (File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	if err := f.validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

func (f File) validate() error {
	var errs []error

	for i, g := range f.Guards {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: guard %d without name", ErrInvalidConfig, i))
		}

		switch g.Kind {
		case "accessor", "version", "check":
		default:
			errs = append(errs, fmt.Errorf("%w: guard %q has unknown kind %q", ErrInvalidConfig, g.Name, g.Kind))
		}

		if g.Kind == "version" && g.Platform == "" {
			errs = append(errs, fmt.Errorf("%w: version accessor %q without platform", ErrInvalidConfig, g.Name))
		}
	}

	for i, s := range f.Symbols {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: symbol %d without name", ErrInvalidConfig, i))
		}
	}

	return errors.Join(errs...)
}
