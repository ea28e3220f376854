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

package host

import (
	"errors"
	"fmt"

	"fillmore-labs.com/platformguard/internal/config"
	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/platform"
)

// Declarations are annotations supplied by configuration for code that can't carry directives.
type Declarations struct {
	requirements map[string][]platform.Requirement
	guards       map[string]guard.Spec
}

// NewDeclarations indexes a configuration file by qualified name.
func NewDeclarations(f config.File) (*Declarations, error) {
	d := &Declarations{
		requirements: make(map[string][]platform.Requirement, len(f.Symbols)),
		guards:       make(map[string]guard.Spec, len(f.Guards)),
	}

	var errs []error

	for _, g := range f.Guards {
		var spec guard.Spec
		if err := spec.Kind.UnmarshalText([]byte(g.Kind)); err != nil {
			errs = append(errs, fmt.Errorf("guard %s: %w", g.Name, err))
			continue
		}

		if g.Platform != "" {
			r, err := platform.ParseRequirement(platform.Supported, g.Platform)
			if err != nil {
				errs = append(errs, fmt.Errorf("guard %s: %w", g.Name, err))
			}

			spec.Platform, spec.Version = r.Platform, r.Version
		}

		if spec.Kind == guard.VersionAccessor {
			spec.Version = platform.Version{}
		}

		d.guards[g.Name] = spec
	}

	for _, s := range f.Symbols {
		reqs := d.requirements[s.Name]

		// supported first, later declarations win on equal versions

		for _, list := range []struct {
			kind  platform.Kind
			specs []string
		}{{platform.Supported, s.Supported}, {platform.Unsupported, s.Unsupported}} {
			for _, spec := range list.specs {
				r, err := platform.ParseRequirement(list.kind, spec)
				if err != nil {
					errs = append(errs, fmt.Errorf("symbol %s: %w", s.Name, err))
				}

				if r.Platform != "" {
					reqs = append(reqs, r)
				}
			}
		}

		d.requirements[s.Name] = reqs
	}

	return d, errors.Join(errs...)
}

func (d *Declarations) constrained() bool {
	return d != nil && len(d.requirements) > 0
}

func (d *Declarations) requirementsOf(sym any) []platform.Requirement {
	if d == nil {
		return nil
	}

	name, ok := QualifiedName(sym)
	if !ok {
		return nil
	}

	return d.requirements[name]
}

func (d *Declarations) guardOf(sym any) (guard.Spec, bool) {
	if d == nil {
		return guard.Spec{}, false
	}

	name, ok := QualifiedName(sym)
	if !ok {
		return guard.Spec{}, false
	}

	spec, ok := d.guards[name]

	return spec, ok
}
