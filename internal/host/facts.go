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
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/platformguard/internal/guard"
	"fillmore-labs.com/platformguard/internal/platform"
)

// requirementsFact records the platform annotations of a package, type or function.
type requirementsFact struct {
	Requirements []platform.Requirement
}

func (*requirementsFact) AFact() {}

func (f *requirementsFact) String() string {
	parts := make([]string, 0, len(f.Requirements))
	for _, r := range f.Requirements {
		parts = append(parts, r.String())
	}

	return "platforms(" + strings.Join(parts, ", ") + ")"
}

// guardFact marks a function, constant or variable as a platform guard.
type guardFact struct {
	Spec guard.Spec
}

func (*guardFact) AFact() {}

func (f *guardFact) String() string { return "guard(" + f.Spec.String() + ")" }

// FactTypes lists the facts exported by [Collect].
func FactTypes() []analysis.Fact {
	return []analysis.Fact{new(requirementsFact), new(guardFact)}
}
