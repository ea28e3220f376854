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

package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/platformguard/internal/operation"
)

func TestTerminates(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		body Body
		want bool
	}{
		{name: "empty", body: nil, want: false},
		{name: "exit", body: Body{Invoke{}, Exit{}}, want: true},
		{name: "exit before label", body: Body{Exit{}, Label{}}, want: false},
		{name: "both branches", body: Body{Branch{Cond: Opaque{}, Then: Body{Exit{}}, Else: Body{Exit{}}}}, want: true},
		{name: "then only", body: Body{Branch{Cond: Opaque{}, Then: Body{Exit{}}}}, want: false},
		{name: "loop", body: Body{Block{Body: Body{Exit{}}}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.body.Terminates())
		})
	}
}
