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

package report

import (
	"strings"

	"fillmore-labs.com/platformguard/internal/evaluate"
	"fillmore-labs.com/platformguard/internal/lattice"
)

// Message constructs the diagnostic text of a violation, e.g.
//
//	This call site is reachable on all platforms. 'api.Win10' is only supported on: 'windows' 10.0 and later. (pg:only)
func Message(v evaluate.Violation, callee string) string {
	var msg strings.Builder

	switch r := v.Reach; {
	case r.All:
		msg.WriteString("This call site is reachable on all platforms. ")

	case len(r.Unreachable) > 0:
		msg.WriteString("This call site is unreachable on: ")
		msg.WriteString(concatEntries(r.Unreachable))
		msg.WriteString(". ")

	default:
		msg.WriteString("This call site is reachable on: ")
		msg.WriteString(concatEntries(r.Reachable))
		msg.WriteString(". ")
	}

	msg.WriteByte('\'')
	msg.WriteString(callee)
	msg.WriteByte('\'')

	switch {
	case v.Reason == evaluate.OnlySupported && len(v.Entries) == 0:
		msg.WriteString(" is unsupported on all platforms")

	case v.Reason == evaluate.OnlySupported:
		msg.WriteString(" is only supported on: ")
		msg.WriteString(concatEntries(v.Entries))

	default:
		msg.WriteString(" is unsupported on: ")
		msg.WriteString(concatEntries(v.Entries))
	}

	msg.WriteString(". (pg:")
	msg.WriteString(v.Reason.String())
	msg.WriteByte(')')

	return msg.String()
}

// concatEntries formats platforms with their version ranges (e.g. "'windows' 10.0 and later, 'browser'").
func concatEntries(entries []evaluate.Entry) string {
	var text strings.Builder

	for i, e := range entries {
		if i > 0 {
			text.WriteString(", ")
		}

		quoted := e.Platform.Quoted()

		if len(e.Intervals) == 0 {
			text.WriteString(quoted)
			continue
		}

		for j, in := range e.Intervals {
			if j > 0 {
				text.WriteString(" or ")
			}

			text.WriteString(quoted)
			text.WriteString(interval(in))
		}
	}

	return text.String()
}

func interval(in lattice.Interval) string {
	switch {
	case in.From.IsZero() && in.Unbounded:
		return ""

	case in.Unbounded:
		return " " + in.From.String() + " and later"

	case in.From.IsZero():
		return " before " + in.To.String()

	default:
		return " " + in.From.String() + " to " + in.To.String()
	}
}
