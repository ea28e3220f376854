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

// Package operation defines the host-independent operation graph of a function body.
package operation

import (
	"go/constant"
	"go/token"
)

// Op is a single operation in a [Body].
type Op interface{ op() }

// Body is a sequence of operations in execution order.
type Body []Op

// Invoke is a call, member access or object construction of Callee.
type Invoke struct {
	Callee   any
	Pos, End token.Pos
}

// Branch executes Then when Cond holds, Else otherwise.
type Branch struct {
	Cond Cond
	Then Body
	Else Body
}

// Block is a nested statement list that may execute zero or more times.
type Block struct {
	Body Body
}

// Exit leaves the enclosing body: return, panic, non-returning calls and jumps.
type Exit struct {
	Pos token.Pos
}

// Label is a jump target.
type Label struct {
	Pos token.Pos
}

func (Invoke) op() {}
func (Branch) op() {}
func (Block) op()  {}
func (Exit) op()   {}
func (Label) op()  {}

// Terminates reports whether control never flows past the end of b.
func (b Body) Terminates() bool {
	if len(b) == 0 {
		return false
	}

	switch last := b[len(b)-1].(type) {
	case Exit:
		return true

	case Branch:
		return last.Then.Terminates() && last.Else.Terminates()

	default:
		return false
	}
}

// Cond is a branch condition.
type Cond interface{ cond() }

// And holds when both X and Y hold, evaluating Y only when X holds.
type And struct{ X, Y Cond }

// Or holds when X or Y holds, evaluating Y only when X does not hold.
type Or struct{ X, Y Cond }

// Not inverts X.
type Not struct{ X Cond }

// Compare is a binary comparison, Op being one of ==, !=, <, <=, >, >=.
type Compare struct {
	Op   token.Token
	X, Y Operand
}

// Predicate is a boolean call of Symbol.
type Predicate struct {
	Symbol any
	Args   []Operand
}

// Opaque is any other condition.
type Opaque struct{}

func (And) cond()       {}
func (Or) cond()        {}
func (Not) cond()       {}
func (Compare) cond()   {}
func (Predicate) cond() {}
func (Opaque) cond()    {}

// Operand is a comparison or call argument.
type Operand interface{ operand() }

// Const is a compile-time constant.
type Const struct{ Value constant.Value }

// Ref is a reference to a symbol, possibly through a call without arguments.
type Ref struct{ Symbol any }

// Unknown is any other expression.
type Unknown struct{}

func (Const) operand()   {}
func (Ref) operand()     {}
func (Unknown) operand() {}
