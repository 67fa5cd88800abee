// Copyright 2026 mpilint Authors.
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

// Package mast defines the abstract, traversable AST contract the core
// schema engine consumes (see §6 of the specification). It is the
// collaborator interface a real C/C++ front end is expected to implement;
// this package owns no parser and resolves no symbols.
//
// [mpilint.dev/mpilint/adapter/tscparse] is the one concrete implementation
// shipped with this module, built on a tree-sitter C/C++ grammar. Tests of
// the core packages build [File] values directly instead of parsing
// anything, which keeps the schema engine's tests independent of any
// particular front end.
package mast

// Pos is a byte offset into a translation unit's source text. The zero
// value, NoPos, means "no position available".
type Pos int

// NoPos is the zero value of Pos, indicating an absent or unknown position.
const NoPos Pos = 0

// Node is the common contract of every AST fragment the core inspects.
type Node interface {
	Pos() Pos
	End() Pos
}

// BinaryOp identifies the kind of a binary operator (§3 Argument,
// binary_operators).
type BinaryOp int

const (
	OpUnknown BinaryOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

// String renders the operator the way it appears in source, for
// diagnostic messages.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}
