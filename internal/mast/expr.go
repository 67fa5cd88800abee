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

package mast

import (
	"math/big"

	"mpilint.dev/mpilint/internal/ident"
)

// Expr is one node of an argument expression tree. The decomposer (C2)
// walks it depth-first via Children; concrete kinds are recovered with a
// type switch, the same way go/ast consumers switch on ast.Expr.
type Expr interface {
	Node

	// Children returns this expression's immediate subexpressions, for
	// depth-first decomposition. A leaf (DeclRefExpr, IntLitExpr, FloatLitExpr) returns
	// nil.
	Children() []Expr

	// Range returns the raw source bytes of this expression, for
	// byte-exact comparisons such as the datatype spelling (§3
	// source_range).
	Range() []byte
}

// exprPos is embedded by every concrete Expr to supply Pos/End/Range
// without repeating the boilerplate.
type exprPos struct {
	From, To Pos
	Src      []byte
}

func (e exprPos) Pos() Pos     { return e.From }
func (e exprPos) End() Pos     { return e.To }
func (e exprPos) Range() []byte { return e.Src }

// DeclRefExpr references a variable or function declaration — the
// "declaration reference" of §4.2.
type DeclRefExpr struct {
	exprPos
	Decl Decl
}

func (e *DeclRefExpr) Children() []Expr { return nil }

// IntLitExpr is an integer literal. Value holds its arbitrary-precision
// value, per §3's "arbitrary-precision value"; the engine never interprets
// it arithmetically, only compares values for equality.
type IntLitExpr struct {
	exprPos
	Value *big.Int
}

func (e *IntLitExpr) Children() []Expr { return nil }

// FloatLitExpr is a floating literal. Per §3/§8, float literals are never
// compared by value — only counted — so no value is carried.
type FloatLitExpr struct {
	exprPos
}

func (e *FloatLitExpr) Children() []Expr { return nil }

// BinaryExpr is a binary operator expression.
type BinaryExpr struct {
	exprPos
	Op   BinaryOp
	X, Y Expr
}

func (e *BinaryExpr) Children() []Expr { return []Expr{e.X, e.Y} }

// UnaryExpr covers address-of (&x) and similar unary forms that do not
// themselves contribute a binary_operators entry but whose operand must
// still be walked.
type UnaryExpr struct {
	exprPos
	X Expr
}

func (e *UnaryExpr) Children() []Expr { return []Expr{e.X} }

// CallExpr is an MPI (or other) function call expression.
type CallExpr struct {
	exprPos
	Callee     *ident.Name
	CalleeDecl FuncDecl // resolved callee declaration, nil if unresolved
	Args       []Expr
}

func (e *CallExpr) Children() []Expr { return e.Args }
