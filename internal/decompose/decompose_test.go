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

package decompose_test

import (
	"math/big"
	"testing"

	"mpilint.dev/mpilint/internal/decompose"
	"mpilint.dev/mpilint/internal/mast"
)

func ref(d mast.Decl) *mast.DeclRefExpr {
	return &mast.DeclRefExpr{Decl: d}
}

func intLit(v int64) *mast.IntLitExpr {
	return &mast.IntLitExpr{Value: big.NewInt(v)}
}

func TestComponentEqualReflexiveAndCommutative(t *testing.T) {
	t.Parallel()

	a := &mast.VarDeclNode{Ident: "a"}
	b := &mast.VarDeclNode{Ident: "b"}

	e1 := &mast.BinaryExpr{
		Op: mast.OpAdd,
		X:  ref(a),
		Y:  intLit(1),
	}
	e2 := &mast.BinaryExpr{
		Op: mast.OpAdd,
		X:  intLit(1),
		Y:  ref(a),
	}

	arg1 := decompose.Walk(e1)
	arg2 := decompose.Walk(e2)

	if !decompose.ComponentEqual(arg1, arg1) {
		t.Fatal("ComponentEqual must be reflexive")
	}

	if decompose.ComponentEqual(arg1, arg2) != decompose.ComponentEqual(arg2, arg1) {
		t.Fatal("ComponentEqual must be commutative")
	}

	if !decompose.ComponentEqual(arg1, arg2) {
		t.Fatal("a+1 and 1+a must be component-equal (operand order is a permutation)")
	}

	e3 := &mast.BinaryExpr{
		Op: mast.OpAdd,
		X:  ref(b),
		Y:  intLit(1),
	}
	if decompose.ComponentEqual(arg1, decompose.Walk(e3)) {
		t.Fatal("a+1 and b+1 must not be component-equal (different variable)")
	}
}

func TestFloatCountNeverComparedByValue(t *testing.T) {
	t.Parallel()

	e1 := &mast.FloatLitExpr{}
	e2 := &mast.FloatLitExpr{}

	arg1 := decompose.Walk(e1)
	arg2 := decompose.Walk(e2)

	if !decompose.ComponentEqual(arg1, arg2) {
		t.Fatal("two float literals (count 1 each) must compare equal regardless of value")
	}
}

func TestIntLiteralsPermutationByValueNotIdentity(t *testing.T) {
	t.Parallel()

	e1 := &mast.BinaryExpr{Op: mast.OpAdd, X: intLit(3), Y: intLit(5)}
	e2 := &mast.BinaryExpr{Op: mast.OpAdd, X: intLit(5), Y: intLit(3)}

	if !decompose.ComponentEqual(decompose.Walk(e1), decompose.Walk(e2)) {
		t.Fatal("int literals with the same multiset of values (different pointers) must compare equal")
	}
}

func TestDecomposerIsDepthFirst(t *testing.T) {
	t.Parallel()

	v := &mast.VarDeclNode{Ident: "x"}
	inner := &mast.BinaryExpr{Op: mast.OpMul, X: ref(v), Y: intLit(2)}
	outer := &mast.BinaryExpr{Op: mast.OpAdd, X: inner, Y: intLit(1)}

	arg := decompose.Walk(outer)

	if len(arg.Variables) != 1 || arg.Variables[0] != v {
		t.Fatalf("expected nested variable reference to surface, got %v", arg.Variables)
	}

	if len(arg.IntLiterals) != 2 {
		t.Fatalf("expected both literals collected depth-first, got %d", len(arg.IntLiterals))
	}

	if len(arg.BinaryOperators) != 2 {
		t.Fatalf("expected both operators collected, got %d", len(arg.BinaryOperators))
	}
}
