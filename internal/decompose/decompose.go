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

// Package decompose implements the argument decomposer (C2): a pure,
// depth-first walk of one call-argument expression that extracts its
// structural fingerprint, and the component-equality relation over that
// fingerprint (§3, §9). It is grounded on the reference implementation's
// MPICheckerImpl::areComponentsOfArgumentEqual and
// MPICheckerImpl::isSendRecvPair, reworked from an O(n²)
// erase-and-search into multiset comparisons as §9 recommends.
package decompose

import (
	"math/big"

	"mpilint.dev/mpilint/internal/mast"
)

// Argument is the decomposition of one argument expression (§3).
type Argument struct {
	Expr mast.Expr

	Variables       []mast.VarDecl
	Functions       []mast.FuncDecl
	IntLiterals     []*big.Int
	FloatLitCount   int
	BinaryOperators []mast.BinaryOp
}

// Walk decomposes expr into an Argument. The walk is pure and
// side-effect-free; it does not classify the argument's role (caller
// knows the positional schema, §4.2).
func Walk(expr mast.Expr) Argument {
	var a Argument
	if expr == nil {
		return a
	}

	a.Expr = expr
	walk(expr, &a)

	return a
}

func walk(e mast.Expr, a *Argument) {
	switch n := e.(type) {
	case *mast.DeclRefExpr:
		switch d := n.Decl.(type) {
		case mast.VarDecl:
			a.Variables = append(a.Variables, d)
		case mast.FuncDecl:
			a.Functions = append(a.Functions, d)
		}

	case *mast.IntLitExpr:
		if n.Value != nil {
			a.IntLiterals = append(a.IntLiterals, n.Value)
		}

	case *mast.FloatLitExpr:
		a.FloatLitCount++

	case *mast.BinaryExpr:
		a.BinaryOperators = append(a.BinaryOperators, n.Op)

	case *mast.CallExpr:
		// A nested call (e.g. rank + offset(), MPI_Send(..., get_tag(), ...))
		// references its callee the same way a bare function pointer does —
		// Callee itself is only a name, CalleeDecl is the resolved binding.
		if n.CalleeDecl != nil {
			a.Functions = append(a.Functions, n.CalleeDecl)
		}
	}

	for _, c := range e.Children() {
		if c != nil {
			walk(c, a)
		}
	}
}

// ComponentEqual reports whether two arguments are component-equal (§3):
// variables, functions, int literals and binary operators are pairwise
// permutations of each other, and the float-literal lists have equal
// length. This relation is commutative and reflexive (§8 property 6).
func ComponentEqual(a, b Argument) bool {
	return varsPermutation(a.Variables, b.Variables) &&
		funcsPermutation(a.Functions, b.Functions) &&
		intsPermutation(a.IntLiterals, b.IntLiterals) &&
		opsPermutation(a.BinaryOperators, b.BinaryOperators) &&
		a.FloatLitCount == b.FloatLitCount
}

func varsPermutation(a, b []mast.VarDecl) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[mast.VarDecl]int, len(a))
	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
	}

	return allZero(counts)
}

func funcsPermutation(a, b []mast.FuncDecl) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[mast.FuncDecl]int, len(a))
	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
	}

	return allZero(counts)
}

func opsPermutation(a, b []mast.BinaryOp) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[mast.BinaryOp]int, len(a))
	for _, v := range a {
		counts[v]++
	}

	for _, v := range b {
		counts[v]--
	}

	return allZero(counts)
}

// intsPermutation compares by value (big.Int equality), not by pointer
// identity — two separately-parsed literals with the same value must
// compare equal.
func intsPermutation(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v.String()]++
	}

	for _, v := range b {
		counts[v.String()]--
	}

	return allZero(counts)
}

// RankCompatible reports whether a send call's rank argument and a recv
// call's rank argument are compatible partners under §4.6.4's rank rule.
// It is grounded on the reference implementation's isSendRecvPair: if
// send names a single rank literal, recv must name exactly one rank
// literal too, and the two must differ (a send to rank 0 can never pair
// with a recv also posted for rank 0); if send's rank is a variable
// expression and recv's carries integer literals, those literals must
// match as a permutation; the functions referenced by either side must
// always match as a permutation, regardless of which side is the
// literal. The reference implementation's single-operator
// additive-inverse refinement (send's "+k" permitting recv's "-k") is
// commented out in the source itself and left unimplemented here too —
// composite rank expressions are accepted rather than risk a false
// negative on the documented-ambiguous case.
func RankCompatible(send, recv Argument) bool {
	if len(send.IntLiterals) == 1 && len(send.BinaryOperators) == 0 {
		if len(recv.IntLiterals) != 1 {
			return false
		}

		if send.IntLiterals[0].Cmp(recv.IntLiterals[0]) == 0 {
			return false
		}
	}

	if len(send.Variables) > 0 && len(recv.IntLiterals) > 0 {
		if !intsPermutation(send.IntLiterals, recv.IntLiterals) {
			return false
		}
	}

	return funcsPermutation(send.Functions, recv.Functions)
}

// Text returns the argument's raw source text, for byte-exact comparisons
// such as the datatype spelling ("MPI_INT" vs "MPI_FLOAT", §3
// source_range).
func Text(a Argument) string {
	if a.Expr == nil {
		return ""
	}

	return string(a.Expr.Range())
}

func allZero[K comparable](m map[K]int) bool {
	for _, n := range m {
		if n != 0 {
			return false
		}
	}

	return true
}
