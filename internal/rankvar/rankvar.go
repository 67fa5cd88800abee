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

// Package rankvar implements the rank-variable collector (C3 of the
// pipeline): a pure pre-pass over a function body that records, for every
// call to MPI_Comm_rank(comm, &r), the variable declaration bound to r.
//
// The resulting [Set] feeds the rank-case builder (package rankcase),
// which needs to know whether an if-condition's operand is "a variable
// that was ever assigned by MPI_Comm_rank" in order to decide whether a
// branch is rank-dependent (§4.3). Collection is pure accumulation: it
// never emits a diagnostic.
package rankvar

import (
	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/mast"
)

// Set is the collected set of rank variables, keyed by declaration
// identity so that two distinct local variables with the same spelling
// are never confused.
type Set map[mast.VarDecl]struct{}

// Has reports whether v was ever the target of MPI_Comm_rank.
func (s Set) Has(v mast.VarDecl) bool {
	_, ok := s[v]

	return ok
}

// Collect walks every statement reachable from body and records the rank
// variable of each MPI_Comm_rank(comm, &r) call found. It does not
// recurse into nested function declarations; C/C++ has none to speak of,
// but the walk is written to stop at the statement boundary the same way
// the reference implementation's ASTContext-wide matcher does (§9).
func Collect(tbl classify.Table, body *mast.BlockStmt) Set {
	s := make(Set)
	if body == nil {
		return s
	}

	walkStmt(tbl, body, s)

	return s
}

func walkStmt(tbl classify.Table, stmt mast.Stmt, s Set) {
	switch n := stmt.(type) {
	case *mast.BlockStmt:
		for _, c := range n.List {
			walkStmt(tbl, c, s)
		}

	case *mast.IfStmt:
		walkExpr(tbl, n.Cond, s)
		walkStmt(tbl, n.Then, s)

		if n.Else != nil {
			walkStmt(tbl, n.Else, s)
		}

	case *mast.ExprStmt:
		walkExpr(tbl, n.X, s)
	}
}

func walkExpr(tbl classify.Table, e mast.Expr, s Set) {
	if e == nil {
		return
	}

	if call, ok := e.(*mast.CallExpr); ok && tbl.IsMPICommRank(call.Callee) {
		recordRankArg(call, s)
	}

	for _, c := range e.Children() {
		walkExpr(tbl, c, s)
	}
}

// recordRankArg extracts the variable declaration behind the second
// argument of MPI_Comm_rank, unwrapping the address-of operator the
// reference source always wraps it in (&rank).
func recordRankArg(call *mast.CallExpr, s Set) {
	const rankArgIndex = 1

	if len(call.Args) <= rankArgIndex {
		return
	}

	arg := call.Args[rankArgIndex]
	if u, ok := arg.(*mast.UnaryExpr); ok {
		arg = u.X
	}

	ref, ok := arg.(*mast.DeclRefExpr)
	if !ok {
		return
	}

	if v, ok := ref.Decl.(mast.VarDecl); ok {
		s[v] = struct{}{}
	}
}
