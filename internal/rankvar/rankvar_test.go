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

package rankvar_test

import (
	"testing"

	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/rankvar"
)

func TestCollectFindsCommRankTarget(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table

	comm := &mast.VarDeclNode{Ident: "comm"}
	rank := &mast.VarDeclNode{Ident: "rank"}

	call := &mast.CallExpr{
		Callee: tab.Intern("MPI_Comm_rank"),
		Args: []mast.Expr{
			&mast.DeclRefExpr{Decl: comm},
			&mast.UnaryExpr{X: &mast.DeclRefExpr{Decl: rank}},
		},
	}

	body := &mast.BlockStmt{List: []mast.Stmt{&mast.ExprStmt{X: call}}}

	set := rankvar.Collect(tbl, body)

	if !set.Has(rank) {
		t.Fatal("expected rank variable to be collected")
	}

	if set.Has(comm) {
		t.Fatal("comm argument must not be mistaken for the rank variable")
	}
}

func TestCollectDescendsIntoIfBranches(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table

	rank := &mast.VarDeclNode{Ident: "myrank"}
	call := &mast.CallExpr{
		Callee: tab.Intern("MPI_Comm_rank"),
		Args: []mast.Expr{
			&mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "c"}},
			&mast.UnaryExpr{X: &mast.DeclRefExpr{Decl: rank}},
		},
	}

	inner := &mast.BlockStmt{List: []mast.Stmt{&mast.ExprStmt{X: call}}}
	outer := &mast.IfStmt{
		Cond: &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "cond"}},
		Then: inner,
	}
	body := &mast.BlockStmt{List: []mast.Stmt{outer}}

	set := rankvar.Collect(tbl, body)
	if !set.Has(rank) {
		t.Fatal("expected rank variable collected from a nested if-branch")
	}
}

func TestCollectEmptyBodyYieldsEmptySet(t *testing.T) {
	t.Parallel()

	var tbl classify.Table

	set := rankvar.Collect(tbl, nil)
	if len(set) != 0 {
		t.Fatal("expected empty set for nil body")
	}
}
