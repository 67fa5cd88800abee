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

package check_test

import (
	"math/big"
	"testing"

	"mpilint.dev/mpilint/internal/check"
	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/decompose"
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
	"mpilint.dev/mpilint/internal/schema"
)

func argsFor(exprs ...mast.Expr) []decompose.Argument {
	args := make([]decompose.Argument, len(exprs))
	for i, e := range exprs {
		args[i] = decompose.Walk(e)
	}

	return args
}

func TestFloatArgFlagsBareFloatLiteralInTagSlot(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Send")
	exprs := make([]mast.Expr, schema.P2PComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}
	exprs[schema.P2PTag] = &mast.FloatLitExpr{}

	call := ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprs...))

	var sink report.Collector
	check.FloatArg(tbl, call, &sink)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic for float literal in tag slot, got %d", len(sink.Diagnostics))
	}

	if sink.Diagnostics[0].Category != report.CategoryFloatArg {
		t.Fatalf("expected CategoryFloatArg, got %v", sink.Diagnostics[0].Category)
	}
}

func TestFloatArgIgnoresIntegerLiteral(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Send")
	exprs := make([]mast.Expr, schema.P2PComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}
	exprs[schema.P2PTag] = &mast.IntLitExpr{Value: big.NewInt(1)}

	call := ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprs...))

	var sink report.Collector
	check.FloatArg(tbl, call, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics for an integer literal, got %d", len(sink.Diagnostics))
	}
}

func TestFloatArgFlagsFloatLiteralInCompoundExpression(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Send")
	exprs := make([]mast.Expr, schema.P2PComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}

	exprs[schema.P2PTag] = &mast.BinaryExpr{
		Op: mast.OpAdd,
		X:  &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "tag"}},
		Y:  &mast.FloatLitExpr{},
	}

	call := ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprs...))

	var sink report.Collector
	check.FloatArg(tbl, call, &sink)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected a float literal buried in a compound expression to be flagged, got %d", len(sink.Diagnostics))
	}
}

func TestFloatArgFlagsFloatReturningFunctionCall(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Send")
	exprs := make([]mast.Expr, schema.P2PComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}

	getTag := &mast.FuncDeclNode{Ident: "get_tag", Returns: true}
	exprs[schema.P2PTag] = &mast.CallExpr{Callee: tab.Intern("get_tag"), CalleeDecl: getTag}

	call := ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprs...))

	var sink report.Collector
	check.FloatArg(tbl, call, &sink)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected a call to a floating-returning function to be flagged, got %d", len(sink.Diagnostics))
	}
}

func TestFloatArgIgnoresIntReturningFunctionCall(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Send")
	exprs := make([]mast.Expr, schema.P2PComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}

	nextTag := &mast.FuncDeclNode{Ident: "next_tag", Returns: false}
	exprs[schema.P2PTag] = &mast.CallExpr{Callee: tab.Intern("next_tag"), CalleeDecl: nextTag}

	call := ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprs...))

	var sink report.Collector
	check.FloatArg(tbl, call, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected a call to an integer-returning function not to be flagged, got %d", len(sink.Diagnostics))
	}
}

func TestFloatArgIgnoresCollectiveCall(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Bcast")
	exprs := make([]mast.Expr, schema.BcastComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}
	exprs[schema.BcastCount] = &mast.FloatLitExpr{}

	call := ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprs...))

	var sink report.Collector
	check.FloatArg(tbl, call, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected a collective's count slot to never be inspected, got %d diagnostics", len(sink.Diagnostics))
	}
}
