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
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
	"mpilint.dev/mpilint/internal/schema"
)

// redundantSendArgs builds a point-to-point argument list with a fixed
// count/rank/tag/datatype, letting the buffer vary by name: redundancy
// never requires the buffer (or communicator) equal, only the indices
// the family actually cares about.
func redundantSendArgs(buf string) []mast.Expr {
	exprs := make([]mast.Expr, schema.P2PComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}
	exprs[schema.P2PBuf] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: buf}}
	exprs[schema.P2PCount] = &mast.IntLitExpr{Value: big.NewInt(1)}
	exprs[schema.P2PRank] = &mast.IntLitExpr{Value: big.NewInt(0)}
	exprs[schema.P2PTag] = &mast.IntLitExpr{Value: big.NewInt(7)}
	exprs[schema.P2PDatatype] = rangedIdent("MPI_INT")

	return exprs
}

func allgatherArgs() []mast.Expr {
	exprs := make([]mast.Expr, schema.SGAComm+1)
	for i := range exprs {
		exprs[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}

	return exprs
}

func TestRedundancyFlagsIdenticalRepeatedSends(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Send")
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(redundantSendArgs("buf1")...))
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(redundantSendArgs("buf2")...))
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(redundantSendArgs("buf3")...))

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 2 {
		t.Fatalf("expected 2 redundant-call diagnostics (2nd and 3rd call), got %d", len(sink.Diagnostics))
	}

	for _, d := range sink.Diagnostics {
		if len(d.Related) != 1 {
			t.Fatal("each redundancy diagnostic must carry exactly one related location")
		}
	}
}

func TestRedundancyFlagsFamilyMatchAcrossDifferentSendNames(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Send"), argsFor(redundantSendArgs("buf1")...))
	ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Ssend"), argsFor(redundantSendArgs("buf2")...))

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected MPI_Send and MPI_Ssend with matching count/rank/tag/datatype to qualify as duplicates, got %d diagnostics", len(sink.Diagnostics))
	}
}

func TestRedundancyIgnoresSendRecvPair(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Send"), argsFor(redundantSendArgs("buf1")...))
	ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Recv"), argsFor(redundantSendArgs("buf1")...))

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected a send/recv pair never to qualify as redundant, got %d diagnostics", len(sink.Diagnostics))
	}
}

func TestRedundancyIgnoresDifferentCallees(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Barrier"), nil)
	ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Comm_rank"), nil)

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics across different callees, got %d", len(sink.Diagnostics))
	}
}

func TestRedundancyNeverFlagsBarrier(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Barrier")
	ctx.NewCall(&mast.CallExpr{}, name, nil)
	ctx.NewCall(&mast.CallExpr{}, name, nil)

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected MPI_Barrier to never qualify for redundancy (no sub-family to compare), got %d diagnostics", len(sink.Diagnostics))
	}
}

func TestRedundancyNeverFlagsAllgather(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	name := tab.Intern("MPI_Allgather")
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(allgatherArgs()...))
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(allgatherArgs()...))

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected MPI_Allgather to be excluded from the redundancy gate, got %d diagnostics", len(sink.Diagnostics))
	}
}

func TestRedundancyFlagsReduceDuplicateDespiteDifferentBuffers(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	exprsA := make([]mast.Expr, schema.ReduceComm+1)
	exprsB := make([]mast.Expr, schema.ReduceComm+1)
	for i := range exprsA {
		exprsA[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
		exprsB[i] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "x"}}
	}
	exprsA[schema.ReduceSendbuf] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "a"}}
	exprsB[schema.ReduceSendbuf] = &mast.DeclRefExpr{Decl: &mast.VarDeclNode{Ident: "b"}}
	exprsA[schema.ReduceCount] = &mast.IntLitExpr{Value: big.NewInt(4)}
	exprsB[schema.ReduceCount] = &mast.IntLitExpr{Value: big.NewInt(4)}
	exprsA[schema.ReduceDatatype] = rangedIdent("MPI_DOUBLE")
	exprsB[schema.ReduceDatatype] = rangedIdent("MPI_DOUBLE")
	exprsA[schema.ReduceOp] = rangedIdent("MPI_SUM")
	exprsB[schema.ReduceOp] = rangedIdent("MPI_SUM")

	name := tab.Intern("MPI_Reduce")
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprsA...))
	ctx.NewCall(&mast.CallExpr{}, name, argsFor(exprsB...))

	var sink report.Collector
	check.Redundancy(tbl, &ctx, &sink)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected reduce duplicate to be flagged despite differing send buffers, got %d diagnostics", len(sink.Diagnostics))
	}
}
