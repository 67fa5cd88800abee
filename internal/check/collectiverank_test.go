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
	"testing"

	"mpilint.dev/mpilint/internal/check"
	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
)

func TestCollectiveInRankBranchFlagsCollective(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	calls := []*record.MpiCall{
		ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Bcast"), nil),
		ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Send"), nil),
	}

	var sink report.Collector
	check.CollectiveInRankBranch(tbl, calls, &sink)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic for the collective call only, got %d", len(sink.Diagnostics))
	}

	if sink.Diagnostics[0].Category != report.CategoryCollectiveRank {
		t.Fatalf("expected CategoryCollectiveRank, got %v", sink.Diagnostics[0].Category)
	}
}

func TestCollectiveInRankBranchIgnoresPointToPoint(t *testing.T) {
	t.Parallel()

	var tab ident.Table
	var tbl classify.Table
	var ctx record.Context

	calls := []*record.MpiCall{
		ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Send"), nil),
		ctx.NewCall(&mast.CallExpr{}, tab.Intern("MPI_Recv"), nil),
	}

	var sink report.Collector
	check.CollectiveInRankBranch(tbl, calls, &sink)

	if len(sink.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics for point-to-point calls, got %d", len(sink.Diagnostics))
	}
}
