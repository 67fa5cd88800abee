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

package check

import (
	"fmt"

	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
)

// CollectiveInRankBranch checks §4.6.5: an MPI collective call (Bcast,
// Reduce, Scatter/Gather/Alltoall family, Barrier) reached only through
// one arm of an if/else-if/else chain that branches on a rank variable
// is a defect: every rank in the communicator must call a collective the
// same number of times in the same order, so a collective gated by
// "if (rank == 0)" deadlocks every other rank waiting at it.
//
// calls is the set of MPI calls recorded while walking exactly the
// branch body the driver associates with one [rankcase.RankCase]; the
// driver (C8) is responsible for the association, this check only
// asks whether any of them is a collective.
func CollectiveInRankBranch(tbl classify.Table, calls []*record.MpiCall, sink report.Sink) {
	for _, call := range calls {
		if !tbl.IsCollective(call.Name) {
			continue
		}

		sink.Report(report.Diagnostic{
			Category: report.CategoryCollectiveRank,
			Severity: report.SeverityError,
			Message:  fmt.Sprintf("collective call %s is reachable only from one branch of a rank-conditional", call.Name),
			Pos:      call.Expr.Pos(),
			End:      call.Expr.End(),
		})
	}
}
