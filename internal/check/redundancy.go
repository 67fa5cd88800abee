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
	"mpilint.dev/mpilint/internal/decompose"
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
	"mpilint.dev/mpilint/internal/schema"
)

// Redundancy checks §4.6.3: two calls that belong to the same
// communication family and agree on every argument the family actually
// cares about are almost always a copy-paste duplicate rather than an
// intentional repeated call.
//
// It is grounded on the reference implementation's
// MPICheckerImpl::qualifyRedundancyCheck/checkForRedundantCall, kept as
// the same two-stage shape: a cheap family gate, followed by a
// family-specific set of argument comparisons, some structural
// (component-equal) and some textual (datatype/op spelling). Buffer and
// communicator arguments are deliberately never compared: the reference
// implementation never requires them equal either, since two calls
// moving the same count/datatype through different buffers are still
// redundant communication even when the buffers differ. The outer
// traversal is reworked around [record.MpiCall.Marked] so that a chain
// of three or more duplicate calls is reported once per extra
// occurrence instead of once per pair (§8 property 3: symmetric
// duplicates are reported exactly once, and a call already reported as
// a duplicate is never reused as the "original" of a later pair).
func Redundancy(tbl classify.Table, ctx *record.Context, sink report.Sink) {
	calls := ctx.Calls()

	for i := 0; i < len(calls); i++ {
		first := calls[i]
		if first.Marked || !tbl.IsMPIType(first.Name) {
			continue
		}

		for j := i + 1; j < len(calls); j++ {
			second := calls[j]
			if second.Marked {
				continue
			}

			if !qualifyRedundancyCheck(tbl, first, second) {
				continue
			}

			sink.Report(report.Diagnostic{
				Category: report.CategoryRedundantCall,
				Severity: report.SeverityWarning,
				Message:  fmt.Sprintf("call to %s duplicates an earlier identical call", second.Name),
				Pos:      second.Expr.Pos(),
				End:      second.Expr.End(),
				Related: []report.Related{{
					Message: fmt.Sprintf("original call to %s", first.Name),
					Pos:     first.Expr.Pos(),
					End:     first.Expr.End(),
				}},
			})

			second.Marked = true
		}
	}
}

// qualifyRedundancyCheck is the gate-then-compare pair: first the family
// gate (same broad kind of communication), then the family's own
// component/text argument comparisons. A pair that fails the gate is
// never compared argument by argument at all — two calls to unrelated
// families (or an MPI_Send against an MPI_Bcast) can never qualify,
// regardless of what their arguments look like.
func qualifyRedundancyCheck(tbl classify.Table, a, b *record.MpiCall) bool {
	components, asString, ok := redundancyIndices(tbl, a, b)
	if !ok {
		return false
	}

	for _, idx := range components {
		if !decompose.ComponentEqual(a.Arg(idx), b.Arg(idx)) {
			return false
		}
	}

	for _, idx := range asString {
		if decompose.Text(a.Arg(idx)) != decompose.Text(b.Arg(idx)) {
			return false
		}
	}

	return true
}

// redundancyIndices gates a and b by family and, if they qualify,
// returns the indices to compare structurally (components) and
// textually (asString) for that family. ok is false whenever a and b do
// not belong to the same qualifying family, in which case the other two
// return values are meaningless.
//
// The gate mirrors qualifyRedundancyCheck in the reference
// implementation: point-to-point calls qualify only send-with-send or
// recv-with-recv (a send can never duplicate a recv), and collective
// calls qualify only within the same specific sub-family among
// scatter/gather/alltoall, broadcast and reduce. Allgather is excluded
// from the collective gate entirely, matching the reference
// implementation's isAllgatherType never appearing in either
// qualifyRedundancyCheck's collective branch or checkForRedundantCall's
// indicesToCheck switch — an MPI_Allgather is never flagged as
// redundant by this check, however many times it repeats.
func redundancyIndices(tbl classify.Table, a, b *record.MpiCall) (components, asString []int, ok bool) {
	switch {
	case tbl.IsPointToPoint(a.Name) && tbl.IsPointToPoint(b.Name):
		if !((tbl.IsSend(a.Name) && tbl.IsSend(b.Name)) || (tbl.IsRecv(a.Name) && tbl.IsRecv(b.Name))) {
			return nil, nil, false
		}

		return []int{schema.P2PCount, schema.P2PRank, schema.P2PTag}, []int{schema.P2PDatatype}, true

	case tbl.IsReduce(a.Name) && tbl.IsReduce(b.Name):
		return []int{schema.ReduceCount}, []int{schema.ReduceDatatype, schema.ReduceOp}, true

	case isScatterGatherAlltoall(tbl, a.Name) && isScatterGatherAlltoall(tbl, b.Name):
		return []int{schema.SGASendcount, schema.SGARecvcount, schema.SGARoot}, []int{schema.SGASendtype, schema.SGARecvtype}, true

	case tbl.IsBcast(a.Name) && tbl.IsBcast(b.Name):
		return []int{schema.BcastCount, schema.BcastRoot}, []int{schema.BcastDatatype}, true

	default:
		return nil, nil, false
	}
}

// isScatterGatherAlltoall reports whether n is a scatter, gather, or
// alltoall call. Allgather is deliberately excluded: see
// redundancyIndices.
func isScatterGatherAlltoall(tbl classify.Table, n *ident.Name) bool {
	return tbl.IsScatter(n) || tbl.IsGather(n) || tbl.IsAlltoall(n)
}
