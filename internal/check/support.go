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

// Package check implements the seven invariant checks of C6 (§4.6). Each
// file holds one check, grounded on the corresponding method of the
// reference implementation's MPICheckerImpl.
//
// Every check is a pure function over already-recorded calls (package
// record) and already-decomposed arguments (package decompose); none of
// them re-walks the AST or owns mutable state of its own, matching the
// "no global state" redesign of §5/§9.
package check

import (
	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/schema"
)

// intArgPositions returns the argument indices that must hold an integer
// value (never a float literal) for a point-to-point call, per §4.2's
// positional schema. [FloatArg] and [ArgType] are both gated to
// point-to-point calls only, matching the reference implementation's
// checkForFloatArg/checkForInvalidArgs, which both call
// isPointToPointType before inspecting any argument — a float literal or
// floating-typed variable in a collective's count/root slot is not
// flagged by this analyzer, the same way it isn't flagged by the
// reference checker. Buffer/datatype/request slots are excluded; those
// are covered by the type-mismatch and request checks instead.
func intArgPositions(tbl classify.Table, call *record.MpiCall) []int {
	if !tbl.IsPointToPoint(call.Name) {
		return nil
	}

	return []int{schema.P2PCount, schema.P2PRank, schema.P2PTag}
}

// requestArgPosition returns the positional index of a non-blocking
// call's trailing MPI_Request argument and whether the family has one.
func requestArgPosition(tbl classify.Table, call *record.MpiCall) (int, bool) {
	if !tbl.IsNonBlocking(call.Name) {
		return 0, false
	}

	switch {
	case tbl.IsPointToPoint(call.Name):
		return schema.P2PRequest, true
	case tbl.IsReduce(call.Name):
		return schema.ReduceRequest, true
	case tbl.IsScatter(call.Name), tbl.IsGather(call.Name), tbl.IsAllgather(call.Name), tbl.IsAlltoall(call.Name):
		return schema.SGARequest, true
	case tbl.IsBcast(call.Name):
		return schema.BcastRequest, true
	default:
		return 0, false
	}
}

// datatypePosition returns the index of a call's single buffer/datatype
// pair, for families that carry exactly one (point-to-point, bcast).
// Reduce and scatter/gather/alltoall calls carry two such pairs and are
// covered by datatypePositions instead.
func datatypePosition(tbl classify.Table, call *record.MpiCall) (buf, datatype int, ok bool) {
	switch {
	case tbl.IsPointToPoint(call.Name):
		return schema.P2PBuf, schema.P2PDatatype, true
	case tbl.IsBcast(call.Name):
		return schema.BcastBuffer, schema.BcastDatatype, true
	default:
		return 0, 0, false
	}
}

// bufDatatypePair is one (buffer, datatype) positional pair to check.
type bufDatatypePair struct{ buf, datatype int }

// datatypePositions returns every buffer/datatype pair a call carries,
// covering the two-pair reduce and scatter/gather/alltoall families that
// datatypePosition cannot express alone.
func datatypePositions(tbl classify.Table, call *record.MpiCall) []bufDatatypePair {
	switch {
	case tbl.IsReduce(call.Name):
		return []bufDatatypePair{{schema.ReduceSendbuf, schema.ReduceDatatype}, {schema.ReduceRecvbuf, schema.ReduceDatatype}}

	case tbl.IsScatter(call.Name), tbl.IsGather(call.Name), tbl.IsAllgather(call.Name), tbl.IsAlltoall(call.Name):
		return []bufDatatypePair{{schema.SGASendbuf, schema.SGASendtype}, {schema.SGARecvbuf, schema.SGARecvtype}}

	default:
		if buf, dt, ok := datatypePosition(tbl, call); ok {
			return []bufDatatypePair{{buf, dt}}
		}

		return nil
	}
}
