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
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
)

// waitallRequestArrayArg is MPI_Waitall's second positional argument
// (count, array_of_requests, array_of_statuses) — its own small schema,
// kept local to this file since no other check needs it.
const waitallRequestArrayArg = 1

// Requests checks §4.6.6: every MPI_Request a non-blocking call binds
// must be consumed by exactly one later MPI_Wait/MPI_Waitall before the
// same variable is reused for another non-blocking call, and a
// Wait/Waitall naming a variable with no outstanding request is always a
// bug (either a typo, or a request that was already waited on). The two
// failure modes are reported under distinct categories — §6's "double
// nonblocking" and "double wait" — since a consumer dispatching on
// category needs to tell a premature reuse from a stray wait apart.
//
// It replays ctx's recorded calls in order against ctx's own outstanding-
// request bookkeeping (package record), so it needs no state of its own.
// MPI_Waitall's array form is expanded through
// [mast.VarDecl.Elements], per §9's instruction to rely on the AST's
// declared array size rather than the reference implementation's
// array-size-halving heuristic.
func Requests(tbl classify.Table, ctx *record.Context, sink report.Sink) {
	for _, call := range ctx.Calls() {
		switch {
		case tbl.IsWait(call.Name):
			handleWait(tbl, ctx, call, sink)

		default:
			if idx, ok := requestArgPosition(tbl, call); ok {
				handleNonBlocking(ctx, call, idx, sink)
			}
		}
	}
}

func handleNonBlocking(ctx *record.Context, call *record.MpiCall, idx int, sink report.Sink) {
	arg := call.Arg(idx)
	if len(arg.Variables) != 1 {
		return
	}

	v := arg.Variables[0]

	if existing, ok := ctx.FindRequest(v); ok {
		sink.Report(report.Diagnostic{
			Category: report.CategoryDoubleNonBlocking,
			Severity: report.SeverityError,
			Message:  fmt.Sprintf("%s reuses a request that is still outstanding", call.Name),
			Pos:      call.Expr.Pos(),
			End:      call.Expr.End(),
			Related: []report.Related{{
				Message: fmt.Sprintf("request bound by %s here", existing.Call.Name),
				Pos:     existing.Call.Expr.Pos(),
				End:     existing.Call.Expr.End(),
			}},
		})

		ctx.RemoveRequest(v)
	}

	ctx.AddRequest(v, call)
}

func handleWait(tbl classify.Table, ctx *record.Context, call *record.MpiCall, sink report.Sink) {
	if tbl.IsMPIWaitall(call.Name) {
		arg := call.Arg(waitallRequestArrayArg)
		if len(arg.Variables) != 1 {
			return
		}

		if elems, ok := arg.Variables[0].Elements(); ok {
			for _, v := range elems {
				consumeRequest(ctx, v, call, sink)
			}

			return
		}

		consumeRequest(ctx, arg.Variables[0], call, sink)

		return
	}

	arg := call.Arg(0)
	if len(arg.Variables) != 1 {
		return
	}

	consumeRequest(ctx, arg.Variables[0], call, sink)
}

func consumeRequest(ctx *record.Context, v mast.VarDecl, call *record.MpiCall, sink report.Sink) {
	if ctx.RemoveRequest(v) {
		return
	}

	sink.Report(report.Diagnostic{
		Category: report.CategoryDoubleWait,
		Severity: report.SeverityError,
		Message:  fmt.Sprintf("%s waits on a request that is not outstanding", call.Name),
		Pos:      call.Expr.Pos(),
		End:      call.Expr.End(),
	})
}
