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
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
)

// FloatArg checks §4.6.1: a point-to-point call's integer-typed argument
// slot (count, rank, tag) must not contain a floating literal, whether
// bare (MPI_Send(..., 1.0, ...) instead of 1) or buried in a compound
// expression (tag + 3.14), and must not be fed by a function whose
// return type is floating — both are always a type error in the
// generated call. It is grounded on the reference implementation's
// MPICheckerImpl::checkForFloatArg, which gates on isPointToPointType
// before inspecting any argument — collective calls are never flagged
// here, matching §7's silent-skip-over-false-positive policy.
func FloatArg(tbl classify.Table, call *record.MpiCall, sink report.Sink) {
	if !tbl.IsPointToPoint(call.Name) {
		return
	}

	for _, idx := range intArgPositions(tbl, call) {
		arg := call.Arg(idx)
		if arg.Expr == nil {
			continue
		}

		if arg.FloatLitCount > 0 {
			sink.Report(report.Diagnostic{
				Category: report.CategoryFloatArg,
				Severity: report.SeverityError,
				Message:  fmt.Sprintf("argument %d of %s contains a floating-point literal where an integer is expected", idx+1, call.Name),
				Pos:      arg.Expr.Pos(),
				End:      arg.Expr.End(),
			})

			continue
		}

		if fn, ok := floatReturningFunc(arg); ok {
			sink.Report(report.Diagnostic{
				Category: report.CategoryFloatArg,
				Severity: report.SeverityError,
				Message:  fmt.Sprintf("argument %d of %s calls %s, which returns a floating-point value, where an integer is expected", idx+1, call.Name, fn.Name()),
				Pos:      arg.Expr.Pos(),
				End:      arg.Expr.End(),
			})
		}
	}
}

// floatReturningFunc reports the first function referenced by arg whose
// return type is floating, if any (§4.6.1's third case: "function whose
// return type is floating").
func floatReturningFunc(arg decompose.Argument) (mast.FuncDecl, bool) {
	for _, fn := range arg.Functions {
		if fn.ReturnFloating() {
			return fn, true
		}
	}

	return nil, false
}
