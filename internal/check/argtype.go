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

// ArgType checks §4.6.7: a variable passed in a point-to-point call's
// count/rank/tag slot whose declared type is a floating-point type is an
// invalid argument even when the call-site expression isn't a bare float
// literal (the case [FloatArg] handles) — e.g. MPI_Send(buf, n, ..., dest,
// tag, ...) where dest was declared "double dest". Grounded on the
// reference implementation's MPISchemaCheckerAST.cpp, which gates this
// check on isPointToPointType the same way checkForFloatArg does, so a
// collective's count/root slot is never inspected here. A bool-typed
// variable is left alone here: neither Integer() nor Floating() claims
// it, matching the reference implementation's narrower treatment of
// _Bool.
func ArgType(tbl classify.Table, call *record.MpiCall, sink report.Sink) {
	if !tbl.IsPointToPoint(call.Name) {
		return
	}

	for _, idx := range intArgPositions(tbl, call) {
		arg := call.Arg(idx)
		if len(arg.Variables) != 1 {
			continue
		}

		v := arg.Variables[0]
		if !v.Type().Floating() {
			continue
		}

		sink.Report(report.Diagnostic{
			Category: report.CategoryInvalidArgType,
			Severity: report.SeverityError,
			Message:  fmt.Sprintf("argument %d of %s is a floating-point variable where an integer type is required", idx+1, call.Name),
			Pos:      arg.Expr.Pos(),
			End:      arg.Expr.End(),
		})
	}
}
