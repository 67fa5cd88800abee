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

// datatypeBuiltins maps the spelling of a well-known MPI basic datatype
// constant to the C builtin kind(s) a buffer argument may legally point
// to (§4.6.2). MPI_BYTE and MPI_PACKED are intentionally absent: they are
// legal against any builtin and are never flagged.
var datatypeBuiltins = map[string][]mast.BuiltinKind{
	"MPI_CHAR":               {mast.BuiltinChar},
	"MPI_SIGNED_CHAR":        {mast.BuiltinSignedChar},
	"MPI_UNSIGNED_CHAR":      {mast.BuiltinUnsignedChar},
	"MPI_WCHAR":              {mast.BuiltinWChar},
	"MPI_SHORT":              {mast.BuiltinShort},
	"MPI_UNSIGNED_SHORT":     {mast.BuiltinUnsignedShort},
	"MPI_INT":                {mast.BuiltinInt},
	"MPI_UNSIGNED":           {mast.BuiltinUnsignedInt},
	"MPI_LONG":               {mast.BuiltinLong},
	"MPI_UNSIGNED_LONG":      {mast.BuiltinUnsignedLong},
	"MPI_LONG_LONG":          {mast.BuiltinLongLong},
	"MPI_LONG_LONG_INT":      {mast.BuiltinLongLong},
	"MPI_UNSIGNED_LONG_LONG": {mast.BuiltinUnsignedLongLong},
	"MPI_FLOAT":              {mast.BuiltinFloat},
	"MPI_DOUBLE":             {mast.BuiltinDouble},
	"MPI_LONG_DOUBLE":        {mast.BuiltinLongDouble},
	"MPI_C_BOOL":             {mast.BuiltinBool},
}

// datatypeTypedefs maps a fixed-width MPI datatype constant to the exact
// typedef spelling a buffer argument must name (§4.6.2, §9: "Typedef
// precedence... otherwise int32_t... will spuriously accept MPI_INT").
// A datatype in this table is checked against [mast.VarType.Typedef]
// only — it never falls back to the builtin table, since the whole
// point of the fixed-width constants is to reject the builtin that the
// typedef happens to alias on a given platform.
var datatypeTypedefs = map[string]string{
	"MPI_INT8_T":   "int8_t",
	"MPI_UINT8_T":  "uint8_t",
	"MPI_INT16_T":  "int16_t",
	"MPI_UINT16_T": "uint16_t",
	"MPI_INT32_T":  "int32_t",
	"MPI_UINT32_T": "uint32_t",
	"MPI_INT64_T":  "int64_t",
	"MPI_UINT64_T": "uint64_t",
}

// datatypeComplex maps an MPI complex datatype constant to the builtin
// kind of its real/imaginary element (§4.6.2). MPI_C_COMPLEX and
// MPI_C_FLOAT_COMPLEX are synonyms in the MPI standard.
var datatypeComplex = map[string]mast.BuiltinKind{
	"MPI_C_COMPLEX":             mast.BuiltinFloat,
	"MPI_C_FLOAT_COMPLEX":       mast.BuiltinFloat,
	"MPI_C_DOUBLE_COMPLEX":      mast.BuiltinDouble,
	"MPI_C_LONG_DOUBLE_COMPLEX": mast.BuiltinLongDouble,
}

// TypeMismatch checks §4.6.2: the C type pointed to by a buffer argument
// must agree with the MPI_Datatype constant passed alongside it. A
// fixed-width datatype (MPI_INT32_T and friends) is matched against
// [mast.VarType.Typedef] ahead of the builtin table, and a complex
// datatype against [mast.VarType.ComplexElem] — §9's "Typedef
// precedence... otherwise int32_t... will spuriously accept MPI_INT". It
// is grounded on the reference implementation's
// MPICheckerImpl::checkForInvalidArgs's datatype-matching table.
func TypeMismatch(tbl classify.Table, call *record.MpiCall, sink report.Sink) {
	if !tbl.IsMPIType(call.Name) {
		return
	}

	for _, pair := range datatypePositions(tbl, call) {
		checkPair(call, pair.buf, pair.datatype, sink)
	}
}

func checkPair(call *record.MpiCall, bufIdx, typeIdx int, sink report.Sink) {
	bufArg := call.Arg(bufIdx)
	typeArg := call.Arg(typeIdx)

	if bufArg.Expr == nil || typeArg.Expr == nil {
		return
	}

	if len(bufArg.Variables) != 1 {
		// Buffer argument isn't a single declared variable reference
		// (e.g. it's the result of arithmetic); nothing to check (§7).
		return
	}

	v := bufArg.Variables[0]
	elemType := v.Type()
	if ptr, isPtr := elemType.Pointer(); isPtr {
		elemType = ptr
	}

	spelling := decompose.Text(typeArg)

	if wantTypedef, ok := datatypeTypedefs[spelling]; ok {
		gotTypedef, hasTypedef := elemType.Typedef()
		if !hasTypedef {
			// No exact-width typedef spelling on the buffer: an unresolved
			// type is skipped, and a plain builtin is flagged rather than
			// accepted for whatever builtin int32_t happens to alias (§9).
			if elemType.Builtin() != mast.BuiltinUnknown {
				reportTypeMismatch(call, bufArg, spelling, sink)
			}

			return
		}

		if gotTypedef == wantTypedef {
			return
		}

		reportTypeMismatch(call, bufArg, spelling, sink)

		return
	}

	if wantComplex, ok := datatypeComplex[spelling]; ok {
		gotComplex, hasComplex := elemType.ComplexElem()
		if !hasComplex {
			return
		}

		if gotComplex == wantComplex {
			return
		}

		reportTypeMismatch(call, bufArg, spelling, sink)

		return
	}

	want, ok := datatypeBuiltins[spelling]
	if !ok {
		return
	}

	// A buffer spelled with an exact-width typedef matches only its own
	// fixed-width datatype, never the builtin constant it aliases (§9).
	if gotTypedef, hasTypedef := elemType.Typedef(); hasTypedef {
		for _, fixed := range datatypeTypedefs {
			if gotTypedef == fixed {
				reportTypeMismatch(call, bufArg, spelling, sink)

				return
			}
		}
	}

	got := elemType.Builtin()
	if got == mast.BuiltinUnknown {
		return
	}

	for _, k := range want {
		if k == got {
			return
		}
	}

	reportTypeMismatch(call, bufArg, spelling, sink)
}

func reportTypeMismatch(call *record.MpiCall, bufArg decompose.Argument, datatype string, sink report.Sink) {
	sink.Report(report.Diagnostic{
		Category: report.CategoryTypeMismatch,
		Severity: report.SeverityError,
		Message:  fmt.Sprintf("buffer argument to %s does not match declared datatype %s", call.Name, datatype),
		Pos:      bufArg.Expr.Pos(),
		End:      bufArg.Expr.End(),
	})
}
