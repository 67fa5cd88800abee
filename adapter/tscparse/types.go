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

package tscparse

import (
	"strings"

	"mpilint.dev/mpilint/internal/mast"
)

// primitiveBuiltins maps a primitive_type node's spelling, as tree-sitter's
// C/C++ grammar renders it, to the matcher's builtin kind (internal/check's
// datatypeBuiltins table, mirrored from the right-hand side).
var primitiveBuiltins = map[string]mast.BuiltinKind{
	"bool":                mast.BuiltinBool,
	"char":                mast.BuiltinChar,
	"signed char":         mast.BuiltinSignedChar,
	"unsigned char":       mast.BuiltinUnsignedChar,
	"wchar_t":             mast.BuiltinWChar,
	"short":               mast.BuiltinShort,
	"short int":           mast.BuiltinShort,
	"unsigned short":      mast.BuiltinUnsignedShort,
	"unsigned short int":  mast.BuiltinUnsignedShort,
	"int":                 mast.BuiltinInt,
	"unsigned":            mast.BuiltinUnsignedInt,
	"unsigned int":        mast.BuiltinUnsignedInt,
	"long":                mast.BuiltinLong,
	"long int":            mast.BuiltinLong,
	"unsigned long":       mast.BuiltinUnsignedLong,
	"unsigned long int":   mast.BuiltinUnsignedLong,
	"long long":           mast.BuiltinLongLong,
	"long long int":       mast.BuiltinLongLong,
	"unsigned long long":  mast.BuiltinUnsignedLongLong,
	"float":               mast.BuiltinFloat,
	"double":              mast.BuiltinDouble,
	"long double":         mast.BuiltinLongDouble,
}

// typedefBuiltins maps exact-width typedef spellings (<stdint.h>, plus
// size_t/ssize_t) to their underlying builtin kind. Entries here take
// precedence over a struct/enum resolution, matching §9's typedef-over-
// builtin precedence rule.
var typedefBuiltins = map[string]mast.BuiltinKind{
	"int8_t":   mast.BuiltinSignedChar,
	"uint8_t":  mast.BuiltinUnsignedChar,
	"int16_t":  mast.BuiltinShort,
	"uint16_t": mast.BuiltinUnsignedShort,
	"int32_t":  mast.BuiltinInt,
	"uint32_t": mast.BuiltinUnsignedInt,
	"int64_t":  mast.BuiltinLong,
	"uint64_t": mast.BuiltinUnsignedLong,
	"size_t":   mast.BuiltinUnsignedLong,
	"ssize_t":  mast.BuiltinLong,
}

func builtinType(spelling string) mast.VarType {
	spelling = strings.Join(strings.Fields(spelling), " ")

	kind, ok := primitiveBuiltins[spelling]
	if !ok {
		return mast.UnknownType{}
	}

	return mast.SimpleType{
		Kind:    kind,
		IsInt:   isIntegerKind(kind),
		IsFloat: isFloatKind(kind),
	}
}

func isFloatKind(k mast.BuiltinKind) bool {
	switch k {
	case mast.BuiltinFloat, mast.BuiltinDouble, mast.BuiltinLongDouble:
		return true
	default:
		return false
	}
}

func isIntegerKind(k mast.BuiltinKind) bool {
	switch k {
	case mast.BuiltinBool, mast.BuiltinUnknown:
		return false
	default:
		return !isFloatKind(k)
	}
}

func isFloatingSpelling(spelling string) bool {
	return isFloatKind(builtinType(spelling).Builtin())
}

func isFloatLiteralSpelling(s string) bool {
	return strings.ContainsAny(s, ".eE") && !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}

func isOperatorToken(typ string) bool {
	switch typ {
	case "+", "-", "*", "/", "%":
		return true
	default:
		return false
	}
}

func binaryOp(typ string) mast.BinaryOp {
	switch typ {
	case "+":
		return mast.OpAdd
	case "-":
		return mast.OpSub
	case "*":
		return mast.OpMul
	case "/":
		return mast.OpDiv
	case "%":
		return mast.OpMod
	default:
		return mast.OpUnknown
	}
}
