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

package mast

// Decl is a declaration a DeclRefExpr can point to: either a [VarDecl] or a
// [FuncDecl]. Decls are compared by pointer identity, per §3's "ordered
// list of referenced variable declarations (pointer identity)".
type Decl interface {
	Node
	Name() string
	declTag()
}

// BuiltinKind enumerates the builtin scalar kinds the buffer/datatype
// match (§4.6.2) discriminates on. It deliberately mirrors the left column
// of the matching table in the specification, not all of C's type system.
type BuiltinKind int

const (
	BuiltinUnknown BuiltinKind = iota
	BuiltinBool
	BuiltinChar
	BuiltinSignedChar
	BuiltinUnsignedChar
	BuiltinWChar
	BuiltinShort
	BuiltinUnsignedShort
	BuiltinInt
	BuiltinUnsignedInt
	BuiltinLong
	BuiltinUnsignedLong
	BuiltinLongLong
	BuiltinUnsignedLongLong
	BuiltinFloat
	BuiltinDouble
	BuiltinLongDouble
)

// VarType is a variable's resolved type, as the host AST reports it.
// Resolving C's actual type system is the host's job (§1 Non-goals); the
// core only ever asks the handful of questions below.
type VarType interface {
	// Pointer reports whether this type is a pointer, and if so returns
	// the pointee's type.
	Pointer() (elem VarType, ok bool)

	// Builtin returns the underlying builtin scalar kind, after stripping
	// cv-qualifiers, BuiltinUnknown if this is not a scalar builtin.
	Builtin() BuiltinKind

	// Typedef returns the exact-width typedef spelling (e.g. "int32_t",
	// "uint64_t") if this type names one, and whether it does. Typedef
	// precedence over Builtin is the matcher's responsibility (§9).
	Typedef() (spelling string, ok bool)

	// Floating reports whether this is a floating-point type.
	Floating() bool

	// Integer reports whether this is an integer type (bool counts as
	// neither floating nor integer for §4.6.7's purposes — only arithmetic
	// integer types qualify).
	Integer() bool

	// ComplexElem returns the element kind of a complex type (e.g.
	// BuiltinFloat for "float _Complex"), and whether this is a complex
	// type at all.
	ComplexElem() (elem BuiltinKind, ok bool)
}

// VarDecl is a variable declaration.
type VarDecl interface {
	Decl

	// Type resolves the variable's declared type.
	Type() VarType

	// Elements returns the element declarations of a fixed-size array
	// variable, for MPI_Waitall's request-array expansion (§9: rely on
	// the AST's declared array size, not a heuristic). ok is false for a
	// non-array variable.
	Elements() (elems []VarDecl, ok bool)
}

// FuncDecl is a function declaration: either the enclosing function body
// the driver walks, or a callee resolved from a CallExpr.
type FuncDecl interface {
	Decl

	// ReturnFloating reports whether the function's return type is
	// floating point, for the float-in-integer-slot check (§4.6.1,
	// "function whose return type is floating").
	ReturnFloating() bool

	// Body is the function's statement list, or nil for a declaration
	// with no body (e.g. an external callee).
	Body() *BlockStmt

	// Params lists the function's formal parameters.
	Params() []VarDecl
}

// File is one translation unit: an ordered list of function declarations.
// Global variable declarations are out of scope — the specification's
// checks only ever operate on per-function call sites.
type File struct {
	Funcs []*FuncDeclNode
}

// VarDeclNode is the concrete [VarDecl] implementation used by
// hand-built test ASTs and by the tree-sitter adapter.
type VarDeclNode struct {
	NamePos, NameEnd Pos
	Ident            string
	Typ              VarType
	Elems            []VarDecl
}

func (d *VarDeclNode) Pos() Pos     { return d.NamePos }
func (d *VarDeclNode) End() Pos     { return d.NameEnd }
func (d *VarDeclNode) Name() string { return d.Ident }
func (d *VarDeclNode) Type() VarType {
	if d.Typ == nil {
		return UnknownType{}
	}

	return d.Typ
}

func (d *VarDeclNode) Elements() ([]VarDecl, bool) {
	return d.Elems, d.Elems != nil
}

func (*VarDeclNode) declTag() {}

// FuncDeclNode is the concrete [FuncDecl] implementation used by
// hand-built test ASTs and by the tree-sitter adapter.
type FuncDeclNode struct {
	NamePos, NameEnd Pos
	Ident            string
	Returns          bool // ReturnFloating
	Stmts            *BlockStmt
	Formals          []VarDecl
}

func (d *FuncDeclNode) Pos() Pos             { return d.NamePos }
func (d *FuncDeclNode) End() Pos             { return d.NameEnd }
func (d *FuncDeclNode) Name() string         { return d.Ident }
func (d *FuncDeclNode) ReturnFloating() bool { return d.Returns }
func (d *FuncDeclNode) Body() *BlockStmt     { return d.Stmts }
func (d *FuncDeclNode) Params() []VarDecl    { return d.Formals }
func (*FuncDeclNode) declTag()               {}

// SimpleType is a minimal [VarType] implementation covering one axis at a
// time; it is what hand-built test ASTs and the tree-sitter adapter
// construct directly instead of implementing the full interface ad hoc.
type SimpleType struct {
	Elem       VarType     // non-nil for a pointer type
	Kind       BuiltinKind // underlying builtin kind
	TypedefStr string      // exact-width typedef spelling, if any
	IsFloat    bool
	IsInt      bool
	ComplexOf  BuiltinKind // BuiltinUnknown if not complex
}

func (t SimpleType) Pointer() (VarType, bool) {
	if t.Elem == nil {
		return nil, false
	}

	return t.Elem, true
}

func (t SimpleType) Builtin() BuiltinKind { return t.Kind }

func (t SimpleType) Typedef() (string, bool) {
	return t.TypedefStr, t.TypedefStr != ""
}

func (t SimpleType) Floating() bool { return t.IsFloat }
func (t SimpleType) Integer() bool  { return t.IsInt }

func (t SimpleType) ComplexElem() (BuiltinKind, bool) {
	return t.ComplexOf, t.ComplexOf != BuiltinUnknown
}

// UnknownType is returned for a variable whose type could not be
// resolved; every predicate answers negatively so callers silently skip
// rather than false-positive (§7 Analysis-skip conditions).
type UnknownType struct{}

func (UnknownType) Pointer() (VarType, bool)          { return nil, false }
func (UnknownType) Builtin() BuiltinKind              { return BuiltinUnknown }
func (UnknownType) Typedef() (string, bool)           { return "", false }
func (UnknownType) Floating() bool                    { return false }
func (UnknownType) Integer() bool                     { return false }
func (UnknownType) ComplexElem() (BuiltinKind, bool)  { return BuiltinUnknown, false }
