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

// Package ident interns MPI function names so the rest of the analyzer can
// compare them by pointer identity instead of string content.
package ident

// Name is an interned MPI function name. Two Names are the same function
// iff they are the same pointer; the name's spelling is only needed for
// diagnostics.
type Name struct {
	s string
}

// String returns the function name's spelling, e.g. "MPI_Send".
func (n *Name) String() string {
	if n == nil {
		return ""
	}

	return n.s
}

// Table interns Names for a single translation unit. The zero value is
// ready to use; a Table must not be reused across translation units (the
// same name interned in two Tables produces two distinct, non-equal
// pointers, which is intentional — identity is scoped to a Table).
type Table struct {
	names map[string]*Name
}

// Intern returns the Name for s, creating it on first use.
func (t *Table) Intern(s string) *Name {
	if t.names == nil {
		t.names = make(map[string]*Name)
	}

	if n, ok := t.names[s]; ok {
		return n
	}

	n := &Name{s: s}
	t.names[s] = n

	return n
}

// Lookup returns the Name for s if it has already been interned in this
// Table, without creating it.
func (t *Table) Lookup(s string) (*Name, bool) {
	n, ok := t.names[s]

	return n, ok
}
