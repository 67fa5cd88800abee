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

// Package record implements the call recorder (C5): the central,
// per-function store of observed MPI calls and outstanding
// non-blocking request bindings (§3 MpiCall/MpiRequest, §5 Concurrency &
// Resource Model).
//
// Unlike the reference implementation's MPICall::visitedCalls /
// MPIRequest::visitedRequests (process-wide static state — flagged as the
// "source's latent bug" by §9 of the specification), every list here is a
// field of [Context], which package driver constructs fresh for each
// function body.
package record

import (
	"mpilint.dev/mpilint/internal/decompose"
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/mast"
)

// MpiCall is one recorded MPI call site (§3).
type MpiCall struct {
	ID     int
	Expr   *mast.CallExpr
	Name   *ident.Name
	Args   []decompose.Argument
	Marked bool // transient, used only during the redundancy scan (§4.6.3)
}

// Arg returns the decomposed argument at idx, or the zero Argument if the
// call has fewer arguments than idx — callers are expected to silently
// skip rather than panic (§7 Analysis-skip conditions).
func (c *MpiCall) Arg(idx int) decompose.Argument {
	if idx < 0 || idx >= len(c.Args) {
		return decompose.Argument{}
	}

	return c.Args[idx]
}

// MpiRequest records that a non-blocking call bound an MPI_Request
// variable (§3).
type MpiRequest struct {
	Var  mast.VarDecl
	Call *MpiCall
}

// Context owns every piece of per-function state the invariant checks
// need: the recorded-call list (insertion order preserved, per §5), the
// outstanding-request set, and the identifier interning table. The driver
// creates a fresh Context for each function body and discards it at the
// end of that function's analysis (§5: "failure to clear is a correctness
// bug").
type Context struct {
	Idents ident.Table

	calls    []*MpiCall
	nextID   int
	requests []MpiRequest
}

// NewCall decomposes expr's arguments and appends a new MpiCall to the
// context, assigning it the next monotonic id (§8 property 2: ids are
// monotonically increasing and unique within a translation unit).
func (c *Context) NewCall(expr *mast.CallExpr, name *ident.Name, args []decompose.Argument) *MpiCall {
	call := &MpiCall{
		ID:   c.nextID,
		Expr: expr,
		Name: name,
		Args: args,
	}
	c.nextID++
	c.calls = append(c.calls, call)

	return call
}

// Calls returns every recorded call, in insertion order.
func (c *Context) Calls() []*MpiCall { return c.calls }

// AddRequest registers a new outstanding request binding.
func (c *Context) AddRequest(v mast.VarDecl, call *MpiCall) {
	c.requests = append(c.requests, MpiRequest{Var: v, Call: call})
}

// FindRequest returns the outstanding request bound to v, if any.
func (c *Context) FindRequest(v mast.VarDecl) (MpiRequest, bool) {
	for _, r := range c.requests {
		if r.Var == v {
			return r, true
		}
	}

	return MpiRequest{}, false
}

// RemoveRequest removes the outstanding request bound to v, if present.
// It reports whether a request was actually removed.
func (c *Context) RemoveRequest(v mast.VarDecl) bool {
	for i, r := range c.requests {
		if r.Var == v {
			c.requests = append(c.requests[:i], c.requests[i+1:]...)

			return true
		}
	}

	return false
}

// OutstandingRequests returns every request still outstanding after the
// translation unit has been fully processed (§8 property 4).
func (c *Context) OutstandingRequests() []MpiRequest {
	return c.requests
}
