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

package record_test

import (
	"testing"

	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
)

func TestNewCallAssignsMonotonicUniqueIDs(t *testing.T) {
	t.Parallel()

	var ctx record.Context

	n := ctx.Idents.Intern("MPI_Send")

	var prev = -1
	for i := 0; i < 5; i++ {
		c := ctx.NewCall(&mast.CallExpr{}, n, nil)
		if c.ID <= prev {
			t.Fatalf("call %d: id %d is not strictly increasing from %d", i, c.ID, prev)
		}
		prev = c.ID
	}

	if len(ctx.Calls()) != 5 {
		t.Fatalf("expected 5 recorded calls, got %d", len(ctx.Calls()))
	}
}

func TestRequestLifecycle(t *testing.T) {
	t.Parallel()

	var ctx record.Context

	v := &mast.VarDeclNode{Ident: "req"}
	n := ctx.Idents.Intern("MPI_Isend")
	call := ctx.NewCall(&mast.CallExpr{}, n, nil)

	if _, ok := ctx.FindRequest(v); ok {
		t.Fatal("request must not be outstanding before it is added")
	}

	ctx.AddRequest(v, call)

	got, ok := ctx.FindRequest(v)
	if !ok {
		t.Fatal("expected request to be outstanding after AddRequest")
	}

	if got.Call != call {
		t.Fatal("FindRequest returned the wrong originating call")
	}

	if !ctx.RemoveRequest(v) {
		t.Fatal("RemoveRequest must report true for an outstanding request")
	}

	if _, ok := ctx.FindRequest(v); ok {
		t.Fatal("request must not be outstanding after RemoveRequest")
	}

	if ctx.RemoveRequest(v) {
		t.Fatal("RemoveRequest must report false when nothing is outstanding")
	}
}

func TestOutstandingRequestsReflectsUnclosedWaits(t *testing.T) {
	t.Parallel()

	var ctx record.Context

	a := &mast.VarDeclNode{Ident: "ra"}
	b := &mast.VarDeclNode{Ident: "rb"}
	n := ctx.Idents.Intern("MPI_Irecv")

	ctx.AddRequest(a, ctx.NewCall(&mast.CallExpr{}, n, nil))
	ctx.AddRequest(b, ctx.NewCall(&mast.CallExpr{}, n, nil))
	ctx.RemoveRequest(a)

	out := ctx.OutstandingRequests()
	if len(out) != 1 || out[0].Var != b {
		t.Fatalf("expected only b outstanding, got %v", out)
	}
}

func TestArgOutOfRangeReturnsZeroValue(t *testing.T) {
	t.Parallel()

	var ctx record.Context

	n := ctx.Idents.Intern("MPI_Send")
	call := ctx.NewCall(&mast.CallExpr{}, n, nil)

	if arg := call.Arg(3); arg.Expr != nil {
		t.Fatal("Arg past the end must return the zero Argument, not panic")
	}
}
