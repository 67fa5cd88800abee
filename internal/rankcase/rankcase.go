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

// Package rankcase implements the rank-case builder (C4): it partitions
// if/else-if/else chains whose head condition compares a rank variable
// (as collected by package rankvar) into an ordered list of [RankCase]
// values, one per branch of the chain, each carrying only its own
// condition (§4.3, §4.6.5). The conditions of a branch's earlier siblings
// are not recorded on it; only the trailing bare else is marked Unmatched.
//
// A collective call recorded inside a case whose chain branches on rank
// is the input to the collective-in-rank-branch check (§4.6.5): MPI
// collectives must be called uniformly by every rank, so a collective
// reachable only through one arm of a rank-conditional chain is almost
// always a bug or a deadlock waiting to happen.
package rankcase

import (
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/rankvar"
)

// RankCase is one branch of a rank-conditional if/else-if/else chain.
type RankCase struct {
	// Var is the rank variable the chain's head condition tests.
	Var mast.VarDecl

	// Cond is this branch's own condition (nil for a trailing else with
	// no further condition of its own).
	Cond mast.Expr

	// Unmatched is true for the final bare "else", the branch reached only
	// when every earlier sibling condition in the chain is false. A chain
	// with no else gets no case for its implicit fallthrough.
	Unmatched bool

	// Body is the branch's statement list.
	Body *mast.BlockStmt

	// chain identifies which if/else-if/else group this case belongs
	// to, so callers can relate sibling cases without re-walking.
	chain int
}

// ChainID returns the identifier shared by every RankCase split from the
// same if/else-if/else chain.
func (c RankCase) ChainID() int { return c.chain }

// Build walks body and returns one RankCase per branch of every
// if/else-if/else chain whose head condition references a variable in
// vars. Chains nested inside an already-expanded chain's branches are
// still visited (a rank-dependent branch may itself contain another
// rank-dependent chain), but a single IfStmt node is never expanded
// twice even if the driver's own traversal revisits this subtree.
func Build(vars rankvar.Set, body *mast.BlockStmt) []RankCase {
	b := &builder{vars: vars, seen: make(map[*mast.IfStmt]struct{})}
	b.walkStmt(body)

	return b.cases
}

type builder struct {
	vars  rankvar.Set
	seen  map[*mast.IfStmt]struct{}
	cases []RankCase
	next  int
}

func (b *builder) walkStmt(stmt mast.Stmt) {
	switch n := stmt.(type) {
	case *mast.BlockStmt:
		if n == nil {
			return
		}

		for _, c := range n.List {
			b.walkStmt(c)
		}

	case *mast.IfStmt:
		b.visitIf(n)
	}
}

func (b *builder) visitIf(head *mast.IfStmt) {
	if head == nil {
		return
	}

	if _, ok := b.seen[head]; ok {
		return
	}

	rv, ok := rankVarOf(head.Cond, b.vars)
	if !ok {
		// Not a rank-conditional chain; still recurse into its branches
		// in case a nested chain does branch on rank.
		b.markSeen(head)
		b.walkStmt(head.Then)
		if head.Else != nil {
			b.walkStmt(head.Else)
		}

		return
	}

	chain := b.next
	b.next++

	cur := head
	for cur != nil {
		b.seen[cur] = struct{}{}

		b.cases = append(b.cases, RankCase{
			Var:   rv,
			Cond:  cur.Cond,
			Body:  cur.Then,
			chain: chain,
		})
		b.walkNestedBody(cur.Then)

		switch e := cur.Else.(type) {
		case *mast.IfStmt:
			cur = e
		case *mast.BlockStmt:
			b.cases = append(b.cases, RankCase{
				Var:       rv,
				Unmatched: true,
				Body:      e,
				chain:     chain,
			})
			b.walkNestedBody(e)
			cur = nil
		default:
			cur = nil
		}
	}
}

// walkNestedBody looks for further rank-conditional chains inside an
// already-expanded branch's body, without re-expanding the branch itself.
func (b *builder) walkNestedBody(body *mast.BlockStmt) {
	if body == nil {
		return
	}

	for _, stmt := range body.List {
		if nested, ok := stmt.(*mast.IfStmt); ok {
			b.visitIf(nested)

			continue
		}

		b.walkStmt(stmt)
	}
}

func (b *builder) markSeen(head *mast.IfStmt) {
	b.seen[head] = struct{}{}
}

// rankVarOf reports whether cond's expression tree references a variable
// in vars, and returns that variable. A condition may compare the rank
// variable against a literal (rank == 0) or some other expression; any
// reference found anywhere in the condition counts, matching the
// reference implementation's lenient operand scan (§9).
func rankVarOf(cond mast.Expr, vars rankvar.Set) (mast.VarDecl, bool) {
	if cond == nil {
		return nil, false
	}

	if ref, ok := cond.(*mast.DeclRefExpr); ok {
		if v, ok := ref.Decl.(mast.VarDecl); ok && vars.Has(v) {
			return v, true
		}
	}

	for _, c := range cond.Children() {
		if v, ok := rankVarOf(c, vars); ok {
			return v, true
		}
	}

	return nil, false
}
