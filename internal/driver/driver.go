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

// Package driver implements the traversal driver (C8): for each function
// in a translation unit, it runs the call recorder (C5) and the per-call
// and redundancy checks (C6), then the rank-variable collector (C3) and
// the rank-case builder (C4), then the remaining invariant checks (C6),
// in that order, against a [record.Context] scoped to the
// function body — discarded once the function has been fully processed,
// per §5's "failure to clear is a correctness bug."
package driver

import (
	"context"
	"runtime/trace"

	"mpilint.dev/mpilint/internal/check"
	"mpilint.dev/mpilint/internal/classify"
	"mpilint.dev/mpilint/internal/config"
	"mpilint.dev/mpilint/internal/decompose"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/rankcase"
	"mpilint.dev/mpilint/internal/rankvar"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
)

// Engine runs the full check pipeline over a translation unit. The zero
// value runs with [classify.Table]'s zero value and every check
// disabled; construct via [NewEngine] for the usual all-checks-enabled
// configuration.
type Engine struct {
	Classify classify.Table
	Config   config.Config
}

// NewEngine returns an Engine with every check enabled.
func NewEngine() Engine {
	return Engine{Config: config.New()}
}

// Run analyzes every function declared in file and reports diagnostics
// to sink. ctx is threaded through only as a runtime/trace task parent
// and a cooperative-cancellation point between functions; the pipeline
// itself never blocks.
func (e Engine) Run(ctx context.Context, file *mast.File, sink report.Sink) {
	if file == nil {
		return
	}

	ctx, task := trace.NewTask(ctx, "mpilint.analyzeFile")
	defer task.End()

	for _, fn := range file.Funcs {
		if err := ctx.Err(); err != nil {
			return
		}

		e.runFunc(ctx, fn, sink)
	}
}

func (e Engine) runFunc(ctx context.Context, fn *mast.FuncDeclNode, sink report.Sink) {
	defer trace.StartRegion(ctx, "mpilint.analyzeFunction").End()

	body := fn.Body()
	if body == nil {
		return
	}

	var rc record.Context

	recordAllCalls(&rc, body)

	for _, call := range rc.Calls() {
		if e.Config.Checks.Enabled(config.CheckFloatArg) {
			check.FloatArg(e.Classify, call, sink)
		}

		if e.Config.Checks.Enabled(config.CheckTypeMismatch) {
			check.TypeMismatch(e.Classify, call, sink)
		}

		if e.Config.Checks.Enabled(config.CheckArgType) {
			check.ArgType(e.Classify, call, sink)
		}
	}

	if e.Config.Checks.Enabled(config.CheckRedundancy) {
		check.Redundancy(e.Classify, &rc, sink)
	}

	vars := rankvar.Collect(e.Classify, body)
	cases := rankcase.Build(vars, body)

	scopeOf := rankCaseScopes(cases)

	if e.Config.Checks.Enabled(config.CheckUnmatched) {
		check.Unmatched(e.Classify, &rc, scopeOf, sink)
	}

	if e.Config.Checks.Enabled(config.CheckRequests) {
		check.Requests(e.Classify, &rc, sink)
	}

	if !e.Config.Checks.Enabled(config.CheckCollectiveRank) {
		return
	}

	for _, c := range cases {
		if c.Body == nil {
			continue
		}

		var branch record.Context
		recordShallowCalls(&branch, c.Body)
		check.CollectiveInRankBranch(e.Classify, branch.Calls(), sink)
	}
}

// rankCaseScopes maps every call directly reachable from a RankCase's
// body (not nested inside a further rank-conditional chain of its own)
// to that case's index in cases. A call absent from the returned map
// runs unconditionally with respect to rank and is never excluded from
// pairing with anything, matching §4.6.4: only two calls confined to the
// very same RankCase can never execute as a complementary send/recv
// pair, since a single rank branch runs on one set of ranks.
func rankCaseScopes(cases []rankcase.RankCase) map[*mast.CallExpr]int {
	scopes := make(map[*mast.CallExpr]int)

	for i, c := range cases {
		if c.Body == nil {
			continue
		}

		var branch record.Context
		recordShallowCalls(&branch, c.Body)

		for _, call := range branch.Calls() {
			scopes[call.Expr] = i
		}
	}

	return scopes
}

// recordAllCalls fully recurses through every statement and records
// every recognized MPI call, in source order, into ctx. This feeds the
// checks that need whole-function visibility: redundancy and request
// lifecycle. Unmatched point-to-point also scans this list, but narrows
// which pairs are eligible partners using the rank-case scopes computed
// separately by rankCaseScopes.
func recordAllCalls(ctx *record.Context, stmt mast.Stmt) {
	switch n := stmt.(type) {
	case *mast.BlockStmt:
		if n == nil {
			return
		}

		for _, c := range n.List {
			recordAllCalls(ctx, c)
		}

	case *mast.IfStmt:
		recordCallsInExpr(ctx, n.Cond)
		recordAllCalls(ctx, n.Then)

		if n.Else != nil {
			recordAllCalls(ctx, n.Else)
		}

	case *mast.ExprStmt:
		recordCallsInExpr(ctx, n.X)
	}
}

// recordShallowCalls records calls reachable from body without
// descending into nested if/else-if/else chains: those are rank-cases
// of their own and get their own [check.CollectiveInRankBranch] pass, so
// folding their calls into the parent's branch would double-report a
// collective nested two rank-conditionals deep.
func recordShallowCalls(ctx *record.Context, body *mast.BlockStmt) {
	if body == nil {
		return
	}

	for _, stmt := range body.List {
		switch n := stmt.(type) {
		case *mast.ExprStmt:
			recordCallsInExpr(ctx, n.X)
		case *mast.BlockStmt:
			recordShallowCalls(ctx, n)
		}
	}
}

func recordCallsInExpr(ctx *record.Context, e mast.Expr) {
	if e == nil {
		return
	}

	if call, ok := e.(*mast.CallExpr); ok {
		args := make([]decompose.Argument, len(call.Args))
		for i, a := range call.Args {
			args[i] = decompose.Walk(a)
		}

		ctx.NewCall(call, call.Callee, args)
	}

	for _, c := range e.Children() {
		recordCallsInExpr(ctx, c)
	}
}
