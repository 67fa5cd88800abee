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
	"mpilint.dev/mpilint/internal/ident"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/record"
	"mpilint.dev/mpilint/internal/report"
	"mpilint.dev/mpilint/internal/schema"
)

// Unmatched checks §4.6.4: within each RankCase, every point-to-point
// send without a partnered recv in any other rank case (and vice versa)
// is reported. Two calls confined to the very same RankCase can never
// form a real pair: a single rank branch runs on one set of ranks, so a
// send and a recv that both only execute there can never be the two
// sides of the same message. scopeOf supplies that boundary: it maps a
// call's expression to the index of the RankCase directly containing
// it, as built by the driver from [rankcase.Build]; a call absent from
// scopeOf runs unconditionally with respect to rank and is eligible to
// pair with anything.
//
// It is grounded on the reference implementation's
// MPICheckerImpl::checkUnmatchedCalls, which iterates rank cases rather
// than the flat call list, and isSendRecvPair, ported here as
// [isSendRecvPair].
func Unmatched(tbl classify.Table, ctx *record.Context, scopeOf map[*mast.CallExpr]int, sink report.Sink) {
	calls := ctx.Calls()

	for _, call := range calls {
		switch {
		case tbl.IsSend(call.Name):
			if !hasSendCounterpart(call, calls, scopeOf, tbl.IsRecv) {
				report1(sink, fmt.Sprintf("%s has no matching receive in any other rank case", call.Name), call)
			}

		case tbl.IsRecv(call.Name):
			if !hasRecvCounterpart(call, calls, scopeOf, tbl.IsSend) {
				report1(sink, fmt.Sprintf("%s has no matching send in any other rank case", call.Name), call)
			}
		}
	}
}

// hasSendCounterpart scans calls for a recv that pairs with send.
// isSendRecvPair takes the send first and the recv second — its rank
// check is asymmetric — so send stays fixed in that position throughout
// the scan.
func hasSendCounterpart(send *record.MpiCall, calls []*record.MpiCall, scopeOf map[*mast.CallExpr]int, wantsKind func(n *ident.Name) bool) bool {
	for _, other := range calls {
		if other == send {
			continue
		}

		if !wantsKind(other.Name) {
			continue
		}

		if confinedToSameRankCase(send, other, scopeOf) {
			continue
		}

		if isSendRecvPair(send, other) {
			return true
		}
	}

	return false
}

// hasRecvCounterpart is hasSendCounterpart's mirror: recv is fixed, and
// each candidate other is the send side, so isSendRecvPair is called
// with other first.
func hasRecvCounterpart(recv *record.MpiCall, calls []*record.MpiCall, scopeOf map[*mast.CallExpr]int, wantsKind func(n *ident.Name) bool) bool {
	for _, other := range calls {
		if other == recv {
			continue
		}

		if !wantsKind(other.Name) {
			continue
		}

		if confinedToSameRankCase(recv, other, scopeOf) {
			continue
		}

		if isSendRecvPair(other, recv) {
			return true
		}
	}

	return false
}

// confinedToSameRankCase reports whether a and b are both directly
// inside the same RankCase, and so can never run as complementary
// ranks. A call that runs unconditionally (absent from scopeOf) is
// never confined with anything.
func confinedToSameRankCase(a, b *record.MpiCall, scopeOf map[*mast.CallExpr]int) bool {
	sa, ok := scopeOf[a.Expr]
	if !ok {
		return false
	}

	sb, ok := scopeOf[b.Expr]
	if !ok {
		return false
	}

	return sa == sb
}

// isSendRecvPair reports whether send and recv form a matched
// point-to-point pair: component-equal count and tag, the same
// datatype spelling, and rank-compatible rank arguments. send must be
// the send-type call and recv the recv-type call — the rank check is
// not symmetric in the two.
//
// It is grounded on the reference implementation's isSendRecvPair,
// which compares datatype by source text, count and tag by
// component-equality, and rank by the dedicated rule [decompose.RankCompatible]
// ports (§7: rank values are not interpreted numerically, only compared
// structurally).
func isSendRecvPair(send, recv *record.MpiCall) bool {
	if decompose.Text(send.Arg(schema.P2PDatatype)) != decompose.Text(recv.Arg(schema.P2PDatatype)) {
		return false
	}

	if !decompose.ComponentEqual(send.Arg(schema.P2PCount), recv.Arg(schema.P2PCount)) {
		return false
	}

	if !decompose.ComponentEqual(send.Arg(schema.P2PTag), recv.Arg(schema.P2PTag)) {
		return false
	}

	return decompose.RankCompatible(send.Arg(schema.P2PRank), recv.Arg(schema.P2PRank))
}

// report1 reports an unmatched-pair diagnostic. §7 classifies "unmatched
// pair" as an error: unlike a redundant call, which may be intentional,
// a send or recv with no possible partner anywhere in the function can
// never complete.
func report1(sink report.Sink, msg string, call *record.MpiCall) {
	sink.Report(report.Diagnostic{
		Category: report.CategoryUnmatchedP2P,
		Severity: report.SeverityError,
		Message:  msg,
		Pos:      call.Expr.Pos(),
		End:      call.Expr.End(),
	})
}
