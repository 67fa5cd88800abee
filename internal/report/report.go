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

// Package report defines the diagnostic sink (C7): the shape every check
// in package check emits into, and the interface package driver and
// package analyzer use to collect and forward those diagnostics.
//
// It is grounded on the reference implementation's BugType / reportBug
// pair, which separates "what kind of problem" (a category, fixed at
// program startup) from "this particular occurrence" (a message plus one
// or more source ranges). The split survives here as [Category] and
// [Diagnostic].
package report

import "mpilint.dev/mpilint/internal/mast"

// Severity mirrors the two-level severity the reference checker assigns
// each bug category: a hard error for invariant violations that are
// always wrong, and a warning for patterns that are suspicious but
// occasionally intentional (§9 supplemented feature: severity survives
// as a first-class field so a sink can filter or colorize by it).
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String renders the severity the way a CLI diagnostic line would.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Category identifies which check produced a diagnostic (§4.6.1–4.6.7).
type Category string

const (
	CategoryFloatArg          Category = "floatArg"
	CategoryTypeMismatch      Category = "typeMismatch"
	CategoryRedundantCall     Category = "redundantCall"
	CategoryUnmatchedP2P      Category = "unmatchedPointToPoint"
	CategoryCollectiveRank    Category = "collectiveInRankBranch"
	CategoryDoubleNonBlocking Category = "doubleNonBlockingRequest"
	CategoryDoubleWait        Category = "doubleWait"
	CategoryInvalidArgType    Category = "invalidArgumentType"
)

// Related is a secondary source location attached to a diagnostic, used
// when the defect is only meaningful in relation to another call site —
// the earlier call in a redundant pair, or the call that originally
// bound a request that is being reused (§9 supplemented feature: the
// reference implementation's two-location diagnostics, reportRedundantCall
// and reportDoubleRequestUse, become first-class secondary ranges here
// instead of ad hoc string concatenation).
type Related struct {
	Message string
	Pos     mast.Pos
	End     mast.Pos
}

// Diagnostic is one reported defect.
type Diagnostic struct {
	Category Category
	Severity Severity
	Message  string

	Pos mast.Pos
	End mast.Pos

	Related []Related
}

// Sink receives diagnostics as checks produce them. Implementations must
// be safe to call from a single goroutine per translation unit; the
// driver does not parallelize checks within one function body.
type Sink interface {
	Report(Diagnostic)
}

// Collector is a [Sink] that simply accumulates diagnostics in memory,
// used by the public analyzer package and by tests.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report implements Sink.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}
