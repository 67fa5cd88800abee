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

package analyzer

import (
	"context"

	"mpilint.dev/mpilint/internal/driver"
	"mpilint.dev/mpilint/internal/mast"
	"mpilint.dev/mpilint/internal/report"
)

// Public API constants for the mpilint analyzer.
const (
	name = "mpilint"
	doc  = `mpilint finds MPI usage defects: mistyped arguments, redundant calls, unmatched sends and receives, collectives gated by rank, and unclosed non-blocking requests`
	url  = "https://pkg.go.dev/mpilint.dev/mpilint"
)

// Diagnostic is one reported MPI usage defect.
type Diagnostic = report.Diagnostic

// Severity classifies how confident a [Diagnostic] is.
type Severity = report.Severity

const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
)

// Analyzer runs mpilint's checks (§4.6) over parsed translation units.
// Unlike [golang.org/x/tools/go/analysis.Analyzer], it analyzes C/C++
// sources already reduced to an [mast.File] by an adapter (e.g.
// mpilint.dev/mpilint/adapter/tscparse), since the checks themselves are
// language-agnostic (§1 Non-goals: parsing C/C++ is a host concern).
type Analyzer struct {
	Name string
	Doc  string
	URL  string

	engine driver.Engine
}

// New creates a new mpilint [Analyzer], configured with opts. It allows
// for programmatic configuration using [Option], which is useful for
// integrating mpilint into other tools. For command-line use, the
// pre-configured [Default] variable is typically sufficient.
func New(opts ...Option) *Analyzer {
	e := driver.NewEngine()
	Options(opts).apply(&e)

	return &Analyzer{Name: name, Doc: doc, URL: url, engine: e}
}

// Default is a pre-configured *[Analyzer] with every check enabled.
var Default = New()

// Analyze runs every enabled check over file and returns the reported
// diagnostics in the order they were produced.
func (a *Analyzer) Analyze(ctx context.Context, file *mast.File) []Diagnostic {
	var sink report.Collector

	a.engine.Run(ctx, file, &sink)

	return sink.Diagnostics
}
