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

package report_test

import (
	"testing"

	"mpilint.dev/mpilint/internal/report"
)

func TestCollectorAccumulatesInOrder(t *testing.T) {
	t.Parallel()

	var c report.Collector

	c.Report(report.Diagnostic{Category: report.CategoryFloatArg, Message: "first"})
	c.Report(report.Diagnostic{Category: report.CategoryRedundantCall, Message: "second"})

	if len(c.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(c.Diagnostics))
	}

	if c.Diagnostics[0].Message != "first" || c.Diagnostics[1].Message != "second" {
		t.Fatal("expected diagnostics preserved in report order")
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	if report.SeverityError.String() != "error" {
		t.Fatal("SeverityError must render as \"error\"")
	}

	if report.SeverityWarning.String() != "warning" {
		t.Fatal("SeverityWarning must render as \"warning\"")
	}
}
