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

// Command mpilint checks C/C++ source files for MPI usage defects.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"mpilint.dev/mpilint/adapter/tscparse"
	"mpilint.dev/mpilint/analyzer"
	"mpilint.dev/mpilint/internal/ident"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("mpilint", flag.ContinueOnError)
	a := analyzer.New()
	analyzer.RegisterFlags(a, flags)

	if err := flags.Parse(args); err != nil {
		return 2
	}

	paths := flags.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: mpilint [flags] file.c [file.c ...]")
		return 2
	}

	ctx := context.Background()
	var found bool

	for _, path := range paths {
		n, err := lintFile(ctx, a, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mpilint: %s: %v\n", path, err)
			return 1
		}

		if n > 0 {
			found = true
		}
	}

	if found {
		return 1
	}

	return 0
}

func lintFile(ctx context.Context, a *analyzer.Analyzer, path string) (int, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var idents ident.Table

	file, err := tscparse.Parse(ctx, source, &idents)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}

	diags := a.Analyze(ctx, file)
	for _, d := range diags {
		printDiagnostic(path, d)
	}

	return len(diags), nil
}

func printDiagnostic(path string, d analyzer.Diagnostic) {
	severity := color.YellowString("warning")
	if d.Severity == analyzer.SeverityError {
		severity = color.RedString("error")
	}

	fmt.Printf("%s:%d: %s: %s [%s]\n", path, d.Pos, severity, d.Message, d.Category)

	for _, rel := range d.Related {
		fmt.Printf("%s:%d: %s %s\n", path, rel.Pos, color.CyanString("note:"), rel.Message)
	}
}
