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
	"flag"

	"mpilint.dev/mpilint/internal/config"
)

// RegisterFlags binds the analyzer's per-check enable/disable switches to
// flags. A nil flag set defaults to the program's command line.
func RegisterFlags(e *Analyzer, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	register(flags, "float-arg", "flag float literals in integer argument slots", &e.engine.Config.Checks, config.CheckFloatArg)
	register(flags, "type-mismatch", "flag buffer/datatype mismatches", &e.engine.Config.Checks, config.CheckTypeMismatch)
	register(flags, "redundancy", "flag redundant duplicate calls", &e.engine.Config.Checks, config.CheckRedundancy)
	register(flags, "unmatched", "flag unmatched point-to-point calls", &e.engine.Config.Checks, config.CheckUnmatched)
	register(flags, "collective-rank", "flag collectives gated by rank", &e.engine.Config.Checks, config.CheckCollectiveRank)
	register(flags, "requests", "flag request lifecycle violations", &e.engine.Config.Checks, config.CheckRequests)
	register(flags, "arg-type", "flag invalid argument types", &e.engine.Config.Checks, config.CheckArgType)
}

func register(flags *flag.FlagSet, name, usage string, mask *config.BitMask[config.Check], flag_ config.Check) {
	flags.Var(boolValue[config.Check, *config.BitMask[config.Check]]{flags: mask, value: flag_}, name, usage)
}
