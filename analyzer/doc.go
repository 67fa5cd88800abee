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

// Package analyzer implements the mpilint MPI usage checker.
//
// # Overview
//
// mpilint finds defects in MPI (Message Passing Interface) C/C++ code
// that the compiler cannot catch: a tag argument that is a floating
// literal, a receive buffer whose declared type disagrees with the
// MPI_Datatype passed alongside it, a send with no plausible receive
// anywhere in the same function (calls in other functions of the file are
// not considered), a collective call reachable
// only from one branch of a rank-conditional, and non-blocking requests
// that are reused or waited on incorrectly.
//
// # Example
//
// Before:
//
//	int rank;
//	MPI_Comm_rank(MPI_COMM_WORLD, &rank);
//	if (rank == 0) {
//	    MPI_Bcast(buf, 1, MPI_INT, 0, MPI_COMM_WORLD);
//	}
//
// mpilint flags the MPI_Bcast call: a collective must be called by every
// rank in the communicator, not just rank 0.
//
// After:
//
//	MPI_Bcast(buf, 1, MPI_INT, 0, MPI_COMM_WORLD);
//
// # Supported Checks
//
//   - Float literal in an integer argument slot
//   - Buffer/datatype mismatch
//   - Redundant duplicate calls
//   - Unmatched point-to-point send/receive
//   - Collective call gated by rank
//   - Non-blocking request lifecycle violations
//   - Invalid argument type
package analyzer
