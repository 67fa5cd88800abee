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

// Package schema holds the positional argument-index constants from §4.2
// of the specification. These are the only place in the codebase that
// knows "argument 3 is the rank" for a point-to-point call, or "argument 5
// is the root" for a reduce call — every check indexes through these
// constants rather than hardcoding positions.
package schema

// Point-to-point positional schema: (buf, count, datatype, rank, tag,
// comm[, request]).
const (
	P2PBuf = iota
	P2PCount
	P2PDatatype
	P2PRank
	P2PTag
	P2PComm
	P2PRequest
)

// Reduce-family positional schema: (sendbuf, recvbuf, count, datatype,
// op, root, comm[, request]).
const (
	ReduceSendbuf = iota
	ReduceRecvbuf
	ReduceCount
	ReduceDatatype
	ReduceOp
	ReduceRoot
	ReduceComm
	ReduceRequest
)

// Scatter/Gather/Alltoall-family positional schema: (sendbuf, sendcount,
// sendtype, recvbuf, recvcount, recvtype, root, comm[, request]). root is
// absent for alltoall/allgather; callers only interrogate the indices
// meaningful for the family in question, per §4.2.
const (
	SGASendbuf = iota
	SGASendcount
	SGASendtype
	SGARecvbuf
	SGARecvcount
	SGARecvtype
	SGARoot
	SGAComm
	SGARequest
)

// Bcast-family positional schema: (buffer, count, datatype, root,
// comm[, request]).
const (
	BcastBuffer = iota
	BcastCount
	BcastDatatype
	BcastRoot
	BcastComm
	BcastRequest
)
