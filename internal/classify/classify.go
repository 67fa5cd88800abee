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

// Package classify implements the MPI function classifier (C1): a static
// table, keyed by interned function name, tagging every recognized MPI
// call by semantic family. It is grounded directly on the classification
// table built up across MPIFunctionClassifier.cpp in the reference
// implementation.
package classify

import "mpilint.dev/mpilint/internal/ident"

// family is a bitmask of the semantic families a single MPI function name
// can belong to.
type family uint16

const (
	fMPIType family = 1 << iota
	fSend
	fRecv
	fPointToPoint
	fCollective
	fBlocking
	fNonBlocking
	fScatter
	fGather
	fAllgather
	fAlltoall
	fBcast
	fReduce
	fWait
	fBarrier
	fCommRank
)

// Table is the classifier. The zero value is ready to use: entries are
// populated once from the package-level static data and are never
// mutated afterward, so a Table may be shared across translation units
// (unlike the record/rank-variable state, which is explicitly
// per-translation-unit).
type Table struct{}

var membership = map[string]family{
	"MPI_Send":  fSend | fPointToPoint | fBlocking,
	"MPI_Ssend": fSend | fPointToPoint | fBlocking,
	"MPI_Bsend": fSend | fPointToPoint | fBlocking,
	"MPI_Rsend": fSend | fPointToPoint | fBlocking,

	"MPI_Isend":  fSend | fPointToPoint | fNonBlocking,
	"MPI_Issend": fSend | fPointToPoint | fNonBlocking,
	"MPI_Ibsend": fSend | fPointToPoint | fNonBlocking,
	"MPI_Irsend": fSend | fPointToPoint | fNonBlocking,

	"MPI_Recv":  fRecv | fPointToPoint | fBlocking,
	"MPI_Irecv": fRecv | fPointToPoint | fNonBlocking,

	"MPI_Scatter":   fCollective | fBlocking | fScatter,
	"MPI_Gather":    fCollective | fBlocking | fGather,
	"MPI_Allgather": fCollective | fBlocking | fAllgather,
	"MPI_Bcast":     fCollective | fBlocking | fBcast,
	"MPI_Reduce":    fCollective | fBlocking | fReduce,
	"MPI_Allreduce": fCollective | fBlocking | fReduce,
	"MPI_Alltoall":  fCollective | fBlocking | fAlltoall,
	"MPI_Barrier":   fCollective | fBlocking | fBarrier,

	"MPI_Iscatter":   fCollective | fNonBlocking | fScatter,
	"MPI_Igather":    fCollective | fNonBlocking | fGather,
	"MPI_Iallgather": fCollective | fNonBlocking | fAllgather,
	"MPI_Ibcast":     fCollective | fNonBlocking | fBcast,
	"MPI_Ireduce":    fCollective | fNonBlocking | fReduce,
	"MPI_Iallreduce": fCollective | fNonBlocking | fReduce,
	"MPI_Ialltoall":  fCollective | fNonBlocking | fAlltoall,

	"MPI_Wait":    fWait,
	"MPI_Waitall": fWait,

	"MPI_Comm_rank": fCommRank,
}

func familyOf(n *ident.Name) family {
	if n == nil {
		return 0
	}

	f := membership[n.String()]
	if f != 0 {
		f |= fMPIType
	}

	return f
}

func (Table) IsMPIType(n *ident.Name) bool      { return familyOf(n)&fMPIType != 0 }
func (Table) IsSend(n *ident.Name) bool         { return familyOf(n)&fSend != 0 }
func (Table) IsRecv(n *ident.Name) bool         { return familyOf(n)&fRecv != 0 }
func (Table) IsPointToPoint(n *ident.Name) bool { return familyOf(n)&fPointToPoint != 0 }
func (Table) IsCollective(n *ident.Name) bool   { return familyOf(n)&fCollective != 0 }
func (Table) IsBlocking(n *ident.Name) bool     { return familyOf(n)&fBlocking != 0 }
func (Table) IsNonBlocking(n *ident.Name) bool  { return familyOf(n)&fNonBlocking != 0 }
func (Table) IsScatter(n *ident.Name) bool      { return familyOf(n)&fScatter != 0 }
func (Table) IsGather(n *ident.Name) bool       { return familyOf(n)&fGather != 0 }
func (Table) IsAllgather(n *ident.Name) bool    { return familyOf(n)&fAllgather != 0 }
func (Table) IsAlltoall(n *ident.Name) bool     { return familyOf(n)&fAlltoall != 0 }
func (Table) IsBcast(n *ident.Name) bool        { return familyOf(n)&fBcast != 0 }
func (Table) IsReduce(n *ident.Name) bool       { return familyOf(n)&fReduce != 0 }
func (Table) IsWait(n *ident.Name) bool         { return familyOf(n)&fWait != 0 }
func (Table) IsBarrier(n *ident.Name) bool      { return familyOf(n)&fBarrier != 0 }
func (Table) IsMPICommRank(n *ident.Name) bool  { return familyOf(n)&fCommRank != 0 }

// IsMPIWait reports whether n is specifically MPI_Wait (as opposed to
// MPI_Waitall).
func (Table) IsMPIWait(n *ident.Name) bool { return n != nil && n.String() == "MPI_Wait" }

// IsMPIWaitall reports whether n is specifically MPI_Waitall.
func (Table) IsMPIWaitall(n *ident.Name) bool { return n != nil && n.String() == "MPI_Waitall" }

// CollectiveFamily identifies which collective sub-family (for positional
// schema and redundancy purposes, §4.2/§4.6.3) a collective name belongs
// to. The zero value, CollectiveNone, is returned for a non-collective or
// unrecognized name.
type CollectiveFamily int

const (
	CollectiveNone CollectiveFamily = iota
	CollectiveReduce
	CollectiveScatterGatherAlltoall
	CollectiveBcast
)

func (t Table) CollectiveFamilyOf(n *ident.Name) CollectiveFamily {
	switch {
	case t.IsReduce(n):
		return CollectiveReduce
	case t.IsScatter(n), t.IsGather(n), t.IsAllgather(n), t.IsAlltoall(n):
		return CollectiveScatterGatherAlltoall
	case t.IsBcast(n):
		return CollectiveBcast
	default:
		return CollectiveNone
	}
}
