// SPDX-License-Identifier: MIT
//
// Package matrix implements the compressed-sparse-row storage shared by the
// Graph's default and alternate cost layers.
//
// A CSR is built from an unordered slice of (row, col, weight) Triplets in
// one staged pass — validate, allocate, sort, merge, compact — following the
// teacher pack's staged-construction discipline (validate → allocate →
// populate deterministically → optional post-pass) that previously built
// dense adjacency/incidence matrices here. Duplicate (row, col) triplets are
// resolved last-write-wins, per the Graph's pending-triplet merge contract,
// rather than the first-edge-wins policy the dense builders used — the
// difference is documented at BuildCSR.
package matrix
