// File: errors.go
// Role: sentinel errors for the Graph's public contract, grounded on the
// teacher's "one sentinel block per primary file" convention
// (core/types.go, matrix/types.go, dijkstra/dijkstra.go).
package spatialgraph

import "errors"

var (
	// ErrInvalidWeight is returned when addEdge or AttachCostLayer is given a
	// NaN weight.
	ErrInvalidWeight = errors.New("spatialgraph: invalid (NaN) weight")

	// ErrUncompressed is returned by query operations when the Graph has
	// pending mutations that have not been folded into the CSR yet.
	ErrUncompressed = errors.New("spatialgraph: graph needs Compress before queries")

	// ErrOutOfRange is returned by NodeFromID for an id outside
	// [0, len(nodes)). Row accessors (EdgesOf, GetUndirectedEdges) report an
	// out-of-range row as matrix.ErrOutOfRange instead.
	ErrOutOfRange = errors.New("spatialgraph: node id out of range")

	// ErrUnknownAggregation is returned by AggregateGraph for an Aggregation
	// value outside {Sum, Average, Count}.
	ErrUnknownAggregation = errors.New("spatialgraph: unknown aggregation")

	// ErrNoSuchEdge is returned by AttachCostLayer when an alternate-layer
	// edge's (parent, child) pair is absent from the default layer.
	ErrNoSuchEdge = errors.New("spatialgraph: edge absent from default layer")

	// ErrShapeMismatch is returned by AttachCostLayer when the supplied
	// layer's implied shape disagrees with the current node count.
	ErrShapeMismatch = errors.New("spatialgraph: layer shape mismatch")
)
