package spatialgraph

import "github.com/reachlab/spatialgraph/vec3"

// NodeType tags the semantic role of a Node. The zero value, Walkable, is
// the type AddEdge assigns to the nodes it registers.
type NodeType uint8

const (
	// Walkable is the default NodeType: a position a walking agent can
	// stand on.
	Walkable NodeType = iota
	// Seed marks the Generator's initial projected start position.
	Seed
)

// Node is a Point plus its dense id and an optional type tag.
type Node struct {
	ID   int32
	Pos  vec3.Point
	Type NodeType
}

// ChildWeight pairs a child node id with the edge weight parent→child.
type ChildWeight struct {
	ChildID int32
	Weight  float32
}

// NodeEdges is GetEdges' per-parent grouping: a node id and its outgoing
// (child, weight) pairs in the default layer.
type NodeEdges struct {
	ParentID int32
	Children []ChildWeight
}

// LayerEdge is one edge supplied to AttachCostLayer.
type LayerEdge struct {
	ParentID, ChildID int32
	Weight            float32
}

// Aggregation selects the reduction AggregateGraph applies to each node's
// incident edge weights.
type Aggregation uint8

const (
	// Sum reduces a node's incident weights by addition.
	Sum Aggregation = iota
	// Average reduces by mean; isolated nodes (no incident edges) produce 0
	// by the spec's fixed convention (see SPEC_FULL.md §9 Open Questions).
	Average
	// Count reduces to the number of incident edges.
	Count
)

// CSRPointers is the external, pointer-shaped export of a layer's CSR,
// matching spec.md §6's {nnz, rows, cols, data*, outer*, inner*} contract.
// The slices alias the Graph's internal storage and are valid only until
// the next mutation or Clear.
type CSRPointers struct {
	NNZ, Rows, Cols int32
	Data            []float32
	Outer           []int32
	Inner           []int32
}
