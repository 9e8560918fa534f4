// File: graph.go
// Role: Graph construction, node id assignment, and edge staging.
// Concurrency model (grounded on core/types.go's split-mutex discipline,
// adapted from the teacher's string-keyed vertices/edges to this package's
// dense-id/Point-keyed model):
//   - muNodes guards orderedNodes and idMap (node identity).
//   - muCSR guards defaultCSR, altCSR, pendingDefault and needsCompression
//     (compressed state).
//   - The two locks are never held at once, mirroring core/api.go's Stats().
package spatialgraph

import (
	"sync"

	"github.com/reachlab/spatialgraph/matrix"
	"github.com/reachlab/spatialgraph/vec3"
)

// Graph is a sparse, Point-keyed, multi-cost-layer graph convertible to CSR.
type Graph struct {
	epsilon float32

	muNodes      sync.RWMutex
	orderedNodes []Node
	idMap        map[vec3.Key]int32

	muCSR            sync.RWMutex
	defaultCSR       *matrix.CSR
	altCSR           map[string]*matrix.CSR
	pendingDefault   []matrix.Triplet
	needsCompression bool
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithEpsilon overrides the default Point-equality tolerance (vec3.DefaultEpsilon).
func WithEpsilon(eps float32) Option {
	return func(g *Graph) { g.epsilon = eps }
}

// NewGraph returns an empty, queryable (compressed) Graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		epsilon: vec3.DefaultEpsilon,
		idMap:   make(map[vec3.Key]int32),
		altCSR:  make(map[string]*matrix.CSR),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.defaultCSR = &matrix.CSR{Outer: []int32{0}}

	return g
}

// NewGraphFromArrays builds a Graph from parallel nodes/edges/distances
// arrays (spec.md §3's alternate construction path), then compresses it.
func NewGraphFromArrays(nodes []vec3.Point, parents, children []int, distances []float32, opts ...Option) (*Graph, error) {
	g := NewGraph(opts...)
	for _, p := range nodes {
		g.EnsureNode(p, Walkable)
	}
	for i := range parents {
		if err := g.AddEdgeByID(int32(parents[i]), int32(children[i]), distances[i]); err != nil {
			return nil, err
		}
	}
	if err := g.Compress(); err != nil {
		return nil, err
	}

	return g, nil
}

// Clear resets the Graph to empty, per spec.md §3's Lifecycle.
func (g *Graph) Clear() {
	g.muNodes.Lock()
	g.orderedNodes = nil
	g.idMap = make(map[vec3.Key]int32)
	g.muNodes.Unlock()

	g.muCSR.Lock()
	g.defaultCSR = &matrix.CSR{Outer: []int32{0}}
	g.altCSR = make(map[string]*matrix.CSR)
	g.pendingDefault = nil
	g.needsCompression = false
	g.muCSR.Unlock()
}

// EnsureNode returns p's id, assigning one (and appending to ordered_nodes)
// if p hasn't been seen before under ε-equality. This is getOrAssignID from
// spec.md §4.C, exported so the Generator can register a node before it has
// any edges (e.g. the max_nodes=1 boundary case).
func (g *Graph) EnsureNode(p vec3.Point, typ NodeType) int32 {
	key := vec3.Quantize(p, g.epsilon)

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if id, ok := g.idMap[key]; ok {
		return id
	}
	id := int32(len(g.orderedNodes))
	g.orderedNodes = append(g.orderedNodes, Node{ID: id, Pos: p, Type: typ})
	g.idMap[key] = id

	return id
}

// LookupNode returns the id already assigned to p, if any, without
// assigning a new one.
func (g *Graph) LookupNode(p vec3.Point) (int32, bool) {
	key := vec3.Quantize(p, g.epsilon)

	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	id, ok := g.idMap[key]

	return id, ok
}

// AddEdge stages a directed edge parent→child (by Point, assigning ids as
// needed) with weight w into the default layer's pending triplets. The
// edge only takes effect after the next Compress.
func (g *Graph) AddEdge(parent, child vec3.Point, w float32) error {
	if !vec3.IsValidWeight(w) {
		return ErrInvalidWeight
	}
	pid := g.EnsureNode(parent, Walkable)
	cid := g.EnsureNode(child, Walkable)

	return g.AddEdgeByID(pid, cid, w)
}

// AddEdgeByID stages a directed edge parentID→childID with weight w.
func (g *Graph) AddEdgeByID(parentID, childID int32, w float32) error {
	if !vec3.IsValidWeight(w) {
		return ErrInvalidWeight
	}

	g.muCSR.Lock()
	g.pendingDefault = append(g.pendingDefault, matrix.Triplet{Row: parentID, Col: childID, Weight: w})
	g.needsCompression = true
	g.muCSR.Unlock()

	return nil
}
