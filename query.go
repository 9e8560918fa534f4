// File: query.go
// Role: read-only accessors. Per spec.md §3 invariant 5, the CSR-backed ones
// require needs_compression == false; Nodes and NodeFromID do not.
package spatialgraph

import (
	"github.com/reachlab/spatialgraph/matrix"
	"github.com/reachlab/spatialgraph/vec3"
)

// Nodes returns the ordered Node list, indexed by id.
func (g *Graph) Nodes() []Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]Node, len(g.orderedNodes))
	copy(out, g.orderedNodes)

	return out
}

// NodeFromID returns the Node assigned to id.
func (g *Graph) NodeFromID(id int32) (Node, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	if id < 0 || int(id) >= len(g.orderedNodes) {
		return Node{}, ErrOutOfRange
	}

	return g.orderedNodes[id], nil
}

// CSR returns the compressed layer named by layer ("" selects the default
// geometric-distance layer). The returned pointer aliases Graph storage and
// is valid until the next mutation or Clear.
func (g *Graph) CSR(layer string) (*matrix.CSR, error) {
	g.muCSR.RLock()
	defer g.muCSR.RUnlock()

	if g.needsCompression {
		return nil, ErrUncompressed
	}
	if layer == "" {
		return g.defaultCSR, nil
	}
	m, ok := g.altCSR[layer]
	if !ok {
		return nil, ErrNoSuchEdge
	}

	return m, nil
}

// GetCSRPointers exports the default layer's CSR in the raw pointer-shaped
// form described by spec.md §6.
func (g *Graph) GetCSRPointers() (CSRPointers, error) {
	m, err := g.CSR("")
	if err != nil {
		return CSRPointers{}, err
	}

	return CSRPointers{
		NNZ: m.NNZ(), Rows: m.Rows, Cols: m.Cols,
		Data: m.Data, Outer: m.Outer, Inner: m.Inner,
	}, nil
}

// HasEdge reports whether an edge exists between the Points parent and
// child in the default layer. When undirected is true, either direction
// counts.
func (g *Graph) HasEdge(parent, child vec3.Point, undirected bool) (bool, error) {
	pid, ok := g.LookupNode(parent)
	if !ok {
		return false, nil
	}
	cid, ok := g.LookupNode(child)
	if !ok {
		return false, nil
	}
	m, err := g.CSR("")
	if err != nil {
		return false, err
	}
	if _, ok := m.At(pid, cid); ok {
		return true, nil
	}
	if undirected {
		if _, ok := m.At(cid, pid); ok {
			return true, nil
		}
	}

	return false, nil
}

// GetEdges returns, for every node with at least one outgoing edge in the
// default layer, its id and (child, weight) pairs.
func (g *Graph) GetEdges() ([]NodeEdges, error) {
	m, err := g.CSR("")
	if err != nil {
		return nil, err
	}
	out := make([]NodeEdges, 0, m.Rows)
	for row := int32(0); row < m.Rows; row++ {
		cols, weights, _ := m.Row(row)
		if len(cols) == 0 {
			continue
		}
		children := make([]ChildWeight, len(cols))
		for i := range cols {
			children[i] = ChildWeight{ChildID: cols[i], Weight: weights[i]}
		}
		out = append(out, NodeEdges{ParentID: row, Children: children})
	}

	return out, nil
}

// EdgesOf returns the edges directed out of node (spec.md's operator[]).
func (g *Graph) EdgesOf(node int32) ([]ChildWeight, error) {
	m, err := g.CSR("")
	if err != nil {
		return nil, err
	}
	cols, weights, err := m.Row(node)
	if err != nil {
		return nil, err
	}
	out := make([]ChildWeight, len(cols))
	for i := range cols {
		out[i] = ChildWeight{ChildID: cols[i], Weight: weights[i]}
	}

	return out, nil
}

// GetUndirectedEdges returns the union of edges out of and into node, each
// neighbor counted once even if both directions are present (the out-edge
// weight is kept for a neighbor reachable both ways, matching iteration
// order out-then-in).
func (g *Graph) GetUndirectedEdges(node int32) ([]ChildWeight, error) {
	m, err := g.CSR("")
	if err != nil {
		return nil, err
	}
	seen := make(map[int32]struct{})
	var out []ChildWeight

	cols, weights, err := m.Row(node)
	if err != nil {
		return nil, err
	}
	for i := range cols {
		seen[cols[i]] = struct{}{}
		out = append(out, ChildWeight{ChildID: cols[i], Weight: weights[i]})
	}
	for row := int32(0); row < m.Rows; row++ {
		if row == node {
			continue
		}
		if w, ok := m.At(row, node); ok {
			if _, dup := seen[row]; dup {
				continue
			}
			seen[row] = struct{}{}
			out = append(out, ChildWeight{ChildID: row, Weight: w})
		}
	}

	return out, nil
}
