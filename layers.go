// File: layers.go
// Role: alternate cost-layer attachment. Grounded on matrix/impl_incidence.go's
// now-removed first-edge-wins dedup idiom, applied here to reject (parent,
// child) pairs absent from the default layer rather than to dedup.
package spatialgraph

import (
	"github.com/reachlab/spatialgraph/matrix"
	"github.com/reachlab/spatialgraph/vec3"
)

// AttachCostLayer (re)builds the named alternate layer from edges. Every
// edge's (ParentID, ChildID) must already be present in the default layer;
// otherwise ErrNoSuchEdge is returned and the layer is left unchanged. The
// layer's shape always equals the default layer's current shape.
func (g *Graph) AttachCostLayer(name string, edges []LayerEdge) error {
	def, err := g.CSR("")
	if err != nil {
		return err
	}
	triplets := make([]matrix.Triplet, 0, len(edges))
	for _, e := range edges {
		if e.ParentID < 0 || e.ParentID >= def.Rows || e.ChildID < 0 || e.ChildID >= def.Cols {
			return ErrShapeMismatch
		}
		if !vec3.IsValidWeight(e.Weight) {
			return ErrInvalidWeight
		}
		if _, ok := def.At(e.ParentID, e.ChildID); !ok {
			return ErrNoSuchEdge
		}
		triplets = append(triplets, matrix.Triplet{Row: e.ParentID, Col: e.ChildID, Weight: e.Weight})
	}

	csr, err := matrix.BuildCSR(def.Rows, def.Cols, triplets)
	if err != nil {
		return err
	}

	g.muCSR.Lock()
	g.altCSR[name] = csr
	g.muCSR.Unlock()

	return nil
}
