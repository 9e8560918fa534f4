package costs

import (
	"errors"
	"math"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/vec3"
)

// errUndefinedSlope is returned internally (never surfaced to the caller)
// when an edge has zero horizontal run; such edges are omitted from the
// energy layer rather than failing the whole computation.
var errUndefinedSlope = errors.New("costs: undefined slope")

// energyPoly is the Minetti et al. fifth-degree polynomial approximation of
// the metabolic cost of walking (one polynomial for every grade, with no
// separate pieces), in J/(kg·m), as a function of gradient i
// (rise/run, dimensionless — positive uphill, negative downhill). Valid
// over the published range roughly [-0.45, 0.45); callers are expected to
// have already rejected grades outside what a pedestrian graph would
// contain via up_slope/down_slope.
func energyPoly(i float64) float64 {
	i2 := i * i
	i3 := i2 * i
	i4 := i3 * i
	i5 := i4 * i

	return 280.5*i5 - 58.7*i4 - 76.8*i3 + 51.9*i2 + 19.6*i + 2.5
}

// GenerateEnergy writes an "energy" layer over g's default-layer topology:
// each edge's cost is energyPoly(gradient) scaled by the edge's 3-D length
// (the hypotenuse of its horizontal run and its rise). Edges with zero horizontal displacement (grade undefined) are
// omitted from the layer, per spec.
func GenerateEnergy(g *spatialgraph.Graph) error {
	edges, err := g.GetEdges()
	if err != nil {
		return err
	}

	var layer []spatialgraph.LayerEdge
	for _, ne := range edges {
		parent, err := g.NodeFromID(ne.ParentID)
		if err != nil {
			return err
		}
		for _, cw := range ne.Children {
			child, err := g.NodeFromID(cw.ChildID)
			if err != nil {
				return err
			}

			cost, err := energyCost(parent.Pos, child.Pos)
			if err != nil {
				if errors.Is(err, errUndefinedSlope) {
					continue
				}
				return err
			}

			layer = append(layer, spatialgraph.LayerEdge{ParentID: ne.ParentID, ChildID: cw.ChildID, Weight: cost})
		}
	}

	return g.AttachCostLayer("energy", layer)
}

func energyCost(from, to vec3.Point) (float32, error) {
	horiz := math.Hypot(float64(to.X-from.X), float64(to.Y-from.Y))
	if horiz == 0 {
		return 0, errUndefinedSlope
	}
	grade := float64(to.Z-from.Z) / horiz
	run := math.Hypot(horiz, float64(to.Z-from.Z))

	return float32(energyPoly(grade) * run), nil
}
