package costs

import (
	"math"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/mesh"
	"github.com/reachlab/spatialgraph/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

// halfSampleWidth is the perpendicular offset, on each side of an edge's
// midpoint, used to sample the terrain slope across the direction of
// travel.
const halfSampleWidth = 0.25

// GenerateCrossSlope writes a "cross_slope" layer over g's default-layer
// topology. Each edge's cost is the terrain slope angle, in degrees,
// sampled perpendicular to the walking direction at the edge's midpoint
// against rt. Edges for which either perpendicular sample misses the mesh,
// or which have zero horizontal run, are omitted.
func GenerateCrossSlope(g *spatialgraph.Graph, rt *mesh.Mesh) error {
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

			slope, ok := crossSlope(rt, parent.Pos, child.Pos)
			if !ok {
				continue
			}

			layer = append(layer, spatialgraph.LayerEdge{ParentID: ne.ParentID, ChildID: cw.ChildID, Weight: slope})
		}
	}

	return g.AttachCostLayer("cross_slope", layer)
}

// crossSlope samples the mesh at two points offset perpendicular to the
// from→to direction by halfSampleWidth on either side of the midpoint,
// and returns the slope angle in degrees between them.
func crossSlope(rt *mesh.Mesh, from, to vec3.Point) (float32, bool) {
	dir := vec3.Point{X: to.X - from.X, Y: to.Y - from.Y, Z: 0}
	horiz := float32(math.Hypot(float64(dir.X), float64(dir.Y)))
	if horiz == 0 {
		return 0, false
	}
	perp := vec3.Point{X: -dir.Y / horiz, Y: dir.X / horiz}

	mid := vec3.Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2, Z: (from.Z + to.Z) / 2}
	left := vec3.Point{X: mid.X + perp.X*halfSampleWidth, Y: mid.Y + perp.Y*halfSampleWidth, Z: mid.Z}
	right := vec3.Point{X: mid.X - perp.X*halfSampleWidth, Y: mid.Y - perp.Y*halfSampleWidth, Z: mid.Z}

	lz, lok := sampleGround(rt, left)
	rz, rok := sampleGround(rt, right)
	if !lok || !rok {
		return 0, false
	}

	angle := math.Atan2(float64(lz-rz), 2*halfSampleWidth) * 180 / math.Pi

	return float32(angle), true
}

// sampleGround ray-casts straight down from well above p and returns the
// resulting z, reporting false on a miss.
func sampleGround(rt *mesh.Mesh, p vec3.Point) (float32, bool) {
	const probeHeight = 10.0
	origin := r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z) + probeHeight}
	hit := rt.Intersect(origin, r3.Vec{X: 0, Y: 0, Z: -1})
	if !hit.Hit {
		return 0, false
	}

	return float32(float64(p.Z) + probeHeight - float64(hit.Distance)), true
}
