package mesh

import (
	"context"
	"math"

	"github.com/reachlab/spatialgraph/internal/workerpool"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hit describes the outcome of a single ray query.
type Hit struct {
	Hit        bool
	Distance   float32
	TriangleID int32
	MeshID     int32 // always 0; reserved for future multi-mesh scenes
}

// Intersect returns the closest-hit result along the unit ray from origin
// in direction. direction is assumed normalized; behavior is undefined
// otherwise (matching the contract's "unit ray" precondition).
func (m *Mesh) Intersect(origin, direction r3.Vec) Hit {
	return m.traverse(origin, direction, math.MaxFloat64, false)
}

// Occluded reports whether any triangle lies along the ray within
// [0, maxDistance].
func (m *Mesh) Occluded(origin, direction r3.Vec, maxDistance float32) bool {
	h := m.traverse(origin, direction, float64(maxDistance), true)
	return h.Hit
}

// FireBundle evaluates Intersect for every (origins[i], directions[i]) pair
// concurrently, preserving input order in the returned slice. len(origins)
// must equal len(directions).
func (m *Mesh) FireBundle(ctx context.Context, origins, directions []r3.Vec, workers int) ([]Hit, error) {
	n := len(origins)
	results := make([]Hit, n)

	err := workerpool.Run(ctx, n, workers, func(i int) error {
		results[i] = m.Intersect(origins[i], directions[i])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// traverse walks the BVH from the root, descending into children whose box
// the ray's slab test does not reject, and returns the closest (or, in
// anyHit mode, first found) triangle hit within [0, maxDist].
func (m *Mesh) traverse(origin, direction r3.Vec, maxDist float64, anyHit bool) Hit {
	best := Hit{Distance: float32(maxDist)}
	bestDist := maxDist
	inv := r3.Vec{X: safeInv(direction.X), Y: safeInv(direction.Y), Z: safeInv(direction.Z)}

	var walk func(node int) bool // returns true if anyHit short-circuit fired
	walk = func(node int) bool {
		n := m.nodes[node]
		if !slabHit(n.box, origin, inv, bestDist) {
			return false
		}
		if n.left == -1 {
			for k := int32(0); k < n.triCount; k++ {
				tri := m.triOrder[n.triStart+k]
				if dist, ok := m.intersectTriangle(tri, origin, direction, bestDist); ok {
					if anyHit {
						best = Hit{Hit: true, Distance: float32(dist), TriangleID: tri}
						return true
					}
					bestDist = dist
					best = Hit{Hit: true, Distance: float32(dist), TriangleID: tri}
				}
			}
			return false
		}
		if walk(n.left) {
			return true
		}
		return walk(n.right)
	}
	walk(m.root)

	return best
}

func safeInv(v float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}
	return 1 / v
}

// slabHit is the standard ray/AABB slab test, bounded above by maxDist.
func slabHit(box r3.Box, origin, inv r3.Vec, maxDist float64) bool {
	tmin, tmax := 0.0, maxDist

	for axis := 0; axis < 3; axis++ {
		o := axisValue(origin, axis)
		d := axisValue(inv, axis)
		lo := (axisValue(box.Min, axis) - o) * d
		hi := (axisValue(box.Max, axis) - o) * d
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo > tmin {
			tmin = lo
		}
		if hi < tmax {
			tmax = hi
		}
		if tmin > tmax {
			return false
		}
	}

	return true
}

// intersectTriangle is the Möller–Trumbore ray-triangle test, returning the
// hit distance when it lies in (SelfIntersectEpsilon, maxDist].
func (m *Mesh) intersectTriangle(tri int32, origin, direction r3.Vec, maxDist float64) (float64, bool) {
	a := m.vertices[m.indices[3*tri]]
	b := m.vertices[m.indices[3*tri+1]]
	c := m.vertices[m.indices[3*tri+2]]

	e1 := r3.Sub(b, a)
	e2 := r3.Sub(c, a)
	h := r3.Cross(direction, e2)
	det := r3.Dot(e1, h)
	if math.Abs(det) < 1e-12 {
		return 0, false
	}
	invDet := 1 / det

	s := r3.Sub(origin, a)
	u := invDet * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := r3.Cross(s, e1)
	v := invDet * r3.Dot(direction, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := invDet * r3.Dot(e2, q)
	if t <= SelfIntersectEpsilon || t > maxDist {
		return 0, false
	}

	return t, true
}
