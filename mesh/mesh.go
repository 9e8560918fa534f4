package mesh

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidMesh reports an out-of-range index or a triangle count of zero.
var ErrInvalidMesh = errors.New("mesh: invalid mesh")

// SelfIntersectEpsilon is the minimum hit distance: triangle intersections
// at a distance at or below it are ignored, which keeps a ray starting
// exactly on a triangle from re-hitting its own face. The ray origin itself
// is not moved along the surface normal.
const SelfIntersectEpsilon = 1e-4

// leafSize bounds the number of triangles held directly by a BVH leaf
// before the builder splits again.
const leafSize = 4

// Mesh is an immutable indexed triangle mesh plus its BVH. The zero value
// is not usable; build one with Build.
type Mesh struct {
	vertices []r3.Vec
	indices  []int32 // flattened triples, len == 3*triangleCount
	nodes    []bvhNode
	triOrder []int32 // leaf triangle ids, referenced by bvhNode.triStart/triCount
	root     int
}

type bvhNode struct {
	box         r3.Box
	left, right int   // child node indices; -1 marks a leaf
	triStart    int32 // index into triOrder, leaf only
	triCount    int32
}

// Build constructs the BVH over vertices/indices. indices is a flattened
// list of triangle-vertex-index triples (len(indices) must be a nonzero
// multiple of 3, and every value in [0, len(vertices))).
func Build(vertices []r3.Vec, indices []int32) (*Mesh, error) {
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, ErrInvalidMesh
	}
	for _, idx := range indices {
		if idx < 0 || int(idx) >= len(vertices) {
			return nil, ErrInvalidMesh
		}
	}

	triCount := len(indices) / 3
	centroids := make([]r3.Vec, triCount)
	boxes := make([]r3.Box, triCount)
	order := make([]int32, triCount)
	for t := 0; t < triCount; t++ {
		a := vertices[indices[3*t]]
		b := vertices[indices[3*t+1]]
		c := vertices[indices[3*t+2]]
		boxes[t] = triangleBox(a, b, c)
		centroids[t] = r3.Scale(1.0/3.0, r3.Add(r3.Add(a, b), c))
		order[t] = int32(t)
	}

	m := &Mesh{vertices: vertices, indices: indices}
	bld := &builder{boxes: boxes, centroids: centroids}
	m.root = bld.split(order)
	m.nodes = bld.nodes
	m.triOrder = bld.triOrder

	return m, nil
}

// builder accumulates the BVH node arena and leaf permutation during a
// single recursive Build call.
type builder struct {
	boxes     []r3.Box
	centroids []r3.Vec
	nodes     []bvhNode
	triOrder  []int32
}

func (b *builder) split(order []int32) int {
	box := unionAll(b.boxes, order)

	if len(order) <= leafSize {
		start := int32(len(b.triOrder))
		b.triOrder = append(b.triOrder, order...)
		b.nodes = append(b.nodes, bvhNode{box: box, left: -1, right: -1, triStart: start, triCount: int32(len(order))})

		return len(b.nodes) - 1
	}

	axis := longestAxis(box)
	sort.Slice(order, func(i, j int) bool {
		return axisValue(b.centroids[order[i]], axis) < axisValue(b.centroids[order[j]], axis)
	})
	mid := len(order) / 2

	leftIdx := b.split(order[:mid])
	rightIdx := b.split(order[mid:])

	b.nodes = append(b.nodes, bvhNode{box: box, left: leftIdx, right: rightIdx, triStart: -1, triCount: 0})

	return len(b.nodes) - 1
}

func unionAll(boxes []r3.Box, order []int32) r3.Box {
	box := boxes[order[0]]
	for _, t := range order[1:] {
		box = box.Union(boxes[t])
	}

	return box
}

func longestAxis(b r3.Box) int {
	size := b.Size()
	axis := 0
	longest := size.X
	if size.Y > longest {
		longest = size.Y
		axis = 1
	}
	if size.Z > longest {
		axis = 2
	}

	return axis
}

func axisValue(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func triangleBox(a, b, c r3.Vec) r3.Box {
	box := r3.Box{Min: a, Max: a}
	for _, p := range [2]r3.Vec{b, c} {
		box.Min = r3.Vec{X: min64(box.Min.X, p.X), Y: min64(box.Min.Y, p.Y), Z: min64(box.Min.Z, p.Z)}
		box.Max = r3.Vec{X: max64(box.Max.X, p.X), Y: max64(box.Max.Y, p.Y), Z: max64(box.Max.Z, p.Z)}
	}

	return box
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
