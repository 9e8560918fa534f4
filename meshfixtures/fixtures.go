package meshfixtures

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrTooSmall is returned by constructors given a dimension below their
// required minimum.
var ErrTooSmall = errors.New("meshfixtures: dimension too small")

// FlatPlane returns a (size-1)×(size-1) grid of unit quads (two triangles
// each) over size×size vertices, lying in the z=0 plane and spanning
// [0,size-1] in x and y. size must be at least 2.
func FlatPlane(size int) (vertices []r3.Vec, indices []int32, err error) {
	if size < 2 {
		return nil, nil, ErrTooSmall
	}

	vertices = make([]r3.Vec, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			vertices = append(vertices, r3.Vec{X: float64(x), Y: float64(y), Z: 0})
		}
	}

	idx := func(x, y int) int32 { return int32(y*size + x) }
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			a, b, c, d := idx(x, y), idx(x+1, y), idx(x+1, y+1), idx(x, y+1)
			indices = append(indices, a, b, c, a, c, d)
		}
	}

	return vertices, indices, nil
}

// Staircase returns steps steps of width stepWidth and the given riser
// height, running along +x, each tread a flat quad. steps must be at
// least 1.
func Staircase(steps int, stepWidth, riserHeight float64) (vertices []r3.Vec, indices []int32, err error) {
	if steps < 1 {
		return nil, nil, ErrTooSmall
	}

	for s := 0; s < steps; s++ {
		x0 := float64(s) * stepWidth
		x1 := x0 + stepWidth
		z := float64(s) * riserHeight

		base := int32(len(vertices))
		vertices = append(vertices,
			r3.Vec{X: x0, Y: 0, Z: z},
			r3.Vec{X: x1, Y: 0, Z: z},
			r3.Vec{X: x1, Y: 1, Z: z},
			r3.Vec{X: x0, Y: 1, Z: z},
		)
		indices = append(indices,
			base, base + 1, base + 2,
			base, base + 2, base + 3,
		)
	}

	return vertices, indices, nil
}

// TwoPlanesWithRamp returns two flat planes at z=0 and z=height joined by
// a single ramp segment of the given run length (so the ramp's slope is
// atan(height/run)).
func TwoPlanesWithRamp(planeSize int, height, run float64) (vertices []r3.Vec, indices []int32, err error) {
	if planeSize < 2 {
		return nil, nil, ErrTooSmall
	}

	lowerV, lowerI, err := FlatPlane(planeSize)
	if err != nil {
		return nil, nil, err
	}
	vertices = append(vertices, lowerV...)
	indices = append(indices, lowerI...)

	rampBase := int32(len(vertices))
	x0 := float64(planeSize - 1)
	x1 := x0 + run
	vertices = append(vertices,
		r3.Vec{X: x0, Y: 0, Z: 0},
		r3.Vec{X: x1, Y: 0, Z: height},
		r3.Vec{X: x1, Y: float64(planeSize - 1), Z: height},
		r3.Vec{X: x0, Y: float64(planeSize - 1), Z: 0},
	)
	indices = append(indices, rampBase, rampBase+1, rampBase+2, rampBase, rampBase+2, rampBase+3)

	upperBase := int32(len(vertices))
	upperV, upperI, err := FlatPlane(planeSize)
	if err != nil {
		return nil, nil, err
	}
	for i := range upperV {
		upperV[i].X += x1
		upperV[i].Z = height
	}
	vertices = append(vertices, upperV...)
	for _, i := range upperI {
		indices = append(indices, i+upperBase)
	}

	return vertices, indices, nil
}

// HollowCube returns the six inward-facing walls of an axis-aligned cube
// of the given half-extent, centered at the origin — a closed room whose
// interior a View-Analysis ray bundle can probe.
func HollowCube(halfExtent float64) (vertices []r3.Vec, indices []int32, err error) {
	if halfExtent <= 0 {
		return nil, nil, ErrTooSmall
	}

	h := halfExtent
	corners := []r3.Vec{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	vertices = append(vertices, corners...)

	// Each face wound so its normal points into the cube's interior.
	faces := [6][4]int32{
		{0, 1, 2, 3}, // bottom, normal +z
		{4, 7, 6, 5}, // top, normal -z
		{0, 4, 5, 1}, // front, normal +y
		{3, 2, 6, 7}, // back, normal -y
		{0, 3, 7, 4}, // left, normal +x
		{1, 5, 6, 2}, // right, normal -x
	}
	for _, f := range faces {
		indices = append(indices, f[0], f[1], f[2], f[0], f[2], f[3])
	}

	return vertices, indices, nil
}
