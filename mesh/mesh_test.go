package mesh_test

import (
	"context"
	"testing"

	"github.com/reachlab/spatialgraph/mesh"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// singleQuad is a single unit quad (two triangles) lying in the z=0 plane,
// spanning [-1,1] in x and y.
func singleQuad() (verts []r3.Vec, idx []int32) {
	verts = []r3.Vec{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: -1, Y: 1, Z: 0},
	}
	idx = []int32{0, 1, 2, 0, 2, 3}

	return verts, idx
}

func TestBuild_RejectsEmptyIndices(t *testing.T) {
	_, err := mesh.Build([]r3.Vec{{}}, nil)
	require.ErrorIs(t, err, mesh.ErrInvalidMesh)
}

func TestBuild_RejectsOutOfRangeIndex(t *testing.T) {
	verts, idx := singleQuad()
	idx[0] = int32(len(verts))
	_, err := mesh.Build(verts, idx)
	require.ErrorIs(t, err, mesh.ErrInvalidMesh)
}

func TestIntersect_HitsFromAbove(t *testing.T) {
	verts, idx := singleQuad()
	m, err := mesh.Build(verts, idx)
	require.NoError(t, err)

	hit := m.Intersect(r3.Vec{X: 0, Y: 0, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1})
	require.True(t, hit.Hit)
	require.InDelta(t, 5.0, float64(hit.Distance), 1e-5)
}

func TestIntersect_MissesParallelRay(t *testing.T) {
	verts, idx := singleQuad()
	m, err := mesh.Build(verts, idx)
	require.NoError(t, err)

	hit := m.Intersect(r3.Vec{X: 0, Y: 0, Z: 5}, r3.Vec{X: 1, Y: 0, Z: 0})
	require.False(t, hit.Hit)
}

func TestOccluded_RespectsMaxDistance(t *testing.T) {
	verts, idx := singleQuad()
	m, err := mesh.Build(verts, idx)
	require.NoError(t, err)

	require.False(t, m.Occluded(r3.Vec{X: 0, Y: 0, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1}, 2))
	require.True(t, m.Occluded(r3.Vec{X: 0, Y: 0, Z: 5}, r3.Vec{X: 0, Y: 0, Z: -1}, 10))
}

func TestFireBundle_PreservesOrder(t *testing.T) {
	verts, idx := singleQuad()
	m, err := mesh.Build(verts, idx)
	require.NoError(t, err)

	origins := []r3.Vec{{X: 0, Y: 0, Z: 5}, {X: 0, Y: 0, Z: 3}, {X: 10, Y: 10, Z: 5}}
	dirs := []r3.Vec{{X: 0, Y: 0, Z: -1}, {X: 0, Y: 0, Z: -1}, {X: 0, Y: 0, Z: -1}}

	hits, err := m.FireBundle(context.Background(), origins, dirs, 4)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	require.True(t, hits[0].Hit)
	require.InDelta(t, 5.0, float64(hits[0].Distance), 1e-5)
	require.True(t, hits[1].Hit)
	require.InDelta(t, 3.0, float64(hits[1].Distance), 1e-5)
	require.False(t, hits[2].Hit)
}
