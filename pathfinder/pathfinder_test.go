package pathfinder_test

import (
	"context"
	"testing"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/pathfinder"
	"github.com/reachlab/spatialgraph/vec3"
	"github.com/stretchr/testify/require"
)

func buildTriangleGraph(t *testing.T) *spatialgraph.Graph {
	t.Helper()
	g := spatialgraph.NewGraph()
	p0, p1, p2 := vec3.Point{}, vec3.Point{X: 1}, vec3.Point{X: 2}
	require.NoError(t, g.AddEdge(p0, p1, 2.5))
	require.NoError(t, g.AddEdge(p0, p2, 1.0))
	require.NoError(t, g.AddEdge(p1, p2, 0.5))
	require.NoError(t, g.Compress())

	return g
}

func TestDijkstraShortestPath_PrefersCheaperRoute(t *testing.T) {
	g := buildTriangleGraph(t)

	path, ok, err := pathfinder.DijkstraShortestPath(g, 0, 2, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 1.0, float64(path.TotalCost()), 1e-6)
	require.Equal(t, []int32{0, 2}, nodeIDs(path))
}

func TestDijkstraShortestPath_StartEqualsEnd(t *testing.T) {
	g := buildTriangleGraph(t)

	path, ok, err := pathfinder.DijkstraShortestPath(g, 1, 1, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, float32(0), path.TotalCost())
	require.Len(t, path.Members, 1)
}

func TestDijkstraShortestPath_Unreachable(t *testing.T) {
	g := spatialgraph.NewGraph()
	require.NoError(t, g.AddEdge(vec3.Point{}, vec3.Point{X: 1}, 1.0))
	g.EnsureNode(vec3.Point{X: 99}, spatialgraph.Walkable)
	require.NoError(t, g.Compress())

	_, ok, err := pathfinder.DijkstraShortestPath(g, 0, 2, "")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDijkstraAllToAll_K4UnitDistance(t *testing.T) {
	g := spatialgraph.NewGraph()
	pts := []vec3.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	for i := 0; i < len(pts); i++ {
		for j := 0; j < len(pts); j++ {
			if i != j {
				require.NoError(t, g.AddEdge(pts[i], pts[j], 1.0))
			}
		}
	}
	require.NoError(t, g.Compress())

	paths, oks, err := pathfinder.DijkstraAllToAll(context.Background(), g, "", 4)
	require.NoError(t, err)
	for i := range pts {
		for j := range pts {
			require.True(t, oks[i][j])
			if i == j {
				require.Empty(t, paths[i][j].TotalCost())
				require.Len(t, paths[i][j].Members, 1)
				continue
			}
			require.InDelta(t, 1.0, float64(paths[i][j].TotalCost()), 1e-6)
		}
	}
}

func TestDijkstraShortestPathMulti_ShapeMismatch(t *testing.T) {
	g := buildTriangleGraph(t)
	_, _, err := pathfinder.DijkstraShortestPathMulti(context.Background(), g, []int32{0}, []int32{0, 1}, "", 2)
	require.ErrorIs(t, err, pathfinder.ErrShapeMismatch)
}

func TestDijkstraShortestPathMulti_PairsByIndex(t *testing.T) {
	g := buildTriangleGraph(t)
	paths, oks, err := pathfinder.DijkstraShortestPathMulti(context.Background(), g, []int32{0, 0}, []int32{1, 2}, "", 2)
	require.NoError(t, err)
	require.True(t, oks[0])
	require.True(t, oks[1])
	require.InDelta(t, 2.5, float64(paths[0].TotalCost()), 1e-6)
	require.InDelta(t, 1.0, float64(paths[1].TotalCost()), 1e-6)
}

func nodeIDs(p pathfinder.Path) []int32 {
	out := make([]int32, len(p.Members))
	for i, m := range p.Members {
		out[i] = m.NodeID
	}

	return out
}
