package generator_test

import (
	"context"
	"testing"

	"github.com/reachlab/spatialgraph/generator"
	"github.com/reachlab/spatialgraph/mesh"
	"github.com/reachlab/spatialgraph/meshfixtures"
	"github.com/reachlab/spatialgraph/pathfinder"
	"github.com/reachlab/spatialgraph/vec3"
	"github.com/stretchr/testify/require"
)

func buildFlatPlane(t *testing.T, size int) *mesh.Mesh {
	t.Helper()
	v, idx, err := meshfixtures.FlatPlane(size)
	require.NoError(t, err)
	m, err := mesh.Build(v, idx)
	require.NoError(t, err)

	return m
}

func TestGenerate_FlatPlaneGridConnectivity(t *testing.T) {
	m := buildFlatPlane(t, 10)
	cfg := generator.NewConfig(
		generator.WithSpacing(vec3.Point{X: 1, Y: 1, Z: 1}),
		generator.WithStepLimits(0.1, 0.1),
		generator.WithSlopeLimits(45, 45),
		generator.WithMaxNodes(0),
	)

	g, err := generator.Generate(context.Background(), m, vec3.Point{X: 4, Y: 4, Z: 5}, cfg)
	require.NoError(t, err)

	nodes := g.Nodes()
	require.Len(t, nodes, 100)

	interiorDegrees := 0
	cornerFound := false
	for i := range nodes {
		edges, err := g.GetUndirectedEdges(int32(i))
		require.NoError(t, err)
		switch len(edges) {
		case 8:
			interiorDegrees++
		case 3:
			cornerFound = true
		}
	}
	require.Greater(t, interiorDegrees, 0)
	require.True(t, cornerFound)
}

func TestGenerate_MaxNodesOneReturnsJustSeed(t *testing.T) {
	m := buildFlatPlane(t, 10)
	cfg := generator.NewConfig(generator.WithMaxNodes(1))

	g, err := generator.Generate(context.Background(), m, vec3.Point{X: 4, Y: 4, Z: 5}, cfg)
	require.NoError(t, err)

	nodes := g.Nodes()
	require.Len(t, nodes, 1)

	edges, err := g.GetEdges()
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestGenerate_NoGroundFails(t *testing.T) {
	m := buildFlatPlane(t, 10)
	cfg := generator.NewConfig()

	_, err := generator.Generate(context.Background(), m, vec3.Point{X: 100, Y: 100, Z: 5}, cfg)
	require.ErrorIs(t, err, generator.ErrNoGround)
}

func TestGenerate_RespectsCanceledContext(t *testing.T) {
	m := buildFlatPlane(t, 10)
	cfg := generator.NewConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generator.Generate(ctx, m, vec3.Point{X: 4, Y: 4, Z: 5}, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_StaircaseStepHeightThreshold(t *testing.T) {
	v, idx, err := meshfixtures.Staircase(5, 1, 0.15)
	require.NoError(t, err)
	m, err := mesh.Build(v, idx)
	require.NoError(t, err)

	permissive := generator.NewConfig(
		generator.WithSpacing(vec3.Point{X: 1, Y: 0.5, Z: 1}),
		generator.WithStepLimits(0.2, 0.2),
		generator.WithSlopeLimits(80, 80),
	)
	g, err := generator.Generate(context.Background(), m, vec3.Point{X: 0.5, Y: 0.5, Z: 5}, permissive)
	require.NoError(t, err)
	require.Greater(t, len(g.Nodes()), 1)

	strict := generator.NewConfig(
		generator.WithSpacing(vec3.Point{X: 1, Y: 0.5, Z: 1}),
		generator.WithStepLimits(0.1, 0.1),
		generator.WithSlopeLimits(80, 80),
	)
	g2, err := generator.Generate(context.Background(), m, vec3.Point{X: 0.5, Y: 0.5, Z: 5}, strict)
	require.NoError(t, err)

	for i := range g2.Nodes() {
		edges, err := g2.GetUndirectedEdges(int32(i))
		require.NoError(t, err)
		for _, e := range edges {
			other, err := g2.NodeFromID(e.ChildID)
			require.NoError(t, err)
			this, err := g2.NodeFromID(int32(i))
			require.NoError(t, err)
			require.InDelta(t, 0, float64(this.Pos.Z-other.Pos.Z), 1e-6)
		}
	}
}

// TestGenerate_RampJoinsTwoLevels exercises spec.md §8 end-to-end scenario
// 2: two parallel planes joined by a single ramp segment. A Generator
// configured with step/slope limits permissive enough for the ramp's grade
// should discover nodes on both planes, and the Pathfinder's cheapest route
// between a lower-plane node and an upper-plane node should cross the ramp,
// since it is the only connected route between levels.
func TestGenerate_RampJoinsTwoLevels(t *testing.T) {
	v, idx, err := meshfixtures.TwoPlanesWithRamp(6, 2, 2.86)
	require.NoError(t, err)
	m, err := mesh.Build(v, idx)
	require.NoError(t, err)

	// atan(2/2.86) ≈ 35°; 40° of slope headroom clears the ramp, and a 2.1
	// step limit admits the 2/2.86 rise per unit of run between samples.
	cfg := generator.NewConfig(
		generator.WithSpacing(vec3.Point{X: 1, Y: 1, Z: 1}),
		generator.WithStepLimits(2.1, 2.1),
		generator.WithSlopeLimits(40, 40),
	)

	g, err := generator.Generate(context.Background(), m, vec3.Point{X: 2, Y: 2, Z: 5}, cfg)
	require.NoError(t, err)

	nodes := g.Nodes()
	require.Greater(t, len(nodes), 1)

	var lowerID, upperID int32 = -1, -1
	for i, n := range nodes {
		switch {
		case n.Pos.Z < 1 && lowerID == -1:
			lowerID = int32(i)
		case n.Pos.Z > 1.9 && upperID == -1:
			upperID = int32(i)
		}
	}
	require.NotEqual(t, int32(-1), lowerID, "expected a discovered node on the lower plane")
	require.NotEqual(t, int32(-1), upperID, "expected a discovered node on the upper plane")

	path, ok, err := pathfinder.DijkstraShortestPath(g, lowerID, upperID, "")
	require.NoError(t, err)
	require.True(t, ok, "lower and upper planes should be connected via the ramp")

	crossedRamp := false
	for _, mem := range path.Members {
		n, err := g.NodeFromID(mem.NodeID)
		require.NoError(t, err)
		if n.Pos.Z > 0 && n.Pos.Z < 2 {
			crossedRamp = true
			break
		}
	}
	require.True(t, crossedRamp, "path between planes should pass through an intermediate ramp height")
}
