package generator

import (
	"context"
	"errors"
	"math"
	"runtime"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/internal/workerpool"
	"github.com/reachlab/spatialgraph/mesh"
	"github.com/reachlab/spatialgraph/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNoGround is returned when start cannot be projected onto the mesh: the
// downward ray-cast from start hits no triangle. The drop distance for this
// projection is not limited by DownStep.
var ErrNoGround = errors.New("generator: no ground below start")

// Config holds the Generate parameters enumerated by the breadth-frontier
// expansion algorithm. The zero value is not usable; build one with
// NewConfig, which applies sensible defaults then any Options.
type Config struct {
	Spacing            vec3.Point
	MaxNodes           int // 0 = unbounded
	UpStep, DownStep   float32
	UpSlopeDeg         float32
	DownSlopeDeg       float32
	MaxStepConnections int
	MinConnections     int
	CoreCount          int // <=0 = runtime.GOMAXPROCS(0)
}

// Option customizes a Config produced by NewConfig.
type Option func(*Config)

// WithSpacing sets the grid step between candidate children.
func WithSpacing(p vec3.Point) Option { return func(c *Config) { c.Spacing = p } }

// WithMaxNodes bounds the discovered node count (0 = unbounded).
func WithMaxNodes(n int) Option { return func(c *Config) { c.MaxNodes = n } }

// WithStepLimits sets the max vertical rise/drop permitted across an edge.
func WithStepLimits(up, down float32) Option {
	return func(c *Config) { c.UpStep, c.DownStep = up, down }
}

// WithSlopeLimits sets the max permissible slope in degrees, going up/down.
func WithSlopeLimits(upDeg, downDeg float32) Option {
	return func(c *Config) { c.UpSlopeDeg, c.DownSlopeDeg = upDeg, downDeg }
}

// WithMaxStepConnections sets how many ray-drop attempts, each from a
// progressively higher origin, are made per compass direction before that
// direction is given up.
func WithMaxStepConnections(n int) Option { return func(c *Config) { c.MaxStepConnections = n } }

// WithMinConnections sets the minimum outgoing-edge count a node must have
// to survive the post-expansion pruning pass.
func WithMinConnections(n int) Option { return func(c *Config) { c.MinConnections = n } }

// WithCoreCount sets the worker-parallelism hint (<=0 defers to
// runtime.GOMAXPROCS(0)).
func WithCoreCount(n int) Option { return func(c *Config) { c.CoreCount = n } }

// NewConfig applies opts over a default Config: unit spacing, unbounded
// node count, 0.3 up/down step, 45° up/down slope, one step connection per
// direction, no minimum connections, and GOMAXPROCS worker count.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Spacing:            vec3.Point{X: 1, Y: 1, Z: 1},
		MaxNodes:           0,
		UpStep:             0.3,
		DownStep:           0.3,
		UpSlopeDeg:         45,
		DownSlopeDeg:       45,
		MaxStepConnections: 1,
		MinConnections:     0,
		CoreCount:          0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// compassOffsets are the 8 horizontal neighbor directions tried per node,
// in a fixed order so that, combined with the Graph's single id_map owner,
// expansion is deterministic for a given seed and config regardless of
// worker scheduling.
var compassOffsets = [8][2]float32{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// frontierEntry is a node pending expansion.
type frontierEntry struct {
	id  int32
	pos vec3.Point
}

// candidateResult is one compass direction's ray-drop outcome for a single
// frontier node. Computed by a worker; it touches only rt (read-only) and
// cfg, never the Graph, so any number of these can run concurrently.
type candidateResult struct {
	pos vec3.Point
	ok  bool
}

// Generate builds a Graph by breadth-frontier expansion from start against
// rt. It returns ErrNoGround if start has no ground, and ctx.Err() if ctx
// fires before expansion completes.
//
// Per frontier round, each node's 8 compass directions are ray-cast and
// validated by a worker in internal/workerpool — the expensive, read-only
// part of the round. The results are then drained into the Graph in
// canonical (frontier, direction) order on the calling goroutine, so node
// ids and edges are assigned exactly as a sequential run would assign them,
// independent of how the workers were scheduled. ctx is polled once per
// round, between batches, never mid-ray-cast.
func Generate(ctx context.Context, rt *mesh.Mesh, start vec3.Point, cfg Config) (*spatialgraph.Graph, error) {
	g := spatialgraph.NewGraph()

	seedPos, ok := projectDown(rt, start, math.MaxFloat32)
	if !ok {
		return nil, ErrNoGround
	}
	seedID := g.EnsureNode(seedPos, spatialgraph.Seed)

	workers := cfg.CoreCount
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	visitEps := 0.5 * minSpacing(cfg.Spacing)
	visited := map[vec3.Key]struct{}{vec3.Quantize(seedPos, visitEps): {}}
	frontier := []frontierEntry{{id: seedID, pos: seedPos}}
	nodeCount := 1

	for len(frontier) > 0 {
		if cfg.MaxNodes > 0 && nodeCount >= cfg.MaxNodes {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch := frontier
		results := make([][8]candidateResult, len(batch))
		err := workerpool.Run(ctx, len(batch), workers, func(i int) error {
			results[i] = findCandidates(rt, batch[i].pos, cfg)
			return nil
		})
		if err != nil {
			return nil, err
		}

		var next []frontierEntry
	drain:
		for i, cur := range batch {
			for _, cand := range results[i] {
				if !cand.ok {
					continue
				}

				key := vec3.Quantize(cand.pos, visitEps)
				if _, seen := visited[key]; seen {
					if cid, ok := g.LookupNode(cand.pos); ok {
						linkBidirectional(g, cur.id, cid, cur.pos, cand.pos)
					}
					continue
				}
				visited[key] = struct{}{}

				cid := g.EnsureNode(cand.pos, spatialgraph.Walkable)
				linkBidirectional(g, cur.id, cid, cur.pos, cand.pos)

				nodeCount++
				next = append(next, frontierEntry{id: cid, pos: cand.pos})

				if cfg.MaxNodes > 0 && nodeCount >= cfg.MaxNodes {
					break drain
				}
			}
		}
		frontier = next
	}

	if err := g.Compress(); err != nil {
		return nil, err
	}
	if cfg.MinConnections > 0 {
		if err := pruneByDegree(g, cfg.MinConnections); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func linkBidirectional(g *spatialgraph.Graph, fromID, toID int32, from, to vec3.Point) {
	w := vec3.Distance(from, to)
	_ = g.AddEdgeByID(fromID, toID, w)
	_ = g.AddEdgeByID(toID, fromID, w)
}

func minSpacing(s vec3.Point) float32 {
	m := s.X
	if s.Y < m {
		m = s.Y
	}
	if m <= 0 {
		m = 1
	}

	return m
}

// findCandidates ray-casts every compass direction from pos, applying the
// mesh-bound ray-drop procedure of findCandidate to each. Read-only over rt
// and cfg: safe to call from multiple goroutines concurrently, one per
// frontier node.
func findCandidates(rt *mesh.Mesh, pos vec3.Point, cfg Config) [8]candidateResult {
	var out [8]candidateResult
	for d, off := range compassOffsets {
		if p, ok := findCandidate(rt, pos, off, cfg); ok {
			out[d] = candidateResult{pos: p, ok: true}
		}
	}

	return out
}

// findCandidate applies the mesh-bound ray-drop procedure: offset (x,y) by
// spacing in direction off, ray-cast downward from up to MaxStepConnections
// progressively higher origins, and validate the resulting step/slope.
func findCandidate(rt *mesh.Mesh, from vec3.Point, off [2]float32, cfg Config) (vec3.Point, bool) {
	dx := off[0] * cfg.Spacing.X
	dy := off[1] * cfg.Spacing.Y
	horiz := float32(math.Hypot(float64(dx), float64(dy)))
	if horiz == 0 {
		return vec3.Point{}, false
	}

	for attempt := 0; attempt < maxInt(cfg.MaxStepConnections, 1); attempt++ {
		originZ := from.Z + cfg.UpStep + float32(attempt)*cfg.UpStep
		origin := vec3.Point{X: from.X + dx, Y: from.Y + dy, Z: originZ}

		hit, ok := projectDown(rt, origin, cfg.UpStep+cfg.DownStep+float32(attempt)*cfg.UpStep)
		if !ok {
			continue
		}

		dz := hit.Z - from.Z
		if dz > 0 && dz > cfg.UpStep {
			continue
		}
		if dz < 0 && -dz > cfg.DownStep {
			continue
		}

		slope := float32(math.Atan2(float64(dz), float64(horiz)) * 180 / math.Pi)
		if dz > 0 && slope > cfg.UpSlopeDeg {
			continue
		}
		if dz < 0 && -slope > cfg.DownSlopeDeg {
			continue
		}

		return hit, true
	}

	return vec3.Point{}, false
}

// projectDown ray-casts straight down from p and returns the hit point,
// reporting false if nothing lies within maxDrop below p.
func projectDown(rt *mesh.Mesh, p vec3.Point, maxDrop float32) (vec3.Point, bool) {
	origin := r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
	dir := r3.Vec{X: 0, Y: 0, Z: -1}

	hit := rt.Intersect(origin, dir)
	if !hit.Hit || hit.Distance > maxDrop {
		return vec3.Point{}, false
	}

	return vec3.Point{X: p.X, Y: p.Y, Z: p.Z - hit.Distance}, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// pruneByDegree drops every node whose undirected connection count is
// below min, together with its edges, and re-compresses. Surviving edges
// between two surviving nodes are preserved under their remapped ids.
func pruneByDegree(g *spatialgraph.Graph, min int) error {
	nodes := g.Nodes()
	drop := make(map[int32]struct{})
	for i := range nodes {
		edges, err := g.GetUndirectedEdges(int32(i))
		if err != nil {
			return err
		}
		if len(edges) < min {
			drop[int32(i)] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return nil
	}

	surviving := make([]spatialgraph.NodeEdges, 0, len(nodes))
	for i := range nodes {
		if _, dropped := drop[int32(i)]; dropped {
			continue
		}
		edges, err := g.EdgesOf(int32(i))
		if err != nil {
			return err
		}
		surviving = append(surviving, spatialgraph.NodeEdges{ParentID: int32(i), Children: edges})
	}

	g.Clear()
	idRemap := make(map[int32]int32, len(nodes))
	for i, n := range nodes {
		if _, dropped := drop[int32(i)]; dropped {
			continue
		}
		idRemap[int32(i)] = g.EnsureNode(n.Pos, n.Type)
	}
	for _, ne := range surviving {
		newParent := idRemap[ne.ParentID]
		for _, c := range ne.Children {
			if _, dropped := drop[c.ChildID]; dropped {
				continue
			}
			if err := g.AddEdgeByID(newParent, idRemap[c.ChildID], c.Weight); err != nil {
				return err
			}
		}
	}

	return g.Compress()
}
