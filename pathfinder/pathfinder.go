package pathfinder

import (
	"container/heap"
	"context"
	"errors"
	"math"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/internal/workerpool"
)

// ErrNoPath is the sentinel that names the "no path" outcome for status
// translation. No function in this package returns it: DijkstraShortestPath
// and the batch functions report an unreachable end through their ok
// returns.
var ErrNoPath = errors.New("pathfinder: no path")

// ErrNegativeWeight is returned when the chosen layer contains a negative
// edge weight; Dijkstra's correctness depends on non-negative weights.
var ErrNegativeWeight = errors.New("pathfinder: negative edge weight")

// ErrShapeMismatch is returned when starts and ends passed to
// DijkstraShortestPathMulti have different lengths.
var ErrShapeMismatch = errors.New("pathfinder: shape mismatch")

// PathMember is one stop along a Path. CostFromParent is the layer weight
// of the edge from the previous member to this one; it is 0 for the first
// member (the start node itself).
type PathMember struct {
	NodeID         int32
	CostFromParent float32
}

// Path is an ordered sequence of PathMembers from start to end, inclusive.
type Path struct {
	Members []PathMember
}

// TotalCost sums CostFromParent across the path.
func (p Path) TotalCost() float32 {
	var total float32
	for _, m := range p.Members {
		total += m.CostFromParent
	}

	return total
}

// DijkstraShortestPath finds the minimum-cost path from start to end over
// layer ("" selects the default layer). ok is false, with a zero Path and
// nil error, when end is unreachable from start.
func DijkstraShortestPath(g *spatialgraph.Graph, start, end int32, layer string) (Path, bool, error) {
	dist, prev, err := runDijkstra(g, start, layer)
	if err != nil {
		return Path{}, false, err
	}
	if math.IsInf(float64(dist[end]), 1) {
		return Path{}, false, nil
	}

	return reconstruct(prev, dist, start, end), true, nil
}

// DijkstraShortestPathMulti runs DijkstraShortestPath for each (starts[i],
// ends[i]) pair, in parallel across workers. len(starts) must equal
// len(ends).
func DijkstraShortestPathMulti(ctx context.Context, g *spatialgraph.Graph, starts, ends []int32, layer string, workers int) ([]Path, []bool, error) {
	if len(starts) != len(ends) {
		return nil, nil, ErrShapeMismatch
	}

	n := len(starts)
	paths := make([]Path, n)
	oks := make([]bool, n)

	err := workerpool.Run(ctx, n, workers, func(i int) error {
		p, ok, err := DijkstraShortestPath(g, starts[i], ends[i], layer)
		if err != nil {
			return err
		}
		paths[i], oks[i] = p, ok

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return paths, oks, nil
}

// DijkstraAllToAll computes the row-major |n|×|n| matrix of shortest paths,
// one Dijkstra run per source row, parallelized across workers. Entry
// (i,j) is the path from node i to node j; the diagonal (i,i) is the
// single-member path holding node i, with total cost 0.
func DijkstraAllToAll(ctx context.Context, g *spatialgraph.Graph, layer string, workers int) ([][]Path, [][]bool, error) {
	nodes := g.Nodes()
	n := len(nodes)

	paths := make([][]Path, n)
	oks := make([][]bool, n)
	for i := range paths {
		paths[i] = make([]Path, n)
		oks[i] = make([]bool, n)
	}

	err := workerpool.Run(ctx, n, workers, func(i int) error {
		dist, prev, err := runDijkstra(g, int32(i), layer)
		if err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if i == j {
				paths[i][j] = Path{Members: []PathMember{{NodeID: int32(i)}}}
				oks[i][j] = true
				continue
			}
			if math.IsInf(float64(dist[j]), 1) {
				continue
			}
			paths[i][j] = reconstruct(prev, dist, int32(i), int32(j))
			oks[i][j] = true
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return paths, oks, nil
}

// heapItem is a lazy-decrease-key priority queue entry: stale entries
// (superseded by a later, smaller-dist push for the same node) are
// detected and skipped at pop time via the visited set, not removed from
// the heap.
type heapItem struct {
	node int32
	dist float32
}

type nodePQ []heapItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node // deterministic tie-break: lower child-id first
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(heapItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runDijkstra computes single-source shortest distances and predecessors
// from start over layer. dist[v] is +Inf for unreachable v.
func runDijkstra(g *spatialgraph.Graph, start int32, layer string) ([]float32, []int32, error) {
	m, err := g.CSR(layer)
	if err != nil {
		return nil, nil, err
	}
	n := m.Rows
	for _, w := range m.Data {
		if w < 0 {
			return nil, nil, ErrNegativeWeight
		}
	}

	dist := make([]float32, n)
	prev := make([]int32, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = float32(math.Inf(1))
		prev[i] = -1
	}
	dist[start] = 0

	pq := &nodePQ{{node: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(heapItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		cols, weights, err := m.Row(u)
		if err != nil {
			return nil, nil, err
		}
		for k, v := range cols {
			w := weights[k]
			if w < 0 {
				return nil, nil, ErrNegativeWeight
			}
			nd := dist[u] + w
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, heapItem{node: v, dist: nd})
			}
		}
	}

	return dist, prev, nil
}

func reconstruct(prev []int32, dist []float32, start, end int32) Path {
	var chain []int32
	for v := end; v != start; v = prev[v] {
		chain = append(chain, v)
	}
	chain = append(chain, start)

	members := make([]PathMember, len(chain))
	for i := range chain {
		node := chain[len(chain)-1-i]
		members[i] = PathMember{NodeID: node}
		if i > 0 {
			members[i].CostFromParent = dist[node] - dist[members[i-1].NodeID]
		}
	}

	return Path{Members: members}
}
