// Package pathfinder computes shortest paths over a spatialgraph.Graph's
// compressed layers. The single-source runner is grounded on
// dijkstra/dijkstra.go's runner/nodePQ split (a lazy-decrease-key binary
// heap, pre-scan for negative weights, visited-set finalization); the
// deterministic child-id tie-break is grounded on gonum's
// graph/path/dijkstra.go distanceNode comparator shape. Multi-source and
// all-pairs queries parallelize the single-source runner across workers via
// internal/workerpool, each with private scratch state, matching the
// Graph's read-only-after-Compress contract.
package pathfinder
