// Package generator builds a spatialgraph.Graph by breadth-frontier
// expansion from a seed position, ray-casting candidate neighbors against a
// mesh.Mesh. The frontier/visited-queue shape is grounded on
// gridgraph/expand.go's 0-1 BFS: a round of accepted-but-unexpanded nodes,
// a visited set keyed by a quantized planar position, and neighbor offsets
// generated up front. Configuration follows builder/config.go's functional
// options idiom.
//
// Each round's ray-casting is split across internal/workerpool, one worker
// per frontier node; the Graph's single id_map owner is only ever touched
// afterward, on the calling goroutine, draining worker results in
// canonical (frontier, direction) order so node ids come out identical to
// a fully sequential run regardless of scheduling. A context.Context is
// polled once per round, between batches, grounded on flow/dinic.go's
// ctx.Err() poll-between-phases idiom.
package generator
