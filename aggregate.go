// File: aggregate.go
// Role: AggregateGraph, grounded on core/api.go's Stats() row-scan style and
// matrix's (now removed) per-row reduction helpers.
package spatialgraph

// AggregateGraph reduces each node's incident default-layer edge weights to
// a single f32 via agg. When directed is true, only outgoing edges count;
// otherwise outgoing ∪ incoming, each neighbor counted once (see
// GetUndirectedEdges). Average on an isolated node yields 0 by convention
// (spec.md §9 Open Questions).
func (g *Graph) AggregateGraph(agg Aggregation, directed bool) ([]float32, error) {
	if agg != Sum && agg != Average && agg != Count {
		return nil, ErrUnknownAggregation
	}
	m, err := g.CSR("")
	if err != nil {
		return nil, err
	}

	out := make([]float32, m.Rows)
	for i := int32(0); i < m.Rows; i++ {
		var edges []ChildWeight
		if directed {
			edges, err = g.EdgesOf(i)
		} else {
			edges, err = g.GetUndirectedEdges(i)
		}
		if err != nil {
			return nil, err
		}

		switch agg {
		case Sum:
			var sum float32
			for _, e := range edges {
				sum += e.Weight
			}
			out[i] = sum
		case Count:
			out[i] = float32(len(edges))
		case Average:
			if len(edges) == 0 {
				out[i] = 0 // convention: avoid NaN from 0/0
				continue
			}
			var sum float32
			for _, e := range edges {
				sum += e.Weight
			}
			out[i] = sum / float32(len(edges))
		}
	}

	return out, nil
}
