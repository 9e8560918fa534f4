package matrix

import "sort"

// BuildCSR constructs a CSR of shape (rows, cols) from an unordered slice of
// Triplets, using the teacher pack's staged-construction discipline:
//
//  1. Validate shape and every triplet's weight.
//  2. Sort triplets by (Row, Col) so each row's entries land contiguous and
//     column-ascending — required for At's binary search and for Compress's
//     determinism guarantee.
//  3. Merge duplicate (Row, Col) keys last-write-wins: the dense adjacency
//     builder this is adapted from kept the *first* occurrence when
//     multi-edges were disallowed; here the Graph's compression contract
//     (spec.md §4.C) requires the opposite — the last triplet added for a
//     pair overrides any earlier one — so a stable sort preserving input
//     order lets "last seen after stable-sort" mean "last written".
//  4. Compact into Outer/Inner/Data.
//
// Complexity: O(T log T) for the sort, O(T) thereafter.
func BuildCSR(rows, cols int32, triplets []Triplet) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	for _, t := range triplets {
		if t.Weight != t.Weight { // NaN check without importing math
			return nil, ErrInvalidWeight
		}
	}

	// Stable sort by (Row, Col); stability preserves the caller's original
	// insertion order among duplicates so "last after stable sort" == "last
	// inserted" even when two triplets share a (Row, Col) key.
	ordered := make([]Triplet, len(triplets))
	copy(ordered, triplets)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Row != ordered[j].Row {
			return ordered[i].Row < ordered[j].Row
		}

		return ordered[i].Col < ordered[j].Col
	})

	outer := make([]int32, rows+1)
	inner := make([]int32, 0, len(ordered))
	data := make([]float32, 0, len(ordered))

	row := int32(0)
	for i := 0; i < len(ordered); {
		j := i + 1
		for j < len(ordered) && ordered[j].Row == ordered[i].Row && ordered[j].Col == ordered[i].Col {
			j++ // collapse the run of duplicates sharing (Row, Col)
		}
		t := ordered[j-1] // last-write-wins: the final entry in the run

		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, ErrOutOfRange
		}
		for row <= t.Row {
			outer[row] = int32(len(inner))
			row++
		}
		inner = append(inner, t.Col)
		data = append(data, t.Weight)

		i = j
	}
	for ; row <= rows; row++ {
		outer[row] = int32(len(inner))
	}

	return &CSR{Rows: rows, Cols: cols, Outer: outer, Inner: inner, Data: data}, nil
}
