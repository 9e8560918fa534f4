package matrix

// Triplet is one (row, col, weight) entry used to build or merge into a CSR.
// Row/Col are dense node ids; Weight is rejected at ingestion if NaN.
type Triplet struct {
	Row, Col int32
	Weight   float32
}

// CSR is a compressed-sparse-row matrix of f32 weights: Outer has length
// Rows+1, Inner and Data each have length Outer[Rows] (== nnz), and row i's
// entries occupy Inner[Outer[i]:Outer[i+1]] / Data[Outer[i]:Outer[i+1]],
// sorted by column ascending within the row.
type CSR struct {
	Rows, Cols int32
	Outer      []int32
	Inner      []int32
	Data       []float32
}

// NNZ returns the number of stored (nonzero) entries.
func (m *CSR) NNZ() int32 {
	if m == nil || len(m.Outer) == 0 {
		return 0
	}

	return m.Outer[len(m.Outer)-1]
}

// Row returns the column indices and weights of row i, both views into the
// CSR's backing arrays (callers must not retain them across a rebuild).
func (m *CSR) Row(i int32) (cols []int32, weights []float32, err error) {
	if m == nil || i < 0 || i >= m.Rows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.Outer[i], m.Outer[i+1]

	return m.Inner[lo:hi], m.Data[lo:hi], nil
}

// At returns the weight at (row, col) and whether an entry exists there.
// Complexity: O(log d) via binary search over the row's sorted columns.
func (m *CSR) At(row, col int32) (float32, bool) {
	cols, weights, err := m.Row(row)
	if err != nil {
		return 0, false
	}
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case cols[mid] == col:
			return weights[mid], true
		case cols[mid] < col:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return 0, false
}
