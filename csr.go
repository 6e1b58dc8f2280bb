package tensor

// CSR is a Compressed Sparse Row layout: Ia is the row-pointer array
// (length NRow+1, 1-based, Ia[0] == 1), Ja holds the 1-based column of
// each nonzero in row-major order, and Vs holds the matching packed
// element values, ElementSize() bytes apiece.
type CSR struct {
	NRow int
	NCol int

	Vs []byte
	Ja []int
	Ia []int
}

// NNZ returns the number of stored nonzeros, Ia[nrow]-Ia[0].
func (c *CSR) NNZ() int64 {
	if len(c.Ia) == 0 {
		return 0
	}
	return int64(c.Ia[len(c.Ia)-1] - c.Ia[0])
}

// RowNNZ returns the number of nonzeros in 0-based row i.
func (c *CSR) RowNNZ(i int) int { return c.Ia[i+1] - c.Ia[i] }

// At returns the element at 1-based (row, col), or the structure's
// additive identity if no such nonzero is stored.
func (c *CSR) At(s Structure, row, col int) []byte {
	sz := s.ElementSize()
	for k := c.Ia[row-1] - 1; k < c.Ia[row]-1; k++ {
		if c.Ja[k] == col {
			return c.Vs[k*sz : (k+1)*sz]
		}
	}
	out := s.Alloc(1)
	if !s.AddID(out) {
		fatalf("CSR.At: no entry at (%d, %d) and structure has no additive identity to fall back to", row, col)
	}
	return out
}

// Validate checks the CSR layout invariants: Ia has length NRow+1,
// starts at 1, is monotonically non-decreasing, and its span matches
// the number of stored (Ja, Vs) entries.
func (c *CSR) Validate(s Structure) {
	assertf(len(c.Ia) == c.NRow+1, "csr: Ia must have length NRow+1, got %d for NRow=%d", len(c.Ia), c.NRow)
	assertf(c.Ia[0] == 1, "csr: Ia[0] must be 1, got %d", c.Ia[0])
	for i := 1; i < len(c.Ia); i++ {
		assertf(c.Ia[i] >= c.Ia[i-1], "csr: Ia must be monotonically non-decreasing, Ia[%d]=%d < Ia[%d]=%d", i, c.Ia[i], i-1, c.Ia[i-1])
	}
	nz := c.Ia[len(c.Ia)-1] - c.Ia[0]
	assertf(nz == len(c.Ja), "csr: Ia[nrow]-Ia[0] must equal the number of column entries, got %d vs %d", nz, len(c.Ja))
	assertf(len(c.Vs) == nz*s.ElementSize(), "csr: Vs must hold nz*ElementSize() bytes, got %d for nz=%d", len(c.Vs), nz)
}

// NewCSR allocates a CSR with room for nz nonzeros and a row-pointer
// array whose entries are all 1 (every row empty). The caller populates Ia/Ja/Vs (typically via
// CooToCSR) before use.
func NewCSR(s Structure, nrow, ncol int, nz int64) *CSR {
	ia := make([]int, nrow+1)
	for i := range ia {
		ia[i] = 1
	}
	return &CSR{
		NRow: nrow,
		NCol: ncol,
		Vs:   s.Alloc(nz),
		Ja:   make([]int, nz),
		Ia:   ia,
	}
}
