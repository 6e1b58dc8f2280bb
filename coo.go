package tensor

// COO is a COOrdinate (triplet) sparse layout: three parallel arrays
// of equal length nz plus a row count. It is the natural format for
// building a sparse unfolding of a tensor incrementally and the
// natural format to convert to/from CSR.
//
// Rows and columns are 1-based throughout this package; callers coming
// from 0-based Go indexing should add one before populating Rs/Cs.
type COO struct {
	NRow int
	NCol int

	// Vs holds nz packed elements, each ElementSize() bytes, owned by
	// a Structure the caller supplies to every COO operation.
	Vs []byte
	// Rs and Cs are the 1-based row/column index of the i-th nonzero,
	// parallel to Vs.
	Rs []int
	Cs []int
}

// NNZ returns the number of stored (possibly duplicate) nonzeros.
func (c *COO) NNZ() int64 { return int64(len(c.Rs)) }

// NewCOO allocates an empty COO triple with capacity for nz nonzeros.
// The caller is responsible for populating Vs/Rs/Cs (e.g. via s.Alloc
// and repeated element copies).
func NewCOO(s Structure, nrow, ncol int, nz int64) *COO {
	return &COO{
		NRow: nrow,
		NCol: ncol,
		Vs:   s.Alloc(nz),
		Rs:   make([]int, nz),
		Cs:   make([]int, nz),
	}
}

// At returns the element at 1-based (row, col), summing duplicate
// entries the way a triplet format commonly treats them (no implicit
// deduplication on insert).
func (c *COO) At(s Structure, row, col int) []byte {
	sz := s.ElementSize()
	sum := s.Alloc(1)
	ok := false
	for i := range c.Rs {
		if c.Rs[i] == row && c.Cs[i] == col {
			v := c.Vs[i*sz : (i+1)*sz]
			if !ok {
				s.Copy(sum, v)
				ok = true
			} else {
				s.Add(sum, v, sum)
			}
		}
	}
	if !ok {
		if !s.AddID(sum) {
			fatalf("COO.At: no entry at (%d, %d) and structure has no additive identity to fall back to", row, col)
		}
	}
	return sum
}
