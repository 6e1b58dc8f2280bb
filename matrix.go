package tensor

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// DoubleView adapts a 2-mode COO unfolding over any Structure whose
// numeric casts are wired (CastToDouble/CastDouble) into a
// gonum.org/v1/gonum/mat.Matrix, so the rest of the gonum ecosystem
// (decompositions, solvers, printers) can operate on a tensor's
// matricized view without this package depending on mat.Matrix
// throughout its own, Structure-generic core.
type DoubleView struct {
	s   Structure
	coo *COO
}

// NewDoubleView wraps coo as a mat.Matrix using s to cast its packed
// elements to float64. The constructor does not check s; At panics if
// s has no CastToDouble wired.
func NewDoubleView(s Structure, coo *COO) *DoubleView {
	return &DoubleView{s: s, coo: coo}
}

func (v *DoubleView) Dims() (r, c int) { return v.coo.NRow, v.coo.NCol }

// At returns the element at 0-based (i, j), per mat.Matrix's contract
// -- one off from this package's own 1-based COO/CSR convention.
func (v *DoubleView) At(i, j int) float64 {
	return v.s.CastToDouble(v.coo.At(v.s, i+1, j+1))
}

func (v *DoubleView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// DoubleCSRView is DoubleView's CSR-backed counterpart.
type DoubleCSRView struct {
	s   Structure
	csr *CSR
}

// NewDoubleCSRView wraps csr as a mat.Matrix using s to cast its
// packed elements to/from float64.
func NewDoubleCSRView(s Structure, csr *CSR) *DoubleCSRView {
	return &DoubleCSRView{s: s, csr: csr}
}

func (v *DoubleCSRView) Dims() (r, c int) { return v.csr.NRow, v.csr.NCol }

func (v *DoubleCSRView) At(i, j int) float64 {
	return v.s.CastToDouble(v.csr.At(v.s, i+1, j+1))
}

func (v *DoubleCSRView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// RandomCOO builds an r-by-c COO unfolding over s with approximately
// density*r*c nonzero entries at random 1-based coordinates, each
// cast in from a random float64 via s.CastDouble. It panics if s has
// no double cast wired, the same contract DoubleView/DoubleCSRView
// carry.
func RandomCOO(s Structure, r, c int, density float32) *COO {
	nz := int64(density * float32(r) * float32(c))
	coo := NewCOO(s, r, c, nz)
	sz := s.ElementSize()
	for i := int64(0); i < nz; i++ {
		coo.Rs[i] = rand.Intn(r) + 1
		coo.Cs[i] = rand.Intn(c) + 1
		s.CastDouble(rand.Float64(), coo.Vs[i*int64(sz):(i+1)*int64(sz)])
	}
	return coo
}
