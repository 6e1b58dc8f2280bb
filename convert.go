package tensor

import (
	"sort"
	"unsafe"

	"github.com/distensor/ctf/blas"
)

// CooToCSR converts a coordinate-format unfolding into compressed
// sparse row form. Duplicate (row, col) coordinates are preserved as
// distinct CSR entries rather than merged -- COO.At sums them back
// together at read time, but storage never collapses them. For 8-byte
// (float64) elements this dispatches to the vendor fast path in
// package blas; every other element size takes the structure-generic
// histogram/prefix-sum/stable-double-sort/scatter algorithm below.
func CooToCSR(s Structure, c *COO) *CSR {
	if s.ElementSize() == 8 {
		if vals, ok := asFloat64(c.Vs); ok {
			if indptr, ind, data, ok := blas.TryCOOToCSRFloat64(c.NRow, c.NCol, c.Rs, c.Cs, vals); ok {
				return &CSR{
					NRow: c.NRow,
					NCol: c.NCol,
					Ia:   indptr,
					Ja:   ind,
					Vs:   float64ToBytes(data),
				}
			}
		}
	}
	return cooToCSRGeneric(s, c)
}

// CsrToCOO expands a compressed sparse row matrix back into coordinate
// triplets, one per stored nonzero. Duplicate (row, col) entries that
// CooToCSR kept come back as separate triplets; nothing is merged.
func CsrToCOO(s Structure, c *CSR) *COO {
	if s.ElementSize() == 8 {
		if vals, ok := asFloat64(c.Vs); ok {
			if rows, cols, data, ok := blas.TryCSRToCOOFloat64(c.NRow, c.Ia, c.Ja, vals); ok {
				return &COO{
					NRow: c.NRow,
					NCol: c.NCol,
					Rs:   rows,
					Cs:   cols,
					Vs:   float64ToBytes(data),
				}
			}
		}
	}
	return csrToCOOGeneric(s, c)
}

// cooToCSRGeneric implements the same histogram/prefix-sum/
// stable-double-sort/scatter shape as the reference engine's
// seq_coo_to_csr: count nonzeros per row and prefix-sum into a 1-based
// row-pointer array, then build a permutation of [0,nz) and stable-sort
// it first by column and again by row, so the permuted order groups
// entries by row (ascending) and, within a row, by column (ascending),
// without ever comparing one stored entry's value against another's --
// duplicate (row, col) coordinates simply end up adjacent, each kept as
// its own entry.
func cooToCSRGeneric(s Structure, c *COO) *CSR {
	sz := s.ElementSize()
	nz := len(c.Rs)

	ia := make([]int, c.NRow+1)
	ia[0] = 1
	for i := 0; i < nz; i++ {
		ia[c.Rs[i]]++
	}
	for i := 0; i < c.NRow; i++ {
		ia[i+1] += ia[i]
	}

	perm := make([]int, nz)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return c.Cs[perm[a]] < c.Cs[perm[b]] })
	sort.SliceStable(perm, func(a, b int) bool { return c.Rs[perm[a]] < c.Rs[perm[b]] })

	ja := make([]int, nz)
	vs := s.Alloc(int64(nz))
	for i := 0; i < nz; i++ {
		src := perm[i]
		s.Copy(vs[i*sz:(i+1)*sz], c.Vs[src*sz:(src+1)*sz])
		ja[i] = c.Cs[src]
	}

	return &CSR{NRow: c.NRow, NCol: c.NCol, Ia: ia, Ja: ja, Vs: vs}
}

// csrToCOOGeneric expands every stored CSR entry into a (row, col,
// value) triplet, one row at a time.
func csrToCOOGeneric(s Structure, c *CSR) *COO {
	sz := s.ElementSize()
	nz := int(c.NNZ())
	rs := make([]int, nz)
	cs := make([]int, nz)
	vs := s.Alloc(int64(nz))
	idx := 0
	for i := 0; i < c.NRow; i++ {
		for k := c.Ia[i] - 1; k < c.Ia[i+1]-1; k++ {
			rs[idx] = i + 1
			cs[idx] = c.Ja[k]
			s.Copy(vs[idx*sz:(idx+1)*sz], c.Vs[k*sz:(k+1)*sz])
			idx++
		}
	}
	return &COO{NRow: c.NRow, NCol: c.NCol, Rs: rs, Cs: cs, Vs: vs}
}

// asFloat64 reinterprets a packed byte buffer as a []float64 slice
// without copying, for dispatch into the float64 vendor path. It
// reports ok=false if the buffer length isn't a multiple of 8 bytes.
func asFloat64(b []byte) ([]float64, bool) {
	if len(b)%8 != 0 {
		return nil, false
	}
	n := len(b) / 8
	if n == 0 {
		return nil, true
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), n), true
}

// float64ToBytes is the inverse of asFloat64: it reinterprets a
// []float64 slice produced by the vendor path as a packed byte buffer.
func float64ToBytes(v []float64) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*8)
}
