package blas

import "sort"

// TryCOOToCSRFloat64 builds the CSR form of a float64-valued coordinate
// list by the same histogram / prefix-sum / stable-double-sort /
// scatter shape as the reference engine's seq_coo_to_csr: a row-pointer
// array is built by counting and prefix-summing, then a permutation of
// [0,nz) is stable-sorted by column and again (stable) by row so that
// entries end up grouped by row, in ascending column order within a
// row, with duplicate (row, col) coordinates kept as distinct entries
// in their original relative order rather than merged. rows/cols are
// 1-based, matching the tensor package's layout convention; the
// returned indptr/ind are 1-based too (indptr[0] == 1). It reports
// ok=false only if it is asked to handle a size-0 matrix dimension, in
// which case the caller's structure-generic path runs instead.
//
// This is the fast path the reference engine routes through a vendor
// sparse BLAS (mkl_dcsrcoo and friends); no such binding exists in the
// surrounding Go ecosystem, so this is a plain-Go equivalent for the
// one element type worth specializing.
func TryCOOToCSRFloat64(nrow, ncol int, rows, cols []int, vals []float64) (indptr, ind []int, data []float64, ok bool) {
	if nrow <= 0 || ncol <= 0 {
		return nil, nil, nil, false
	}
	nz := len(vals)

	indptr = make([]int, nrow+1)
	indptr[0] = 1
	for i := 0; i < nz; i++ {
		indptr[rows[i]]++
	}
	for i := 0; i < nrow; i++ {
		indptr[i+1] += indptr[i]
	}

	perm := make([]int, nz)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return cols[perm[a]] < cols[perm[b]] })
	sort.SliceStable(perm, func(a, b int) bool { return rows[perm[a]] < rows[perm[b]] })

	data = make([]float64, nz)
	ind = make([]int, nz)
	for i := 0; i < nz; i++ {
		data[i] = vals[perm[i]]
	}
	for i := 0; i < nz; i++ {
		ind[i] = cols[perm[i]]
	}
	return indptr, ind, data, true
}

// TryCSRToCOOFloat64 expands a float64 CSR (1-based indptr/ind) back
// into parallel row/col/value triplets. It always succeeds; it exists
// alongside TryCOOToCSRFloat64 so callers can dispatch both directions
// of the conversion through the same vendor-or-generic decision.
func TryCSRToCOOFloat64(nrow int, indptr, ind []int, data []float64) (rows, cols []int, vals []float64, ok bool) {
	nz := len(ind)
	rows = make([]int, nz)
	cols = make([]int, nz)
	vals = make([]float64, nz)
	copy(cols, ind)
	copy(vals, data)
	for i := 0; i < nrow; i++ {
		for k := indptr[i] - 1; k < indptr[i+1]-1; k++ {
			rows[k] = i + 1
		}
	}
	return rows, cols, vals, true
}
