package tensor

import "sync"

// digitPool holds the mixed-radix digit buffers DepadTensor's workers
// need once per worker rather than once per pair.

var digitPool = sync.Pool{
	New: func() interface{} { return make([]int64, 0, 8) },
}

// getDigits returns a []int64 of length n, reused from the pool when
// possible.
func getDigits(n int) []int64 {
	w := digitPool.Get().([]int64)
	if cap(w) < n {
		return make([]int64, n)
	}
	return w[:n]
}

// putDigits returns w to the pool. Callers must not retain references
// into w after calling putDigits.
func putDigits(w []int64) {
	digitPool.Put(w[:0])
}
