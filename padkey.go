package tensor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PadKey rewrites every key in pairs from the unpadded edge lengths'
// linearization to the padded edge lengths' linearization, optionally
// biasing each mode's digit by offsets (pass nil for no bias) before
// recomposing -- the Go analogue of pad_key in pad.cxx, statically
// range-partitioned across goroutines the way the original splits the
// same loop across OpenMP threads.
func PadKey(order int, edgeLen, padding []int, pairs Iterator, offsets []int) {
	oldRadix := toInt64s(edgeLen)
	newRadix := make([]int64, order)
	for j := 0; j < order; j++ {
		newRadix[j] = int64(edgeLen[j] + padding[j])
	}
	var offs []int64
	if offsets != nil {
		offs = toInt64s(offsets)
	}

	n := pairs.Len()
	if n == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if int64(workers) > n {
		workers = int(n)
	}
	chunk := (n + int64(workers) - 1) / int64(workers)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		st := int64(w) * chunk
		end := st + chunk
		if end > n {
			end = n
		}
		if st >= end {
			continue
		}
		g.Go(func() error {
			for i := st; i < end; i++ {
				k := pairs.Key(i)
				digits := mixedRadixDigits(k, oldRadix)
				knew := mixedRadixCompose(digits, newRadix, offs)
				pairs.WriteKey(i, knew)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func toInt64s(v []int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}
