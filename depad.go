package tensor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DepadTensor scans pairs for the entries that fall inside a tensor's
// logical (unpadded, post-prepadding) region and within any symmetry
// ordering its modes carry, and returns a freshly packed buffer
// holding just those entries in their original relative order -- the
// Go analogue of depad_tsr in pad.cxx.
//
// The last mode's symmetry is never consulted: pad.cxx's reference
// loop reads kparts[j+1] for every mode including the last, one
// element past the kparts array it allocates, so this package stops
// the check at j < order-1 instead -- a non-NS tag on the last mode is
// accepted and imposes no constraint.
func DepadTensor(order int, edgeLen []int, sym []Sym, padding, prepadding []int, pairs ConstIterator, s Structure) (Iterator, int64) {
	radix := make([]int64, order)
	for j := 0; j < order; j++ {
		radix[j] = int64(edgeLen[j] + padding[j])
	}
	prepad := toInt64s(prepadding)
	edge := toInt64s(edgeLen)

	n := pairs.Len()
	if n == 0 {
		return NewIterator(nil, s.PairSize()), 0
	}

	keeps := depadMask(order, n, radix, edge, prepad, sym, pairs)

	workers := runtime.GOMAXPROCS(0)
	if int64(workers) > n {
		workers = int(n)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + int64(workers) - 1) / int64(workers)

	counts := make([]int64, workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		st := int64(w) * chunk
		end := st + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			var c int64
			for i := st; i < end; i++ {
				if keeps[i] {
					c++
				}
			}
			counts[w] = c
			return nil
		})
	}
	_ = g.Wait()

	prefix := make([]int64, workers)
	for w := 1; w < workers; w++ {
		prefix[w] = prefix[w-1] + counts[w-1]
	}
	total := prefix[workers-1] + counts[workers-1]

	out := NewIterator(s.PairAlloc(total), s.PairSize())
	g2, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		st := int64(w) * chunk
		end := st + chunk
		if end > n {
			end = n
		}
		g2.Go(func() error {
			pos := prefix[w]
			for i := st; i < end; i++ {
				if keeps[i] {
					out.Write(pos, pairs.At(i))
					pos++
				}
			}
			return nil
		})
	}
	_ = g2.Wait()

	return out, total
}

// depadMask computes, for each stored pair, whether it lies inside the
// logical region and obeys the kept modes' symmetry ordering -- the
// predicate depad_tsr applies once during its counting sweep and again
// during its writing sweep.
func depadMask(order int, n int64, radix, edge, prepad []int64, sym []Sym, pairs ConstIterator) []bool {
	keeps := make([]bool, n)
	workers := runtime.GOMAXPROCS(0)
	if int64(workers) > n {
		workers = int(n)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + int64(workers) - 1) / int64(workers)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		st := int64(w) * chunk
		end := st + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			kparts := getDigits(order)
			defer putDigits(kparts)
			for i := st; i < end; i++ {
				k := pairs.Key(i)
				mixedRadixDigitsInto(k, radix, kparts)
				inside := true
				for j := 0; j < order; j++ {
					if kparts[j] >= edge[j] || kparts[j] < prepad[j] {
						inside = false
						break
					}
				}
				if inside {
					for j := 0; j < order-1; j++ {
						switch sym[j] {
						case SY:
							if kparts[j+1] < kparts[j] {
								inside = false
							}
						case AS, SH:
							if kparts[j+1] <= kparts[j] {
								inside = false
							}
						}
						if !inside {
							break
						}
					}
				}
				keeps[i] = inside
			}
			return nil
		})
	}
	_ = g.Wait()
	return keeps
}
