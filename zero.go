package tensor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ZeroPadding overwrites every padded, out-of-symmetry, or
// out-of-range slot of a rank's locally-held virtual sub-blocks with
// the structure's additive identity, leaving the real elements
// untouched -- the Go analogue of zero_padding in pad.cxx. vdata holds
// nvirt virtual sub-blocks back to back, size/nvirt elements apiece.
//
// Each virtual sub-block is independent of the others (its zeroing
// decisions depend only on that block's own phase_rank/virt_rank,
// which this package derives directly from cphaseRank and the block
// index p rather than by rotating shared state across blocks as
// pad.cxx's thread-chunked variant does), so sub-blocks are fanned out
// across goroutines directly instead of pre-splitting byte ranges.
func ZeroPadding(order int, size int64, nvirt int, edgeLen, padding, phase, virtDim, cphaseRank []int, sym []Sym, vdata []byte, s Structure) {
	if order == 0 {
		return
	}
	if nvirt == 0 {
		return
	}

	virtLen := make([]int, order)
	for i := 0; i < order; i++ {
		virtLen[i] = edgeLen[i] / phase[i]
	}
	blockSize := size / int64(nvirt)
	elemSize := s.ElementSize()
	addID := s.Alloc(1)
	if !s.AddID(addID) {
		fatalf("ZeroPadding: structure has no additive identity to zero padded slots with")
	}

	g, _ := errgroup.WithContext(context.Background())
	for p := 0; p < nvirt; p++ {
		p := p
		g.Go(func() error {
			phaseRank, virtRank := virtRankAt(p, virtDim, cphaseRank)
			zeroVirtualBlock(order, edgeLen, padding, phase, sym, virtLen, phaseRank, virtRank,
				vdata[int64(p)*blockSize*int64(elemSize):int64(p+1)*blockSize*int64(elemSize)],
				addID, elemSize, s)
			return nil
		})
	}
	_ = g.Wait()
}

// virtRankAt recovers the per-mode virtual rank and combined
// phase_rank a virtual-block index p corresponds to, the state
// zero_padding's outer "for (p=0; p<nvirt; p++)" loop accumulates one
// step at a time by walking virt_rank forward and rolling it over at
// virt_dim; since the relationship is a simple mixed-radix count, the
// accumulation can be replayed directly from p for any block without
// visiting the blocks before it.
func virtRankAt(p int, virtDim, cphaseRank []int) (phaseRank, virtRank []int) {
	order := len(virtDim)
	virtRank = make([]int, order)
	phaseRank = append([]int(nil), cphaseRank...)
	rem := p
	for i := 0; i < order; i++ {
		if virtDim[i] == 0 {
			continue
		}
		virtRank[i] = rem % virtDim[i]
		rem /= virtDim[i]
		phaseRank[i] += virtRank[i]
	}
	return phaseRank, virtRank
}

// zeroVirtualBlock applies zero_padding's inner sweep to a single
// virtual sub-block: walk every (order-1)-dimensional slice along mode
// 0, decide whether it is entirely outside the logical+symmetry region
// (is_outside) or only partially so (the is_sh_pad0/len0 split), and
// set the corresponding run of mode-0 elements to the additive
// identity.
func zeroVirtualBlock(order int, edgeLen, padding, phase []int, sym []Sym, virtLen, phaseRank, virtRank []int, data []byte, addID []byte, elemSize int, s Structure) {
	isShPad0 := false
	if order >= 2 {
		if ((sym[0] == AS || sym[0] == SH) && phaseRank[0] >= phaseRank[1]) ||
			(sym[0] == SY && phaseRank[0] > phaseRank[1]) {
			isShPad0 = true
		}
	}
	pad0 := (padding[0] + phaseRank[0]) / phase[0]
	len0 := virtLen[0] - pad0

	idx := make([]int, order)
	bufOffset := int64(0)

	for {
		isOutside := false
		plen0 := virtLen[0]
		if order >= 2 && sym[0] != NS {
			plen0 = idx[1] + 1
		}

		for i := 1; i < order; i++ {
			currIdx := idx[i]*phase[i] + phaseRank[i]
			if currIdx >= edgeLen[i]-padding[i] {
				isOutside = true
				break
			} else if i < order-1 {
				symIdx := idx[i+1]*phase[i+1] + phaseRank[i+1]
				if ((sym[i] == AS || sym[i] == SH) && currIdx >= symIdx) ||
					(sym[i] == SY && currIdx > symIdx) {
					isOutside = true
					break
				}
			}
		}

		if isOutside {
			fillIdentity(data, bufOffset, int64(plen0), addID, elemSize, s)
		} else {
			s1 := plen0
			if isShPad0 {
				s1 = minInt(plen0-1, len0)
			} else {
				s1 = minInt(plen0, len0)
			}
			fillIdentity(data, bufOffset+int64(s1), int64(plen0-s1), addID, elemSize, s)
		}
		bufOffset += int64(plen0)

		i := 1
		for ; i < order; i++ {
			idx[i]++
			actMax := virtLen[i]
			if i < order-1 && sym[i] != NS {
				actMax = minInt(actMax, idx[i+1]+1)
			}
			if idx[i] >= actMax {
				idx[i] = 0
			}
			if idx[i] > 0 {
				break
			}
		}
		if i >= order {
			break
		}
	}
}

// fillIdentity overwrites n elements starting at element offset off in
// data with the structure's additive identity.
func fillIdentity(data []byte, off, n int64, addID []byte, elemSize int, s Structure) {
	for j := int64(0); j < n; j++ {
		lo := (off + j) * int64(elemSize)
		s.Copy(data[lo:lo+int64(elemSize)], addID)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
