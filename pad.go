package tensor

// PadTensor expands a rank's locally-held, unpadded virtual sub-blocks
// into a fully padded key-value layout: every virtual sub-block this
// rank owns gets its padded share of slots, the slots beyond each
// sub-block's logical extent are filled with the structure's additive
// identity, and the rank's actual data is copied in at the end -- the
// Go analogue of pad_tsr in pad.cxx. td.VirtPhysRank is walked forward
// and restored to its original value by the time PadTensor returns.
//
// oldData is already pair-formatted (key, value records, s.PairSize()
// bytes apiece) holding the size real pairs of one sub-block's
// interior; PadTensor copies it in verbatim after the padding pairs it
// generates, so the caller is responsible for oldData's keys already
// being correct padded-space linearizations of the positions they
// occupy. PadTensor panics if the counting sweep's element total does
// not agree with size plus the padded-slot count, mirroring pad.cxx's
// ASSERT(new_el+size==pad_el).
func PadTensor(td *TensorDescriptor, oldData []byte, size int64, s Structure) (Iterator, int64) {
	order := td.Order
	idx := make([]int, order)

	var padEl int64
	for {
		for j := range idx {
			idx[j] = 0
		}
		for {
			var padMax int
			if td.Sym[0] != NS && order > 1 {
				padMax = idx[1] + 1
			} else {
				padMax = (td.EdgeLen[0] + td.Padding[0]) / td.PhysPhase[0]
			}
			padEl += int64(padMax)

			actLda := 1
			for ; actLda < order; actLda++ {
				idx[actLda]++
				imax := (td.EdgeLen[actLda] + td.Padding[actLda]) / td.PhysPhase[actLda]
				if td.Sym[actLda] != NS && actLda+1 < order {
					imax = idx[actLda+1] + 1
				}
				if idx[actLda] >= imax {
					idx[actLda] = 0
				}
				if idx[actLda] != 0 {
					break
				}
			}
			if actLda == order {
				break
			}
		}

		actLda := 0
		for ; actLda < order; actLda++ {
			td.VirtPhysRank[actLda]++
			if td.VirtPhysRank[actLda]%td.VirtPhase[actLda] == 0 {
				td.VirtPhysRank[actLda] -= td.VirtPhase[actLda]
			}
			if td.VirtPhysRank[actLda]%td.VirtPhase[actLda] != 0 {
				break
			}
		}
		if actLda == order {
			break
		}
	}

	padded := NewIterator(s.PairAlloc(padEl), s.PairSize())
	addID := s.Alloc(1)
	if !s.AddID(addID) {
		fatalf("PadTensor: structure has no additive identity to fill padded slots with")
	}

	var newEl int64
	offset := 0
	outside := -1
	virtLda := 1
	for i := 0; i < order; i++ {
		offset += td.VirtPhysRank[i] * virtLda
		virtLda *= td.EdgeLen[i] + td.Padding[i]
	}

	for {
		for j := range idx {
			idx[j] = 0
		}
		for {
			var imax, padMax int
			if td.Sym[0] != NS && order > 1 {
				if idx[1] < td.EdgeLen[0]/td.PhysPhase[0] {
					imax = idx[1]
					if td.Sym[0] != SY && td.VirtPhysRank[0] < td.VirtPhysRank[1] {
						imax++
					}
					if td.Sym[0] == SY && td.VirtPhysRank[0] <= td.VirtPhysRank[1] {
						imax++
					}
				} else {
					imax = td.EdgeLen[0] / td.PhysPhase[0]
					if td.VirtPhysRank[0] < td.EdgeLen[0]%td.PhysPhase[0] {
						imax++
					}
				}
				padMax = idx[1] + 1
			} else {
				imax = td.EdgeLen[0] / td.PhysPhase[0]
				if td.VirtPhysRank[0] < td.EdgeLen[0]%td.PhysPhase[0] {
					imax++
				}
				padMax = (td.EdgeLen[0] + td.Padding[0]) / td.PhysPhase[0]
			}

			if outside == -1 {
				for i := 0; i < padMax-imax; i++ {
					padded.WriteKey(newEl+int64(i), int64(offset+(imax+i)*td.PhysPhase[0]))
					padded.WriteVal(newEl+int64(i), addID)
				}
				newEl += int64(padMax - imax)
			} else {
				for i := 0; i < padMax; i++ {
					padded.WriteKey(newEl+int64(i), int64(offset+i*td.PhysPhase[0]))
					padded.WriteVal(newEl+int64(i), addID)
				}
				newEl += int64(padMax)
			}

			edgeLda := td.EdgeLen[0] + td.Padding[0]
			actLda := 1
			for ; actLda < order; actLda++ {
				offset -= idx[actLda] * edgeLda * td.PhysPhase[actLda]
				idx[actLda]++
				imax := (td.EdgeLen[actLda] + td.Padding[actLda]) / td.PhysPhase[actLda]
				if td.Sym[actLda] != NS && actLda+1 < order && idx[actLda+1]+1 <= imax {
					imax = idx[actLda+1] + 1
				}
				if idx[actLda] >= imax {
					idx[actLda] = 0
				}
				offset += idx[actLda] * edgeLda * td.PhysPhase[actLda]

				if idx[actLda] > td.EdgeLen[actLda]/td.PhysPhase[actLda] ||
					(idx[actLda] == td.EdgeLen[actLda]/td.PhysPhase[actLda] &&
						td.EdgeLen[actLda]%td.PhysPhase[actLda] <= td.VirtPhysRank[actLda]) {
					if outside < actLda {
						outside = actLda
					}
				} else {
					if outside == actLda {
						outside = -1
					}
				}
				if td.Sym[actLda] != NS && actLda+1 < order && idx[actLda] == idx[actLda+1] {
					if td.Sym[actLda] != SY && td.VirtPhysRank[actLda] >= td.VirtPhysRank[actLda+1] {
						if outside < actLda {
							outside = actLda
						}
					}
					if td.Sym[actLda] == SY && td.VirtPhysRank[actLda] > td.VirtPhysRank[actLda+1] {
						if outside < actLda {
							outside = actLda
						}
					}
				}
				if idx[actLda] != 0 {
					break
				}
				edgeLda *= td.EdgeLen[actLda] + td.Padding[actLda]
			}
			if actLda == order {
				break
			}
		}

		virtLda = 1
		actLda := 0
		for ; actLda < order; actLda++ {
			offset -= td.VirtPhysRank[actLda] * virtLda
			td.VirtPhysRank[actLda]++
			if td.VirtPhysRank[actLda]%td.VirtPhase[actLda] == 0 {
				td.VirtPhysRank[actLda] -= td.VirtPhase[actLda]
			}
			offset += td.VirtPhysRank[actLda] * virtLda
			if td.VirtPhysRank[actLda]%td.VirtPhase[actLda] != 0 {
				break
			}
			virtLda *= td.EdgeLen[actLda] + td.Padding[actLda]
		}
		if actLda == order {
			break
		}
	}

	assertf(newEl+size == padEl, "PadTensor: counting sweep disagrees with writing sweep, new_el=%d size=%d pad_el=%d", newEl, size, padEl)

	copy(padded.Slice(newEl, padEl).Bytes(), oldData[:size*int64(s.PairSize())])

	return padded, padEl
}
