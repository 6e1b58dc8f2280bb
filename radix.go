package tensor

// This file is the shared digit-extraction/composition helper behind
// PadKey and DepadTensor: both treat a tensor's linearized index as a
// mixed-radix number, one digit per mode, with each mode's radix given
// by that mode's (possibly padded) edge length.

// mixedRadixDigits decomposes a linearized index k into order digits,
// one per mode, using radices[j] as mode j's radix -- the same
// decomposition a row-major multi-dimensional array index undergoes,
// generalized to per-mode radices that need not match an edge length.
func mixedRadixDigits(k int64, radices []int64) []int64 {
	digits := make([]int64, len(radices))
	mixedRadixDigitsInto(k, radices, digits)
	return digits
}

// mixedRadixDigitsInto is mixedRadixDigits without the allocation, for
// callers (DepadTensor's per-worker loop) that want to reuse one
// digits buffer across many keys.
func mixedRadixDigitsInto(k int64, radices []int64, digits []int64) {
	for j := 0; j < len(radices); j++ {
		digits[j] = k % radices[j]
		k /= radices[j]
	}
}

// mixedRadixCompose is the inverse of mixedRadixDigits: it linearizes
// per-mode digits back into a single index using radices[j] as mode
// j's radix, optionally biasing each digit by offsets[j] first (nil
// for no bias).
func mixedRadixCompose(digits []int64, radices []int64, offsets []int64) int64 {
	var knew, lda int64 = 0, 1
	for j := 0; j < len(radices); j++ {
		d := digits[j]
		if offsets != nil {
			d += offsets[j]
		}
		knew += lda * d
		lda *= radices[j]
	}
	return knew
}
