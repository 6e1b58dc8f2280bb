package tensor

import (
	"encoding/binary"
	"sort"
)

// Iterator is a cursor over a packed (key, value) buffer whose stride
// is a runtime value (pair_size) because it depends on the owning
// Structure's element size. It exists purely because that stride
// can't be baked in at compile time the way a Go slice's element
// stride can.
type Iterator struct {
	buf      []byte
	pairSize int
}

// NewIterator wraps buf as a sequence of pairSize-byte records.
// len(buf) must be a multiple of pairSize.
func NewIterator(buf []byte, pairSize int) Iterator {
	return Iterator{buf: buf, pairSize: pairSize}
}

// Len returns the number of pairs in the buffer.
func (it Iterator) Len() int64 { return int64(len(it.buf)) / int64(it.pairSize) }

// At returns the raw bytes of the i-th pair (key followed by value).
func (it Iterator) At(i int64) []byte {
	lo := i * int64(it.pairSize)
	return it.buf[lo : lo+int64(it.pairSize)]
}

// Key decodes the key of the i-th pair.
func (it Iterator) Key(i int64) int64 {
	return int64(binary.LittleEndian.Uint64(it.At(i)[:8]))
}

// Value returns the value bytes of the i-th pair.
func (it Iterator) Value(i int64) []byte {
	return it.At(i)[8:it.pairSize]
}

// WriteKey overwrites the key of the i-th pair.
func (it Iterator) WriteKey(i int64, key int64) {
	binary.LittleEndian.PutUint64(it.At(i)[:8], uint64(key))
}

// WriteVal overwrites the value of the i-th pair.
func (it Iterator) WriteVal(i int64, value []byte) {
	copy(it.At(i)[8:it.pairSize], value)
}

// Write overwrites the i-th pair (key and value) with another pair's
// raw bytes.
func (it Iterator) Write(i int64, other []byte) {
	copy(it.At(i), other[:it.pairSize])
}

// Slice returns the sub-iterator covering pairs [lo, hi).
func (it Iterator) Slice(lo, hi int64) Iterator {
	return Iterator{buf: it.buf[lo*int64(it.pairSize) : hi*int64(it.pairSize)], pairSize: it.pairSize}
}

// Bytes returns the backing buffer.
func (it Iterator) Bytes() []byte { return it.buf }

// ConstIterator is the read-only counterpart of Iterator. Go slices
// carry no const qualifier, so this is a usage discipline rather than
// a compiler-enforced one: callers that only need read access take a
// ConstIterator to document that intent at the API boundary, the way
// the pack's sparse-matrix readers distinguish a read-only accessor
// from a mutable one.
type ConstIterator struct {
	it Iterator
}

// NewConstIterator wraps buf read-only.
func NewConstIterator(buf []byte, pairSize int) ConstIterator {
	return ConstIterator{it: NewIterator(buf, pairSize)}
}

func (c ConstIterator) Len() int64          { return c.it.Len() }
func (c ConstIterator) At(i int64) []byte   { return c.it.At(i) }
func (c ConstIterator) Key(i int64) int64   { return c.it.Key(i) }
func (c ConstIterator) Value(i int64) []byte { return c.it.Value(i) }

// sortPairBytes stably sorts n pairSize-byte records in pairs by
// ascending key (first 8 bytes, little-endian int64).
func sortPairBytes(n int64, pairs []byte, pairSize int) {
	it := NewIterator(pairs[:n*int64(pairSize)], pairSize)
	sort.Stable(pairSorter{it})
}

type pairSorter struct{ it Iterator }

func (p pairSorter) Len() int           { return int(p.it.Len()) }
func (p pairSorter) Less(i, j int) bool { return p.it.Key(int64(i)) < p.it.Key(int64(j)) }
func (p pairSorter) Swap(i, j int) {
	a, b := p.it.At(int64(i)), p.it.At(int64(j))
	n := len(a)
	for k := 0; k < n; k++ {
		a[k], b[k] = b[k], a[k]
	}
}
