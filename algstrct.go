package tensor

import "io"

// Sym is a per-mode symmetry tag. A symmetric group between modes k and
// k+1 is encoded by giving mode k a tag other than NS.
type Sym int

const (
	// NS means the mode carries no symmetry relation to its neighbor.
	NS Sym = iota
	// SY means the mode group is symmetric: a[...i...j...] = a[...j...i...].
	SY
	// AS means the mode group is antisymmetric.
	AS
	// SH means the mode group is symmetric-hollow: symmetric with a
	// zeroed diagonal.
	SH
)

func (s Sym) String() string {
	switch s {
	case NS:
		return "NS"
	case SY:
		return "SY"
	case AS:
		return "AS"
	case SH:
		return "SH"
	default:
		return "Sym(?)"
	}
}

// Structure is the algebraic-structure abstraction: a type-erased
// ring/monoid over a fixed-width element. Every kernel in this package
// manipulates elements exclusively through a Structure so that the
// redistribution, padding and sparse-layout machinery never needs to
// know the concrete Go type backing a tensor.
//
// Implementations are never required to support every method: Abs,
// Min, Max and MinVal/MaxVal are only meaningful when IsOrdered
// reports true, and CastDouble/CastToDouble/CastInt/CastToInt are only
// meaningful for element types with a sensible numeric interpretation.
// Calling an unsupported operation must fail loudly (see fatalf in
// errors.go) rather than return undefined bytes.
type Structure interface {
	// ElementSize is the byte width of one element.
	ElementSize() int
	// PairSize is the byte width of one (key, value) pair:
	// always 8+ElementSize(), key first, little-endian.
	PairSize() int
	// IsOrdered reports whether comparison and Abs are meaningful for
	// this element type.
	IsOrdered() bool

	// AddID writes the additive identity into out and reports whether
	// one is defined for this structure.
	AddID(out []byte) bool
	// MulID writes the multiplicative identity into out and reports
	// whether one is defined for this structure.
	MulID(out []byte) bool

	// TransportType is the wire-transport descriptor to use when
	// shipping elements: the standard descriptor for primitive rings,
	// a byte-contiguous surrogate otherwise. See mpitype.go.
	TransportType() TransportType

	// Min and Max are binary reducers; they panic if !IsOrdered.
	Min(a, b, out []byte)
	Max(a, b, out []byte)
	// MinVal and MaxVal write the minimum/maximum representable value
	// of the element type into out; they panic if !IsOrdered.
	MinVal(out []byte)
	MaxVal(out []byte)
	// Abs writes the absolute value of a into out; it panics if
	// !IsOrdered.
	Abs(a, out []byte)

	// IsEqual reports bitwise equality for generic element types,
	// value equality for floating point and complex types.
	IsEqual(a, b []byte) bool

	// Add and Mul are the ring operations: out = a+b, out = a*b.
	Add(a, b, out []byte)
	Mul(a, b, out []byte)

	// Set fills n contiguous elements starting at dst with the value
	// at src.
	Set(dst, src []byte, n int64)
	// Copy copies one element from src to dst.
	Copy(dst, src []byte)
	// CopyN copies n contiguous elements from src to dst.
	CopyN(dst, src []byte, n int64)
	// CopyStrided copies n elements from a (stride incA elements) to
	// b (stride incB elements).
	CopyStrided(n int64, a []byte, incA int64, b []byte, incB int64)
	// CopyStrided2D copies an m x n block from a (leading dimension
	// ldaA elements) to b (leading dimension ldaB elements).
	CopyStrided2D(m, n int64, a []byte, ldaA int64, b []byte, ldaB int64)

	// Alloc allocates n raw elements.
	Alloc(n int64) []byte
	// PairAlloc allocates n pairs; the returned slice has length
	// n*PairSize().
	PairAlloc(n int64) []byte

	// GetKey decodes the key of a single pair.
	GetKey(pair []byte) int64
	// GetValue returns the value portion of a single pair.
	GetValue(pair []byte) []byte
	// SetPair writes one (key, value) pair into dst.
	SetPair(dst []byte, key int64, value []byte)
	// SetPairs replicates (key, value) across n contiguous pairs
	// starting at dst.
	SetPairs(dst []byte, key int64, value []byte, n int64)
	// Sort orders n pairs in dst ascending by key. The sort is stable.
	Sort(n int64, pairs []byte)

	// Init sets n elements in arr to the default-constructed value:
	// zero for arithmetic types, the additive identity for structures
	// that define one.
	Init(n int64, arr []byte)

	// Print writes a human-readable rendering of elem to w.
	Print(w io.Writer, elem []byte)

	// CastDouble, CastToDouble, CastInt and CastToInt are fallible
	// numeric bridges; they panic for element types without a numeric
	// interpretation.
	CastDouble(d float64, out []byte)
	CastToDouble(elem []byte) float64
	CastInt(i int64, out []byte)
	CastToInt(elem []byte) int64
}

// compile-time assertions that the generic fast paths satisfy Structure.
var (
	_ Structure = (*Structure_[float64])(nil)
	_ Structure = (*Structure_[float32])(nil)
	_ Structure = (*Structure_[int32])(nil)
	_ Structure = (*Structure_[int64])(nil)
	_ Structure = (*Structure_[uint64])(nil)
	_ Structure = (*Structure_[bool])(nil)
	_ Structure = (*Structure_[byte])(nil)
	_ Structure = (*Structure_[complex64])(nil)
	_ Structure = (*Structure_[complex128])(nil)
)
