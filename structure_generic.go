package tensor

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// Structure_ is the generic fast-path implementation of Structure for
// a concrete, fixed-layout Go element type T. It is the Go analogue of
// a templated algebraic-structure type: one generic body, specialized
// per type by the function fields a constructor in primitive.go (or a
// caller of NewStructure directly, for a user-defined T) fills in.
//
// T must be safe to treat as a flat sequence of ElementSize() bytes —
// no internal pointers, slices or interfaces — since Alloc, Copy and
// Set all move values with unsafe.Pointer casts rather than Go's
// assignment semantics, mirroring memcpy-based element movement.
type Structure_[T any] struct {
	elemSize int
	pairSize int
	ordered  bool

	addID    *T
	mulID    *T
	minLimit *T
	maxLimit *T

	transport TransportType

	add   func(a, b T) T
	mul   func(a, b T) T
	abs   func(a T) T
	min   func(a, b T) T
	max   func(a, b T) T
	equal func(a, b T) bool
	print func(w io.Writer, v T)

	toDouble   func(T) float64
	fromDouble func(float64) T
	toInt      func(T) int64
	fromInt    func(int64) T
}

// Option configures a Structure_[T] at construction time.
type Option[T any] func(*Structure_[T])

// WithAddID sets the additive identity.
func WithAddID[T any](v T) Option[T] {
	return func(s *Structure_[T]) { s.addID = &v }
}

// WithMulID sets the multiplicative identity, for structures that have one.
func WithMulID[T any](v T) Option[T] {
	return func(s *Structure_[T]) { s.mulID = &v }
}

// WithOrdered marks the structure ordered and supplies its reducers
// and representable bounds.
func WithOrdered[T any](min, max func(a, b T) T, minLimit, maxLimit T) Option[T] {
	return func(s *Structure_[T]) {
		s.ordered = true
		s.min = min
		s.max = max
		s.minLimit = &minLimit
		s.maxLimit = &maxLimit
	}
}

// WithAbs supplies the absolute-value function for an ordered structure.
func WithAbs[T any](fn func(T) T) Option[T] {
	return func(s *Structure_[T]) { s.abs = fn }
}

// WithArith supplies the ring operations.
func WithArith[T any](add, mul func(a, b T) T) Option[T] {
	return func(s *Structure_[T]) {
		s.add = add
		s.mul = mul
	}
}

// WithEqual overrides the default bitwise equality with a value
// equality (needed for floating point and complex types, where two
// byte patterns can compare unequal as bits but equal as values, e.g.
// +0 and -0).
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(s *Structure_[T]) { s.equal = fn }
}

// WithPrinter overrides the default hex-dump Print.
func WithPrinter[T any](fn func(io.Writer, T)) Option[T] {
	return func(s *Structure_[T]) { s.print = fn }
}

// WithNumericCasts wires CastDouble/CastToDouble/CastInt/CastToInt for
// an element type with a sensible numeric interpretation. A structure
// that omits this option panics on any of the four calls, matching
// the base Set<dtype>::cast_double's "not possible for this algebraic
// structure" abort. Pass nil for any direction a given element type does not
// specialize (e.g. bool only specializes CastToInt).
func WithNumericCasts[T any](toDouble func(T) float64, fromDouble func(float64) T, toInt func(T) int64, fromInt func(int64) T) Option[T] {
	return func(s *Structure_[T]) {
		s.toDouble = toDouble
		s.fromDouble = fromDouble
		s.toInt = toInt
		s.fromInt = fromInt
	}
}

// WithTransportType overrides the default byte-contiguous transport
// descriptor with a standard primitive one (MPI_DOUBLE and friends, in
// spirit).
func WithTransportType[T any](t TransportType) Option[T] {
	return func(s *Structure_[T]) { s.transport = t }
}

// NewStructure builds a Structure_ for element type T. Without options
// the result has no additive/multiplicative identity, is unordered,
// compares bitwise, and panics on every arithmetic, ordering and
// numeric-cast operation — exactly the minimal Set<dtype> a
// user-supplied ring gets until it opts into more.
func NewStructure[T any](opts ...Option[T]) *Structure_[T] {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	s := &Structure_[T]{
		elemSize: elemSize,
		pairSize: 8 + elemSize,
	}
	s.transport = newCustomTransportType(elemSize)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func load[T any](b []byte) T {
	return *(*T)(unsafe.Pointer(&b[0]))
}

func store[T any](b []byte, v T) {
	*(*T)(unsafe.Pointer(&b[0])) = v
}

func (s *Structure_[T]) ElementSize() int { return s.elemSize }
func (s *Structure_[T]) PairSize() int    { return s.pairSize }
func (s *Structure_[T]) IsOrdered() bool  { return s.ordered }

func (s *Structure_[T]) TransportType() TransportType { return s.transport }

func (s *Structure_[T]) AddID(out []byte) bool {
	if s.addID == nil {
		return false
	}
	store(out, *s.addID)
	return true
}

func (s *Structure_[T]) MulID(out []byte) bool {
	if s.mulID == nil {
		return false
	}
	store(out, *s.mulID)
	return true
}

func (s *Structure_[T]) Min(a, b, out []byte) {
	if !s.ordered {
		fatalf("cannot compute min unless the structure is ordered")
	}
	store(out, s.min(load[T](a), load[T](b)))
}

func (s *Structure_[T]) Max(a, b, out []byte) {
	if !s.ordered {
		fatalf("cannot compute max unless the structure is ordered")
	}
	store(out, s.max(load[T](a), load[T](b)))
}

func (s *Structure_[T]) MinVal(out []byte) {
	if !s.ordered {
		fatalf("cannot compute a representable minimum unless the structure is ordered")
	}
	store(out, *s.minLimit)
}

func (s *Structure_[T]) MaxVal(out []byte) {
	if !s.ordered {
		fatalf("cannot compute a representable maximum unless the structure is ordered")
	}
	store(out, *s.maxLimit)
}

func (s *Structure_[T]) Abs(a, out []byte) {
	if !s.ordered || s.abs == nil {
		fatalf("cannot compute abs unless the structure is ordered")
	}
	store(out, s.abs(load[T](a)))
}

func (s *Structure_[T]) IsEqual(a, b []byte) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if s.equal != nil {
		return s.equal(load[T](a), load[T](b))
	}
	for i := 0; i < s.elemSize; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Structure_[T]) Add(a, b, out []byte) {
	if s.add == nil {
		fatalf("addition is not defined for this algebraic structure")
	}
	store(out, s.add(load[T](a), load[T](b)))
}

func (s *Structure_[T]) Mul(a, b, out []byte) {
	if s.mul == nil {
		fatalf("multiplication is not defined for this algebraic structure")
	}
	store(out, s.mul(load[T](a), load[T](b)))
}

func (s *Structure_[T]) Set(dst, src []byte, n int64) {
	v := load[T](src)
	for i := int64(0); i < n; i++ {
		store(dst[i*int64(s.elemSize):], v)
	}
}

func (s *Structure_[T]) Copy(dst, src []byte) {
	store(dst, load[T](src))
}

func (s *Structure_[T]) CopyN(dst, src []byte, n int64) {
	sz := int64(s.elemSize)
	for i := int64(0); i < n; i++ {
		store(dst[i*sz:], load[T](src[i*sz:]))
	}
}

func (s *Structure_[T]) CopyStrided(n int64, a []byte, incA int64, b []byte, incB int64) {
	sz := int64(s.elemSize)
	for i := int64(0); i < n; i++ {
		store(b[i*incB*sz:], load[T](a[i*incA*sz:]))
	}
}

func (s *Structure_[T]) CopyStrided2D(m, n int64, a []byte, ldaA int64, b []byte, ldaB int64) {
	sz := int64(s.elemSize)
	for j := int64(0); j < n; j++ {
		for i := int64(0); i < m; i++ {
			store(b[(j*ldaB+i)*sz:], load[T](a[(j*ldaA+i)*sz:]))
		}
	}
}

func (s *Structure_[T]) Alloc(n int64) []byte {
	return make([]byte, n*int64(s.elemSize))
}

func (s *Structure_[T]) PairAlloc(n int64) []byte {
	return make([]byte, n*int64(s.pairSize))
}

func (s *Structure_[T]) GetKey(pair []byte) int64 {
	return int64(binary.LittleEndian.Uint64(pair[:8]))
}

func (s *Structure_[T]) GetValue(pair []byte) []byte {
	return pair[8 : 8+s.elemSize]
}

func (s *Structure_[T]) SetPair(dst []byte, key int64, value []byte) {
	binary.LittleEndian.PutUint64(dst[:8], uint64(key))
	copy(dst[8:8+s.elemSize], value[:s.elemSize])
}

func (s *Structure_[T]) SetPairs(dst []byte, key int64, value []byte, n int64) {
	for i := int64(0); i < n; i++ {
		s.SetPair(dst[i*int64(s.pairSize):], key, value)
	}
}

func (s *Structure_[T]) Sort(n int64, pairs []byte) {
	sortPairBytes(n, pairs, s.pairSize)
}

func (s *Structure_[T]) Init(n int64, arr []byte) {
	var zero T
	if s.addID != nil {
		zero = *s.addID
	}
	for i := int64(0); i < n; i++ {
		store(arr[i*int64(s.elemSize):], zero)
	}
}

func (s *Structure_[T]) Print(w io.Writer, elem []byte) {
	if s.print != nil {
		s.print(w, load[T](elem))
		return
	}
	for i := 0; i < s.elemSize; i++ {
		fmt.Fprintf(w, "%02x", elem[i])
	}
}

func (s *Structure_[T]) CastDouble(d float64, out []byte) {
	if s.fromDouble == nil {
		fatalf("double cast not possible for this algebraic structure")
	}
	store(out, s.fromDouble(d))
}

func (s *Structure_[T]) CastToDouble(elem []byte) float64 {
	if s.toDouble == nil {
		fatalf("double cast not possible for this algebraic structure")
	}
	return s.toDouble(load[T](elem))
}

func (s *Structure_[T]) CastInt(i int64, out []byte) {
	if s.fromInt == nil {
		fatalf("integer cast not possible for this algebraic structure")
	}
	store(out, s.fromInt(i))
}

func (s *Structure_[T]) CastToInt(elem []byte) int64 {
	if s.toInt == nil {
		fatalf("integer cast not possible for this algebraic structure")
	}
	return s.toInt(load[T](elem))
}

// Close releases any resources owned by this structure's transport
// descriptor (the Go analogue of a destructor's conditional
// MPI_Type_free). It is safe to call on a structure whose transport
// descriptor is one of the static primitive ones; it is then a no-op.
func (s *Structure_[T]) Close() {
	s.transport.Release()
}
