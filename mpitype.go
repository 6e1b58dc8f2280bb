package tensor

import "sync"

// Kind identifies the wire-transport shape of an element type: a
// primitive kind maps to a standard, pre-existing transport descriptor
// (the Go analogue of MPI_DOUBLE, MPI_INT64_T, etc.); KindOpaque means
// the element has no standard descriptor and is shipped as a
// contiguous run of bytes instead.
type Kind int

const (
	KindOpaque Kind = iota
	KindBool
	KindByte
	KindInt32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

// TransportType is the transport descriptor an AS exposes for shipping
// its elements over the wire. It is deliberately small and
// comparable: the MPI topology manager that would actually post sends
// and receives against it is out of scope for this package, but every
// Structure must be able to report what shape its elements have so
// that layer can pick the right datatype.
type TransportType struct {
	Kind     Kind
	ElemSize int

	// custom is set when this descriptor was constructed on first use
	// for a non-primitive element rather than referencing one of the
	// static primitive descriptors below. Only a custom descriptor
	// owns resources that Release must give back.
	custom bool
	handle *customTransportHandle
}

// customTransportHandle stands in for the MPI_Datatype handle that
// a default derived MPI datatype constructs (MPI_Type_contiguous +
// MPI_Type_commit) for an element type with no standard wire type, and
// releases (MPI_Type_free) exactly once on the owning Structure's
// Close. Real construction of an MPI committed type belongs to the MPI
// topology manager this package does not own; this records the
// bookkeeping (does it exist, has it been released) that the owner is
// responsible for honoring.
type customTransportHandle struct {
	mu       sync.Mutex
	released bool
}

// newCustomTransportType builds a byte-contiguous transport descriptor
// for an element type that has no standard wire representation, the
// same fallback a default derived-datatype constructor takes for any
// dtype without an explicit specialization.
func newCustomTransportType(elemSize int) TransportType {
	return TransportType{
		Kind:     KindOpaque,
		ElemSize: elemSize,
		custom:   true,
		handle:   &customTransportHandle{},
	}
}

// IsCustom reports whether this descriptor owns a resource that must
// be released, as opposed to referencing one of the static primitive
// descriptors that live for the process lifetime.
func (t TransportType) IsCustom() bool { return t.custom }

// Release gives back a custom transport descriptor's resources. It is
// a no-op for the static primitive descriptors and safe to call more
// than once.
func (t TransportType) Release() {
	if !t.custom || t.handle == nil {
		return
	}
	t.handle.mu.Lock()
	defer t.handle.mu.Unlock()
	t.handle.released = true
}

// Released reports whether Release has already been called on a
// custom descriptor; always false for static descriptors.
func (t TransportType) Released() bool {
	if !t.custom || t.handle == nil {
		return false
	}
	t.handle.mu.Lock()
	defer t.handle.mu.Unlock()
	return t.handle.released
}

var (
	boolTransportType       = TransportType{Kind: KindBool, ElemSize: 1}
	byteTransportType       = TransportType{Kind: KindByte, ElemSize: 1}
	int32TransportType      = TransportType{Kind: KindInt32, ElemSize: 4}
	int64TransportType      = TransportType{Kind: KindInt64, ElemSize: 8}
	uint64TransportType     = TransportType{Kind: KindUint64, ElemSize: 8}
	float32TransportType    = TransportType{Kind: KindFloat32, ElemSize: 4}
	float64TransportType    = TransportType{Kind: KindFloat64, ElemSize: 8}
	complex64TransportType  = TransportType{Kind: KindComplex64, ElemSize: 8}
	complex128TransportType = TransportType{Kind: KindComplex128, ElemSize: 16}
)
