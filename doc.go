/*
Package tensor implements the local, single-process core of a
distributed-memory engine for sparse and dense tensors of arbitrary
order that may carry permutation symmetries on their index groups.

A tensor is described by its global shape, a per-mode symmetry pattern
and an algebraic structure (Structure) that supplies element semantics
— addition, multiplication, identities, ordering and comparison — as a
type-erased trait so that every kernel in this package can move and
combine elements without knowing their concrete Go type.

This package covers three things:

 1. The algebraic-structure abstraction (Structure, in algstrct.go,
    defaults.go, mpitype.go and primitive.go) by which every kernel
    manipulates opaque byte-sized elements whose ring operations are
    supplied as a trait object, with specialized fast paths for the
    common primitive types.

 2. Sparse-layout conversion (coo.go, csr.go, convert.go) between
    coordinate-list (COO) and compressed-sparse-row (CSR) storage,
    element-type generic and delegating to a vendor-style fast path
    (the blas subpackage) for 8-byte elements.

 3. Padding, depadding and zero-padding (descriptor.go, radix.go,
    padkey.go, depad.go, pad.go, zero.go): the machinery that maps
    local (key, value) pairs between a tensor's logical (unpadded)
    index space and its physical (padded) index space, drops pairs
    that fall into padding or violate symmetry on read-back, and zeros
    the padding regions of a packed, virtualized block so that local
    contraction kernels never have to branch on padding.

Higher-level concerns — the tensor-object façade, the expression DSL,
the contraction planner, the MPI topology manager and the
scalapack bridge — are out of scope here; this package is a single
process's view of one local partition of one tensor.
*/
package tensor
