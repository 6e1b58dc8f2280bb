package tensor

import "fmt"

// TensorDescriptor carries the per-mode layout a distributed tensor
// needs to turn a local linearized index into a global one and back:
// its logical edge lengths, any symmetry each mode participates in,
// how much virtual padding each mode carries, and the physical and
// virtual processor grid phases that together determine which global
// indices a given rank/virtual-block owns.
type TensorDescriptor struct {
	Order   int
	EdgeLen []int
	Padding []int
	Sym     []Sym

	PhysPhase []int
	VirtPhase []int

	// VirtPhysRank[i] is this rank's position along mode i within the
	// combined physical*virtual phase, incremented in place by
	// PadTensor as it sweeps virtual sub-blocks.
	VirtPhysRank []int
	// PhaseRank[i] is this rank's position along mode i's combined
	// phase at the start of a zero-padding sweep.
	PhaseRank []int
}

// NewTensorDescriptor validates and builds a TensorDescriptor. It
// enforces the one invariant every padded, distributed mode must
// satisfy: the padded edge length is an exact multiple of the
// combined physical*virtual phase along that mode.
func NewTensorDescriptor(edgeLen, padding []int, sym []Sym, physPhase, virtPhase []int) (*TensorDescriptor, error) {
	order := len(edgeLen)
	if len(padding) != order || len(sym) != order || len(physPhase) != order || len(virtPhase) != order {
		return nil, fmt.Errorf("tensor: NewTensorDescriptor: edgeLen, padding, sym, physPhase and virtPhase must all have the same length, got %d, %d, %d, %d, %d",
			len(edgeLen), len(padding), len(sym), len(physPhase), len(virtPhase))
	}
	for i := 0; i < order; i++ {
		phase := physPhase[i] * virtPhase[i]
		if (edgeLen[i]+padding[i])%phase != 0 {
			return nil, fmt.Errorf("tensor: NewTensorDescriptor: mode %d has edge_len+padding=%d, not a multiple of phys_phase*virt_phase=%d",
				i, edgeLen[i]+padding[i], phase)
		}
	}
	return &TensorDescriptor{
		Order:        order,
		EdgeLen:      append([]int(nil), edgeLen...),
		Padding:      append([]int(nil), padding...),
		Sym:          append([]Sym(nil), sym...),
		PhysPhase:    append([]int(nil), physPhase...),
		VirtPhase:    append([]int(nil), virtPhase...),
		VirtPhysRank: make([]int, order),
		PhaseRank:    make([]int, order),
	}, nil
}

// VirtLen returns edge_len[i]/phase[i], the number of elements of mode
// i a single virtual block holds (before padding is applied).
func (d *TensorDescriptor) VirtLen(i int) int {
	return d.EdgeLen[i] / (d.PhysPhase[i] * d.VirtPhase[i])
}

// NVirt returns the total number of virtual sub-blocks a rank holds,
// the product of VirtPhase across all modes.
func (d *TensorDescriptor) NVirt() int {
	n := 1
	for _, v := range d.VirtPhase {
		n *= v
	}
	return n
}
