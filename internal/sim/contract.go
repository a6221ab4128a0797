package sim

import (
	"fmt"

	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/sim/tensornet"
	"github.com/weft-qc/weft/internal/tensor"
)

// Contract converts a composite bloq to a tensor network, contracts it,
// and returns the dense matrix of the composite's action.
//
// The result has shape (2^R, 2^L) where R and L are the right and left
// boundary qubit counts. Rows run over output basis states and columns
// over input basis states, each ordered by signature register order,
// then wire index, then qubit position with qubit 0 most significant.
func Contract(cbloq *bloq.CompositeBloq, b tensor.Backend) (*tensor.RawTensor, error) {
	net, err := ToNetwork(cbloq)
	if err != nil {
		return nil, err
	}

	sig := cbloq.Signature()
	rights := boundaryOrder(sig.Rights(), RightSide)
	lefts := boundaryOrder(sig.Lefts(), LeftSide)

	if len(net.Tensors()) == 0 {
		// A composite with no registers contracts to the scalar 1.
		return scalarOne()
	}

	res, err := net.Contract(b)
	if err != nil {
		return nil, err
	}

	desired := make([]tensornet.Ind, 0, len(rights)+len(lefts))
	for _, ind := range rights {
		desired = append(desired, ind)
	}
	for _, ind := range lefts {
		desired = append(desired, ind)
	}
	if len(desired) != len(res.Inds()) {
		return nil, fmt.Errorf("sim: contraction left %d outer indices, boundary has %d: %v",
			len(res.Inds()), len(desired), res.Inds())
	}

	pos := make(map[tensornet.Ind]int, len(res.Inds()))
	for i, ind := range res.Inds() {
		pos[ind] = i
	}
	perm := make([]int, len(desired))
	for i, ind := range desired {
		p, ok := pos[ind]
		if !ok {
			return nil, fmt.Errorf("sim: boundary index %v missing from contracted tensor", ind)
		}
		perm[i] = p
	}

	raw := res.Raw()
	if len(perm) > 0 {
		raw = b.Transpose(raw, perm...)
	}
	return b.Reshape(raw, tensor.Shape{1 << len(rights), 1 << len(lefts)}), nil
}

// boundaryOrder enumerates one side's boundary indices in the canonical
// basis order.
func boundaryOrder(regs []bloq.Register, side string) []BoundaryInd {
	var inds []BoundaryInd
	for _, reg := range regs {
		for _, idx := range reg.AllIdx() {
			for j := 0; j < reg.Bitsize; j++ {
				inds = append(inds, BoundaryInd{Reg: reg.Name, Idx: idxKey(idx), J: j, Side: side})
			}
		}
	}
	return inds
}

func scalarOne() (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(tensor.Shape{1, 1}, tensor.Complex128, tensor.CPU)
	if err != nil {
		return nil, err
	}
	raw.AsComplex128()[0] = 1
	return raw, nil
}
