package tensornet

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/weft-qc/weft/internal/tensor"
)

// Contract reduces the network to a single tensor by repeatedly
// contracting pairs of tensors over their shared indices. Disconnected
// components are combined with outer products. The result carries the
// network's outer indices.
//
// The pair order is greedy (first pair found sharing a bond); the
// networks produced by circuit conversion are small enough that no
// contraction-path optimization is attempted.
func (n *Network) Contract(b tensor.Backend) (*Tensor, error) {
	if len(n.tensors) == 0 {
		return nil, errors.New("tensornet: cannot contract an empty network")
	}

	ts := make([]*Tensor, len(n.tensors))
	copy(ts, n.tensors)

	for len(ts) > 1 {
		i, j := findBonded(ts)
		if i < 0 {
			// No shared bonds left: outer product of the first two.
			i, j = 0, 1
		}

		merged, err := contractPair(ts[i], ts[j], b)
		if err != nil {
			return nil, err
		}

		zap.L().Debug("contracted tensor pair",
			zap.String("a", ts[i].String()),
			zap.String("b", ts[j].String()),
			zap.Int("remaining", len(ts)-1))

		// Remove j first (j > i), then replace i with the result.
		ts = append(ts[:j], ts[j+1:]...)
		ts[i] = merged
	}

	return ts[0], nil
}

// findBonded returns the first pair of tensor positions sharing at least
// one index, or (-1, -1) if the remaining tensors are disconnected.
func findBonded(ts []*Tensor) (int, int) {
	for i := 0; i < len(ts); i++ {
		for j := i + 1; j < len(ts); j++ {
			if sharesInd(ts[i], ts[j]) {
				return i, j
			}
		}
	}
	return -1, -1
}

func sharesInd(a, b *Tensor) bool {
	set := make(map[Ind]bool, len(a.inds))
	for _, ind := range a.inds {
		set[ind] = true
	}
	for _, ind := range b.inds {
		if set[ind] {
			return true
		}
	}
	return false
}

// contractPair contracts two tensors over all indices they share.
// With no shared indices the result is their outer product.
func contractPair(a, b *Tensor, backend tensor.Backend) (*Tensor, error) {
	bPos := make(map[Ind]int, len(b.inds))
	for pos, ind := range b.inds {
		bPos[ind] = pos
	}

	var axesA, axesB []int
	shared := make(map[Ind]bool)
	for pos, ind := range a.inds {
		if bpos, ok := bPos[ind]; ok {
			axesA = append(axesA, pos)
			axesB = append(axesB, bpos)
			shared[ind] = true
		}
	}

	// Gate tensors may participate in several contractions; keep their
	// buffers from being reused inplace.
	defer a.raw.ForceNonUnique()()
	defer b.raw.ForceNonUnique()()

	raw := backend.TensorDot(a.raw, b.raw, axesA, axesB)

	// Result indices: a's free indices then b's free indices, matching
	// the TensorDot axis order.
	var inds []Ind
	for _, ind := range a.inds {
		if !shared[ind] {
			inds = append(inds, ind)
		}
	}
	for _, ind := range b.inds {
		if !shared[ind] {
			inds = append(inds, ind)
		}
	}

	t, err := NewTensor(raw, inds)
	if err != nil {
		return nil, fmt.Errorf("tensornet: contraction produced inconsistent tensor: %w", err)
	}
	return t, nil
}
