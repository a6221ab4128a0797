// Package tensornet implements tagged tensor networks.
//
// A network is a collection of tensors whose indices carry identifiers.
// Two tensors sharing an identifier are bonded along those axes; an
// identifier appearing on exactly one tensor is an outer (boundary)
// index of the network.
package tensornet

import (
	"fmt"

	"github.com/weft-qc/weft/internal/tensor"
)

// Ind identifies a tensor index. Values must be comparable; tensors
// holding equal Ind values are bonded along the corresponding axes.
type Ind any

// Tensor is a multi-dimensional array whose axes are tagged with Inds.
type Tensor struct {
	raw  *tensor.RawTensor
	inds []Ind
}

// NewTensor creates a tagged tensor.
// The number of indices must match the array rank, except for the scalar
// case (single element, no indices). Every indexed axis carries one
// qubit, so all dimensions must be 2.
func NewTensor(raw *tensor.RawTensor, inds []Ind) (*Tensor, error) {
	if len(inds) == 0 && raw.NumElements() == 1 {
		return &Tensor{raw: raw, inds: nil}, nil
	}
	if len(raw.Shape()) != len(inds) {
		return nil, fmt.Errorf("tensornet: rank %d does not match %d indices", len(raw.Shape()), len(inds))
	}
	for _, d := range raw.Shape() {
		if d != 2 {
			return nil, fmt.Errorf("tensornet: indexed axes must have dimension 2, got shape %v", raw.Shape())
		}
	}
	seen := make(map[Ind]bool, len(inds))
	for _, ind := range inds {
		if seen[ind] {
			return nil, fmt.Errorf("tensornet: duplicate index %v on one tensor", ind)
		}
		seen[ind] = true
	}
	return &Tensor{raw: raw, inds: inds}, nil
}

// FromComplex creates a tagged complex128 tensor from flat row-major data.
func FromComplex(data []complex128, shape tensor.Shape, inds []Ind) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("tensornet: shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(data))
	}
	raw, err := tensor.NewRaw(shape, tensor.Complex128, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("tensornet: %w", err)
	}
	copy(raw.AsComplex128(), data)
	return NewTensor(raw, inds)
}

// EyeTensor creates a 2×2 identity tensor bonded to the two given indices.
// This is the unit of wire bookkeeping: it carries one qubit through
// unchanged.
func EyeTensor(a, b Ind) *Tensor {
	t, err := FromComplex([]complex128{1, 0, 0, 1}, tensor.Shape{2, 2}, []Ind{a, b})
	if err != nil {
		panic(err) // constant data cannot fail validation
	}
	return t
}

// Raw returns the underlying array.
func (t *Tensor) Raw() *tensor.RawTensor {
	return t.raw
}

// Inds returns the tensor's index identifiers, one per axis.
func (t *Tensor) Inds() []Ind {
	return t.inds
}

// String returns a human-readable description.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v inds=%v", t.raw.Shape(), t.inds)
}

// Network is a collection of tagged tensors.
type Network struct {
	tensors []*Tensor
}

// New creates a network from the given tensors.
func New(tensors ...*Tensor) *Network {
	return &Network{tensors: tensors}
}

// AddTensor appends a tensor to the network.
func (n *Network) AddTensor(t *Tensor) {
	n.tensors = append(n.tensors, t)
}

// Tensors returns the network's tensors.
func (n *Network) Tensors() []*Tensor {
	return n.tensors
}

// OuterInds returns the indices appearing on exactly one tensor, in
// first-appearance order. These are the network's boundary.
func (n *Network) OuterInds() []Ind {
	counts := make(map[Ind]int)
	var order []Ind
	for _, t := range n.tensors {
		for _, ind := range t.inds {
			if counts[ind] == 0 {
				order = append(order, ind)
			}
			counts[ind]++
		}
	}

	var outer []Ind
	for _, ind := range order {
		if counts[ind] == 1 {
			outer = append(outer, ind)
		}
	}
	return outer
}

// Reindex replaces index identifiers throughout the network.
// Indices not present in the mapping are left untouched.
func (n *Network) Reindex(mapping map[Ind]Ind) {
	for _, t := range n.tensors {
		for i, ind := range t.inds {
			if repl, ok := mapping[ind]; ok {
				t.inds[i] = repl
			}
		}
	}
}
