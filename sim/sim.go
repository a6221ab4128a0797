// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sim provides the public API for tensor-network simulation of
// composite bloqs.
//
// A composite bloq is converted to a tensor network whose bonds follow
// the wiring graph, then contracted to the dense matrix of the
// composite's action:
//
//	m, err := sim.Contract(cbloq, cpu.New())
//
// The matrix has shape (2^R, 2^L): rows over output basis states,
// columns over input basis states, ordered by signature register order
// with qubit 0 most significant.
package sim

import (
	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/sim"
	"github.com/weft-qc/weft/internal/sim/tensornet"
	"github.com/weft-qc/weft/internal/tensor"
)

// Ind identifies a tensor index within a network.
type Ind = tensornet.Ind

// Tensor is a multi-dimensional array whose axes are tagged with Inds.
type Tensor = tensornet.Tensor

// Network is a collection of tagged tensors.
type Network = tensornet.Network

// BoundaryInd names an outer index of a converted network: one qubit of
// one wire on the composite's boundary.
type BoundaryInd = sim.BoundaryInd

// Side tags for boundary indices.
const (
	LeftSide  = sim.LeftSide
	RightSide = sim.RightSide
)

// NewTensor creates a tagged tensor.
func NewTensor(raw *tensor.RawTensor, inds []Ind) (*Tensor, error) {
	return tensornet.NewTensor(raw, inds)
}

// FromComplex creates a tagged complex128 tensor from flat row-major
// data.
func FromComplex(data []complex128, shape tensor.Shape, inds []Ind) (*Tensor, error) {
	return tensornet.FromComplex(data, shape, inds)
}

// EyeTensor creates a 2×2 identity tensor bonded to the two given
// indices.
func EyeTensor(a, b Ind) *Tensor {
	return tensornet.EyeTensor(a, b)
}

// ToNetwork converts a composite bloq's wiring graph into a tensor
// network whose outer indices are BoundaryInds.
func ToNetwork(cbloq *bloq.CompositeBloq) (*Network, error) {
	return sim.ToNetwork(cbloq)
}

// Contract converts a composite bloq to a tensor network, contracts it,
// and returns the dense matrix of the composite's action.
func Contract(cbloq *bloq.CompositeBloq, b tensor.Backend) (*tensor.RawTensor, error) {
	return sim.Contract(cbloq, b)
}

// CompareBoundary orders boundary indices by register name, wire index
// path, qubit position, then side.
func CompareBoundary(a, b BoundaryInd) int {
	return sim.CompareBoundary(a, b)
}
