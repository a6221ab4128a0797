// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-qc/weft/backend/cpu"
	"github.com/weft-qc/weft/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Complex128, raw.DType())
	assert.Equal(t, tensor.CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())
	assert.Len(t, raw.AsComplex128(), 6)
}

func TestQubits(t *testing.T) {
	assert.Equal(t, tensor.Shape{2, 2, 2}, tensor.Qubits(3))
	assert.Equal(t, 8, tensor.Qubits(3).NumElements())
}

func TestCreationAndOps(t *testing.T) {
	backend := cpu.New()

	id := tensor.Eye[complex128](2, backend)
	x, err := tensor.FromSlice([]complex128{0, 1, 1, 0}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	// X · X = I
	xx := x.MatMul(x)
	assert.True(t, tensor.AllClose(xx.Raw(), id.Raw(), 1e-12))

	// I ⊗ I = I4
	i4 := id.Kron(id)
	assert.True(t, i4.Shape().Equal(tensor.Shape{4, 4}))
	want := tensor.Eye[complex128](4, backend)
	assert.True(t, tensor.AllClose(i4.Raw(), want.Raw(), 1e-12))
}

func TestTensorDotPublicAPI(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]complex128{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]complex128{5, 6, 7, 8}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	dot := a.TensorDot(b, []int{1}, []int{0})
	mm := a.MatMul(b)
	assert.True(t, tensor.AllClose(dot.Raw(), mm.Raw(), 1e-12))
}

func TestToComplex128(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	raw.AsFloat64()[0] = 1.5
	raw.AsFloat64()[1] = -2

	vals := tensor.ToComplex128(raw)
	assert.Equal(t, []complex128{1.5, -2}, vals)
}
