// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/weft-qc/weft/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, complex64, complex128, int64, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
	Int64      DataType = tensor.Int64
	Bool       DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 2, 2} is a three-qubit amplitude array.
type Shape = tensor.Shape

// Qubits returns the shape of an n-qubit amplitude array: n axes of
// dimension two.
func Qubits(n int) Shape {
	return tensor.Qubits(n)
}

// RawTensor is the dtype-tagged array underlying every tensor.
type RawTensor = tensor.RawTensor

// Backend is the interface compute backends implement. See backend/cpu
// for the reference implementation.
type Backend = tensor.Backend

// Tensor is a generic type-safe tensor.
//
// T is the data type and B the backend implementation. Simulation code
// mostly works with complex128 tensors on the CPU backend.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Eye creates a 2D identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	return tensor.Eye[T, B](n, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
// Only float32, float64 and int64 are supported.
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	return tensor.Arange[T, B](start, end, b)
}

// FromSlice creates a tensor from a Go slice.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function; most users should use the creation
// functions above.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Comparison helpers

// AllClose reports whether two tensors agree element-wise within atol,
// after conversion to complex128.
func AllClose(a, b *RawTensor, atol float64) bool {
	return tensor.AllClose(a, b, atol)
}

// ToComplex128 converts a tensor's elements to complex128.
func ToComplex128(t *RawTensor) []complex128 {
	return tensor.ToComplex128(t)
}
