// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense tensors Weft
// uses to simulate quantum circuits.
//
// The package defines the core types shared by the whole module:
//   - RawTensor: dtype-tagged multi-dimensional array with copy-on-write buffers
//   - Tensor[T, B]: type-safe generic view over a RawTensor
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros[complex128](tensor.Shape{2, 2}, backend)
//	id := tensor.Eye[complex128](2, backend)
//	y := x.Add(id)
package tensor
