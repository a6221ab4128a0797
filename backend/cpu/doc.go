// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements the tensor.Backend interface with:
//   - Pure Go implementation (no CGO)
//   - All six dtypes, including complex64 and complex128
//   - NumPy-compatible broadcasting for element-wise operations
//   - TensorDot with arbitrary contraction axes
//   - Worker-pool parallelism for large tensors
//
// # Basic Usage
//
//	import (
//	    "github.com/weft-qc/weft/backend/cpu"
//	    "github.com/weft-qc/weft/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Eye[complex128](2, backend)
//	    y := x.Kron(x)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates
// its result; the only mutation is the inplace fast path on operands
// with a unique buffer.
package cpu
