// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/weft-qc/weft/internal/backend/cpu"
	"github.com/weft-qc/weft/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/weft-qc/weft/backend/cpu"
//	    "github.com/weft-qc/weft/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Eye[complex128](2, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
