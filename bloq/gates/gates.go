// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gates provides elementary quantum gates as tensor-backed
// bloqs: the Paulis X and Z, Hadamard, T, and CNOT.
package gates

import (
	"github.com/weft-qc/weft/internal/bloq/gates"
)

// XGate is the Pauli X (bit flip).
type XGate = gates.XGate

// ZGate is the Pauli Z (phase flip).
type ZGate = gates.ZGate

// Hadamard maps the computational basis to the |±⟩ basis.
type Hadamard = gates.Hadamard

// TGate is the π/8 phase gate.
type TGate = gates.TGate

// CNot is the controlled-X gate on two single-qubit registers.
type CNot = gates.CNot

func NewX() XGate           { return gates.NewX() }
func NewZ() ZGate           { return gates.NewZ() }
func NewHadamard() Hadamard { return gates.NewHadamard() }
func NewT() TGate           { return gates.NewT() }
func NewCNot() CNot         { return gates.NewCNot() }
