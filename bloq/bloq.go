// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bloq

import (
	"github.com/weft-qc/weft/internal/bloq"
)

// Type aliases for public API

// Side marks which boundary of a bloq a register lives on.
type Side = bloq.Side

// Side constants.
const (
	SideLeft  Side = bloq.SideLeft
	SideRight Side = bloq.SideRight
	SideThru  Side = bloq.SideThru
)

// Register is a named group of wires on a bloq's boundary.
type Register = bloq.Register

// Signature is an ordered list of registers describing a bloq's boundary.
type Signature = bloq.Signature

// RegSpec names a scalar THRU register for Build.
type RegSpec = bloq.RegSpec

// Bloq is a quantum operation with a declared register signature.
type Bloq = bloq.Bloq

// TensorBloq is a bloq that can describe itself as tensors for
// network-based simulation.
type TensorBloq = bloq.TensorBloq

// CxnInd addresses one qubit of a connection; it is the index
// identifier bloqs put on their tensors.
type CxnInd = bloq.CxnInd

// Instance is a node in a composite's wiring graph.
type Instance = bloq.Instance

// BloqInstance is one occurrence of a bloq inside a composite.
type BloqInstance = bloq.BloqInstance

// DanglingT marks the open boundary of a composite bloq.
type DanglingT = bloq.DanglingT

// Boundary markers.
var (
	LeftDangle  = bloq.LeftDangle
	RightDangle = bloq.RightDangle
)

// Soquet is one end of a wire. Soquets are linear: each is produced
// once and must be consumed exactly once.
type Soquet = bloq.Soquet

// Connection is a directed wire between two soquets.
type Connection = bloq.Connection

// Bundle is a scalar value or row-major ndarray of values mirroring a
// register's wire shape.
type Bundle[T any] = bloq.Bundle[T]

// SoquetT is a bundle of soquets, the currency of the builder API.
type SoquetT = bloq.SoquetT

// ConnectionT is a bundle of connections, as seen by TensorBloq.
type ConnectionT = bloq.ConnectionT

// Builder constructs a CompositeBloq by wiring bloq instances together.
type Builder = bloq.Builder

// CompositeBloq is a bloq defined by a wiring graph of sub-bloq
// instances.
type CompositeBloq = bloq.CompositeBloq

// Constructors

// NewRegister creates a scalar THRU register.
func NewRegister(name string, bitsize int) Register {
	return bloq.NewRegister(name, bitsize)
}

// NewSignature validates the registers and builds a signature.
func NewSignature(regs ...Register) (Signature, error) {
	return bloq.NewSignature(regs...)
}

// Build constructs a signature of scalar THRU registers, panicking on
// invalid input.
func Build(specs ...RegSpec) Signature {
	return bloq.Build(specs...)
}

// NewBuilder creates a builder with an empty signature.
func NewBuilder() *Builder {
	return bloq.NewBuilder()
}

// FromSignature creates a builder for a fixed signature and returns the
// initial left-boundary soquets keyed by register name.
func FromSignature(sig Signature) (*Builder, map[string]SoquetT, error) {
	return bloq.FromSignature(sig)
}

// Scalar wraps a single value as a scalar bundle.
func Scalar[T any](v T) *Bundle[T] {
	return bloq.Scalar(v)
}

// NewBundle creates an empty bundle with the given wire shape.
func NewBundle[T any](shape []int) *Bundle[T] {
	return bloq.NewBundle[T](shape)
}
