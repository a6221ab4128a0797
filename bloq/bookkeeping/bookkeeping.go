// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bookkeeping provides the wire-management bloqs Split, Join
// and Identity. They reshape the wiring without acting on the state.
package bookkeeping

import (
	"github.com/weft-qc/weft/internal/bloq/bookkeeping"
)

// Split fans an n-qubit register out into n single-qubit wires.
type Split = bookkeeping.Split

// Join gathers n single-qubit wires into one n-qubit register.
type Join = bookkeeping.Join

// Identity passes an n-qubit register through unchanged.
type Identity = bookkeeping.Identity

// NewSplit creates a Split; it panics if n < 1.
func NewSplit(n int) Split {
	return bookkeeping.NewSplit(n)
}

// NewJoin creates a Join; it panics if n < 1.
func NewJoin(n int) Join {
	return bookkeeping.NewJoin(n)
}

// NewIdentity creates an Identity; it panics if n < 1.
func NewIdentity(n int) Identity {
	return bookkeeping.NewIdentity(n)
}
