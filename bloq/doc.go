// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bloq provides the public API for Weft's compositional circuit
// model.
//
// A Bloq is a quantum operation with a declared signature of named,
// sized registers. Composite bloqs are built with a Builder, which
// enforces that every wire is produced once and consumed once:
//
//	bb := bloq.NewBuilder()
//	q, _ := bb.AddRegister("q", 1)
//	outs, _ := bb.Add(gates.NewHadamard(), map[string]bloq.SoquetT{"q": q})
//	cbloq, _ := bb.Finalize(map[string]bloq.SoquetT{"q": outs["q"]})
//
// Bloqs that implement TensorBloq can be simulated by converting the
// composite to a tensor network; see the sim package.
package bloq
