// Copyright 2025 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package sim_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-qc/weft/backend/cpu"
	"github.com/weft-qc/weft/bloq"
	"github.com/weft-qc/weft/bloq/bookkeeping"
	"github.com/weft-qc/weft/bloq/gates"
	"github.com/weft-qc/weft/sim"
	"github.com/weft-qc/weft/tensor"
)

func eyeRaw(t *testing.T, n int) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{n, n}, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		raw.AsComplex128()[i*n+i] = 1
	}
	return raw
}

func TestEndToEndSplitJoin(t *testing.T) {
	sig := bloq.Build(
		bloq.RegSpec{Name: "selection", Bitsize: 2},
		bloq.RegSpec{Name: "target", Bitsize: 1},
	)
	bb, soqs, err := bloq.FromSignature(sig)
	require.NoError(t, err)

	wires, err := bb.Add(bookkeeping.NewSplit(2), map[string]bloq.SoquetT{"reg": soqs["selection"]})
	require.NoError(t, err)
	joined, err := bb.Add(bookkeeping.NewJoin(2), map[string]bloq.SoquetT{"reg": wires["reg"]})
	require.NoError(t, err)

	cbloq, err := bb.Finalize(map[string]bloq.SoquetT{
		"selection": joined["reg"],
		"target":    soqs["target"],
	})
	require.NoError(t, err)

	m, err := sim.Contract(cbloq, cpu.New())
	require.NoError(t, err)
	assert.True(t, m.Shape().Equal(tensor.Shape{8, 8}))
	assert.True(t, tensor.AllClose(m, eyeRaw(t, 8), 1e-12),
		"splitting and rejoining a register should act as the identity")
}

func TestEndToEndBoundaryInds(t *testing.T) {
	bb := bloq.NewBuilder()
	q, err := bb.AddRegister("q", 1)
	require.NoError(t, err)
	outs, err := bb.Add(gates.NewHadamard(), map[string]bloq.SoquetT{"q": q})
	require.NoError(t, err)
	cbloq, err := bb.Finalize(map[string]bloq.SoquetT{"q": outs["q"]})
	require.NoError(t, err)

	net, err := sim.ToNetwork(cbloq)
	require.NoError(t, err)
	require.Len(t, net.Tensors(), 1)

	outer := make([]sim.BoundaryInd, 0, 2)
	for _, ind := range net.OuterInds() {
		bi, ok := ind.(sim.BoundaryInd)
		require.True(t, ok, "outer index %v should be a boundary index", ind)
		outer = append(outer, bi)
	}
	slices.SortFunc(outer, sim.CompareBoundary)

	assert.Equal(t, []sim.BoundaryInd{
		{Reg: "q", J: 0, Side: sim.LeftSide},
		{Reg: "q", J: 0, Side: sim.RightSide},
	}, outer)
}

func TestEndToEndTGatePhases(t *testing.T) {
	// Four T gates compose to Z.
	bb := bloq.NewBuilder()
	q, err := bb.AddRegister("q", 1)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		outs, err := bb.Add(gates.NewT(), map[string]bloq.SoquetT{"q": q})
		require.NoError(t, err)
		q = outs["q"]
	}
	cbloq, err := bb.Finalize(map[string]bloq.SoquetT{"q": q})
	require.NoError(t, err)

	m, err := sim.Contract(cbloq, cpu.New())
	require.NoError(t, err)

	z, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Complex128, tensor.CPU)
	require.NoError(t, err)
	copy(z.AsComplex128(), gates.NewZ().Unitary())
	assert.True(t, tensor.AllClose(m, z, 1e-12), "T⁴ should equal Z")
}
