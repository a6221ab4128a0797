package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/sim/tensornet"
)

// ToNetwork converts a composite bloq's wiring graph into a tensor
// network.
//
// Every instance contributes the tensors its bloq reports, indexed by
// (connection, qubit) pairs; shared connections bond neighboring
// tensors. Indices on dangling connections are renamed to BoundaryInds
// so they survive as the network's outer indices, and a wire running
// dangle to dangle contributes an explicit identity per qubit so
// untouched registers still appear on the boundary.
func ToNetwork(cbloq *bloq.CompositeBloq) (*tensornet.Network, error) {
	incoming := make(map[*bloq.BloqInstance]map[string]bloq.ConnectionT)
	outgoing := make(map[*bloq.BloqInstance]map[string]bloq.ConnectionT)
	for _, cxn := range cbloq.Connections() {
		if bi, ok := cxn.Right.Binst.(*bloq.BloqInstance); ok {
			setCxn(incoming, bi, cxn.Right, cxn)
		}
		if bi, ok := cxn.Left.Binst.(*bloq.BloqInstance); ok {
			setCxn(outgoing, bi, cxn.Left, cxn)
		}
	}

	net := tensornet.New()
	for _, binst := range cbloq.Instances() {
		tb, ok := binst.Bloq.(bloq.TensorBloq)
		if !ok {
			return nil, fmt.Errorf("sim: bloq %s does not support tensor simulation", binst.Bloq)
		}
		ts, err := tb.Tensors(incoming[binst], outgoing[binst])
		if err != nil {
			return nil, fmt.Errorf("sim: %s: %w", binst, err)
		}
		for _, t := range ts {
			net.AddTensor(t)
		}
	}

	// Boundary handling. A connection touching one dangle has its
	// CxnInds renamed; a connection touching both dangles has no tensor
	// yet, so it gets identities.
	rename := make(map[tensornet.Ind]tensornet.Ind)
	for _, cxn := range cbloq.Connections() {
		_, fromDangle := cxn.Left.Binst.(*bloq.DanglingT)
		_, toDangle := cxn.Right.Binst.(*bloq.DanglingT)
		switch {
		case fromDangle && toDangle:
			for j := 0; j < cxn.Left.Reg.Bitsize; j++ {
				net.AddTensor(tensornet.EyeTensor(
					boundaryInd(cxn.Left, j, LeftSide),
					boundaryInd(cxn.Right, j, RightSide),
				))
			}
		case fromDangle:
			for j := 0; j < cxn.Left.Reg.Bitsize; j++ {
				rename[bloq.CxnInd{Cxn: cxn, J: j}] = boundaryInd(cxn.Left, j, LeftSide)
			}
		case toDangle:
			for j := 0; j < cxn.Right.Reg.Bitsize; j++ {
				rename[bloq.CxnInd{Cxn: cxn, J: j}] = boundaryInd(cxn.Right, j, RightSide)
			}
		}
	}
	net.Reindex(rename)

	zap.L().Debug("converted composite bloq",
		zap.Int("instances", len(cbloq.Instances())),
		zap.Int("tensors", len(net.Tensors())),
		zap.Int("outer_inds", len(net.OuterInds())))
	return net, nil
}

func setCxn(m map[*bloq.BloqInstance]map[string]bloq.ConnectionT, bi *bloq.BloqInstance, soq *bloq.Soquet, cxn *bloq.Connection) {
	regs := m[bi]
	if regs == nil {
		regs = make(map[string]bloq.ConnectionT)
		m[bi] = regs
	}
	bundle := regs[soq.Reg.Name]
	if bundle == nil {
		bundle = bloq.NewBundle[*bloq.Connection](soq.Reg.Shape)
		regs[soq.Reg.Name] = bundle
	}
	bundle.SetAt(cxn, soq.Idx...)
}
