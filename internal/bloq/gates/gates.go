// Package gates provides elementary quantum gates as tensor-backed
// bloqs.
package gates

import (
	"math"
	"math/cmplx"

	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/sim/tensornet"
	"github.com/weft-qc/weft/internal/tensor"
)

// unitaryTensor builds the network tensor for an n-qubit unitary.
//
// u is the 2ⁿ×2ⁿ matrix in row-major order with u[row*dim+col] = ⟨row|U|col⟩,
// basis states numbered with bit 0 most significant. The tensor axes are
// (in bits..., out bits...), so entry (in, out) holds ⟨out|U|in⟩.
func unitaryTensor(u []complex128, inInds, outInds []tensornet.Ind) (*tensornet.Tensor, error) {
	n := len(inInds)
	dim := 1 << n

	data := make([]complex128, dim*dim)
	for in := 0; in < dim; in++ {
		for out := 0; out < dim; out++ {
			data[in*dim+out] = u[out*dim+in]
		}
	}

	shape := tensor.Qubits(2 * n)
	inds := make([]tensornet.Ind, 0, 2*n)
	inds = append(inds, inInds...)
	inds = append(inds, outInds...)
	return tensornet.FromComplex(data, shape, inds)
}

// oneQubit is the shared shape of the single-qubit gates: a THRU
// register "q" of one qubit and a 2×2 unitary.
type oneQubit struct {
	name string
	u    [4]complex128
}

func (g oneQubit) Signature() bloq.Signature {
	return bloq.Build(bloq.RegSpec{Name: "q", Bitsize: 1})
}

func (g oneQubit) String() string {
	return g.name
}

// Unitary returns the gate's 2×2 matrix in row-major order.
func (g oneQubit) Unitary() []complex128 {
	return g.u[:]
}

func (g oneQubit) Tensors(incoming, outgoing map[string]bloq.ConnectionT) ([]*tensornet.Tensor, error) {
	t, err := unitaryTensor(g.u[:],
		[]tensornet.Ind{bloq.CxnInd{Cxn: incoming["q"].Single(), J: 0}},
		[]tensornet.Ind{bloq.CxnInd{Cxn: outgoing["q"].Single(), J: 0}},
	)
	if err != nil {
		return nil, err
	}
	return []*tensornet.Tensor{t}, nil
}

// XGate is the Pauli X (bit flip).
type XGate struct{ oneQubit }

// ZGate is the Pauli Z (phase flip).
type ZGate struct{ oneQubit }

// Hadamard maps the computational basis to the |±⟩ basis.
type Hadamard struct{ oneQubit }

// TGate is the π/8 phase gate.
type TGate struct{ oneQubit }

func NewX() XGate {
	return XGate{oneQubit{name: "X", u: [4]complex128{0, 1, 1, 0}}}
}

func NewZ() ZGate {
	return ZGate{oneQubit{name: "Z", u: [4]complex128{1, 0, 0, -1}}}
}

func NewHadamard() Hadamard {
	s := complex(1/math.Sqrt2, 0)
	return Hadamard{oneQubit{name: "H", u: [4]complex128{s, s, s, -s}}}
}

func NewT() TGate {
	return TGate{oneQubit{name: "T", u: [4]complex128{1, 0, 0, cmplx.Exp(complex(0, math.Pi/4))}}}
}

// CNot is the controlled-X gate on two single-qubit registers.
type CNot struct{}

func NewCNot() CNot {
	return CNot{}
}

func (CNot) Signature() bloq.Signature {
	return bloq.Build(
		bloq.RegSpec{Name: "ctrl", Bitsize: 1},
		bloq.RegSpec{Name: "target", Bitsize: 1},
	)
}

func (CNot) String() string {
	return "CNOT"
}

// Unitary returns the 4×4 matrix in the |ctrl,target⟩ basis.
func (CNot) Unitary() []complex128 {
	return []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	}
}

func (c CNot) Tensors(incoming, outgoing map[string]bloq.ConnectionT) ([]*tensornet.Tensor, error) {
	t, err := unitaryTensor(c.Unitary(),
		[]tensornet.Ind{
			bloq.CxnInd{Cxn: incoming["ctrl"].Single(), J: 0},
			bloq.CxnInd{Cxn: incoming["target"].Single(), J: 0},
		},
		[]tensornet.Ind{
			bloq.CxnInd{Cxn: outgoing["ctrl"].Single(), J: 0},
			bloq.CxnInd{Cxn: outgoing["target"].Single(), J: 0},
		},
	)
	if err != nil {
		return nil, err
	}
	return []*tensornet.Tensor{t}, nil
}

var (
	_ bloq.TensorBloq = XGate{}
	_ bloq.TensorBloq = ZGate{}
	_ bloq.TensorBloq = Hadamard{}
	_ bloq.TensorBloq = TGate{}
	_ bloq.TensorBloq = CNot{}
)
