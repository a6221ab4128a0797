// Package bookkeeping provides the wire-management bloqs: Split fans a
// multi-qubit register out into single-qubit wires, Join gathers them
// back, and Identity passes a register through untouched.
//
// None of these act on the quantum state. Their tensors are 2×2
// identities, one per qubit, so they contract away without inflating the
// network.
package bookkeeping

import (
	"fmt"

	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/sim/tensornet"
)

// Split fans an n-qubit register out into n single-qubit wires.
type Split struct {
	N int
}

// NewSplit panics if n < 1.
func NewSplit(n int) Split {
	if n < 1 {
		panic(fmt.Sprintf("bookkeeping: split width must be positive, got %d", n))
	}
	return Split{N: n}
}

func (s Split) Signature() bloq.Signature {
	sig, err := bloq.NewSignature(
		bloq.Register{Name: "reg", Bitsize: s.N, Side: bloq.SideLeft},
		bloq.Register{Name: "reg", Bitsize: 1, Shape: []int{s.N}, Side: bloq.SideRight},
	)
	if err != nil {
		panic(err) // unreachable for N >= 1
	}
	return sig
}

func (s Split) String() string {
	return fmt.Sprintf("Split(%d)", s.N)
}

// Tensors emits one 2×2 identity per qubit, bonding bit j of the wide
// incoming wire to the j-th outgoing single-qubit wire.
func (s Split) Tensors(incoming, outgoing map[string]bloq.ConnectionT) ([]*tensornet.Tensor, error) {
	in := incoming["reg"].Single()
	outs := outgoing["reg"]
	ts := make([]*tensornet.Tensor, s.N)
	for j := 0; j < s.N; j++ {
		ts[j] = tensornet.EyeTensor(
			bloq.CxnInd{Cxn: in, J: j},
			bloq.CxnInd{Cxn: outs.At(j), J: 0},
		)
	}
	return ts, nil
}

// Join gathers n single-qubit wires into one n-qubit register.
type Join struct {
	N int
}

// NewJoin panics if n < 1.
func NewJoin(n int) Join {
	if n < 1 {
		panic(fmt.Sprintf("bookkeeping: join width must be positive, got %d", n))
	}
	return Join{N: n}
}

func (j Join) Signature() bloq.Signature {
	sig, err := bloq.NewSignature(
		bloq.Register{Name: "reg", Bitsize: 1, Shape: []int{j.N}, Side: bloq.SideLeft},
		bloq.Register{Name: "reg", Bitsize: j.N, Side: bloq.SideRight},
	)
	if err != nil {
		panic(err) // unreachable for N >= 1
	}
	return sig
}

func (j Join) String() string {
	return fmt.Sprintf("Join(%d)", j.N)
}

func (j Join) Tensors(incoming, outgoing map[string]bloq.ConnectionT) ([]*tensornet.Tensor, error) {
	ins := incoming["reg"]
	out := outgoing["reg"].Single()
	ts := make([]*tensornet.Tensor, j.N)
	for k := 0; k < j.N; k++ {
		ts[k] = tensornet.EyeTensor(
			bloq.CxnInd{Cxn: ins.At(k), J: 0},
			bloq.CxnInd{Cxn: out, J: k},
		)
	}
	return ts, nil
}

// Identity passes an n-qubit register through unchanged.
type Identity struct {
	N int
}

// NewIdentity panics if n < 1.
func NewIdentity(n int) Identity {
	if n < 1 {
		panic(fmt.Sprintf("bookkeeping: identity width must be positive, got %d", n))
	}
	return Identity{N: n}
}

func (id Identity) Signature() bloq.Signature {
	return bloq.Build(bloq.RegSpec{Name: "q", Bitsize: id.N})
}

func (id Identity) String() string {
	return "I"
}

func (id Identity) Tensors(incoming, outgoing map[string]bloq.ConnectionT) ([]*tensornet.Tensor, error) {
	in := incoming["q"].Single()
	out := outgoing["q"].Single()
	ts := make([]*tensornet.Tensor, id.N)
	for j := 0; j < id.N; j++ {
		ts[j] = tensornet.EyeTensor(
			bloq.CxnInd{Cxn: in, J: j},
			bloq.CxnInd{Cxn: out, J: j},
		)
	}
	return ts, nil
}

var (
	_ bloq.TensorBloq = Split{}
	_ bloq.TensorBloq = Join{}
	_ bloq.TensorBloq = Identity{}
)
