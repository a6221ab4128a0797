package gates

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/tensor"
)

func TestSingleQubitSignatures(t *testing.T) {
	for _, g := range []bloq.Bloq{NewX(), NewZ(), NewHadamard(), NewT()} {
		sig := g.Signature()
		if len(sig.Registers()) != 1 {
			t.Errorf("%s: registers = %d, want 1", g, len(sig.Registers()))
		}
		reg := sig.Registers()[0]
		if reg.Name != "q" || reg.Bitsize != 1 || reg.Side != bloq.SideThru {
			t.Errorf("%s: register = %v", g, reg)
		}
	}
}

func TestUnitaries(t *testing.T) {
	x := NewX().Unitary()
	if x[0] != 0 || x[1] != 1 || x[2] != 1 || x[3] != 0 {
		t.Errorf("X = %v", x)
	}

	h := NewHadamard().Unitary()
	s := complex(1/math.Sqrt2, 0)
	if h[0] != s || h[3] != -s {
		t.Errorf("H = %v", h)
	}

	tg := NewT().Unitary()
	want := cmplx.Exp(complex(0, math.Pi/4))
	if cmplx.Abs(tg[3]-want) > 1e-15 {
		t.Errorf("T phase = %v, want %v", tg[3], want)
	}
}

func TestHadamardIsInvolutory(t *testing.T) {
	b := tensor.NewMockBackend()
	h, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Complex128, tensor.CPU)
	if err != nil {
		t.Fatal(err)
	}
	copy(h.AsComplex128(), NewHadamard().Unitary())

	hh := b.MatMul(h, h)

	for i, want := range []complex128{1, 0, 0, 1} {
		if cmplx.Abs(hh.AsComplex128()[i]-want) > 1e-12 {
			t.Fatalf("H·H[%d] = %v, want %v", i, hh.AsComplex128()[i], want)
		}
	}
}

func TestGateTensorLayout(t *testing.T) {
	in := &bloq.Connection{ID: "in"}
	out := &bloq.Connection{ID: "out"}

	ts, err := NewX().Tensors(
		map[string]bloq.ConnectionT{"q": bloq.Scalar(in)},
		map[string]bloq.ConnectionT{"q": bloq.Scalar(out)},
	)
	if err != nil {
		t.Fatalf("Tensors: %v", err)
	}
	if len(ts) != 1 {
		t.Fatalf("X emitted %d tensors, want 1", len(ts))
	}

	tt := ts[0]
	inds := tt.Inds()
	if len(inds) != 2 {
		t.Fatalf("inds = %v", inds)
	}
	if ci := inds[0].(bloq.CxnInd); ci.Cxn != in || ci.J != 0 {
		t.Errorf("first ind = %v, want incoming bit 0", ci)
	}
	if co := inds[1].(bloq.CxnInd); co.Cxn != out || co.J != 0 {
		t.Errorf("second ind = %v, want outgoing bit 0", co)
	}

	// Entry (in, out) holds ⟨out|X|in⟩: the antidiagonal.
	data := tt.Raw().AsComplex128()
	if data[0] != 0 || data[1] != 1 || data[2] != 1 || data[3] != 0 {
		t.Errorf("X tensor data = %v", data)
	}
}

func TestCNotTensor(t *testing.T) {
	mk := func(id string) *bloq.Connection { return &bloq.Connection{ID: id} }
	ci, ti, co, to := mk("ci"), mk("ti"), mk("co"), mk("to")

	ts, err := NewCNot().Tensors(
		map[string]bloq.ConnectionT{"ctrl": bloq.Scalar(ci), "target": bloq.Scalar(ti)},
		map[string]bloq.ConnectionT{"ctrl": bloq.Scalar(co), "target": bloq.Scalar(to)},
	)
	if err != nil {
		t.Fatalf("Tensors: %v", err)
	}
	tt := ts[0]
	if !tt.Raw().Shape().Equal(tensor.Shape{2, 2, 2, 2}) {
		t.Fatalf("CNOT tensor shape = %v", tt.Raw().Shape())
	}

	// data[ctrlIn, tgtIn, ctrlOut, tgtOut] = 1 iff ctrl passes through
	// and the target is flipped when ctrl is set.
	data := tt.Raw().AsComplex128()
	for cin := 0; cin < 2; cin++ {
		for tin := 0; tin < 2; tin++ {
			for cout := 0; cout < 2; cout++ {
				for tout := 0; tout < 2; tout++ {
					got := data[cin*8+tin*4+cout*2+tout]
					var want complex128
					if cout == cin && tout == tin^cin {
						want = 1
					}
					if got != want {
						t.Errorf("CNOT[%d%d→%d%d] = %v, want %v", cin, tin, cout, tout, got, want)
					}
				}
			}
		}
	}
}
