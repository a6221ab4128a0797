package sim

import (
	"slices"
	"testing"

	"github.com/weft-qc/weft/internal/bloq"
	"github.com/weft-qc/weft/internal/sim/tensornet"
)

// wireProbe is a one-qubit THRU bloq whose tensor is the identity. It
// records the register names it is handed so tests can verify the
// conversion plumbing.
type wireProbe struct {
	seenIncoming *[]string
	seenOutgoing *[]string
}

func (p wireProbe) Signature() bloq.Signature { return bloq.Build(bloq.RegSpec{Name: "x", Bitsize: 1}) }
func (p wireProbe) String() string            { return "Probe" }

func (p wireProbe) Tensors(incoming, outgoing map[string]bloq.ConnectionT) ([]*tensornet.Tensor, error) {
	for name := range incoming {
		*p.seenIncoming = append(*p.seenIncoming, name)
	}
	for name := range outgoing {
		*p.seenOutgoing = append(*p.seenOutgoing, name)
	}
	t := tensornet.EyeTensor(
		bloq.CxnInd{Cxn: incoming["x"].Single(), J: 0},
		bloq.CxnInd{Cxn: outgoing["x"].Single(), J: 0},
	)
	return []*tensornet.Tensor{t}, nil
}

// opaque implements Bloq but not TensorBloq.
type opaque struct{}

func (opaque) Signature() bloq.Signature { return bloq.Build(bloq.RegSpec{Name: "x", Bitsize: 1}) }
func (opaque) String() string            { return "Opaque" }

func buildChain(t *testing.T, n int, probe wireProbe) *bloq.CompositeBloq {
	t.Helper()
	bb := bloq.NewBuilder()
	x, err := bb.AddRegister("x", 1)
	if err != nil {
		t.Fatalf("AddRegister: %v", err)
	}
	for i := 0; i < n; i++ {
		outs, err := bb.Add(probe, map[string]bloq.SoquetT{"x": x})
		if err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
		x = outs["x"]
	}
	cbloq, err := bb.Finalize(map[string]bloq.SoquetT{"x": x})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return cbloq
}

func TestToNetworkChain(t *testing.T) {
	var seenIn, seenOut []string
	probe := wireProbe{seenIncoming: &seenIn, seenOutgoing: &seenOut}
	cbloq := buildChain(t, 4, probe)

	net, err := ToNetwork(cbloq)
	if err != nil {
		t.Fatalf("ToNetwork: %v", err)
	}

	// One tensor per instance, nothing extra.
	if len(net.Tensors()) != 4 {
		t.Errorf("network has %d tensors, want 4", len(net.Tensors()))
	}

	// Each probe saw exactly its one register on both flanks.
	wantSeen := []string{"x", "x", "x", "x"}
	if !slices.Equal(seenIn, wantSeen) || !slices.Equal(seenOut, wantSeen) {
		t.Errorf("probes saw incoming=%v outgoing=%v, want x four times each", seenIn, seenOut)
	}

	// The chain's interior bonds cancel: only the two boundary indices
	// remain open.
	outer := make([]BoundaryInd, 0, 2)
	for _, ind := range net.OuterInds() {
		bi, ok := ind.(BoundaryInd)
		if !ok {
			t.Fatalf("outer index %v is not a boundary index", ind)
		}
		outer = append(outer, bi)
	}
	slices.SortFunc(outer, CompareBoundary)

	want := []BoundaryInd{
		{Reg: "x", Idx: "", J: 0, Side: LeftSide},
		{Reg: "x", Idx: "", J: 0, Side: RightSide},
	}
	if !slices.Equal(outer, want) {
		t.Errorf("outer inds = %v, want %v", outer, want)
	}
}

func TestToNetworkRejectsOpaqueBloq(t *testing.T) {
	bb := bloq.NewBuilder()
	x, _ := bb.AddRegister("x", 1)
	outs, err := bb.Add(opaque{}, map[string]bloq.SoquetT{"x": x})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	cbloq, err := bb.Finalize(map[string]bloq.SoquetT{"x": outs["x"]})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if _, err := ToNetwork(cbloq); err == nil {
		t.Fatal("ToNetwork should fail on a bloq without tensor support")
	}
}

func TestToNetworkUntouchedRegister(t *testing.T) {
	// A register that no instance touches still shows up: its
	// dangle-to-dangle wire becomes an explicit identity tensor.
	sig := bloq.Build(bloq.RegSpec{Name: "q", Bitsize: 2})
	bb, initial, err := bloq.FromSignature(sig)
	if err != nil {
		t.Fatalf("FromSignature: %v", err)
	}
	cbloq, err := bb.Finalize(map[string]bloq.SoquetT{"q": initial["q"]})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	net, err := ToNetwork(cbloq)
	if err != nil {
		t.Fatalf("ToNetwork: %v", err)
	}
	// One identity per qubit.
	if len(net.Tensors()) != 2 {
		t.Errorf("network has %d tensors, want 2", len(net.Tensors()))
	}
	if len(net.OuterInds()) != 4 {
		t.Errorf("outer inds = %v, want 4 boundary indices", net.OuterInds())
	}
}

func TestBoundaryIndOrdering(t *testing.T) {
	a := BoundaryInd{Reg: "a", J: 0, Side: LeftSide}
	b := BoundaryInd{Reg: "a", J: 0, Side: RightSide}
	c := BoundaryInd{Reg: "a", J: 1, Side: LeftSide}
	d := BoundaryInd{Reg: "b", J: 0, Side: LeftSide}
	e := BoundaryInd{Reg: "b", Idx: "1", J: 0, Side: LeftSide}

	got := []BoundaryInd{e, d, c, b, a}
	slices.SortFunc(got, CompareBoundary)
	want := []BoundaryInd{a, b, c, d, e}
	if !slices.Equal(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}
