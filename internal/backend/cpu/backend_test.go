package cpu

import (
	"testing"

	"github.com/weft-qc/weft/internal/tensor"
)

func fromSlice(t *testing.T, data []complex128, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Complex128, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsComplex128(), data)
	return raw
}

func eye(t *testing.T, n int) *tensor.RawTensor {
	t.Helper()
	data := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return fromSlice(t, data, tensor.Shape{n, n})
}

func TestBackendMetadata(t *testing.T) {
	b := New()
	if b.Name() != "CPU" {
		t.Errorf("Name() = %q, want CPU", b.Name())
	}
	if b.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", b.Device())
	}
}

func TestAdd(t *testing.T) {
	b := New()
	a := fromSlice(t, []complex128{1, 2, 3, 4}, tensor.Shape{2, 2})
	c := fromSlice(t, []complex128{5i, 6i, 7i, 8i}, tensor.Shape{2, 2})

	// Keep operands so the inplace fast path stays out of the way.
	defer a.ForceNonUnique()()

	result := b.Add(a, c)

	want := fromSlice(t, []complex128{1 + 5i, 2 + 6i, 3 + 7i, 4 + 8i}, tensor.Shape{2, 2})
	if !tensor.AllClose(result, want, 1e-12) {
		t.Errorf("Add result = %v, want %v", result.AsComplex128(), want.AsComplex128())
	}
}

func TestAddInplaceFastPath(t *testing.T) {
	b := New()
	a := fromSlice(t, []complex128{1, 2}, tensor.Shape{2})
	c := fromSlice(t, []complex128{10, 20}, tensor.Shape{2})

	result := b.Add(a, c)

	// a is unique, so the backend may reuse its buffer.
	if result.AsComplex128()[0] != 11 || result.AsComplex128()[1] != 22 {
		t.Errorf("Add = %v, want [11 22]", result.AsComplex128())
	}
}

func TestSubMul(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{5, 6, 7, 8}, tensor.Shape{2, 2})
	y := fromSlice(t, []complex128{1, 2, 3, 4}, tensor.Shape{2, 2})
	defer x.ForceNonUnique()()

	sub := b.Sub(x, y)
	want := fromSlice(t, []complex128{4, 4, 4, 4}, tensor.Shape{2, 2})
	if !tensor.AllClose(sub, want, 1e-12) {
		t.Errorf("Sub = %v", sub.AsComplex128())
	}

	defer x.ForceNonUnique()()
	mul := b.Mul(x, y)
	wantMul := fromSlice(t, []complex128{5, 12, 21, 32}, tensor.Shape{2, 2})
	if !tensor.AllClose(mul, wantMul, 1e-12) {
		t.Errorf("Mul = %v", mul.AsComplex128())
	}
}

func TestAddBroadcast(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2, 3}, tensor.Shape{3, 1})
	y := fromSlice(t, []complex128{10, 20, 10, 20, 10, 20}, tensor.Shape{3, 2})

	result := b.Add(x, y)

	want := fromSlice(t, []complex128{11, 21, 12, 22, 13, 23}, tensor.Shape{3, 2})
	if !tensor.AllClose(result, want, 1e-12) {
		t.Errorf("broadcast Add = %v, want %v", result.AsComplex128(), want.AsComplex128())
	}
}

func TestMatMul(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2, 3, 4}, tensor.Shape{2, 2})
	y := fromSlice(t, []complex128{5, 6, 7, 8}, tensor.Shape{2, 2})

	c := b.MatMul(x, y)

	want := fromSlice(t, []complex128{19, 22, 43, 50}, tensor.Shape{2, 2})
	if !tensor.AllClose(c, want, 1e-12) {
		t.Errorf("MatMul = %v, want %v", c.AsComplex128(), want.AsComplex128())
	}
}

func TestMatMulComplex(t *testing.T) {
	b := New()
	// Pauli Y squared is the identity.
	y := fromSlice(t, []complex128{0, -1i, 1i, 0}, tensor.Shape{2, 2})

	c := b.MatMul(y, y)

	if !tensor.AllClose(c, eye(t, 2), 1e-12) {
		t.Errorf("Y·Y = %v, want identity", c.AsComplex128())
	}
}

func TestKron(t *testing.T) {
	b := New()

	// I ⊗ I = I4
	c := b.Kron(eye(t, 2), eye(t, 2))
	if !tensor.AllClose(c, eye(t, 4), 1e-12) {
		t.Errorf("I ⊗ I = %v, want I4", c.AsComplex128())
	}

	// X ⊗ Z
	x := fromSlice(t, []complex128{0, 1, 1, 0}, tensor.Shape{2, 2})
	z := fromSlice(t, []complex128{1, 0, 0, -1}, tensor.Shape{2, 2})
	xz := b.Kron(x, z)
	want := fromSlice(t, []complex128{
		0, 0, 1, 0,
		0, 0, 0, -1,
		1, 0, 0, 0,
		0, -1, 0, 0,
	}, tensor.Shape{4, 4})
	if !tensor.AllClose(xz, want, 1e-12) {
		t.Errorf("X ⊗ Z = %v, want %v", xz.AsComplex128(), want.AsComplex128())
	}
}

func TestTranspose(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tr := b.Transpose(x)

	if !tr.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v, want [3 2]", tr.Shape())
	}
	want := fromSlice(t, []complex128{1, 4, 2, 5, 3, 6}, tensor.Shape{3, 2})
	if !tensor.AllClose(tr, want, 1e-12) {
		t.Errorf("Transpose = %v, want %v", tr.AsComplex128(), want.AsComplex128())
	}
}

func TestTransposeAxes(t *testing.T) {
	b := New()
	data := make([]complex128, 24)
	for i := range data {
		data[i] = complex(float64(i), 0)
	}
	x := fromSlice(t, data, tensor.Shape{2, 3, 4})

	tr := b.Transpose(x, 2, 0, 1)

	if !tr.Shape().Equal(tensor.Shape{4, 2, 3}) {
		t.Fatalf("Transpose shape = %v, want [4 2 3]", tr.Shape())
	}
	// Element (i, j, k) of source lands at (k, i, j).
	src := x.AsComplex128()
	dst := tr.AsComplex128()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if dst[k*6+i*3+j] != src[i*12+j*4+k] {
					t.Fatalf("Transpose moved (%d,%d,%d) incorrectly", i, j, k)
				}
			}
		}
	}
}

func TestReshape(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	r := b.Reshape(x, tensor.Shape{3, 2})

	if !r.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Reshape shape = %v", r.Shape())
	}
	if r.AsComplex128()[5] != 6 {
		t.Error("Reshape should preserve row-major data")
	}
}

func TestTensorDotMatrixProduct(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2, 3, 4}, tensor.Shape{2, 2})
	y := fromSlice(t, []complex128{5, 6, 7, 8}, tensor.Shape{2, 2})

	c := b.TensorDot(x, y, []int{1}, []int{0})

	want := b.MatMul(x, y)
	if !tensor.AllClose(c, want, 1e-12) {
		t.Errorf("TensorDot = %v, want MatMul result %v", c.AsComplex128(), want.AsComplex128())
	}
}

func TestTensorDotFullContraction(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2, 3, 4}, tensor.Shape{2, 2})

	// Frobenius inner product with itself: 1+4+9+16 = 30.
	c := b.TensorDot(x, x, []int{0, 1}, []int{0, 1})

	if c.NumElements() != 1 {
		t.Fatalf("full contraction should produce a single element, got shape %v", c.Shape())
	}
	if c.AsComplex128()[0] != 30 {
		t.Errorf("full contraction = %v, want 30", c.AsComplex128()[0])
	}
}

func TestTensorDotHigherRank(t *testing.T) {
	b := New()

	// Contract a (2,2,2) GHZ-like tensor with a vector on the last axis.
	data := make([]complex128, 8)
	data[0] = 1
	data[7] = 1
	x := fromSlice(t, data, tensor.Shape{2, 2, 2})
	v := fromSlice(t, []complex128{1, 1}, tensor.Shape{2})

	c := b.TensorDot(x, v, []int{2}, []int{0})

	if !c.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", c.Shape())
	}
	want := fromSlice(t, []complex128{1, 0, 0, 1}, tensor.Shape{2, 2})
	if !tensor.AllClose(c, want, 1e-12) {
		t.Errorf("TensorDot = %v, want %v", c.AsComplex128(), want.AsComplex128())
	}
}

func TestScale(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1, 2}, tensor.Shape{2})

	c := b.Scale(x, complex128(2i))

	if c.AsComplex128()[0] != 2i || c.AsComplex128()[1] != 4i {
		t.Errorf("Scale = %v, want [2i 4i]", c.AsComplex128())
	}
}

func TestConj(t *testing.T) {
	b := New()
	x := fromSlice(t, []complex128{1 + 1i, -2i}, tensor.Shape{2})

	c := b.Conj(x)

	if c.AsComplex128()[0] != 1-1i || c.AsComplex128()[1] != 2i {
		t.Errorf("Conj = %v, want [1-1i 2i]", c.AsComplex128())
	}
}

func TestAgainstMockBackend(t *testing.T) {
	b := New()
	mock := tensor.NewMockBackend()

	x := fromSlice(t, []complex128{1 + 1i, 2, 3, 4 - 2i, 5, 6}, tensor.Shape{2, 3})
	y := fromSlice(t, []complex128{1, 2i, 3, 4, 5i, 6}, tensor.Shape{3, 2})

	got := b.MatMul(x, y)
	want := mock.MatMul(x, y)
	if !tensor.AllClose(got, want, 1e-12) {
		t.Errorf("CPU MatMul disagrees with mock: %v vs %v", got.AsComplex128(), want.AsComplex128())
	}

	gotDot := b.TensorDot(x, y, []int{1}, []int{0})
	wantDot := mock.TensorDot(x, y, []int{1}, []int{0})
	if !tensor.AllClose(gotDot, wantDot, 1e-12) {
		t.Errorf("CPU TensorDot disagrees with mock")
	}
}
