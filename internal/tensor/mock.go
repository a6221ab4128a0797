package tensor

import (
	"fmt"
	"math/cmplx"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification,
// routing every dtype through complex128 arithmetic.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y complex128) complex128 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y complex128) complex128 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y complex128) complex128 { return x * y })
}

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(complex128, complex128) complex128) *RawTensor {
	// Broadcast shapes
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	// Create output tensor
	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	// Perform operation (naive implementation)
	numElements := outShape.NumElements()

	aData := ToComplex128(a)
	bData := ToComplex128(b)
	resultData := make([]complex128, numElements)

	for i := 0; i < numElements; i++ {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())

		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromComplex128Slice(resultData, result)
	return result
}

// MatMul performs matrix multiplication.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic("MatMul only supports 2D tensors in mock backend")
	}

	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("incompatible shapes for MatMul: %v @ %v", aShape, bShape))
	}

	M, K := aShape[0], aShape[1]
	N := bShape[1]

	result, err := NewRaw(Shape{M, N}, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := ToComplex128(a)
	bData := ToComplex128(b)
	resultData := make([]complex128, M*N)

	// Naive matrix multiplication
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			sum := complex128(0)
			for k := 0; k < K; k++ {
				sum += aData[i*K+k] * bData[k*N+j]
			}
			resultData[i*N+j] = sum
		}
	}

	m.fromComplex128Slice(resultData, result)
	return result
}

// Kron computes the Kronecker product of two 2D tensors.
func (m *MockBackend) Kron(a, b *RawTensor) *RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic("Kron only supports 2D tensors in mock backend")
	}

	M, N := aShape[0], aShape[1]
	P, Q := bShape[0], bShape[1]

	result, err := NewRaw(Shape{M * P, N * Q}, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := ToComplex128(a)
	bData := ToComplex128(b)
	resultData := make([]complex128, M*P*N*Q)

	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			for p := 0; p < P; p++ {
				for q := 0; q < Q; q++ {
					resultData[(i*P+p)*(N*Q)+j*Q+q] = aData[i*N+j] * bData[p*Q+q]
				}
			}
		}
	}

	m.fromComplex128Slice(resultData, result)
	return result
}

// TensorDot contracts a and b over the paired axes.
// Implemented as permute → reshape → matmul → reshape.
func (m *MockBackend) TensorDot(a, b *RawTensor, axesA, axesB []int) *RawTensor {
	aPerm, bPerm, outShape, M, K, N, err := DotLayout(a.Shape(), b.Shape(), axesA, axesB)
	if err != nil {
		panic(err)
	}

	at := m.Reshape(m.Transpose(a, aPerm...), Shape{M, K})
	bt := m.Reshape(m.Transpose(b, bPerm...), Shape{K, N})
	c := m.MatMul(at, bt)

	if len(outShape) == 0 {
		// Scalar result keeps a 1-element 1D shape; callers use Item().
		outShape = Shape{1}
	}
	return m.Reshape(c, outShape)
}

// Reshape changes tensor shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(err)
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape tensor with %d elements to shape %v (%d elements)",
			t.NumElements(), newShape, newShape.NumElements()))
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	// Copy data
	copy(result.Data(), t.Data())
	return result
}

// Transpose transposes tensor dimensions.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	shape := t.Shape()

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, len(shape))
		for i := range axes {
			axes[i] = len(shape) - 1 - i
		}
	}

	if len(axes) != len(shape) {
		panic(fmt.Sprintf("axes length %d doesn't match tensor dimensions %d", len(axes), len(shape)))
	}

	newShape := make(Shape, len(shape))
	for i, axis := range axes {
		if axis < 0 || axis >= len(shape) {
			panic(fmt.Sprintf("axis %d out of bounds for tensor with %d dimensions", axis, len(shape)))
		}
		newShape[i] = shape[axis]
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	tData := ToComplex128(t)
	resultData := make([]complex128, t.NumElements())

	oldStrides := shape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	for i := 0; i < t.NumElements(); i++ {
		// Convert flat index to multi-dimensional indices
		indices := make([]int, len(shape))
		temp := i
		for j := 0; j < len(shape); j++ {
			indices[j] = temp / oldStrides[j]
			temp %= oldStrides[j]
		}

		// Permute indices
		newIdx := 0
		for j, axis := range axes {
			newIdx += indices[axis] * newStrides[j]
		}

		resultData[newIdx] = tData[i]
	}

	m.fromComplex128Slice(resultData, result)
	return result
}

// Scale multiplies every element by a scalar.
func (m *MockBackend) Scale(x *RawTensor, scalar any) *RawTensor {
	s := toComplex128Scalar(scalar)
	return m.mapElements(x, func(v complex128) complex128 { return v * s })
}

// Conj returns the element-wise complex conjugate.
func (m *MockBackend) Conj(x *RawTensor) *RawTensor {
	return m.mapElements(x, cmplx.Conj)
}

func (m *MockBackend) mapElements(x *RawTensor, f func(complex128) complex128) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := ToComplex128(x)
	out := make([]complex128, len(data))
	for i, v := range data {
		out[i] = f(v)
	}

	m.fromComplex128Slice(out, result)
	return result
}

// Helper functions

func toComplex128Scalar(scalar any) complex128 {
	switch v := scalar.(type) {
	case float32:
		return complex(float64(v), 0)
	case float64:
		return complex(v, 0)
	case complex64:
		return complex128(v)
	case complex128:
		return v
	case int64:
		return complex(float64(v), 0)
	case int:
		return complex(float64(v), 0)
	default:
		panic(fmt.Sprintf("unsupported scalar type %T", scalar))
	}
}

func (m *MockBackend) fromComplex128Slice(src []complex128, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(real(v))
		}
	case Float64:
		dst := t.AsFloat64()
		for i, v := range src {
			dst[i] = real(v)
		}
	case Complex64:
		dst := t.AsComplex64()
		for i, v := range src {
			dst[i] = complex64(v)
		}
	case Complex128:
		copy(t.AsComplex128(), src)
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(real(v))
		}
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	// Convert flat index to multi-dimensional indices in output shape
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	// Map to input shape (accounting for broadcasting)
	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := 0; i < len(inShape); i++ {
		outDimIdx := indices[offset+i]

		// If input dimension is 1, always use index 0 (broadcasting)
		if inShape[i] == 1 {
			outDimIdx = 0
		}

		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}
