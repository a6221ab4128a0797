package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation surface is the one tensor-network contraction needs:
// element-wise arithmetic, matrix products, Kronecker products, generalized
// tensor contraction, and layout changes.
//
// Implementations:
//   - CPU: Pure Go, dtype-dispatched kernels
//   - MockBackend: naive reference implementation for tests
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// Matrix operations
	MatMul(a, b *RawTensor) *RawTensor

	// Kron computes the Kronecker product of two 2D tensors.
	// (M, N) ⊗ (P, Q) -> (M*P, N*Q). Used to compose gate unitaries.
	Kron(a, b *RawTensor) *RawTensor

	// TensorDot contracts a and b over the paired axes
	// (axesA[i] of a against axesB[i] of b). With empty axes it is the
	// outer product. Result axes: a's free axes then b's free axes.
	TensorDot(a, b *RawTensor, axesA, axesB []int) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Scalar operations
	Scale(x *RawTensor, scalar any) *RawTensor // multiply by scalar

	// Conj returns the element-wise complex conjugate.
	// Real dtypes are returned unchanged.
	Conj(x *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
