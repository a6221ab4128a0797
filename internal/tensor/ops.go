package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[complex128](Shape{3, 1}, backend)
//	b := tensor.Ones[complex128](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// MatMul performs matrix multiplication.
//
// Requirements:
//   - 2D tensors: (M, K) @ (K, N) → (M, N)
//
// Example:
//
//	id := h.MatMul(h) // H·H = I for a Hadamard matrix h
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.MatMul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Kron computes the Kronecker product of two 2D tensors.
//
// Example:
//
//	x := tensor.Eye[complex128](2, backend)
//	x4 := x.Kron(x) // 4×4 identity
func (t *Tensor[T, B]) Kron(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Kron(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// TensorDot contracts this tensor with other over the paired axes.
func (t *Tensor[T, B]) TensorDot(other *Tensor[T, B], axesA, axesB []int) *Tensor[T, B] {
	result := t.backend.TensorDot(t.raw, other.raw, axesA, axesB)
	return New[T, B](result, t.backend)
}

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	result := t.backend.Reshape(t.raw, Shape(newShape))
	return New[T, B](result, t.backend)
}

// Transpose transposes the tensor by permuting its dimensions.
//
// If axes is empty, reverses all dimensions (for 2D, this is standard transpose).
// Otherwise, axes specifies the permutation.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	result := t.backend.Transpose(t.raw, axes...)
	return New[T, B](result, t.backend)
}

// T is a shortcut for 2D transpose (swaps rows and columns).
// Panics if the tensor is not 2D.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	if len(t.Shape()) != 2 {
		panic("T() only works for 2D tensors")
	}
	return t.Transpose(1, 0)
}

// Scale multiplies every element by a scalar.
func (t *Tensor[T, B]) Scale(scalar T) *Tensor[T, B] {
	result := t.backend.Scale(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// Conj returns the element-wise complex conjugate.
func (t *Tensor[T, B]) Conj() *Tensor[T, B] {
	result := t.backend.Conj(t.raw)
	return New[T, B](result, t.backend)
}

// Dagger returns the conjugate transpose of a 2D tensor.
func (t *Tensor[T, B]) Dagger() *Tensor[T, B] {
	return t.T().Conj()
}
