package bloq

import "fmt"

// Bundle is a scalar value or a row-major ndarray of values, mirroring a
// register's wire shape. A scalar bundle has a nil shape and one element.
type Bundle[T any] struct {
	shape []int
	elems []T
}

// SoquetT is a bundle of soquets, the currency of the builder API.
type SoquetT = *Bundle[*Soquet]

// ConnectionT is a bundle of connections, as seen by TensorBloq.
type ConnectionT = *Bundle[*Connection]

// NewBundle creates a bundle with the given wire shape. The element
// slice is allocated empty; fill it with SetAt.
func NewBundle[T any](shape []int) *Bundle[T] {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return &Bundle[T]{shape: shape, elems: make([]T, n)}
}

// Scalar wraps a single value as a scalar bundle.
func Scalar[T any](v T) *Bundle[T] {
	return &Bundle[T]{elems: []T{v}}
}

// IsScalar reports whether the bundle holds a single unshaped value.
func (b *Bundle[T]) IsScalar() bool {
	return len(b.shape) == 0
}

// Shape returns the bundle's wire shape; nil for scalars.
func (b *Bundle[T]) Shape() []int {
	return b.shape
}

// Len returns the number of elements.
func (b *Bundle[T]) Len() int {
	return len(b.elems)
}

// Flat returns the elements in row-major order.
func (b *Bundle[T]) Flat() []T {
	return b.elems
}

// Single returns the sole element of a scalar bundle.
func (b *Bundle[T]) Single() T {
	if !b.IsScalar() {
		panic(fmt.Sprintf("bloq: Single called on bundle of shape %v", b.shape))
	}
	return b.elems[0]
}

// At returns the element at the given index path.
func (b *Bundle[T]) At(idx ...int) T {
	return b.elems[b.flatIndex(idx)]
}

// SetAt stores an element at the given index path.
func (b *Bundle[T]) SetAt(v T, idx ...int) {
	b.elems[b.flatIndex(idx)] = v
}

func (b *Bundle[T]) flatIndex(idx []int) int {
	if len(idx) != len(b.shape) {
		panic(fmt.Sprintf("bloq: index path %v does not match bundle shape %v", idx, b.shape))
	}
	flat := 0
	for i, v := range idx {
		if v < 0 || v >= b.shape[i] {
			panic(fmt.Sprintf("bloq: index %v out of range for shape %v", idx, b.shape))
		}
		flat = flat*b.shape[i] + v
	}
	return flat
}

func shapeEq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
