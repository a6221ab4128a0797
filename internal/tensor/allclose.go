package tensor

import (
	"fmt"
	"math/cmplx"
)

// ToComplex128 converts any numeric tensor's data to a []complex128 copy.
// Bool tensors are not supported.
func ToComplex128(t *RawTensor) []complex128 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]complex128, len(src))
		for i, v := range src {
			dst[i] = complex(float64(v), 0)
		}
		return dst
	case Float64:
		src := t.AsFloat64()
		dst := make([]complex128, len(src))
		for i, v := range src {
			dst[i] = complex(v, 0)
		}
		return dst
	case Complex64:
		src := t.AsComplex64()
		dst := make([]complex128, len(src))
		for i, v := range src {
			dst[i] = complex128(v)
		}
		return dst
	case Complex128:
		src := t.AsComplex128()
		dst := make([]complex128, len(src))
		copy(dst, src)
		return dst
	case Int64:
		src := t.AsInt64()
		dst := make([]complex128, len(src))
		for i, v := range src {
			dst[i] = complex(float64(v), 0)
		}
		return dst
	default:
		panic(fmt.Sprintf("ToComplex128: unsupported dtype %s", t.DType()))
	}
}

// AllClose reports whether two numeric tensors have equal shapes and
// element-wise absolute differences within atol.
func AllClose(a, b *RawTensor, atol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	av := ToComplex128(a)
	bv := ToComplex128(b)
	for i := range av {
		if cmplx.Abs(av[i]-bv[i]) > atol {
			return false
		}
	}
	return true
}
