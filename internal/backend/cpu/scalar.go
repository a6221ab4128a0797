package cpu

import (
	"fmt"
	"math/cmplx"

	"github.com/weft-qc/weft/internal/parallel"
	"github.com/weft-qc/weft/internal/tensor"
)

// Scale multiplies every element by a scalar.
// The scalar is converted to the tensor's dtype; scaling a real tensor by
// a complex value with nonzero imaginary part panics.
func (cpu *CPUBackend) Scale(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("scale: %v", err))
	}

	s := asComplex128(scalar)
	switch x.DType() {
	case tensor.Float32:
		requireReal(s)
		scale(result.AsFloat32(), x.AsFloat32(), float32(real(s)), cpu.par)
	case tensor.Float64:
		requireReal(s)
		scale(result.AsFloat64(), x.AsFloat64(), real(s), cpu.par)
	case tensor.Complex64:
		scale(result.AsComplex64(), x.AsComplex64(), complex64(s), cpu.par)
	case tensor.Complex128:
		scale(result.AsComplex128(), x.AsComplex128(), s, cpu.par)
	case tensor.Int64:
		requireReal(s)
		scale(result.AsInt64(), x.AsInt64(), int64(real(s)), cpu.par)
	default:
		panic(fmt.Sprintf("scale: unsupported dtype %s", x.DType()))
	}

	return result
}

// Conj returns the element-wise complex conjugate.
// Real dtypes are returned as copies, unchanged.
func (cpu *CPUBackend) Conj(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("conj: %v", err))
	}

	switch x.DType() {
	case tensor.Complex64:
		src := x.AsComplex64()
		dst := result.AsComplex64()
		parallel.For(len(src), func(i int) {
			dst[i] = complex(real(src[i]), -imag(src[i]))
		}, cpu.par)
	case tensor.Complex128:
		src := x.AsComplex128()
		dst := result.AsComplex128()
		parallel.For(len(src), func(i int) {
			dst[i] = cmplx.Conj(src[i])
		}, cpu.par)
	default:
		copy(result.Data(), x.Data())
	}

	return result
}

func scale[T num](out, in []T, s T, par parallel.Config) {
	parallel.For(len(in), func(i int) {
		out[i] = in[i] * s
	}, par)
}

func asComplex128(scalar any) complex128 {
	switch v := scalar.(type) {
	case float32:
		return complex(float64(v), 0)
	case float64:
		return complex(v, 0)
	case complex64:
		return complex128(v)
	case complex128:
		return v
	case int:
		return complex(float64(v), 0)
	case int64:
		return complex(float64(v), 0)
	default:
		panic(fmt.Sprintf("scale: unsupported scalar type %T", scalar))
	}
}

func requireReal(s complex128) {
	if imag(s) != 0 {
		panic("scale: complex scalar applied to real tensor")
	}
}
