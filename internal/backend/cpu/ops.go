package cpu

import (
	"fmt"

	"github.com/weft-qc/weft/internal/parallel"
	"github.com/weft-qc/weft/internal/tensor"
)

// num constrains the element types the arithmetic kernels operate on.
type num interface {
	~float32 | ~float64 | ~complex64 | ~complex128 | ~int64
}

// opKernel identifies an element-wise binary operation.
type opKernel int

const (
	addKernel opKernel = iota
	subKernel
	mulKernel
)

// binaryOp dispatches an element-wise operation over the operand dtype,
// with an inplace fast path when the left operand's buffer is unique.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor, kern opKernel) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			// Inplace into a
			cpu.applyInplace(a, b, kern)
			return a
		}

		result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
		}
		cpu.applyVectorized(result, a, b, kern)
		return result
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}
	cpu.applyBroadcast(result, a, b, outShape, kern)
	return result
}

func (cpu *CPUBackend) applyInplace(a, b *tensor.RawTensor, kern opKernel) {
	switch a.DType() {
	case tensor.Float32:
		ewInplace(a.AsFloat32(), b.AsFloat32(), kern, cpu.par)
	case tensor.Float64:
		ewInplace(a.AsFloat64(), b.AsFloat64(), kern, cpu.par)
	case tensor.Complex64:
		ewInplace(a.AsComplex64(), b.AsComplex64(), kern, cpu.par)
	case tensor.Complex128:
		ewInplace(a.AsComplex128(), b.AsComplex128(), kern, cpu.par)
	case tensor.Int64:
		ewInplace(a.AsInt64(), b.AsInt64(), kern, cpu.par)
	default:
		panic(fmt.Sprintf("elementwise: unsupported dtype %s", a.DType()))
	}
}

func (cpu *CPUBackend) applyVectorized(out, a, b *tensor.RawTensor, kern opKernel) {
	switch a.DType() {
	case tensor.Float32:
		ewVectorized(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), kern, cpu.par)
	case tensor.Float64:
		ewVectorized(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), kern, cpu.par)
	case tensor.Complex64:
		ewVectorized(out.AsComplex64(), a.AsComplex64(), b.AsComplex64(), kern, cpu.par)
	case tensor.Complex128:
		ewVectorized(out.AsComplex128(), a.AsComplex128(), b.AsComplex128(), kern, cpu.par)
	case tensor.Int64:
		ewVectorized(out.AsInt64(), a.AsInt64(), b.AsInt64(), kern, cpu.par)
	default:
		panic(fmt.Sprintf("elementwise: unsupported dtype %s", a.DType()))
	}
}

func (cpu *CPUBackend) applyBroadcast(out, a, b *tensor.RawTensor, outShape tensor.Shape, kern opKernel) {
	switch a.DType() {
	case tensor.Float32:
		ewBroadcast(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), outShape, a.Shape(), b.Shape(), kern)
	case tensor.Float64:
		ewBroadcast(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), outShape, a.Shape(), b.Shape(), kern)
	case tensor.Complex64:
		ewBroadcast(out.AsComplex64(), a.AsComplex64(), b.AsComplex64(), outShape, a.Shape(), b.Shape(), kern)
	case tensor.Complex128:
		ewBroadcast(out.AsComplex128(), a.AsComplex128(), b.AsComplex128(), outShape, a.Shape(), b.Shape(), kern)
	case tensor.Int64:
		ewBroadcast(out.AsInt64(), a.AsInt64(), b.AsInt64(), outShape, a.Shape(), b.Shape(), kern)
	default:
		panic(fmt.Sprintf("elementwise: unsupported dtype %s", a.DType()))
	}
}

func apply[T num](x, y T, kern opKernel) T {
	switch kern {
	case addKernel:
		return x + y
	case subKernel:
		return x - y
	case mulKernel:
		return x * y
	default:
		panic("unknown kernel")
	}
}

func ewInplace[T num](a, b []T, kern opKernel, par parallel.Config) {
	parallel.For(len(a), func(i int) {
		a[i] = apply(a[i], b[i], kern)
	}, par)
}

func ewVectorized[T num](out, a, b []T, kern opKernel, par parallel.Config) {
	parallel.For(len(out), func(i int) {
		out[i] = apply(a[i], b[i], kern)
	}, par)
}

func ewBroadcast[T num](out, a, b []T, outShape, aShape, bShape tensor.Shape, kern opKernel) {
	outStrides := outShape.ComputeStrides()
	aStrides := aShape.ComputeStrides()
	bStrides := bShape.ComputeStrides()

	for i := range out {
		aIdx := broadcastOffset(i, outShape, outStrides, aShape, aStrides)
		bIdx := broadcastOffset(i, outShape, outStrides, bShape, bStrides)
		out[i] = apply(a[aIdx], b[bIdx], kern)
	}
}

// broadcastOffset maps a flat output index to the flat input index under
// NumPy broadcasting (size-1 input dimensions repeat).
func broadcastOffset(flatIdx int, outShape tensor.Shape, outStrides []int, inShape tensor.Shape, inStrides []int) int {
	offset := len(outShape) - len(inShape)
	inIdx := 0
	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		dimIdx := temp / outStrides[i]
		temp %= outStrides[i]
		if i < offset {
			continue
		}
		if inShape[i-offset] == 1 {
			continue
		}
		inIdx += dimIdx * inStrides[i-offset]
	}
	return inIdx
}
