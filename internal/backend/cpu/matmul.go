package cpu

import (
	"fmt"

	"github.com/weft-qc/weft/internal/parallel"
	"github.com/weft-qc/weft/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N).
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	// Dispatch to type-specific implementation
	switch a.DType() {
	case tensor.Float32:
		matmul(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.par)
	case tensor.Float64:
		matmul(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.par)
	case tensor.Complex64:
		matmul(result.AsComplex64(), a.AsComplex64(), b.AsComplex64(), m, k, n, cpu.par)
	case tensor.Complex128:
		matmul(result.AsComplex128(), a.AsComplex128(), b.AsComplex128(), m, k, n, cpu.par)
	case tensor.Int64:
		matmul(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n, cpu.par)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmul performs naive matrix multiplication, parallel over rows.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmul[T num](c, a, b []T, m, k, n int, par parallel.Config) {
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			var sum T
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}, par)
}
