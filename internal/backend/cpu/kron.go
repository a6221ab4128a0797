package cpu

import (
	"fmt"

	"github.com/weft-qc/weft/internal/parallel"
	"github.com/weft-qc/weft/internal/tensor"
)

// Kron computes the Kronecker product of two 2D tensors.
// (M, N) ⊗ (P, Q) -> (M*P, N*Q).
func (cpu *CPUBackend) Kron(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("kron: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, n := aShape[0], aShape[1]
	p, q := bShape[0], bShape[1]

	result, err := tensor.NewRaw(tensor.Shape{m * p, n * q}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("kron: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		kron(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, n, p, q, cpu.par)
	case tensor.Float64:
		kron(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, n, p, q, cpu.par)
	case tensor.Complex64:
		kron(result.AsComplex64(), a.AsComplex64(), b.AsComplex64(), m, n, p, q, cpu.par)
	case tensor.Complex128:
		kron(result.AsComplex128(), a.AsComplex128(), b.AsComplex128(), m, n, p, q, cpu.par)
	case tensor.Int64:
		kron(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, n, p, q, cpu.par)
	default:
		panic(fmt.Sprintf("kron: unsupported dtype %s", a.DType()))
	}

	return result
}

// kron fills c with the Kronecker product, parallel over a's rows.
// C[i*P+p, j*Q+q] = A[i,j] * B[p,q]
func kron[T num](c, a, b []T, m, n, p, q int, par parallel.Config) {
	rowLen := n * q
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			av := a[i*n+j]
			for bi := 0; bi < p; bi++ {
				for bj := 0; bj < q; bj++ {
					c[(i*p+bi)*rowLen+j*q+bj] = av * b[bi*q+bj]
				}
			}
		}
	}, par)
}
