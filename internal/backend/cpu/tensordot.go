package cpu

import (
	"fmt"

	"github.com/weft-qc/weft/internal/tensor"
)

// TensorDot contracts a and b over the paired axes
// (axesA[i] of a against axesB[i] of b). With empty axes it computes the
// outer product. Result axes are a's free axes followed by b's free axes.
//
// Implemented as permute → reshape → matmul → reshape, the standard
// reduction of general tensor contraction to GEMM.
func (cpu *CPUBackend) TensorDot(a, b *tensor.RawTensor, axesA, axesB []int) *tensor.RawTensor {
	aPerm, bPerm, outShape, m, k, n, err := tensor.DotLayout(a.Shape(), b.Shape(), axesA, axesB)
	if err != nil {
		panic(fmt.Sprintf("tensordot: %v", err))
	}

	at := cpu.Reshape(cpu.Transpose(a, aPerm...), tensor.Shape{m, k})
	bt := cpu.Reshape(cpu.Transpose(b, bPerm...), tensor.Shape{k, n})
	c := cpu.MatMul(at, bt)

	if len(outShape) == 0 {
		// Fully contracted: keep a 1-element 1D tensor; callers use Item().
		outShape = tensor.Shape{1}
	}
	return cpu.Reshape(c, outShape)
}
