package cpu

import (
	"fmt"

	"github.com/weft-qc/weft/internal/tensor"
)

// transposeData copies src into dst with axes permuted.
// dst's shape must already be src's shape permuted by axes.
func transposeData(dst, src *tensor.RawTensor, axes []int) {
	switch src.DType() {
	case tensor.Float32:
		transposeInto(dst.AsFloat32(), src.AsFloat32(), src.Shape(), dst.Shape(), axes)
	case tensor.Float64:
		transposeInto(dst.AsFloat64(), src.AsFloat64(), src.Shape(), dst.Shape(), axes)
	case tensor.Complex64:
		transposeInto(dst.AsComplex64(), src.AsComplex64(), src.Shape(), dst.Shape(), axes)
	case tensor.Complex128:
		transposeInto(dst.AsComplex128(), src.AsComplex128(), src.Shape(), dst.Shape(), axes)
	case tensor.Int64:
		transposeInto(dst.AsInt64(), src.AsInt64(), src.Shape(), dst.Shape(), axes)
	case tensor.Bool:
		transposeInto(dst.AsBool(), src.AsBool(), src.Shape(), dst.Shape(), axes)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", src.DType()))
	}
}

func transposeInto[T any](dst, src []T, srcShape, dstShape tensor.Shape, axes []int) {
	if len(srcShape) == 0 {
		copy(dst, src)
		return
	}

	srcStrides := srcShape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()

	indices := make([]int, len(srcShape))
	for i := range src {
		// Flat index -> multi-dimensional indices in source layout
		temp := i
		for j := range srcShape {
			indices[j] = temp / srcStrides[j]
			temp %= srcStrides[j]
		}

		// Permute and re-flatten in destination layout
		dstIdx := 0
		for j, ax := range axes {
			dstIdx += indices[ax] * dstStrides[j]
		}
		dst[dstIdx] = src[i]
	}
}
