package tensor

import "fmt"

// DotLayout computes the axis bookkeeping for a TensorDot contraction.
// It returns the permutation that moves a's contracted axes last, the
// permutation that moves b's contracted axes first, the shape of the
// result (a's free axes then b's free axes), and the matrix dimensions
// (m, k, n) of the equivalent (m, k) @ (k, n) multiplication.
//
// Backends share this so that CPU kernels and the mock reference agree
// on layout.
func DotLayout(aShape, bShape Shape, axesA, axesB []int) (aPerm, bPerm []int, outShape Shape, m, k, n int, err error) {
	if len(axesA) != len(axesB) {
		return nil, nil, nil, 0, 0, 0, fmt.Errorf("tensordot: axes length mismatch: %d vs %d", len(axesA), len(axesB))
	}

	contractedA := make(map[int]bool, len(axesA))
	contractedB := make(map[int]bool, len(axesB))
	k = 1
	for i := range axesA {
		ax, bx := axesA[i], axesB[i]
		if ax < 0 || ax >= len(aShape) {
			return nil, nil, nil, 0, 0, 0, fmt.Errorf("tensordot: axis %d out of range for shape %v", ax, aShape)
		}
		if bx < 0 || bx >= len(bShape) {
			return nil, nil, nil, 0, 0, 0, fmt.Errorf("tensordot: axis %d out of range for shape %v", bx, bShape)
		}
		if contractedA[ax] || contractedB[bx] {
			return nil, nil, nil, 0, 0, 0, fmt.Errorf("tensordot: duplicate contraction axis (%d, %d)", ax, bx)
		}
		if aShape[ax] != bShape[bx] {
			return nil, nil, nil, 0, 0, 0, fmt.Errorf("tensordot: dimension mismatch on axes (%d, %d): %d vs %d",
				ax, bx, aShape[ax], bShape[bx])
		}
		contractedA[ax] = true
		contractedB[bx] = true
		k *= aShape[ax]
	}

	outShape = make(Shape, 0, len(aShape)+len(bShape)-2*len(axesA))

	m = 1
	aPerm = make([]int, 0, len(aShape))
	for ax := 0; ax < len(aShape); ax++ {
		if !contractedA[ax] {
			aPerm = append(aPerm, ax)
			outShape = append(outShape, aShape[ax])
			m *= aShape[ax]
		}
	}
	aPerm = append(aPerm, axesA...)

	n = 1
	bPerm = make([]int, 0, len(bShape))
	bPerm = append(bPerm, axesB...)
	for bx := 0; bx < len(bShape); bx++ {
		if !contractedB[bx] {
			bPerm = append(bPerm, bx)
			outShape = append(outShape, bShape[bx])
			n *= bShape[bx]
		}
	}

	return aPerm, bPerm, outShape, m, k, n, nil
}
