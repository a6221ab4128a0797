// Package sim converts composite bloqs into tensor networks and
// contracts them to dense matrices.
package sim

import (
	"fmt"
	"strings"

	"github.com/weft-qc/weft/internal/bloq"
)

// Side tags for boundary indices.
const (
	LeftSide  = "l"
	RightSide = "r"
)

// BoundaryInd names an outer index of a converted network: one qubit of
// one wire on the composite's boundary. Idx is the wire's index path
// joined with commas, empty for scalar registers; J is the qubit
// position within the wire; Side is LeftSide or RightSide.
type BoundaryInd struct {
	Reg  string
	Idx  string
	J    int
	Side string
}

func (bi BoundaryInd) String() string {
	if bi.Idx == "" {
		return fmt.Sprintf("%s.%d%s", bi.Reg, bi.J, bi.Side)
	}
	return fmt.Sprintf("%s[%s].%d%s", bi.Reg, bi.Idx, bi.J, bi.Side)
}

// CompareBoundary orders boundary indices by register name, wire index
// path, qubit position, then side. Useful for deterministic assertions.
func CompareBoundary(a, b BoundaryInd) int {
	if c := strings.Compare(a.Reg, b.Reg); c != 0 {
		return c
	}
	if c := strings.Compare(a.Idx, b.Idx); c != 0 {
		return c
	}
	if a.J != b.J {
		if a.J < b.J {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Side, b.Side)
}

func idxKey(idx []int) string {
	if len(idx) == 0 {
		return ""
	}
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

func boundaryInd(soq *bloq.Soquet, j int, side string) BoundaryInd {
	return BoundaryInd{Reg: soq.Reg.Name, Idx: idxKey(soq.Idx), J: j, Side: side}
}
