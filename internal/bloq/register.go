// Package bloq implements the compositional circuit model: bloqs
// (operations with named, typed registers), composite bloqs built from
// wired sub-bloq instances, and the builder used to construct them.
package bloq

import (
	"fmt"
	"strings"
)

// Side marks which boundary of a bloq a register lives on.
// A LEFT register is consumed, a RIGHT register is produced, and a THRU
// register passes through. THRU is the bitwise union of the two flanks,
// so overlap checks reduce to a mask intersection.
type Side uint8

const (
	SideLeft  Side = 1 << iota // consumed input
	SideRight                  // produced output
	SideThru  = SideLeft | SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	case SideThru:
		return "THRU"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Register is a named group of wires on a bloq's boundary.
// Bitsize is the width of each wire in qubits; Shape, when non-empty,
// makes the register a multi-dimensional array of same-width wires.
type Register struct {
	Name    string
	Bitsize int
	Shape   []int
	Side    Side
}

// NewRegister creates a scalar THRU register, the common case.
func NewRegister(name string, bitsize int) Register {
	return Register{Name: name, Bitsize: bitsize, Side: SideThru}
}

// Validate checks the register's fields.
func (r Register) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("register has no name")
	}
	if r.Bitsize <= 0 {
		return fmt.Errorf("register %q: bitsize must be positive, got %d", r.Name, r.Bitsize)
	}
	if r.Side&SideThru == 0 {
		return fmt.Errorf("register %q: invalid side %d", r.Name, uint8(r.Side))
	}
	for _, d := range r.Shape {
		if d <= 0 {
			return fmt.Errorf("register %q: invalid wire shape %v", r.Name, r.Shape)
		}
	}
	return nil
}

// NumWires returns the number of wires in the register: 1 for a scalar
// register, the product of Shape otherwise.
func (r Register) NumWires() int {
	n := 1
	for _, d := range r.Shape {
		n *= d
	}
	return n
}

// TotalBits returns the total qubit count across all wires.
func (r Register) TotalBits() int {
	return r.Bitsize * r.NumWires()
}

// AllIdx enumerates the wire index paths in row-major order.
// A scalar register yields a single empty path.
func (r Register) AllIdx() [][]int {
	paths := make([][]int, 0, r.NumWires())
	idx := make([]int, len(r.Shape))
	for {
		paths = append(paths, append([]int(nil), idx...))
		// Row-major increment; overflow past the first axis means done.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < r.Shape[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return paths
		}
	}
}

func (r Register) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d", r.Name, r.Bitsize)
	if len(r.Shape) > 0 {
		fmt.Fprintf(&sb, " x %v", r.Shape)
	}
	if r.Side != SideThru {
		fmt.Fprintf(&sb, " [%s]", r.Side)
	}
	return sb.String()
}
