package bloq

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Instance is a node in a composite bloq's wiring graph: either a
// numbered occurrence of a bloq or one of the two dangling boundary
// markers.
type Instance interface {
	fmt.Stringer
	isInstance()
}

// BloqInstance is one occurrence of a bloq inside a composite.
// The counter I distinguishes repeated uses of equal bloqs; instances
// are compared by pointer.
type BloqInstance struct {
	Bloq Bloq
	I    int
}

func (bi *BloqInstance) isInstance() {}

func (bi *BloqInstance) String() string {
	return fmt.Sprintf("%s<%d>", bi.Bloq, bi.I)
}

// DanglingT marks the open boundary of a composite bloq.
// Only the two package-level values LeftDangle and RightDangle exist.
type DanglingT struct {
	label string
}

func (d *DanglingT) isInstance() {}

func (d *DanglingT) String() string {
	return d.label
}

var (
	// LeftDangle is the source of all left-boundary wires.
	LeftDangle = &DanglingT{label: "⟨"}
	// RightDangle is the sink of all right-boundary wires.
	RightDangle = &DanglingT{label: "⟩"}
)

// Soquet is one end of a wire: a specific wire (register plus index
// path) on a specific instance. Soquets are linear values: the builder
// creates each one exactly once and each must be consumed exactly once.
// Identity is pointer identity.
type Soquet struct {
	Binst Instance
	Reg   Register
	Idx   []int
}

func (s *Soquet) String() string {
	if len(s.Idx) == 0 {
		return fmt.Sprintf("%s.%s", s.Binst, s.Reg.Name)
	}
	parts := make([]string, len(s.Idx))
	for i, v := range s.Idx {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s.%s[%s]", s.Binst, s.Reg.Name, strings.Join(parts, ","))
}

// Connection is a directed wire between two soquets. The ID makes
// connections self-describing in logs and errors; graph semantics use
// pointer identity.
type Connection struct {
	Left  *Soquet
	Right *Soquet
	ID    string
}

func newConnection(left, right *Soquet) *Connection {
	return &Connection{Left: left, Right: right, ID: uuid.NewString()}
}

func (c *Connection) String() string {
	return fmt.Sprintf("%s→%s", c.Left, c.Right)
}
