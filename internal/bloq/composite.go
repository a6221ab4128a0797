package bloq

import (
	"fmt"
	"strings"
)

// CompositeBloq is a bloq defined by a wiring graph of sub-bloq
// instances. It is produced by Builder.Finalize and is immutable.
type CompositeBloq struct {
	sig       Signature
	instances []*BloqInstance
	cxns      []*Connection
}

var _ Bloq = (*CompositeBloq)(nil)

// Signature returns the composite's boundary registers.
func (cb *CompositeBloq) Signature() Signature {
	return cb.sig
}

// Instances returns the sub-bloq instances in insertion order.
func (cb *CompositeBloq) Instances() []*BloqInstance {
	return cb.instances
}

// Connections returns the wiring graph's edges in creation order.
func (cb *CompositeBloq) Connections() []*Connection {
	return cb.cxns
}

func (cb *CompositeBloq) String() string {
	return fmt.Sprintf("CompositeBloq[%d instances]", len(cb.instances))
}

// DebugText renders the wiring graph one connection per line, for test
// failure output.
func (cb *CompositeBloq) DebugText() string {
	var sb strings.Builder
	for _, c := range cb.cxns {
		fmt.Fprintf(&sb, "%s\n", c)
	}
	return sb.String()
}
