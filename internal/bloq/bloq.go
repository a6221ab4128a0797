package bloq

import (
	"fmt"

	"github.com/weft-qc/weft/internal/sim/tensornet"
)

// Bloq is a quantum operation with a declared register signature.
// Implementations are immutable values; identity within a circuit comes
// from the BloqInstance wrapping them.
type Bloq interface {
	Signature() Signature
	fmt.Stringer
}

// TensorBloq is a bloq that can describe itself as one or more tensors
// for network-based simulation.
//
// The incoming and outgoing maps are keyed by register name and hold the
// connections attached to each wire of the bloq's left and right
// boundary. A bloq may emit any number of tensors as long as their
// indices reference only its own connections; bookkeeping bloqs emit one
// small tensor per wire instead of one exponentially large one.
type TensorBloq interface {
	Bloq
	Tensors(incoming, outgoing map[string]ConnectionT) ([]*tensornet.Tensor, error)
}

// CxnInd addresses bit j of a connection. It is the index identifier
// bloqs put on their tensors: both endpoints of a connection derive the
// same CxnInd values, which is what bonds their tensors in the network.
type CxnInd struct {
	Cxn *Connection
	J   int
}

func (ci CxnInd) String() string {
	return fmt.Sprintf("%s.%d", ci.Cxn, ci.J)
}
