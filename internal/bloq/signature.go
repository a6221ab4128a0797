package bloq

import (
	"fmt"

	"go.uber.org/multierr"
)

// Signature is an ordered list of registers describing a bloq's boundary.
// Register names are unique per flank: two registers may share a name
// only if one is LEFT-only and the other RIGHT-only.
type Signature struct {
	regs   []Register
	lefts  []Register
	rights []Register
}

// NewSignature validates the registers and builds a signature.
func NewSignature(regs ...Register) (Signature, error) {
	var errs error
	for _, r := range regs {
		if err := r.Validate(); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for i, a := range regs {
		for _, b := range regs[i+1:] {
			if a.Name == b.Name && a.Side&b.Side != 0 {
				errs = multierr.Append(errs,
					fmt.Errorf("registers %q overlap on side %s", a.Name, a.Side&b.Side))
			}
		}
	}
	if errs != nil {
		return Signature{}, errs
	}

	sig := Signature{regs: regs}
	for _, r := range regs {
		if r.Side&SideLeft != 0 {
			sig.lefts = append(sig.lefts, r)
		}
		if r.Side&SideRight != 0 {
			sig.rights = append(sig.rights, r)
		}
	}
	return sig, nil
}

// RegSpec names a scalar THRU register for Build.
type RegSpec struct {
	Name    string
	Bitsize int
}

// Build constructs a signature of scalar THRU registers.
// It panics on invalid input; use NewSignature for full control.
func Build(specs ...RegSpec) Signature {
	regs := make([]Register, len(specs))
	for i, s := range specs {
		regs[i] = NewRegister(s.Name, s.Bitsize)
	}
	sig, err := NewSignature(regs...)
	if err != nil {
		panic(fmt.Sprintf("bloq: invalid signature: %v", err))
	}
	return sig
}

// Registers returns all registers in declaration order.
func (s Signature) Registers() []Register {
	return s.regs
}

// Lefts returns the registers present on the left boundary.
func (s Signature) Lefts() []Register {
	return s.lefts
}

// Rights returns the registers present on the right boundary.
func (s Signature) Rights() []Register {
	return s.rights
}

// Get looks up a register by name on the given flank.
func (s Signature) Get(name string, side Side) (Register, bool) {
	for _, r := range s.regs {
		if r.Name == name && r.Side&side != 0 {
			return r, true
		}
	}
	return Register{}, false
}

// NumQubits returns the total qubit count of the left boundary.
// A valid unitary signature has matching left and right totals.
func (s Signature) NumQubits() int {
	n := 0
	for _, r := range s.lefts {
		n += r.TotalBits()
	}
	return n
}
