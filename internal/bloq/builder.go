package bloq

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder constructs a CompositeBloq by wiring bloq instances together.
//
// The builder enforces linearity: every soquet it hands out must be
// consumed exactly once, either by a later Add or by Finalize. Using a
// soquet twice, or leaving one dangling, is an error.
type Builder struct {
	regs      []Register
	fromSig   bool
	instances []*BloqInstance
	cxns      []*Connection
	available map[*Soquet]bool
	counter   int
}

// NewBuilder creates a builder with an empty signature; grow it with
// AddRegister.
func NewBuilder() *Builder {
	return &Builder{available: make(map[*Soquet]bool)}
}

// FromSignature creates a builder whose composite must implement the
// given signature, and returns the initial soquets for its left
// boundary, keyed by register name.
func FromSignature(sig Signature) (*Builder, map[string]SoquetT, error) {
	b := NewBuilder()
	b.regs = sig.Registers()
	b.fromSig = true

	initial := make(map[string]SoquetT, len(sig.Lefts()))
	for _, reg := range sig.Lefts() {
		initial[reg.Name] = b.dangleSoquets(reg)
	}
	return b, initial, nil
}

// AddRegister declares a new scalar THRU register on the composite's
// signature and returns its left-boundary soquet. Not available on
// builders created with FromSignature.
func (b *Builder) AddRegister(name string, bitsize int) (SoquetT, error) {
	if b.fromSig {
		return nil, fmt.Errorf("bloq: cannot add register %q to a builder with a fixed signature", name)
	}
	for _, r := range b.regs {
		if r.Name == name {
			return nil, fmt.Errorf("bloq: duplicate register %q", name)
		}
	}
	reg := NewRegister(name, bitsize)
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("bloq: %w", err)
	}
	b.regs = append(b.regs, reg)
	return b.dangleSoquets(reg), nil
}

// dangleSoquets mints the left-dangling soquets for a register and marks
// them available.
func (b *Builder) dangleSoquets(reg Register) SoquetT {
	out := NewBundle[*Soquet](reg.Shape)
	for _, idx := range reg.AllIdx() {
		soq := &Soquet{Binst: LeftDangle, Reg: reg, Idx: idx}
		b.available[soq] = true
		out.SetAt(soq, idx...)
	}
	return out
}

// Add wires a new instance of the given bloq into the graph. The ins map
// supplies a soquet bundle for every LEFT register of the bloq; the
// returned map holds fresh soquets for every RIGHT register.
func (b *Builder) Add(bl Bloq, ins map[string]SoquetT) (map[string]SoquetT, error) {
	sig := bl.Signature()
	binst := &BloqInstance{Bloq: bl, I: b.counter}

	consumed := make(map[string]bool, len(ins))
	for _, reg := range sig.Lefts() {
		in, ok := ins[reg.Name]
		if !ok {
			return nil, fmt.Errorf("bloq: %s: missing input for register %q", bl, reg.Name)
		}
		consumed[reg.Name] = true
		if !shapeEq(in.Shape(), reg.Shape) {
			return nil, fmt.Errorf("bloq: %s: register %q expects wire shape %v, got %v",
				bl, reg.Name, reg.Shape, in.Shape())
		}
		for _, idx := range reg.AllIdx() {
			soq := in.At(idx...)
			if soq == nil {
				return nil, fmt.Errorf("bloq: %s: register %q has an unset soquet at %v", bl, reg.Name, idx)
			}
			if !b.available[soq] {
				return nil, fmt.Errorf("bloq: soquet %s is not available; it was already consumed or belongs to another builder", soq)
			}
			if soq.Reg.Bitsize != reg.Bitsize {
				return nil, fmt.Errorf("bloq: %s: register %q expects bitsize %d, soquet %s carries %d",
					bl, reg.Name, reg.Bitsize, soq, soq.Reg.Bitsize)
			}
			delete(b.available, soq)
			right := &Soquet{Binst: binst, Reg: reg, Idx: idx}
			b.cxns = append(b.cxns, newConnection(soq, right))
		}
	}
	for name := range ins {
		if !consumed[name] {
			return nil, fmt.Errorf("bloq: %s has no left register %q", bl, name)
		}
	}

	b.instances = append(b.instances, binst)
	b.counter++
	zap.L().Debug("added bloq instance", zap.Stringer("binst", binst))

	outs := make(map[string]SoquetT, len(sig.Rights()))
	for _, reg := range sig.Rights() {
		out := NewBundle[*Soquet](reg.Shape)
		for _, idx := range reg.AllIdx() {
			soq := &Soquet{Binst: binst, Reg: reg, Idx: idx}
			b.available[soq] = true
			out.SetAt(soq, idx...)
		}
		outs[reg.Name] = out
	}
	return outs, nil
}

// Finalize closes the graph: the outs map supplies a soquet bundle for
// every RIGHT register of the composite's signature. All outstanding
// soquets must be accounted for.
func (b *Builder) Finalize(outs map[string]SoquetT) (*CompositeBloq, error) {
	sig, err := NewSignature(b.regs...)
	if err != nil {
		return nil, fmt.Errorf("bloq: %w", err)
	}

	var errs error
	consumed := make(map[string]bool, len(outs))
	for _, reg := range sig.Rights() {
		out, ok := outs[reg.Name]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("missing output for register %q", reg.Name))
			continue
		}
		consumed[reg.Name] = true
		if !shapeEq(out.Shape(), reg.Shape) {
			errs = multierr.Append(errs, fmt.Errorf("register %q expects wire shape %v, got %v",
				reg.Name, reg.Shape, out.Shape()))
			continue
		}
		for _, idx := range reg.AllIdx() {
			soq := out.At(idx...)
			if soq == nil {
				errs = multierr.Append(errs, fmt.Errorf("register %q has an unset soquet at %v", reg.Name, idx))
				continue
			}
			if !b.available[soq] {
				errs = multierr.Append(errs, fmt.Errorf("soquet %s is not available; it was already consumed or belongs to another builder", soq))
				continue
			}
			if soq.Reg.Bitsize != reg.Bitsize {
				errs = multierr.Append(errs, fmt.Errorf("register %q expects bitsize %d, soquet %s carries %d",
					reg.Name, reg.Bitsize, soq, soq.Reg.Bitsize))
				continue
			}
			delete(b.available, soq)
			sink := &Soquet{Binst: RightDangle, Reg: reg, Idx: idx}
			b.cxns = append(b.cxns, newConnection(soq, sink))
		}
	}
	for name := range outs {
		if !consumed[name] {
			errs = multierr.Append(errs, fmt.Errorf("composite has no right register %q", name))
		}
	}
	for soq := range b.available {
		errs = multierr.Append(errs, fmt.Errorf("soquet %s was never consumed", soq))
	}
	if errs != nil {
		return nil, fmt.Errorf("bloq: cannot finalize: %w", errs)
	}

	return &CompositeBloq{sig: sig, instances: b.instances, cxns: b.cxns}, nil
}
