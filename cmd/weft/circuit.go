package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/weft-qc/weft/bloq"
	"github.com/weft-qc/weft/bloq/gates"
	"github.com/weft-qc/weft/tensor"
)

// circuitFile is the TOML schema for circuit descriptions:
//
//	[[registers]]
//	name = "q"
//	bitsize = 1
//
//	[[gates]]
//	kind = "h"
//	on = ["q"]
type circuitFile struct {
	Registers []registerDef `toml:"registers"`
	Gates     []gateDef     `toml:"gates"`
}

type registerDef struct {
	Name    string `toml:"name"`
	Bitsize int    `toml:"bitsize"`
}

type gateDef struct {
	Kind string   `toml:"kind"`
	On   []string `toml:"on"`
}

func loadCircuit(path string) (*circuitFile, error) {
	var cf circuitFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cf.Registers) == 0 {
		return nil, fmt.Errorf("%s declares no registers", path)
	}
	return &cf, nil
}

// build wires the described gates into a composite bloq. Each gate
// consumes and replaces the soquets of the registers it names, so gates
// apply in file order.
func (cf *circuitFile) build() (*bloq.CompositeBloq, error) {
	bb := bloq.NewBuilder()
	soqs := make(map[string]bloq.SoquetT, len(cf.Registers))
	for _, r := range cf.Registers {
		s, err := bb.AddRegister(r.Name, r.Bitsize)
		if err != nil {
			return nil, err
		}
		soqs[r.Name] = s
	}

	for i, g := range cf.Gates {
		if err := cf.applyGate(bb, soqs, g); err != nil {
			return nil, fmt.Errorf("gate %d (%s): %w", i, g.Kind, err)
		}
	}

	return bb.Finalize(soqs)
}

func (cf *circuitFile) applyGate(bb *bloq.Builder, soqs map[string]bloq.SoquetT, g gateDef) error {
	switch strings.ToLower(g.Kind) {
	case "x", "z", "h", "t":
		if len(g.On) != 1 {
			return fmt.Errorf("expects 1 operand, got %d", len(g.On))
		}
		name := g.On[0]
		s, ok := soqs[name]
		if !ok {
			return fmt.Errorf("unknown register %q", name)
		}
		outs, err := bb.Add(oneQubitGate(g.Kind), map[string]bloq.SoquetT{"q": s})
		if err != nil {
			return err
		}
		soqs[name] = outs["q"]
		return nil

	case "cnot":
		if len(g.On) != 2 {
			return fmt.Errorf("expects 2 operands, got %d", len(g.On))
		}
		ctrl, ok := soqs[g.On[0]]
		if !ok {
			return fmt.Errorf("unknown register %q", g.On[0])
		}
		target, ok := soqs[g.On[1]]
		if !ok {
			return fmt.Errorf("unknown register %q", g.On[1])
		}
		outs, err := bb.Add(gates.NewCNot(), map[string]bloq.SoquetT{"ctrl": ctrl, "target": target})
		if err != nil {
			return err
		}
		soqs[g.On[0]] = outs["ctrl"]
		soqs[g.On[1]] = outs["target"]
		return nil

	default:
		return fmt.Errorf("unknown gate kind %q", g.Kind)
	}
}

func oneQubitGate(kind string) bloq.Bloq {
	switch strings.ToLower(kind) {
	case "x":
		return gates.NewX()
	case "z":
		return gates.NewZ()
	case "h":
		return gates.NewHadamard()
	case "t":
		return gates.NewT()
	default:
		panic(fmt.Sprintf("unreachable gate kind %q", kind))
	}
}

func formatMatrix(m *tensor.RawTensor) string {
	shape := m.Shape()
	data := m.AsComplex128()
	var sb strings.Builder
	for r := 0; r < shape[0]; r++ {
		for c := 0; c < shape[1]; c++ {
			if c > 0 {
				sb.WriteString("  ")
			}
			v := data[r*shape[1]+c]
			fmt.Fprintf(&sb, "%6.3f%+.3fi", real(v), imag(v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
