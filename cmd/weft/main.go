// Package main provides the weft CLI: it loads a circuit description
// from a TOML file, contracts it to a dense matrix, and prints the
// result.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/weft-qc/weft/backend/cpu"
	"github.com/weft-qc/weft/sim"
)

const version = "v0.1.0-dev"

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"enable debug logging"`
	Version bool `long:"version" description:"print version and exit"`

	Args struct {
		Circuit string `positional-arg-name:"circuit.toml" description:"circuit description file"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "weft"
	parser.LongDescription = "Contracts a quantum circuit to its dense matrix via tensor networks."

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("weft %s\n", version)
		return
	}
	if opts.Args.Circuit == "" {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	setupLogging(opts.Verbose)
	defer func() { _ = zap.L().Sync() }()

	if err := run(opts.Args.Circuit); err != nil {
		zap.L().Error("weft failed", zap.Error(err))
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
}

func run(path string) error {
	cf, err := loadCircuit(path)
	if err != nil {
		return err
	}

	cbloq, err := cf.build()
	if err != nil {
		return err
	}
	zap.L().Info("built circuit",
		zap.Int("registers", len(cf.Registers)),
		zap.Int("gates", len(cf.Gates)))

	m, err := sim.Contract(cbloq, cpu.New())
	if err != nil {
		return err
	}

	fmt.Print(formatMatrix(m))
	return nil
}
