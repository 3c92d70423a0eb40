// SPDX-License-Identifier: MIT

// Command minplus is the harness around the min-plus packages: it prints
// generated graphs, times the concurrent product against the sequential one,
// and cross-checks the all-pairs solvers.
//
// Usage:
//
//	minplus graph   [--size N] [--edges E] [--solve] ...
//	minplus compare [--trials T] [--max-dim D] [--workers P] ...
//	minplus apsp    [--size N] [--edges E] [--workers P] ...
//
// Every command accepts --config FILE (TOML); flags override file values.
package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/minplus"
)

const usage = `usage: minplus <command> [flags]

commands:
  graph     generate a random graph and print it as a grid
  compare   time the concurrent product against the sequential one
  apsp      solve a generated graph with every algorithm and check agreement

run "minplus <command> --help" for the flags of a command.
`

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// command is one subcommand: its extra flags and its body.
type command struct {
	flags func(fs *pflag.FlagSet, c *Config)
	run   func(e *env) error
}

var commands = map[string]command{
	"graph":   {flags: graphFlags, run: runGraph},
	"compare": {flags: addCompareFlags, run: runCompare},
	"apsp":    {flags: addGraphFlags, run: runAPSP},
}

// env is what a command body gets to work with.
type env struct {
	cfg     Config
	log     *zap.Logger
	out     io.Writer
	rng     *rand.Rand
	metrics *minplus.Metrics
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "minplus: unknown command %q\n\n%s", name, usage)
		return exitUsage
	}

	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("minplus "+name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := addCommonFlags(fs, &cfg)
	cmd.flags(fs, &cfg)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if err := applyFile(fs, *configPath, &cfg); err != nil {
		fmt.Fprintf(stderr, "minplus %s: %v\n", name, err)
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "minplus %s: %v\n", name, err)
		return exitUsage
	}

	log, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "minplus %s: %v\n", name, err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &env{cfg: cfg, log: log.With(zap.String("command", name)), out: stdout, rng: rand.New(rand.NewSource(seed))}
	e.log.Debug("configured", zap.Int64("seed", seed), zap.Int("workers", cfg.Workers))

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		if e.metrics, err = minplus.NewMetrics(reg); err != nil {
			fmt.Fprintf(stderr, "minplus %s: %v\n", name, err)
			return exitFailure
		}
	}

	code := exitOK
	if err = cmd.run(e); err != nil {
		e.log.Error("command failed", zap.Error(err))
		fmt.Fprintf(stderr, "minplus %s: %v\n", name, err)
		code = exitFailure
	}
	if reg != nil {
		if err = dumpMetrics(reg, stderr); err != nil {
			e.log.Warn("metrics dump failed", zap.Error(err))
		}
	}

	return code
}

// engineOptions translates the configuration into engine options.
func (e *env) engineOptions() []minplus.Option {
	opts := []minplus.Option{minplus.WithLogger(e.log), minplus.WithMetrics(e.metrics)}
	if e.cfg.Workers > 0 {
		opts = append(opts, minplus.WithMaxParallelism(e.cfg.Workers))
	}
	if e.cfg.Fallback {
		opts = append(opts, minplus.WithSequentialFallback())
	}

	return opts
}
