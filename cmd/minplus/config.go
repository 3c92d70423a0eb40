// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/minplus/generator"
)

var errInvalidConfig = errors.New("minplus: invalid configuration")

// Config is the harness configuration. Values come from DefaultConfig, then
// the optional TOML file, then command-line flags.
type Config struct {
	Seed     int64         `toml:"seed"`
	Workers  int           `toml:"workers"`
	Fallback bool          `toml:"sequential_fallback"`
	Metrics  bool          `toml:"metrics"`
	Log      LogConfig     `toml:"log"`
	Graph    GraphConfig   `toml:"graph"`
	Compare  CompareConfig `toml:"compare"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// GraphConfig drives generator.Graph for the graph and apsp commands.
type GraphConfig struct {
	Size      int   `toml:"size"`
	Edges     int   `toml:"edges"`
	Directed  bool  `toml:"directed"`
	Weighted  bool  `toml:"weighted"`
	MaxWeight int64 `toml:"max_weight"`
	Disjoint  bool  `toml:"disjoint"`
	Solve     bool  `toml:"solve"`
}

// CompareConfig drives the engine comparison trials.
type CompareConfig struct {
	Trials        int     `toml:"trials"`
	MaxDim        int     `toml:"max_dim"`
	MaxWeight     int64   `toml:"max_weight"`
	SentinelRatio float64 `toml:"sentinel_ratio"`
}

// DefaultConfig returns the built-in configuration. Seed 0 and Workers 0
// mean "time-based seed" and "GOMAXPROCS".
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Graph: GraphConfig{
			Size:      20,
			Edges:     100,
			Directed:  true,
			Weighted:  true,
			MaxWeight: generator.DefaultMaxWeight,
		},
		Compare: CompareConfig{
			Trials:    20,
			MaxDim:    50,
			MaxWeight: generator.DefaultMaxWeight,
		},
	}
}

// Validate rejects values the library option constructors would panic on.
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers=%d (want >= 0): %w", c.Workers, errInvalidConfig)
	case c.Graph.MaxWeight < 0:
		return fmt.Errorf("graph.max_weight=%d (want >= 0): %w", c.Graph.MaxWeight, errInvalidConfig)
	case c.Compare.MaxWeight < 0:
		return fmt.Errorf("compare.max_weight=%d (want >= 0): %w", c.Compare.MaxWeight, errInvalidConfig)
	case c.Compare.Trials < 1:
		return fmt.Errorf("compare.trials=%d (want >= 1): %w", c.Compare.Trials, errInvalidConfig)
	case c.Compare.MaxDim < 1:
		return fmt.Errorf("compare.max_dim=%d (want >= 1): %w", c.Compare.MaxDim, errInvalidConfig)
	case c.Compare.SentinelRatio < 0 || c.Compare.SentinelRatio > 1:
		return fmt.Errorf("compare.sentinel_ratio=%g (want [0,1]): %w", c.Compare.SentinelRatio, errInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level=%q: %w: %w", c.Log.Level, errInvalidConfig, err)
	}

	return nil
}

// addCommonFlags registers the flags shared by every command and returns the
// --config destination.
func addCommonFlags(fs *pflag.FlagSet, c *Config) *string {
	path := fs.String("config", "", "TOML configuration file; flags override its values")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.IntVarP(&c.Workers, "workers", "p", c.Workers, "max concurrent workers (0 = GOMAXPROCS)")
	fs.BoolVar(&c.Fallback, "fallback", c.Fallback, "recompute sequentially when the worker pool cannot be staffed")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "dump Prometheus metrics to stderr on exit")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level: debug, info, warn, error")
	fs.BoolVar(&c.Log.Development, "log-dev", c.Log.Development, "human-readable development logs")

	return path
}

func addGraphFlags(fs *pflag.FlagSet, c *Config) {
	g := &c.Graph
	fs.IntVarP(&g.Size, "size", "n", g.Size, "number of vertices")
	fs.IntVarP(&g.Edges, "edges", "e", g.Edges, "edge budget")
	fs.BoolVar(&g.Directed, "directed", g.Directed, "generate a directed graph")
	fs.BoolVar(&g.Weighted, "weighted", g.Weighted, "draw random weights instead of 1")
	fs.Int64Var(&g.MaxWeight, "max-weight", g.MaxWeight, "largest edge weight")
	fs.BoolVar(&g.Disjoint, "disjoint", g.Disjoint, "drop vertices without incident edges")
}

func addCompareFlags(fs *pflag.FlagSet, c *Config) {
	cmp := &c.Compare
	fs.IntVarP(&cmp.Trials, "trials", "t", cmp.Trials, "number of random products")
	fs.IntVar(&cmp.MaxDim, "max-dim", cmp.MaxDim, "largest matrix dimension")
	fs.Int64Var(&cmp.MaxWeight, "max-weight", cmp.MaxWeight, "largest matrix entry")
	fs.Float64Var(&cmp.SentinelRatio, "sentinel-ratio", cmp.SentinelRatio, "probability of a missing entry")
}

// applyFile decodes path over c and then re-applies every flag that was set
// on the command line, so flags win over the file.
func applyFile(fs *pflag.FlagSet, path string, c *Config) error {
	if path == "" {
		return nil
	}
	changed := make(map[string]string)
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown keys %v: %w", path, undecoded, errInvalidConfig)
	}
	for name, v := range changed {
		if err = fs.Set(name, v); err != nil {
			return fmt.Errorf("reapply --%s: %w", name, err)
		}
	}

	return nil
}
