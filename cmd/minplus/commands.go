// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/minplus/apsp"
	"github.com/katalvlaran/minplus/generator"
	"github.com/katalvlaran/minplus/matrix"
	"github.com/katalvlaran/minplus/minplus"
)

var errMismatch = errors.New("results disagree")

func graphFlags(fs *pflag.FlagSet, c *Config) {
	addGraphFlags(fs, c)
	fs.BoolVar(&c.Graph.Solve, "solve", c.Graph.Solve, "also print the all-pairs distances")
}

// graph generates the configured random graph.
func (e *env) graph() (*matrix.Dense, error) {
	g := e.cfg.Graph
	opts := []generator.Option{generator.WithRand(e.rng), generator.WithMaxWeight(g.MaxWeight)}
	if g.Disjoint {
		opts = append(opts, generator.WithDisjointFilter())
	}

	return generator.Graph(g.Size, g.Edges, g.Directed, g.Weighted, opts...)
}

func (e *env) solver(engine minplus.Engine) *apsp.Solver {
	opts := []apsp.Option{apsp.WithEngine(engine), apsp.WithLogger(e.log)}
	if e.cfg.Workers > 0 {
		opts = append(opts, apsp.WithParallelism(e.cfg.Workers))
	}

	return apsp.NewSolver(opts...)
}

// printGrid writes m as a grid followed by its finite-entry count.
func (e *env) printGrid(m *matrix.Dense) error {
	count, err := matrix.WriteGrid(e.out, m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, count)

	return err
}

func runGraph(e *env) error {
	g, err := e.graph()
	if err != nil {
		return err
	}
	if err = e.printGrid(g); err != nil {
		return err
	}
	if !e.cfg.Graph.Solve {
		return nil
	}
	dist, err := e.solver(minplus.NewConcurrent(e.engineOptions()...)).AllPairs(g)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out)

	return e.printGrid(dist)
}

// runCompare times random rectangular products on both engines and counts
// the trials whose results differ.
func runCompare(e *env) error {
	c := e.cfg.Compare
	e.log.Info("host", probeHost(e.log).fields()...)

	conc := minplus.NewConcurrent(e.engineOptions()...)
	seq := minplus.NewSequential(e.engineOptions()...)
	gen := []generator.Option{generator.WithRand(e.rng), generator.WithSentinelRatio(c.SentinelRatio)}

	var (
		diff     time.Duration
		failures int
	)
	for t := 1; t <= c.Trials; t++ {
		r1, r2, r4 := 1+e.rng.Intn(c.MaxDim), 1+e.rng.Intn(c.MaxDim), 1+e.rng.Intn(c.MaxDim)
		a, err := generator.Matrix(r1, r2, c.MaxWeight, gen...)
		if err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}
		b, err := generator.Matrix(r2, r4, c.MaxWeight, gen...)
		if err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}

		start := time.Now()
		got, err := conc.Product(a, b)
		if err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}
		concurrent := time.Since(start)

		start = time.Now()
		want, err := seq.Product(a, b)
		if err != nil {
			return fmt.Errorf("trial %d: %w", t, err)
		}
		sequential := time.Since(start)

		if !got.Equal(want) {
			failures++
		}
		diff += sequential - concurrent
		e.log.Debug("trial",
			zap.Int("trial", t), zap.Int("r1", r1), zap.Int("r2", r2), zap.Int("r4", r4),
			zap.Duration("concurrent", concurrent), zap.Duration("sequential", sequential))
	}

	fmt.Fprintf(e.out, "average performance difference: %v\n", diff/time.Duration(c.Trials))
	fmt.Fprintf(e.out, "number of errors: %d\n", failures)
	if failures > 0 {
		return fmt.Errorf("%d of %d trials: %w", failures, c.Trials, errMismatch)
	}

	return nil
}

// runAPSP solves one generated graph with every algorithm and checks them
// against sequential Floyd–Warshall.
func runAPSP(e *env) error {
	g, err := e.graph()
	if err != nil {
		return err
	}
	e.log.Info("host", probeHost(e.log).fields()...)

	conc := e.solver(minplus.NewConcurrent(e.engineOptions()...))
	seq := e.solver(minplus.NewSequential(e.engineOptions()...))
	runs := []struct {
		name  string
		solve func(*matrix.Dense) (*matrix.Dense, error)
	}{
		{"floyd-warshall", seq.FloydWarshall},
		{"floyd-warshall-concurrent", conc.FloydWarshallConcurrent},
		{"squaring-sequential", seq.AllPairs},
		{"squaring-concurrent", conc.AllPairs},
		{"dijkstra", conc.Dijkstra},
	}

	var (
		oracle     *matrix.Dense
		mismatches int
	)
	fmt.Fprintf(e.out, "vertices: %d, squarings: %d\n", g.Rows(), apsp.Squarings(g.Rows()))
	for _, r := range runs {
		start := time.Now()
		d, err := r.solve(g)
		if err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
		elapsed := time.Since(start)

		verdict := "ok"
		if oracle == nil {
			oracle = d
			verdict = "oracle"
		} else if !d.Equal(oracle) {
			verdict = "MISMATCH"
			mismatches++
		}
		fmt.Fprintf(e.out, "%-26s %14v  %s\n", r.name, elapsed, verdict)
	}
	fmt.Fprintf(e.out, "reachable pairs: %d\n", oracle.FiniteCount())
	if mismatches > 0 {
		return fmt.Errorf("%d of %d algorithms: %w", mismatches, len(runs)-1, errMismatch)
	}

	return nil
}
