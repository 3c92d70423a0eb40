// SPDX-License-Identifier: MIT

// Package generator produces random and fixed-topology min-plus matrices for
// exercising the engines and solvers.
//
//   - Graph: a random-walk adjacency matrix. Starting from a random vertex,
//     each visited vertex links to a random number of not-yet-adjacent
//     vertices (bounded by the remaining edge budget) and the walk descends
//     into every new neighbour before trying the next one. The descent uses
//     an explicit frame stack, so depth is bounded by memory, not by the
//     goroutine stack. The diagonal is always 0; missing edges hold the
//     sentinel.
//   - Matrix: a rows×cols matrix of uniform weights with an optional share of
//     sentinel cells.
//   - Path, Cycle, Complete, Star, Grid: fixed topologies with one uniform
//     weight, whose shortest distances are known in closed form.
//
// Determinism:
//   - Output is a pure function of the arguments and the RNG; use WithSeed
//     for reproducible fixtures.
package generator
