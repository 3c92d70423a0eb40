// SPDX-License-Identifier: MIT

package apsp

import "github.com/katalvlaran/minplus/matrix"

// AllPairsShortestPaths computes shortest distances by repeated squaring with
// the default concurrent engine.
func AllPairsShortestPaths(graph *matrix.Dense) (*matrix.Dense, error) {
	return NewSolver().AllPairs(graph)
}

// FloydWarshall computes shortest distances with the sequential closure.
// It is the oracle AllPairsShortestPaths is checked against.
func FloydWarshall(graph *matrix.Dense) (*matrix.Dense, error) {
	return NewSolver().FloydWarshall(graph)
}
