// SPDX-License-Identifier: MIT

// Package apsp computes all-pairs shortest paths over dense min-plus
// adjacency matrices.
//
// Independent algorithms are provided and must agree on every input whose
// diagonal is 0 and whose weights are non-negative:
//
//	– Repeated squaring: D = G^(2^⌈log2 V⌉) under the min-plus product,
//	  computed by any minplus.Engine (concurrent by default).
//	– Floyd–Warshall: k → i → j relaxation, sequential or barrier-coupled
//	  concurrent (one round per intermediate vertex k).
//	– Dijkstra: one lazy-heap single-source run per vertex, sources fanned
//	  out over the worker pool.
//
// Complexity:
//
//	– AllPairs:                Time O(V³ log V), Space O(V²) per squaring.
//	– FloydWarshall:           Time O(V³), Space O(V²) (one clone of the input).
//	– FloydWarshallConcurrent: Time O(V³ / P) plus V barrier trips, Space O(V²).
//	– Dijkstra:                Time O(V³ log V / P), Space O(V²).
//
// Input contract:
//
//	– The graph is a square *matrix.Dense; its sentinel means "no edge".
//	– The diagonal should be 0 (matrix.NewDistance, generator.Graph). With a
//	  sentinel diagonal, repeated squaring only finds walks of exactly 2^k
//	  edges, while Floyd–Warshall still finds shortest paths.
//	– Inputs are never mutated; results are fresh matrices.
//
// Errors (sentinel, re-exported from matrix):
//
//	– matrix.ErrNilMatrix     if the graph is nil.
//	– matrix.ErrNonSquare     if the graph is not square; it also matches
//	                          matrix.ErrDimensionMismatch.
//	– ErrNegativeWeight       if Dijkstra meets a negative entry.
//	– minplus.ErrWorkerSpawn  if a concurrent pool cannot be staffed.
//	– minplus.ErrWorkerPanic  if a concurrent worker panicked.
//
// Example usage:
//
//	g, _ := generator.Graph(64, 256, true, true, generator.WithSeed(7))
//	dist, err := apsp.AllPairsShortestPaths(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	oracle, _ := apsp.FloydWarshall(g)
//	fmt.Println(dist.Equal(oracle)) // true
package apsp
