// SPDX-License-Identifier: MIT

package apsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minplus/apsp"
	"github.com/katalvlaran/minplus/generator"
	"github.com/katalvlaran/minplus/matrix"
	"github.com/katalvlaran/minplus/minplus"
)

func TestSquarings(t *testing.T) {
	t.Parallel()

	cases := []struct{ v, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {1024, 10}, {1025, 11},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, apsp.Squarings(tc.v), "v=%d", tc.v)
	}
}

func TestAllPairs_ThreeVertexScenario(t *testing.T) {
	t.Parallel()

	s := matrix.WithSentinel(999)
	g := mustRows(t, [][]int64{{0, 3, 999}, {999, 0, 1}, {2, 999, 0}}, s)
	want := mustRows(t, [][]int64{{0, 3, 4}, {3, 0, 1}, {2, 5, 0}}, s)

	for _, alg := range algorithms() {
		got, err := alg.run(g)
		require.NoError(t, err, alg.name)
		assert.Equal(t, int64(999), got.Sentinel(), alg.name)
		assertSameMatrix(t, want, got)
	}
}

func TestAllPairs_ErrorsOnBadInput(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	for _, alg := range algorithms() {
		_, err = alg.run(rect)
		require.ErrorIs(t, err, matrix.ErrNonSquare, alg.name)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, alg.name)
		require.ErrorContains(t, err, "2x3")

		_, err = alg.run(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, alg.name)
	}
}

func TestAllPairs_SingleVertex(t *testing.T) {
	t.Parallel()

	g := mustRows(t, [][]int64{{0}})
	for _, alg := range algorithms() {
		got, err := alg.run(g)
		require.NoError(t, err, alg.name)
		assert.True(t, got.Equal(g), alg.name)
		assert.NotSame(t, g, got, "%s must return a fresh matrix", alg.name)
	}
}

func TestAllPairs_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	g, err := generator.Graph(25, 60, true, true, generator.WithSeed(12))
	require.NoError(t, err)
	before := g.Clone()
	for _, alg := range algorithms() {
		_, err = alg.run(g)
		require.NoError(t, err, alg.name)
		assert.True(t, g.Equal(before), alg.name)
	}
}

// TestAllPairs_CrossOracle checks that every algorithm agrees with sequential
// Floyd–Warshall on generated graphs of every flavour.
func TestAllPairs_CrossOracle(t *testing.T) {
	t.Parallel()

	seed := int64(0)
	for _, size := range []int{2, 3, 7, 16, 33} {
		for _, directed := range []bool{false, true} {
			for _, weighted := range []bool{false, true} {
				seed++
				size, directed, weighted, seed := size, directed, weighted, seed
				name := fmt.Sprintf("V=%d/directed=%t/weighted=%t", size, directed, weighted)
				t.Run(name, func(t *testing.T) {
					t.Parallel()
					g, err := generator.Graph(size, 3*size, directed, weighted, generator.WithSeed(seed))
					require.NoError(t, err)

					oracle, err := apsp.FloydWarshall(g)
					require.NoError(t, err)
					for _, alg := range algorithms() {
						got, err := alg.run(g)
						require.NoError(t, err, alg.name)
						assertSameMatrix(t, oracle, got)
					}
				})
			}
		}
	}
}

func TestFloydWarshallConcurrent_SpawnFailure(t *testing.T) {
	t.Parallel()

	g, err := generator.Graph(10, 20, true, true, generator.WithSeed(3))
	require.NoError(t, err)

	s := apsp.NewSolver(apsp.WithParallelism(4), apsp.WithSpawner(acceptOnly(1)))
	_, err = s.FloydWarshallConcurrent(g)
	require.ErrorIs(t, err, minplus.ErrWorkerSpawn)
	require.ErrorIs(t, err, errNoWorkers)
}

func TestDijkstra_RejectsNegativeWeights(t *testing.T) {
	t.Parallel()

	g := mustRows(t, [][]int64{{0, 4}, {-2, 0}})
	_, err := apsp.NewSolver().Dijkstra(g)
	require.ErrorIs(t, err, apsp.ErrNegativeWeight)
	require.ErrorContains(t, err, "1→0 weight=-2")
}

func TestDijkstra_IgnoresDiagonal(t *testing.T) {
	t.Parallel()

	g := mustRows(t, [][]int64{{999, 2}, {5, 999}}, matrix.WithSentinel(999))
	got, err := apsp.NewSolver().Dijkstra(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 2}, {5, 0}}, got.ToRows())
}

func TestDijkstra_SpawnFailure(t *testing.T) {
	t.Parallel()

	g, err := generator.Graph(12, 30, true, true, generator.WithSeed(4))
	require.NoError(t, err)
	_, err = apsp.NewSolver(apsp.WithParallelism(3), apsp.WithSpawner(acceptOnly(0))).Dijkstra(g)
	require.ErrorIs(t, err, minplus.ErrWorkerSpawn)
}

func TestAllPairs_EngineErrorIsWrapped(t *testing.T) {
	t.Parallel()

	g := mustRows(t, [][]int64{{0, 1}, {1, 0}})
	s := apsp.NewSolver(apsp.WithEngine(failingEngine{}))
	_, err := s.AllPairs(g)
	require.ErrorIs(t, err, errEngineDown)
	require.ErrorContains(t, err, "squaring 1 of 1")
}

func TestSolver_Options(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { apsp.WithEngine(nil) })
	assert.Panics(t, func() { apsp.WithParallelism(0) })
	assert.NotPanics(t, func() { apsp.NewSolver(apsp.WithLogger(nil)) })

	assert.Equal(t, minplus.EngineConcurrent, apsp.NewSolver().EngineName())
	assert.Equal(t, minplus.EngineSequential,
		apsp.NewSolver(apsp.WithEngine(minplus.NewSequential())).EngineName())
}
