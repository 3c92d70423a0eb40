// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minplus/generator"
	"github.com/katalvlaran/minplus/matrix"
)

func TestTopologies_EdgeCounts(t *testing.T) {
	t.Parallel()

	mk := func(m *matrix.Dense, err error) *matrix.Dense {
		require.NoError(t, err)
		return m
	}
	cases := []struct {
		name  string
		m     *matrix.Dense
		edges int
		sym   bool
	}{
		{"path/directed", mk(generator.Path(6, 2, true)), 5, false},
		{"path/undirected", mk(generator.Path(6, 2, false)), 10, true},
		{"cycle/directed", mk(generator.Cycle(5, 1, true)), 5, false},
		{"cycle/undirected", mk(generator.Cycle(5, 1, false)), 10, true},
		{"complete", mk(generator.Complete(4, 3)), 12, true},
		{"star", mk(generator.Star(5, 1)), 8, true},
		{"grid", mk(generator.Grid(3, 4, 1)), 2 * (3*3 + 2*4), true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.edges, offDiagonalEdges(tc.m), tc.name)
		rows := tc.m.ToRows()
		for i := range rows {
			assert.Equal(t, int64(0), rows[i][i], "%s: diagonal", tc.name)
			if tc.sym {
				for j := range rows {
					assert.Equal(t, rows[i][j], rows[j][i], "%s: symmetry (%d,%d)", tc.name, i, j)
				}
			}
		}
	}
}

func TestTopologies_Layout(t *testing.T) {
	t.Parallel()

	s := generator.WithSentinel(99)
	p, err := generator.Path(3, 4, true, s)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 4, 99}, {99, 0, 4}, {99, 99, 0}}, p.ToRows())

	c, err := generator.Cycle(3, 1, true, s)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 1, 99}, {99, 0, 1}, {1, 99, 0}}, c.ToRows())

	g, err := generator.Grid(2, 2, 7, s)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 7, 7, 99}, {7, 0, 99, 7}, {7, 99, 0, 7}, {99, 7, 7, 0}}, g.ToRows())
}

func TestTopologies_Errors(t *testing.T) {
	t.Parallel()

	_, err := generator.Cycle(2, 1, true)
	require.ErrorIs(t, err, generator.ErrTooFewVertices)
	_, err = generator.Star(1, 1)
	require.ErrorIs(t, err, generator.ErrTooFewVertices)
	_, err = generator.Path(0, 1, false)
	require.ErrorIs(t, err, generator.ErrTooFewVertices)
	_, err = generator.Grid(0, 3, 1)
	require.ErrorIs(t, err, generator.ErrTooFewVertices)

	_, err = generator.Complete(3, -1)
	require.ErrorIs(t, err, generator.ErrInvalidWeight)
	_, err = generator.Path(3, 10, true, generator.WithSentinel(10))
	require.ErrorIs(t, err, generator.ErrInvalidWeight)
}
