// SPDX-License-Identifier: MIT

package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minplus/generator"
	"github.com/katalvlaran/minplus/matrix"
)

func TestMatrix_ShapeAndRange(t *testing.T) {
	t.Parallel()

	m, err := generator.Matrix(7, 13, 50, generator.WithSeed(11))
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 7, r)
	assert.Equal(t, 13, c)
	for _, v := range m.RawData() {
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(50))
	}
	assert.Equal(t, 7*13, m.FiniteCount())
}

func TestMatrix_SentinelRatio(t *testing.T) {
	t.Parallel()

	all, err := generator.Matrix(5, 5, 50, generator.WithSeed(1), generator.WithSentinelRatio(1))
	require.NoError(t, err)
	assert.Zero(t, all.FiniteCount())

	some, err := generator.Matrix(40, 40, 50, generator.WithSeed(1), generator.WithSentinelRatio(0.3))
	require.NoError(t, err)
	finite := some.FiniteCount()
	assert.Greater(t, finite, 0)
	assert.Less(t, finite, 40*40)
}

func TestMatrix_SharedRandIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := generator.Matrix(4, 4, 9, generator.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	b, err := generator.Matrix(4, 4, 9, generator.WithSeed(5))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestMatrix_Errors(t *testing.T) {
	t.Parallel()

	_, err := generator.Matrix(0, 3, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = generator.Matrix(3, 3, -1)
	require.ErrorIs(t, err, generator.ErrInvalidWeight)
	_, err = generator.Matrix(3, 3, 999, generator.WithSentinel(999))
	require.ErrorIs(t, err, generator.ErrInvalidWeight)
}
