package matrix_test

import (
	"testing"

	"github.com/katalvlaran/streaks/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestNewDense_ZeroInitialized verifies shape and zero initialization.
func TestNewDense_ZeroInitialized(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v, "fresh matrix must be all zeros")
		}
	}
}

// TestDense_SetAt verifies the Set/At round trip and bounds checking.
func TestDense_SetAt(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 0.25))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	// Out-of-range indices must error, not panic.
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(0, 2, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDense_Clone verifies deep-copy independence.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig, "mutating the clone must not affect the original")
}

// TestIdentity verifies the identity constructor.
func TestIdentity(t *testing.T) {
	_, err := matrix.Identity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}
