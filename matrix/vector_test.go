// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorConstruction(t *testing.T) {
	v, err := matrix.NewVector(3)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 0}, v.Values())

	_, err = matrix.NewVector(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	e2, err := matrix.Basis(4, 2)
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 0, 1, 0}, e2.Values())

	_, err = matrix.Basis(4, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	src := []complex128{1, 2}
	w := matrix.VectorFrom(src...)
	src[0] = 9
	got, err := w.At(0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), got)
}

func TestVectorAtSet(t *testing.T) {
	v := matrix.VectorFrom(1, 2)
	require.NoError(t, v.Set(1, 1i))
	assert.Equal(t, []complex128{1, 1i}, v.Values())

	_, err := v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)
}

func TestDot_ConjugateLinearInFirst(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, b []complex128
		want complex128
	}{
		{"orthogonal", []complex128{1i, 1}, []complex128{1, 1i}, 0},
		{"mixed", []complex128{1 + 1i, 2}, []complex128{3, 1i}, 3 - 1i},
		{"self", []complex128{3, 4i}, []complex128{3, 4i}, 25},
		{"empty", nil, nil, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.VectorFrom(tc.a...).Dot(matrix.VectorFrom(tc.b...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDot_DimensionMismatch(t *testing.T) {
	_, err := matrix.VectorFrom(1, 2).Dot(matrix.VectorFrom(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Dot:")
}

func TestVectorNormAndDistance(t *testing.T) {
	v := matrix.VectorFrom(3, 4i)
	assert.Equal(t, 25.0, v.NormSquared())
	assert.Equal(t, 5.0, v.Norm())

	d, err := v.Distance(matrix.VectorFrom(0, 4i))
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	_, err = v.Distance(matrix.VectorFrom(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVectorArithmetic(t *testing.T) {
	a := matrix.VectorFrom(1, 1i)
	b := matrix.VectorFrom(1i, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 + 1i, 2 + 1i}, sum.Values())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 - 1i, -2 + 1i}, diff.Values())

	assert.Equal(t, []complex128{1i, -1}, a.Scale(1i).Values())
	assert.Equal(t, []complex128{-1, -1i}, a.Neg().Values())

	_, err = a.Add(matrix.VectorFrom(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVectorTensor(t *testing.T) {
	got := matrix.VectorFrom(1, 2).Tensor(matrix.VectorFrom(3, 4, 5))
	assert.Equal(t, []complex128{3, 4, 5, 6, 8, 10}, got.Values())

	// e_1 ⊗ e_0 = e_2 in dimension 4
	e1, _ := matrix.Basis(2, 1)
	e0, _ := matrix.Basis(2, 0)
	e2, _ := matrix.Basis(4, 2)
	assert.True(t, e1.Tensor(e0).FuzzyEqual(e2))
}

func TestVectorProbabilitiesAndNormalize(t *testing.T) {
	v := matrix.VectorFrom(0.6, 0.8i)
	p := v.Probabilities()
	require.Len(t, p, 2)
	assert.InDelta(t, 0.36, p[0], 1e-15)
	assert.InDelta(t, 0.64, p[1], 1e-15)

	w := matrix.VectorFrom(3, 4)
	require.NoError(t, w.Normalize())
	assert.True(t, w.FuzzyEqual(matrix.VectorFrom(0.6, 0.8)))

	zero := matrix.VectorFrom(0, 0)
	require.ErrorIs(t, zero.Normalize(), matrix.ErrZeroNorm)
}

func TestVectorCloneAndString(t *testing.T) {
	v := matrix.VectorFrom(1, -2i)
	c := v.Clone()
	require.NoError(t, c.Set(0, 7))
	assert.Equal(t, "[1 + 0i, 0 - 2i]", v.String())
	assert.False(t, v.FuzzyEqual(c))
	assert.False(t, v.FuzzyEqual(matrix.VectorFrom(1)))
}
