package polynomial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoots(t *testing.T) {

	t.Run("Linear", func(t *testing.T) {
		roots, err := NewFromCoeffs(-4, 2).Roots() // 2x - 4
		require.NoError(t, err)
		require.Equal(t, []float64{2}, roots)
	})

	t.Run("Linear/ZeroSlope", func(t *testing.T) {
		_, err := NewFromCoeffs(1, 0).Roots()
		require.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("Quadratic/TwoRealRoots", func(t *testing.T) {
		roots, err := NewFromCoeffs(-1, 0, 1).Roots() // x^2 - 1
		require.NoError(t, err)
		require.Len(t, roots, 2)
		require.InDelta(t, -1.0, roots[0], 1e-12)
		require.InDelta(t, 1.0, roots[1], 1e-12)
	})

	t.Run("Quadratic/ComplexRoots", func(t *testing.T) {
		_, err := NewFromCoeffs(1, 0, 1).Roots() // x^2 + 1
		require.ErrorIs(t, err, ErrComplexRoots)
	})

	t.Run("Quadratic/RepeatedRoot", func(t *testing.T) {
		roots, err := NewFromCoeffs(9, -6, 1).Roots() // (x - 3)^2
		require.NoError(t, err)
		require.Len(t, roots, 1)
		require.InDelta(t, 3.0, roots[0], 1e-12)
	})

	t.Run("Quadratic/VanishingLead", func(t *testing.T) {
		roots, err := NewFromCoeffs(-4, 2, 0).Roots()
		require.NoError(t, err)
		require.Equal(t, []float64{2}, roots)
	})

	t.Run("Cubic/ThreeRealRoots", func(t *testing.T) {
		// (x - 1)(x - 2)(x + 3) = x^3 - 7x + 6
		roots, err := NewFromCoeffs(6, -7, 0, 1).Roots()
		require.NoError(t, err)
		require.Len(t, roots, 3)
		require.InDelta(t, -3.0, roots[0], 1e-9)
		require.InDelta(t, 1.0, roots[1], 1e-9)
		require.InDelta(t, 2.0, roots[2], 1e-9)
	})

	t.Run("Cubic/OneRealRoot", func(t *testing.T) {
		// x^3 - x - 1 has a single real root, the plastic number.
		p := NewFromCoeffs(-1, -1, 0, 1)
		roots, err := p.Roots()
		require.NoError(t, err)
		require.Len(t, roots, 1)
		require.InDelta(t, 1.324717957244746, roots[0], 1e-12)
		require.InDelta(t, 0.0, p.Evaluate(roots[0]), 1e-12)
	})

	t.Run("Cubic/TripleRoot", func(t *testing.T) {
		// (x - 2)^3 = x^3 - 6x^2 + 12x - 8
		roots, err := NewFromCoeffs(-8, 12, -6, 1).Roots()
		require.NoError(t, err)
		require.Len(t, roots, 1)
		require.InDelta(t, 2.0, roots[0], 1e-9)
	})

	t.Run("Cubic/DoubleRoot", func(t *testing.T) {
		// (x - 1)^2 (x + 2) = x^3 - 3x + 2
		roots, err := NewFromCoeffs(2, -3, 0, 1).Roots()
		require.NoError(t, err)
		require.Len(t, roots, 2)
		require.InDelta(t, -2.0, roots[0], 1e-9)
		require.InDelta(t, 1.0, roots[1], 1e-9)
	})

	t.Run("Cubic/VanishingLead", func(t *testing.T) {
		roots, err := NewFromCoeffs(-1, 0, 1, 0).Roots()
		require.NoError(t, err)
		require.Len(t, roots, 2)
		require.InDelta(t, -1.0, roots[0], 1e-12)
		require.InDelta(t, 1.0, roots[1], 1e-12)
	})

	t.Run("UnsupportedDegree", func(t *testing.T) {
		_, err := New(4).Roots()
		require.ErrorIs(t, err, ErrDegenerateInput)
		_, err = New(0).Roots()
		require.ErrorIs(t, err, ErrDegenerateInput)
	})

	t.Run("DualSurface", func(t *testing.T) {
		// The operator struct, the package function and the method are three
		// entry points over one implementation.
		p := NewFromCoeffs(-1, 0, 1)

		a, errA := RootSolver{}.Solve(p)
		b, errB := SolveRoots(p)
		c, errC := p.Roots()

		require.NoError(t, errA)
		require.NoError(t, errB)
		require.NoError(t, errC)
		require.Equal(t, a, b)
		require.Equal(t, a, c)
	})

	t.Run("CustomTolerance", func(t *testing.T) {
		// With a coarse tolerance the near-zero discriminant collapses to a
		// repeated root instead of two barely distinct ones.
		p := NewFromCoeffs(1e-7, -2e-3, 1) // disc = 4e-6 - 4e-7
		roots, err := RootSolver{Eps: 1e-2}.Solve(p)
		require.NoError(t, err)
		require.Len(t, roots, 1)
	})
}
