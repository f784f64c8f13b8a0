package polynomial

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/polyalg/polyalg/utils/sampling"
	"github.com/polyalg/polyalg/utils/structs"
)

func testPRNG(t *testing.T, label string) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel(label))
	require.NoError(t, err)
	return prng
}

func TestPolynomial(t *testing.T) {

	t.Run("New", func(t *testing.T) {
		p := New(3)
		require.Equal(t, 3, p.Degree())
		require.True(t, cmp.Equal(structs.Vector[float64]{0, 0, 0, 0}, p.Coefficients()))
		require.Panics(t, func() { New(-1) })
	})

	t.Run("SetCoefficients", func(t *testing.T) {
		p := New(2)
		p.SetCoefficients(-1, 0, 1)
		require.True(t, cmp.Equal(structs.Vector[float64]{-1, 0, 1}, p.Coefficients()))
		require.Panics(t, func() { p.SetCoefficients(1, 2) })
		require.Panics(t, func() { NewFromCoeffs() })
	})

	t.Run("CopyNew", func(t *testing.T) {
		p := NewFromCoeffs(1, 2, 3)
		q := p.CopyNew()
		q.SetCoefficients(4, 5, 6)
		require.True(t, cmp.Equal(structs.Vector[float64]{1, 2, 3}, p.Coefficients()))
	})

	t.Run("Evaluate", func(t *testing.T) {
		p := NewFromCoeffs(-1, 0, 1) // x^2 - 1
		require.Equal(t, 3.0, p.Evaluate(2))
		require.Equal(t, -1.0, p.Evaluate(0))

		// Horner against direct power accumulation at sampled points.
		q := NewFromCoeffs(0.5, -2, 3, 1.25)
		prng := testPRNG(t, "polynomial/evaluate")
		for i := 0; i < 64; i++ {
			x := sampling.RandFloat64(prng, -4, 4)
			want := 0.5 - 2*x + 3*x*x + 1.25*x*x*x
			require.InDelta(t, want, q.Evaluate(x), 1e-9)
		}
	})

	t.Run("EvaluateBig", func(t *testing.T) {
		p := NewFromCoeffs(0.5, -2, 3, 1.25)
		prng := testPRNG(t, "polynomial/evaluatebig")
		for i := 0; i < 16; i++ {
			x := sampling.RandFloat64(prng, -4, 4)
			y, _ := p.EvaluateBig(big.NewFloat(x)).Float64()
			require.InDelta(t, p.Evaluate(x), y, 1e-9)
		}
	})

	t.Run("Derivative", func(t *testing.T) {
		p := NewFromCoeffs(7, 1, 2, 3) // 7 + x + 2x^2 + 3x^3
		d := p.Derivative()
		require.Equal(t, 2, d.Degree())
		require.True(t, cmp.Equal(structs.Vector[float64]{1, 4, 9}, d.Coefficients()))

		require.Equal(t, 0, NewFromCoeffs(42.0).Derivative().Degree())
	})

	t.Run("Shift/Identity", func(t *testing.T) {
		p := NewFromCoeffs(1, -2, 0, 3)
		prec, err := NewPrecisionStats(p, p.Shift(0), -5, 5, 128, testPRNG(t, "polynomial/shift0"))
		require.NoError(t, err)
		require.LessOrEqual(t, prec.MaxDelta, 1e-12)
	})

	t.Run("Shift/RoundTrip", func(t *testing.T) {
		p := NewFromCoeffs(1, -2, 0, 3)
		q := p.Shift(1.5).Shift(-1.5)
		pc, qc := p.Coefficients(), q.Coefficients()
		for i := range pc {
			require.InDelta(t, pc[i], qc[i], 1e-9)
		}
	})

	t.Run("Shift/Evaluation", func(t *testing.T) {
		// q = p.Shift(s) must satisfy q(x) = p(x + s).
		p := NewFromCoeffs(2, -1, 0.5)
		s := 0.75
		q := p.Shift(s)
		prng := testPRNG(t, "polynomial/shifteval")
		for i := 0; i < 64; i++ {
			x := sampling.RandFloat64(prng, -3, 3)
			require.InDelta(t, p.Evaluate(x+s), q.Evaluate(x), 1e-9)
		}
	})

	t.Run("String", func(t *testing.T) {
		p := NewFromCoeffs(1, -2, 0, 0.5)
		require.Equal(t, "1.0000 - 2.0000x + 0.0000x^2 + 0.5000x^3", p.String())
	})
}

func TestTypes(t *testing.T) {

	t.Run("Linear", func(t *testing.T) {
		l := NewLinear()
		l.SetCoefficients(1, 2)
		require.Equal(t, 2.0, l.Slope())
		require.Equal(t, 1.0, l.Intercept())
		require.Panics(t, func() { AsLinear(New(2)) })
	})

	t.Run("Cubic", func(t *testing.T) {
		c := NewCubic()
		require.Equal(t, 3, c.Degree())
		require.Panics(t, func() { AsCubic(New(2)) })
	})

	t.Run("Quintic", func(t *testing.T) {
		q := NewQuintic()
		require.Equal(t, 5, q.Degree())
		require.Panics(t, func() { AsQuintic(New(3)) })
	})
}
