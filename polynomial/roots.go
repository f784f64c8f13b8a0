package polynomial

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/polyalg/polyalg/utils/bignum"
)

// cubicPrec is the big.Float precision used around the cubic discriminant,
// where float64 cancellation can flip the root-count branch near the
// triple-root boundary.
const cubicPrec = 128

// RootSolver is a closed-form root solver for polynomials of degree 1 to 3.
// The zero value uses DefaultEps as tolerance.
type RootSolver struct {
	// Eps is the tolerance of the discriminant and leading-coefficient
	// comparisons. Zero or negative selects DefaultEps.
	Eps float64
}

// SolveRoots returns the real roots of p using a RootSolver with the
// default tolerance.
func SolveRoots(p Polynomial) ([]float64, error) {
	return RootSolver{}.Solve(p)
}

// Roots returns the real roots of p using a RootSolver with the default
// tolerance.
func (p Polynomial) Roots() ([]float64, error) {
	return RootSolver{}.Solve(p)
}

// Solve returns the real roots of p in ascending order.
// Supported degrees are 1 (linear), 2 (quadratic, via the discriminant) and
// 3 (cubic, via the depressed-cubic closed form). A quadratic with a
// negative discriminant returns ErrComplexRoots.
func (s RootSolver) Solve(p Polynomial) ([]float64, error) {
	switch p.Degree() {
	case 1:
		return s.solveLinear(p.coeffs[0], p.coeffs[1])
	case 2:
		return s.solveQuadratic(p.coeffs[0], p.coeffs[1], p.coeffs[2])
	case 3:
		return s.solveCubic(p.coeffs[0], p.coeffs[1], p.coeffs[2], p.coeffs[3])
	default:
		return nil, fmt.Errorf("cannot Solve: %w: closed-form solvers cover degrees 1 to 3 but got %d", ErrDegenerateInput, p.Degree())
	}
}

func (s RootSolver) eps() float64 {
	if s.Eps <= 0 {
		return DefaultEps
	}
	return s.Eps
}

func (s RootSolver) solveLinear(c0, c1 float64) ([]float64, error) {
	if math.Abs(c1) <= s.eps() {
		return nil, fmt.Errorf("cannot Solve: %w: zero slope (c1=%v)", ErrDegenerateInput, c1)
	}
	return []float64{-c0 / c1}, nil
}

func (s RootSolver) solveQuadratic(c0, c1, c2 float64) ([]float64, error) {

	eps := s.eps()

	// A vanishing leading coefficient degrades to the linear case.
	if math.Abs(c2) <= eps {
		return s.solveLinear(c0, c1)
	}

	disc := c1*c1 - 4*c2*c0

	if math.Abs(disc) <= eps {
		return []float64{-c1 / (2 * c2)}, nil
	}

	if disc < 0 {
		return nil, fmt.Errorf("cannot Solve: %w: discriminant=%v", ErrComplexRoots, disc)
	}

	// -(c1 + sign(c1)*sqrt(disc))/2 avoids catastrophic cancellation
	// between c1 and the square root.
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))

	x1, x2 := q/c2, c0/q
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	return []float64{x1, x2}, nil
}

// solveCubic solves c3x^3 + c2x^2 + c1x + c0 = 0 by depressing the cubic
// with x = t - c2/(3c3) and branching on the sign of the discriminant
// (q/2)^2 + (p/3)^3 of t^3 + pt + q.
func (s RootSolver) solveCubic(c0, c1, c2, c3 float64) ([]float64, error) {

	eps := s.eps()

	if math.Abs(c3) <= eps {
		return s.solveQuadratic(c0, c1, c2)
	}

	// Normalized coefficients of x^3 + ax^2 + bx + c, carried in big.Float.
	lead := bignum.NewFloat(c3, cubicPrec)
	a := bignum.NewFloat(c2, cubicPrec)
	a.Quo(a, lead)
	b := bignum.NewFloat(c1, cubicPrec)
	b.Quo(b, lead)
	c := bignum.NewFloat(c0, cubicPrec)
	c.Quo(c, lead)

	three := bignum.NewFloat(3, cubicPrec)

	// p = b - a^2/3
	aa := new(big.Float).Mul(a, a)
	p := new(big.Float).Quo(aa, three)
	p.Sub(b, p)

	// q = 2a^3/27 - ab/3 + c
	q := new(big.Float).Mul(aa, a)
	q.Quo(q, bignum.NewFloat(13.5, cubicPrec))
	ab := new(big.Float).Mul(a, b)
	ab.Quo(ab, three)
	q.Sub(q, ab)
	q.Add(q, c)

	// disc = (q/2)^2 + (p/3)^3
	qh := new(big.Float).Quo(q, bignum.NewFloat(2, cubicPrec))
	p3 := new(big.Float).Quo(p, three)
	disc := new(big.Float).Mul(qh, qh)
	cube := new(big.Float).Mul(p3, p3)
	cube.Mul(cube, p3)
	disc.Add(disc, cube)

	pF, _ := p.Float64()
	qF, _ := q.Float64()
	discF, _ := disc.Float64()

	aF, _ := a.Float64()
	shift := -aF / 3

	switch {
	case math.Abs(discF) <= eps:
		if math.Abs(pF) <= eps {
			// Triple root at the depressed origin.
			return []float64{shift}, nil
		}
		// One double root and one simple root.
		double := -3 * qF / (2 * pF)
		simple := 3 * qF / pF
		roots := []float64{double + shift, simple + shift}
		sort.Float64s(roots)
		return roots, nil

	case discF > 0:
		// One real root: t = cbrt(-q/2 + sqrt(disc)) + cbrt(-q/2 - sqrt(disc)).
		sq := new(big.Float).Sqrt(disc)
		u := new(big.Float).Neg(qh)
		v := new(big.Float).Neg(qh)
		u.Add(u, sq)
		v.Sub(v, sq)
		t := new(big.Float).Add(bignum.Cbrt(u), bignum.Cbrt(v))
		tF, _ := t.Float64()
		return []float64{tF + shift}, nil

	default:
		// Three distinct real roots, via the trigonometric form
		// t_k = m cos(theta - 2 pi k/3) with m = 2 sqrt(-p/3).
		m := 2 * math.Sqrt(-pF/3)
		arg := 3 * qF / (pF * m)
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		theta := math.Acos(arg) / 3

		roots := make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = m*math.Cos(theta-2*math.Pi*float64(k)/3) + shift
		}
		sort.Float64s(roots)
		return roots, nil
	}
}
