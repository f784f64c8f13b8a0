package polynomial

import (
	"errors"
	"fmt"
)

// ExtremumFinder locates the extrema of polynomials of degree at most 3 on
// a closed interval, by evaluating the polynomial at the real roots of its
// derivative that fall inside the interval, and at the interval endpoints.
// The zero value uses DefaultEps as tolerance.
type ExtremumFinder struct {
	Eps float64
}

// FindMaximum returns the location and value of the maximum of p on [a, b]
// using an ExtremumFinder with the default tolerance.
func FindMaximum(p Polynomial, a, b float64) (x, y float64, err error) {
	return ExtremumFinder{}.Maximum(p, a, b)
}

// FindMinimum returns the location and value of the minimum of p on [a, b]
// using an ExtremumFinder with the default tolerance.
func FindMinimum(p Polynomial, a, b float64) (x, y float64, err error) {
	return ExtremumFinder{}.Minimum(p, a, b)
}

// Maximum returns the location and value of the maximum of p on [a, b]
// using an ExtremumFinder with the default tolerance.
func (p Polynomial) Maximum(a, b float64) (x, y float64, err error) {
	return ExtremumFinder{}.Maximum(p, a, b)
}

// Minimum returns the location and value of the minimum of p on [a, b]
// using an ExtremumFinder with the default tolerance.
func (p Polynomial) Minimum(a, b float64) (x, y float64, err error) {
	return ExtremumFinder{}.Minimum(p, a, b)
}

// Maximum returns the location and value of the maximum of p on [a, b].
func (f ExtremumFinder) Maximum(p Polynomial, a, b float64) (x, y float64, err error) {
	return f.extremum(p, a, b, false)
}

// Minimum returns the location and value of the minimum of p on [a, b].
func (f ExtremumFinder) Minimum(p Polynomial, a, b float64) (x, y float64, err error) {
	return f.extremum(p, a, b, true)
}

func (f ExtremumFinder) extremum(p Polynomial, a, b float64, min bool) (x, y float64, err error) {

	if b < a {
		return 0, 0, fmt.Errorf("cannot Extremum: %w: inverted interval [%v, %v]", ErrDegenerateInput, a, b)
	}

	if p.Degree() > 3 {
		return 0, 0, fmt.Errorf("cannot Extremum: %w: critical points are solved in closed form, degree must be <= 3 but is %d", ErrDegenerateInput, p.Degree())
	}

	candidates := []float64{a, b}

	if d := p.Derivative(); d.Degree() >= 1 {
		roots, rerr := RootSolver{Eps: f.Eps}.Solve(d)
		switch {
		case rerr == nil:
			for _, r := range roots {
				if a <= r && r <= b {
					candidates = append(candidates, r)
				}
			}
		case errors.Is(rerr, ErrComplexRoots) || errors.Is(rerr, ErrDegenerateInput):
			// No critical point falls inside [a, b]; the extremum is
			// necessarily at an endpoint.
		default:
			return 0, 0, rerr
		}
	}

	x, y = candidates[0], p.Evaluate(candidates[0])
	for _, c := range candidates[1:] {
		v := p.Evaluate(c)
		if (min && v < y) || (!min && v > y) {
			x, y = c, v
		}
	}

	return x, y, nil
}
