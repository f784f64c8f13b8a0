// Package interp implements closed-form construction of polynomials that
// match boundary values and derivatives at the two endpoints of a span.
// Each builder solves its fixed linear system algebraically, in the local
// variable u = x - xi, and shifts the result back to global coordinates.
package interp

import (
	"fmt"

	"github.com/polyalg/polyalg/polynomial"
)

// DefaultEps is the tolerance under which the span xf - xi of a builder is
// considered degenerate.
const DefaultEps = 1e-9

// span validates and returns the width xf - xi of the constraint set of op.
// A zero or negative span is reported as an error rather than silently
// propagating infinities through the divisions below.
func span(op string, xi, xf float64) (h float64, err error) {
	h = xf - xi
	if h <= DefaultEps {
		return 0, fmt.Errorf("cannot %s: %w: zero or negative span (xi=%v, xf=%v)", op, polynomial.ErrDegenerateInput, xi, xf)
	}
	return h, nil
}

// Linear returns the line passing through (xi, yi) and (xf, yf).
func Linear(xi, yi, xf, yf float64) (l polynomial.Linear, err error) {

	h, err := span("Linear", xi, xf)
	if err != nil {
		return polynomial.Linear{}, err
	}

	m := (yf - yi) / h

	l = polynomial.NewLinear()
	l.SetCoefficients(yi-m*xi, m)

	return l, nil
}

// PointSlope returns the line passing through (xf, yf) with the given
// slope. No degeneracy is possible.
func PointSlope(xf, yf, slope float64) (l polynomial.Linear) {
	l = polynomial.NewLinear()
	l.SetCoefficients(yf-slope*xf, slope)
	return l
}

// CubicHermite returns the cubic matching position and first derivative at
// both endpoints: p(xi)=yi, p'(xi)=dyi, p(xf)=yf, p'(xf)=dyf.
func CubicHermite(xi, yi, dyi, xf, yf, dyf float64) (c polynomial.Cubic, err error) {

	h, err := span("CubicHermite", xi, xf)
	if err != nil {
		return polynomial.Cubic{}, err
	}

	dy := yf - yi

	local := polynomial.NewFromCoeffs(
		yi,
		dyi,
		3*dy/(h*h)-(2*dyi+dyf)/h,
		-2*dy/(h*h*h)+(dyi+dyf)/(h*h),
	)

	return polynomial.AsCubic(local.Shift(-xi)), nil
}

// CubicSecondDerivative returns the cubic matching position and second
// derivative at both endpoints: p(xi)=yi, p''(xi)=ddyi, p(xf)=yf,
// p''(xf)=ddyf.
func CubicSecondDerivative(xi, yi, ddyi, xf, yf, ddyf float64) (c polynomial.Cubic, err error) {

	h, err := span("CubicSecondDerivative", xi, xf)
	if err != nil {
		return polynomial.Cubic{}, err
	}

	c2 := ddyi / 2
	c3 := (ddyf - ddyi) / (6 * h)
	c1 := (yf - yi - c2*h*h - c3*h*h*h) / h

	local := polynomial.NewFromCoeffs(yi, c1, c2, c3)

	return polynomial.AsCubic(local.Shift(-xi)), nil
}

// Quintic returns the quintic matching position, first and second
// derivative at both endpoints.
func Quintic(xi, yi, dyi, ddyi, xf, yf, dyf, ddyf float64) (q polynomial.Quintic, err error) {

	h, err := span("Quintic", xi, xf)
	if err != nil {
		return polynomial.Quintic{}, err
	}

	dy := yf - yi
	h2, h3, h4, h5 := h*h, h*h*h, h*h*h*h, h*h*h*h*h

	local := polynomial.NewFromCoeffs(
		yi,
		dyi,
		ddyi/2,
		(20*dy-(8*dyf+12*dyi)*h+(ddyf-3*ddyi)*h2)/(2*h3),
		(-30*dy+(14*dyf+16*dyi)*h+(3*ddyi-2*ddyf)*h2)/(2*h4),
		(12*dy-6*(dyf+dyi)*h+(ddyf-ddyi)*h2)/(2*h5),
	)

	return polynomial.AsQuintic(local.Shift(-xi)), nil
}
