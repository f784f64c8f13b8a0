package polynomial

import (
	"fmt"
	"math"

	"github.com/polyalg/polyalg/utils"
)

// Divider performs polynomial division. The zero value uses DefaultEps as
// tolerance when deciding whether the divisor is the zero polynomial.
type Divider struct {
	Eps float64
}

// Divide returns the quotient and remainder of num/den using a Divider with
// the default tolerance.
func Divide(num, den Polynomial) (quo, rem Polynomial, err error) {
	return Divider{}.Divide(num, den)
}

// Div returns the quotient and remainder of p/den using a Divider with the
// default tolerance.
func (p Polynomial) Div(den Polynomial) (quo, rem Polynomial, err error) {
	return Divider{}.Divide(p, den)
}

// Divide returns polynomials quo and rem such that num = quo*den + rem with
// deg(rem) < deg(den). Divisors may have any degree between 0 and the degree
// of the numerator; an identically-zero divisor returns ErrZeroDivisor.
func (d Divider) Divide(num, den Polynomial) (quo, rem Polynomial, err error) {

	eps := d.Eps
	if eps <= 0 {
		eps = DefaultEps
	}

	// Effective degree of the divisor: highest coefficient above tolerance.
	m := -1
	for k := den.Degree(); k >= 0; k-- {
		if math.Abs(den.coeffs[k]) > eps {
			m = k
			break
		}
	}
	if m < 0 {
		return Polynomial{}, Polynomial{}, fmt.Errorf("cannot Divide: %w: all %d divisor coefficients are below tolerance", ErrZeroDivisor, den.Degree()+1)
	}

	n := num.Degree()

	if m > n {
		return New(0), num.CopyNew(), nil
	}

	r := num.coeffs.CopyNew()
	quo = New(n - m)

	for k := n - m; k >= 0; k-- {
		q := r[k+m] / den.coeffs[m]
		quo.coeffs[k] = q
		for j := 0; j <= m; j++ {
			r[k+j] -= q * den.coeffs[j]
		}
	}

	rem = New(utils.Max(m-1, 0))
	for k := 0; k < m; k++ {
		rem.coeffs[k] = r[k]
	}

	return quo, rem, nil
}

// Deflate divides p by the linear factor (x - root) using synthetic
// division, returning the quotient of degree Degree()-1 and the scalar
// remainder p(root). Calling Deflate on a degree-0 polynomial is a contract
// violation and panics.
func (p Polynomial) Deflate(root float64) (quo Polynomial, rem float64) {

	n := p.Degree()
	if n < 1 {
		panic(fmt.Errorf("cannot Deflate: degree must be >= 1 but is %d", n))
	}

	quo = New(n - 1)
	quo.coeffs[n-1] = p.coeffs[n]
	for k := n - 2; k >= 0; k-- {
		quo.coeffs[k] = p.coeffs[k+1] + root*quo.coeffs[k+1]
	}

	return quo, p.coeffs[0] + root*quo.coeffs[0]
}
