// Package polynomial implements polynomials of fixed degree with real
// coefficients, together with closed-form algebraic operators over them:
// root-finding for degrees 1 to 3, polynomial division, extrema location
// and intersection of linear functions.
package polynomial

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/polyalg/polyalg/pascal"
	"github.com/polyalg/polyalg/utils/bignum"
	"github.com/polyalg/polyalg/utils/structs"
)

// DefaultEps is the numeric tolerance used by the operators when their
// tolerance field is left zero.
const DefaultEps = 1e-9

// stringPrecision is the fixed number of fractional digits used by String.
const stringPrecision = 4

// Polynomial represents c[0] + c[1]x + ... + c[D]x^D with D+1 real
// coefficients in ascending power order. The degree is fixed at construction
// and never changes; copies are independent.
type Polynomial struct {
	coeffs structs.Vector[float64]
}

// New creates a new Polynomial of the given degree with all coefficients
// set to zero. A negative degree is a contract violation and panics.
func New(degree int) Polynomial {
	if degree < 0 {
		panic(fmt.Errorf("cannot New: degree must be >= 0 but is %d", degree))
	}
	return Polynomial{coeffs: structs.NewVector[float64](degree + 1)}
}

// NewFromCoeffs creates a new Polynomial from coefficients in ascending
// power order. At least one coefficient must be given.
func NewFromCoeffs(coeffs ...float64) Polynomial {
	if len(coeffs) == 0 {
		panic(fmt.Errorf("cannot NewFromCoeffs: at least one coefficient is required"))
	}
	p := New(len(coeffs) - 1)
	p.coeffs.Assign(coeffs...)
	return p
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients in ascending power order.
func (p Polynomial) Coefficients() structs.Vector[float64] {
	return p.coeffs.CopyNew()
}

// SetCoefficients overwrites all coefficients, in ascending power order.
// The number of values must be exactly Degree()+1, else the method panics.
func (p *Polynomial) SetCoefficients(coeffs ...float64) {
	p.coeffs.Assign(coeffs...)
}

// CopyNew returns a deep copy of the object.
func (p Polynomial) CopyNew() Polynomial {
	return Polynomial{coeffs: p.coeffs.CopyNew()}
}

// Evaluate returns p(x), accumulated with Horner's scheme from the highest
// degree coefficient downward.
func (p Polynomial) Evaluate(x float64) (y float64) {
	d := p.Degree()
	y = p.coeffs[d]
	for i := d - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// EvaluateBig returns p(x) for a *big.Float x, at the precision of x.
func (p Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {
	prec := x.Prec()
	d := p.Degree()
	y = bignum.NewFloat(p.coeffs[d], prec)
	for i := d - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, bignum.NewFloat(p.coeffs[i], prec))
	}
	return
}

// Derivative returns the derivative of p, of degree Degree()-1.
// The derivative of a degree-0 polynomial is the zero constant.
func (p Polynomial) Derivative() Polynomial {
	d := p.Degree()
	if d == 0 {
		return New(0)
	}
	q := New(d - 1)
	for k := 1; k <= d; k++ {
		q.coeffs[k-1] = p.coeffs[k] * float64(k)
	}
	return q
}

// Shift returns the polynomial q of the same degree satisfying
// q(x') = p(x) for x' = x - offset, i.e. q(y) = p(y + offset).
// Each term c[k](y+offset)^k is re-expanded with the binomial coefficients
// of a pascal.Triangle of matching order. The receiver is left unmodified.
func (p Polynomial) Shift(offset float64) Polynomial {

	d := p.Degree()
	q := New(d)
	tr := pascal.New[int64](d)

	for k := 0; k <= d; k++ {

		row, err := tr.Row(k)
		if err != nil {
			// k <= d = tr.Order() by construction.
			panic(err)
		}

		pow := 1.0
		for j := k; j >= 0; j-- {
			q.coeffs[j] += p.coeffs[k] * float64(row[j]) * pow
			pow *= offset
		}
	}

	return q
}

// String renders the polynomial as "c0 + c1x + c2x^2 + ..." with a fixed
// numeric precision. Zero terms are kept so that the output length is
// predictable for a given degree.
func (p Polynomial) String() string {

	var sb strings.Builder

	fmt.Fprintf(&sb, "%.*f", stringPrecision, p.coeffs[0])

	for k := 1; k <= p.Degree(); k++ {
		c := p.coeffs[k]
		sign := "+"
		if c < 0 {
			sign, c = "-", -c
		}
		if k == 1 {
			fmt.Fprintf(&sb, " %s %.*fx", sign, stringPrecision, c)
		} else {
			fmt.Fprintf(&sb, " %s %.*fx^%d", sign, stringPrecision, c, k)
		}
	}

	return sb.String()
}
