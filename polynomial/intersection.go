package polynomial

import (
	"fmt"
	"math"
)

// Intersector computes the crossing point of two lines. The zero value uses
// DefaultEps as tolerance for the parallelism check.
type Intersector struct {
	Eps float64
}

// Intersect returns the crossing point of l1 and l2 using an Intersector
// with the default tolerance.
func Intersect(l1, l2 Linear) (x, y float64, err error) {
	return Intersector{}.Intersect(l1, l2)
}

// Intersect returns the crossing point of l and other using an Intersector
// with the default tolerance.
func (l Linear) Intersect(other Linear) (x, y float64, err error) {
	return Intersector{}.Intersect(l, other)
}

// Intersect solves the 2x2 system formed by the two lines. Lines with equal
// slopes within tolerance have no single crossing point (none, or infinitely
// many when the lines coincide) and return ErrDegenerateInput.
func (in Intersector) Intersect(l1, l2 Linear) (x, y float64, err error) {

	eps := in.Eps
	if eps <= 0 {
		eps = DefaultEps
	}

	m1, m2 := l1.Slope(), l2.Slope()

	if math.Abs(m1-m2) <= eps {
		return 0, 0, fmt.Errorf("cannot Intersect: %w: parallel lines (slopes %v and %v)", ErrDegenerateInput, m1, m2)
	}

	x = (l2.Intercept() - l1.Intercept()) / (m1 - m2)
	y = l1.Evaluate(x)

	return x, y, nil
}
