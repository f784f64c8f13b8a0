// Package pascal implements a triangular table of binomial coefficients
// with row access and diagonal traversal.
package pascal

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/polyalg/polyalg/utils/structs"
)

// ErrOutOfRange is returned when a requested row or diagonal index exceeds
// the order of the table.
var ErrOutOfRange = errors.New("pascal: index out of range")

// literalOrderMax is the largest order whose rows are populated from the
// precomputed literal table below instead of the recurrence. This is purely
// an optimization for the small tables used by the polynomial expansion
// routines; both paths yield identical values.
const literalOrderMax = 4

var literalRows = [literalOrderMax + 1][]int64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
}

// Triangle stores the binomial coefficients C(k, 0..k) for all orders
// k = 0..N. It is computed once at construction and immutable thereafter,
// hence safe for concurrent read-only use.
type Triangle[T constraints.Integer] struct {
	order int
	rows  []structs.Vector[T]
}

// New creates a new Triangle of the given order. Row k holds the k+1
// coefficients of order k, satisfying C(k, i) = C(k-1, i-1) + C(k-1, i)
// with C(k, 0) = C(k, k) = 1.
// A negative order is a contract violation and panics.
func New[T constraints.Integer](order int) *Triangle[T] {

	if order < 0 {
		panic(fmt.Errorf("cannot New: order must be >= 0 but is %d", order))
	}

	t := &Triangle[T]{
		order: order,
		rows:  make([]structs.Vector[T], order+1),
	}

	for k := 0; k <= order; k++ {

		row := structs.NewVector[T](k + 1)

		if k <= literalOrderMax {
			for i, c := range literalRows[k] {
				row[i] = T(c)
			}
		} else {
			prev := t.rows[k-1]
			row[0], row[k] = 1, 1
			for i := 1; i < k; i++ {
				row[i] = prev[i-1] + prev[i]
			}
		}

		t.rows[k] = row
	}

	return t
}

// Order returns the order N of the table.
func (t *Triangle[T]) Order() int {
	return t.order
}

// Row returns the k-th row of the table, i.e. the ordered coefficients
// C(k, 0), ..., C(k, k). The returned vector aliases the table storage and
// must not be modified.
func (t *Triangle[T]) Row(k int) (structs.Vector[T], error) {
	if k < 0 || k > t.order {
		return nil, fmt.Errorf("cannot Row: %w: k=%d but order=%d", ErrOutOfRange, k, t.order)
	}
	return t.rows[k], nil
}

// String renders the full triangle, row-aligned.
func (t *Triangle[T]) String() string {

	width := len(fmt.Sprintf("%v", t.rows[t.order][t.order>>1]))

	var sb strings.Builder
	for k := 0; k <= t.order; k++ {
		sb.WriteString(strings.Repeat(" ", (t.order-k)*(width+1)>>1))
		for i, c := range t.rows[k] {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%*v", width, c)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
