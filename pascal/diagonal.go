package pascal

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DiagonalIterator is a lazy, forward-only and restartable traversal of one
// diagonal of a Triangle. Entry i of diagonal d is Row(d+i)[i]: the sequence
// starts near the apex and descends toward the bottom-right edge of the
// table. It is a read-only view and does not own table storage.
type DiagonalIterator[T constraints.Integer] struct {
	t *Triangle[T]
	d int
	i int
}

// Diagonal returns an iterator over the d-th diagonal of the table,
// for 0 <= d <= Order().
func (t *Triangle[T]) Diagonal(d int) (*DiagonalIterator[T], error) {
	if d < 0 || d > t.order {
		return nil, fmt.Errorf("cannot Diagonal: %w: d=%d but order=%d", ErrOutOfRange, d, t.order)
	}
	return &DiagonalIterator[T]{t: t, d: d}, nil
}

// Len returns the total number of entries on the diagonal.
func (it *DiagonalIterator[T]) Len() int {
	return it.t.order - it.d + 1
}

// Next returns the next entry of the diagonal, or false once the diagonal
// is exhausted.
func (it *DiagonalIterator[T]) Next() (v T, ok bool) {
	if it.i > it.t.order-it.d {
		return
	}
	v, ok = it.t.rows[it.d+it.i][it.i], true
	it.i++
	return
}

// Reset rewinds the iterator to the start of the diagonal.
func (it *DiagonalIterator[T]) Reset() {
	it.i = 0
}
