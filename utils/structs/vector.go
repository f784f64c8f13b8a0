package structs

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Vector is a struct wrapping a slice of numeric components of type T.
// It is used as a fixed-length container: the length is chosen at allocation
// time and holders are expected to never grow or shrink it.
type Vector[T constraints.Integer | constraints.Float] []T

// NewVector allocates a zero-initialized Vector of the given length.
func NewVector[T constraints.Integer | constraints.Float](length int) Vector[T] {
	return make(Vector[T], length)
}

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// Assign overwrites the receiver with the provided values.
// The number of values must match the length of the receiver exactly,
// else the method panics, as this indicates a malformed caller.
func (v Vector[T]) Assign(values ...T) {
	if len(values) != len(v) {
		panic(fmt.Errorf("cannot Assign: receiver has %d components but %d values were given", len(v), len(values)))
	}
	copy(v, values)
}

// Equal returns true if the two vectors have the same length and identical components.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

// String returns a human readable representation of the vector.
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range v {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", v[i])
	}
	sb.WriteString("]")
	return sb.String()
}
