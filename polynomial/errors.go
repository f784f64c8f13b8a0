package polynomial

import "errors"

// Sentinel error kinds shared by the algebraic operators. Callers match them
// with errors.Is; the returned errors wrap these kinds together with the
// triggering values.
var (
	// ErrDegenerateInput is returned when an operation receives inputs it is
	// mathematically undefined on: a zero span, parallel lines, an inverted
	// interval or an unsupported degree.
	ErrDegenerateInput = errors.New("polynomial: degenerate input")

	// ErrComplexRoots is returned when a solver finds no real roots. It is
	// distinct from other failures so that callers can differentiate "no
	// real solution" from "operation failed".
	ErrComplexRoots = errors.New("polynomial: no real roots")

	// ErrZeroDivisor is returned when dividing by the identically-zero
	// polynomial.
	ErrZeroDivisor = errors.New("polynomial: division by zero polynomial")
)
