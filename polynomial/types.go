package polynomial

import "fmt"

// Linear is a degree-1 polynomial c0 + c1x.
type Linear struct {
	Polynomial
}

// NewLinear creates a new zero Linear.
func NewLinear() Linear {
	return Linear{New(1)}
}

// AsLinear wraps a degree-1 Polynomial. A different degree is a contract
// violation and panics.
func AsLinear(p Polynomial) Linear {
	if p.Degree() != 1 {
		panic(fmt.Errorf("cannot AsLinear: degree must be 1 but is %d", p.Degree()))
	}
	return Linear{p}
}

// Slope returns the coefficient of x.
func (l Linear) Slope() float64 {
	return l.coeffs[1]
}

// Intercept returns the constant coefficient.
func (l Linear) Intercept() float64 {
	return l.coeffs[0]
}

// Cubic is a degree-3 polynomial.
type Cubic struct {
	Polynomial
}

// NewCubic creates a new zero Cubic.
func NewCubic() Cubic {
	return Cubic{New(3)}
}

// AsCubic wraps a degree-3 Polynomial. A different degree is a contract
// violation and panics.
func AsCubic(p Polynomial) Cubic {
	if p.Degree() != 3 {
		panic(fmt.Errorf("cannot AsCubic: degree must be 3 but is %d", p.Degree()))
	}
	return Cubic{p}
}

// Quintic is a degree-5 polynomial.
type Quintic struct {
	Polynomial
}

// NewQuintic creates a new zero Quintic.
func NewQuintic() Quintic {
	return Quintic{New(5)}
}

// AsQuintic wraps a degree-5 Polynomial. A different degree is a contract
// violation and panics.
func AsQuintic(p Polynomial) Quintic {
	if p.Degree() != 5 {
		panic(fmt.Errorf("cannot AsQuintic: degree must be 5 but is %d", p.Degree()))
	}
	return Quintic{p}
}
