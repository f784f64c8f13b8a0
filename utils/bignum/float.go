// Package bignum provides arbitrary precision arithmetic helpers for the
// numerically sensitive code paths of the library.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^y.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// Exp returns exp(x).
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Log returns ln(x).
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Cbrt returns the real cube root of x, with the sign of x.
// bigfloat.Pow is only defined for positive bases, so the sign is
// carried separately.
func Cbrt(x *big.Float) (cbrt *big.Float) {

	prec := x.Prec()

	if x.Sign() == 0 {
		return NewFloat(0, prec)
	}

	third := NewFloat(1, prec)
	third.Quo(third, NewFloat(3, prec))

	abs := new(big.Float).Abs(x)

	cbrt = bigfloat.Pow(abs, third)
	if x.Sign() < 0 {
		cbrt.Neg(cbrt)
	}

	return
}
