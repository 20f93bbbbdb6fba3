// Package bounded provides a scalar with asymmetric uncertainty bounds and
// the error-propagation arithmetic used by the GRB catalog tooling.
package bounded

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroValue indicates an operand whose central value is zero, for which
// relative uncertainties are undefined.
var ErrZeroValue = errors.New("bounded: zero central value")

// Value is a measurement with asymmetric lower/upper uncertainty bounds.
// Bounds are stored as magnitudes, e.g. 3.2 (+0.4 / -0.1) has Lower = 0.1
// and Upper = 0.4.
type Value struct {
	Val   float64
	Lower float64
	Upper float64
}

// New returns a Value with the given central value and bound magnitudes.
func New(val, lower, upper float64) Value {
	return Value{Val: val, Lower: math.Abs(lower), Upper: math.Abs(upper)}
}

// Mul multiplies two bounded values, propagating the bounds in quadrature.
// Any correlation between the operands is ignored.
func (v Value) Mul(other Value) (Value, error) {
	return v.combine(other, v.Val*other.Val)
}

// Div divides v by other, propagating the bounds in quadrature. Any
// correlation between the operands is ignored.
func (v Value) Div(other Value) (Value, error) {
	if other.Val == 0 {
		return Value{}, fmt.Errorf("%w: division by zero-valued operand", ErrZeroValue)
	}
	return v.combine(other, v.Val/other.Val)
}

// combine propagates relative uncertainties onto the already-computed
// central result.
func (v Value) combine(other Value, val float64) (Value, error) {
	if v.Val == 0 || other.Val == 0 {
		return Value{}, fmt.Errorf("%w: relative bounds are undefined", ErrZeroValue)
	}

	rel := func(a, av, b, bv float64) float64 {
		return math.Sqrt((a/av)*(a/av) + (b/bv)*(b/bv))
	}

	return Value{
		Val:   val,
		Lower: math.Abs(val) * rel(v.Lower, v.Val, other.Lower, other.Val),
		Upper: math.Abs(val) * rel(v.Upper, v.Val, other.Upper, other.Val),
	}, nil
}

func (v Value) String() string {
	return fmt.Sprintf("%g (+%g / -%g)", v.Val, v.Upper, v.Lower)
}
