// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dual provides derivative-tracking numbers for forward-mode automatic
// differentiation.
//
// A function written once against Arith can be evaluated on plain points (via
// Coerceable.From) or on derivative-seeded points (via Derivable.Derive). The
// second evaluation yields the exact first and second derivatives at that
// point alongside the value.
//
//	func sine[N dual.Arith[N]](x N) N { return x.Sin() }
//
//	v := sine(dual.Hyper{}.From(2).Derive())
//	v.Value()            // sin(2)
//	v.FirstDerivative()  // cos(2)
//	v.SecondDerivative() // -sin(2)
package dual

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Arith is the arithmetic a user function may apply to a tracked value.
// Every method applies the corresponding differentiation rule, so composing
// them yields exact derivatives.
type Arith[N any] interface {
	Add(o N) N
	Sub(o N) N
	Mul(o N) N
	Div(o N) N
	Neg() N

	// Scale multiplies by a constant.
	Scale(c float64) N
	// Const lifts c into the same representation with zero derivatives.
	Const(c float64) N
	// PowReal raises to a constant real power.
	PowReal(p float64) N

	Sin() N
	Cos() N
	Tan() N
	Exp() N
	Log() N
	Sqrt() N
	Sinh() N
	Cosh() N
	Tanh() N
}

// Derivable extracts Taylor coefficients from a tracked value.
type Derivable[N any, T constraints.Float] interface {
	// Derive seeds the value as the independent variable so that subsequent
	// arithmetic propagates first and second derivatives.
	Derive() N
	Value() T
	FirstDerivative() T
	SecondDerivative() T
}

// Coerceable converts between plain scalars and tracked values.
type Coerceable[N any, T constraints.Float] interface {
	// From lifts x into tracking mode with zero derivatives. The receiver
	// is used only to select the implementation.
	From(x T) N
	// To drops derivative information.
	To() T
}

// Number is the full capability set required by the root finder.
type Number[N any, T constraints.Float] interface {
	Arith[N]
	Derivable[N, T]
	Coerceable[N, T]
}

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value.
func Epsilon[T constraints.Float]() T {
	probe := 1 + 1e-10
	if T(probe) == 1 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}
