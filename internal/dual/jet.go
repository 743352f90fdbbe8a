// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dual

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Jet is a second-order truncated Taylor expansion (f, f′, f″) generic over
// the scalar type. It is the tracked value for float32 hosts; gonum's dual
// types are float64-only.
type Jet[T constraints.Float] struct {
	V, D1, D2 T
}

var (
	_ Number[Jet[float32], float32] = Jet[float32]{}
	_ Number[Jet[float64], float64] = Jet[float64]{}
)

func (Jet[T]) From(x T) Jet[T] { return Jet[T]{V: x} }
func (j Jet[T]) To() T          { return j.V }

func (j Jet[T]) Derive() Jet[T] { return Jet[T]{V: j.V, D1: 1} }

func (j Jet[T]) Value() T            { return j.V }
func (j Jet[T]) FirstDerivative() T  { return j.D1 }
func (j Jet[T]) SecondDerivative() T { return j.D2 }

func (j Jet[T]) Add(o Jet[T]) Jet[T] { return Jet[T]{j.V + o.V, j.D1 + o.D1, j.D2 + o.D2} }
func (j Jet[T]) Sub(o Jet[T]) Jet[T] { return Jet[T]{j.V - o.V, j.D1 - o.D1, j.D2 - o.D2} }

func (j Jet[T]) Mul(o Jet[T]) Jet[T] {
	return Jet[T]{
		V:  j.V * o.V,
		D1: j.D1*o.V + j.V*o.D1,
		D2: j.D2*o.V + 2*j.D1*o.D1 + j.V*o.D2,
	}
}

func (j Jet[T]) Div(o Jet[T]) Jet[T] { return j.Mul(o.inv()) }
func (j Jet[T]) Neg() Jet[T]         { return Jet[T]{-j.V, -j.D1, -j.D2} }

func (j Jet[T]) inv() Jet[T] {
	u := float64(j.V)
	return j.chain(1/u, -1/(u*u), 2/(u*u*u))
}

func (j Jet[T]) Scale(c float64) Jet[T] {
	k := T(c)
	return Jet[T]{k * j.V, k * j.D1, k * j.D2}
}

func (Jet[T]) Const(c float64) Jet[T] { return Jet[T]{V: T(c)} }

func (j Jet[T]) PowReal(p float64) Jet[T] {
	switch p {
	case 0:
		return Jet[T]{V: 1}
	case 1:
		return j
	}
	u := float64(j.V)
	return j.chain(math.Pow(u, p), p*math.Pow(u, p-1), p*(p-1)*math.Pow(u, p-2))
}

func (j Jet[T]) Sin() Jet[T] {
	s, c := math.Sincos(float64(j.V))
	return j.chain(s, c, -s)
}

func (j Jet[T]) Cos() Jet[T] {
	s, c := math.Sincos(float64(j.V))
	return j.chain(c, -s, -c)
}

func (j Jet[T]) Tan() Jet[T] {
	t := math.Tan(float64(j.V))
	sec2 := 1 + t*t
	return j.chain(t, sec2, 2*t*sec2)
}

func (j Jet[T]) Exp() Jet[T] {
	e := math.Exp(float64(j.V))
	return j.chain(e, e, e)
}

func (j Jet[T]) Log() Jet[T] {
	u := float64(j.V)
	return j.chain(math.Log(u), 1/u, -1/(u*u))
}

func (j Jet[T]) Sqrt() Jet[T] {
	s := math.Sqrt(float64(j.V))
	return j.chain(s, 1/(2*s), -1/(4*s*s*s))
}

func (j Jet[T]) Sinh() Jet[T] {
	u := float64(j.V)
	return j.chain(math.Sinh(u), math.Cosh(u), math.Sinh(u))
}

func (j Jet[T]) Cosh() Jet[T] {
	u := float64(j.V)
	return j.chain(math.Cosh(u), math.Sinh(u), math.Cosh(u))
}

func (j Jet[T]) Tanh() Jet[T] {
	t := math.Tanh(float64(j.V))
	d := 1 - t*t
	return j.chain(t, d, -2*t*d)
}

// chain applies g to j given g(u), g′(u) and g″(u) at u = j.V:
// (g∘j)′ = g′·j′ and (g∘j)″ = g″·j′² + g′·j″.
func (j Jet[T]) chain(g0, g1, g2 float64) Jet[T] {
	d1 := float64(j.D1)
	return Jet[T]{
		V:  T(g0),
		D1: T(g1 * d1),
		D2: T(g2*d1*d1 + g1*float64(j.D2)),
	}
}

// String formats the jet as (f; f′, f″).
func (j Jet[T]) String() string {
	return fmt.Sprintf("(%v; %v, %v)", j.V, j.D1, j.D2)
}
