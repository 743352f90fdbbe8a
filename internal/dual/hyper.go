// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dual

import (
	"fmt"

	"gonum.org/v1/gonum/num/hyperdual"
)

// Hyper is a float64 tracked value backed by a gonum hyper-dual number.
// With both infinitesimal parts seeded to one, E1mag carries f′ and E1E2mag
// carries f″.
type Hyper struct {
	n hyperdual.Number
}

var _ Number[Hyper, float64] = Hyper{}

// NewHyper wraps an existing hyper-dual number.
func NewHyper(n hyperdual.Number) Hyper { return Hyper{n: n} }

// Raw returns the underlying hyper-dual number.
func (h Hyper) Raw() hyperdual.Number { return h.n }

func (Hyper) From(x float64) Hyper { return Hyper{n: hyperdual.Number{Real: x}} }
func (h Hyper) To() float64        { return h.n.Real }

func (h Hyper) Derive() Hyper {
	return Hyper{n: hyperdual.Number{Real: h.n.Real, E1mag: 1, E2mag: 1}}
}

func (h Hyper) Value() float64            { return h.n.Real }
func (h Hyper) FirstDerivative() float64  { return h.n.E1mag }
func (h Hyper) SecondDerivative() float64 { return h.n.E1E2mag }

func (h Hyper) Add(o Hyper) Hyper { return Hyper{n: hyperdual.Add(h.n, o.n)} }
func (h Hyper) Sub(o Hyper) Hyper { return Hyper{n: hyperdual.Sub(h.n, o.n)} }
func (h Hyper) Mul(o Hyper) Hyper { return Hyper{n: hyperdual.Mul(h.n, o.n)} }
func (h Hyper) Div(o Hyper) Hyper { return Hyper{n: hyperdual.Mul(h.n, hyperdual.Inv(o.n))} }
func (h Hyper) Neg() Hyper        { return Hyper{n: hyperdual.Scale(-1, h.n)} }

func (h Hyper) Scale(c float64) Hyper   { return Hyper{n: hyperdual.Scale(c, h.n)} }
func (Hyper) Const(c float64) Hyper     { return Hyper{n: hyperdual.Number{Real: c}} }
func (h Hyper) PowReal(p float64) Hyper { return Hyper{n: hyperdual.PowReal(h.n, p)} }

func (h Hyper) Sin() Hyper  { return Hyper{n: hyperdual.Sin(h.n)} }
func (h Hyper) Cos() Hyper  { return Hyper{n: hyperdual.Cos(h.n)} }
func (h Hyper) Tan() Hyper  { return Hyper{n: hyperdual.Tan(h.n)} }
func (h Hyper) Exp() Hyper  { return Hyper{n: hyperdual.Exp(h.n)} }
func (h Hyper) Log() Hyper  { return Hyper{n: hyperdual.Log(h.n)} }
func (h Hyper) Sqrt() Hyper { return Hyper{n: hyperdual.Sqrt(h.n)} }
func (h Hyper) Sinh() Hyper { return Hyper{n: hyperdual.Sinh(h.n)} }
func (h Hyper) Cosh() Hyper { return Hyper{n: hyperdual.Cosh(h.n)} }
func (h Hyper) Tanh() Hyper { return Hyper{n: hyperdual.Tanh(h.n)} }

// String formats the value as (real+aϵ₁+bϵ₂+cϵ₁ϵ₂).
func (h Hyper) String() string { return fmt.Sprintf("%v", h.n) }
