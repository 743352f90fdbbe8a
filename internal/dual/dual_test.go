// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	gdual "gonum.org/v1/gonum/num/dual"
)

// fike is e^x/sqrt(sin(x)^3 + cos(x)^3), the standard AD test function.
func fike[N Arith[N]](x N) N {
	return x.Exp().Div(x.Sin().PowReal(3).Add(x.Cos().PowReal(3)).Sqrt())
}

func fikeFloat(x float64) float64 {
	return math.Exp(x) / math.Sqrt(math.Pow(math.Sin(x), 3)+math.Pow(math.Cos(x), 3))
}

// mixed touches every Arith method at least once.
func mixed[N Arith[N]](x N) N {
	a := x.Mul(x).Sub(x.Const(2)).Scale(0.5)
	b := x.Tan().Add(x.Sinh()).Sub(x.Cosh().Neg())
	c := x.Tanh().Mul(x.Log()).Add(x.Exp().Div(x.Const(3)))
	return a.Add(b).Add(c).Add(x.Sqrt())
}

func mixedFloat(x float64) float64 {
	a := (x*x - 2) * 0.5
	b := math.Tan(x) + math.Sinh(x) + math.Cosh(x)
	c := math.Tanh(x)*math.Log(x) + math.Exp(x)/3
	return a + b + c + math.Sqrt(x)
}

func TestHyperFikeKnownValues(t *testing.T) {
	v := fike(Hyper{}.From(1.5).Derive())
	assert.InDelta(t, fikeFloat(1.5), v.Value(), 1e-12)
	assert.InDelta(t, 4.4978, v.Value(), 1e-4)
	assert.InDelta(t, 4.0534, v.FirstDerivative(), 1e-4)
	assert.InDelta(t, 9.4631, v.SecondDerivative(), 1e-4)
}

func TestJetFikeKnownValues(t *testing.T) {
	v := fike(Jet[float64]{}.From(1.5).Derive())
	assert.InDelta(t, 4.4978, v.Value(), 1e-4)
	assert.InDelta(t, 4.0534, v.FirstDerivative(), 1e-4)
	assert.InDelta(t, 9.4631, v.SecondDerivative(), 1e-4)
}

func TestValueMatchesPlainEvaluation(t *testing.T) {
	for _, x := range []float64{0.3, 0.9, 1.2} {
		want := mixedFloat(x)
		assert.InDelta(t, want, mixed(Hyper{}.From(x)).Value(), 1e-12, "hyper x=%v", x)
		assert.InDelta(t, want, mixed(Hyper{}.From(x).Derive()).Value(), 1e-12, "hyper derived x=%v", x)
		assert.InDelta(t, want, mixed(Jet[float64]{}.From(x).Derive()).Value(), 1e-12, "jet x=%v", x)
	}
}

func TestFirstDerivativeMatchesGonumDual(t *testing.T) {
	gonumFike := func(x gdual.Number) gdual.Number {
		return gdual.Mul(
			gdual.Exp(x),
			gdual.Inv(gdual.Sqrt(
				gdual.Add(
					gdual.PowReal(gdual.Sin(x), 3),
					gdual.PowReal(gdual.Cos(x), 3)))))
	}
	for _, x := range []float64{-0.5, 0.2, 0.7, 1.5} {
		want := gonumFike(gdual.Number{Real: x, Emag: 1}).Emag
		assert.InDelta(t, want, fike(Hyper{}.From(x).Derive()).FirstDerivative(), 1e-10, "hyper x=%v", x)
		assert.InDelta(t, want, fike(Jet[float64]{}.From(x).Derive()).FirstDerivative(), 1e-10, "jet x=%v", x)
	}
}

func TestDerivativesMatchFiniteDifferences(t *testing.T) {
	for _, x := range []float64{0.3, 0.9, 1.2} {
		d1 := fd.Derivative(mixedFloat, x, &fd.Settings{Formula: fd.Central})
		d2 := fd.Derivative(mixedFloat, x, &fd.Settings{Formula: fd.Central2nd})

		h := mixed(Hyper{}.From(x).Derive())
		j := mixed(Jet[float64]{}.From(x).Derive())

		assert.InDelta(t, d1, h.FirstDerivative(), 1e-5, "hyper f′ x=%v", x)
		assert.InDelta(t, d1, j.FirstDerivative(), 1e-5, "jet f′ x=%v", x)
		assert.InDelta(t, d2, h.SecondDerivative(), 1e-3, "hyper f″ x=%v", x)
		assert.InDelta(t, d2, j.SecondDerivative(), 1e-3, "jet f″ x=%v", x)
	}
}

func TestHyperAndJetAgree(t *testing.T) {
	for _, x := range []float64{0.25, 0.5, 1.0, 1.3} {
		h := mixed(Hyper{}.From(x).Derive())
		j := mixed(Jet[float64]{}.From(x).Derive())
		assert.InDelta(t, h.FirstDerivative(), j.FirstDerivative(), 1e-9, "x=%v", x)
		assert.InDelta(t, h.SecondDerivative(), j.SecondDerivative(), 1e-9, "x=%v", x)
	}
}

func TestFromCarriesNoDerivative(t *testing.T) {
	h := Hyper{}.From(2).Sin()
	assert.Equal(t, 0.0, h.FirstDerivative())
	assert.Equal(t, 0.0, h.SecondDerivative())

	j := Jet[float32]{}.From(2).Sin()
	assert.Equal(t, float32(0), j.FirstDerivative())
	assert.Equal(t, float32(0), j.SecondDerivative())
}

func TestConstHasZeroDerivatives(t *testing.T) {
	x := Hyper{}.From(3).Derive()
	c := x.Const(7)
	assert.Equal(t, 7.0, c.Value())
	assert.Equal(t, 0.0, c.FirstDerivative())
	assert.Equal(t, 0.0, c.SecondDerivative())
}

func TestPolynomialDerivativesExact(t *testing.T) {
	// f(x) = x^3 - 2x, f′ = 3x^2 - 2, f″ = 6x.
	poly := func(x Jet[float32]) Jet[float32] {
		return x.Mul(x).Mul(x).Sub(x.Scale(2))
	}
	v := poly(Jet[float32]{}.From(1.5).Derive())
	assert.Equal(t, float32(0.375), v.Value())
	assert.Equal(t, float32(4.75), v.FirstDerivative())
	assert.Equal(t, float32(9), v.SecondDerivative())
}

func TestPowRealSpecialExponents(t *testing.T) {
	x := Jet[float64]{}.From(0).Derive()

	zero := x.PowReal(0)
	assert.Equal(t, Jet[float64]{V: 1}, zero)

	one := x.PowReal(1)
	assert.Equal(t, x, one)
}

func TestToDropsDerivatives(t *testing.T) {
	h := Hyper{}.From(0.5).Derive().Exp()
	assert.Equal(t, math.Exp(0.5), h.To())

	j := Jet[float32]{}.From(0.5).Derive().Exp()
	assert.Equal(t, j.Value(), j.To())
}

func TestEpsilon(t *testing.T) {
	assert.Equal(t, float32(1.1920929e-07), Epsilon[float32]())
	assert.Equal(t, 2.220446049250313e-16, Epsilon[float64]())
}

func TestString(t *testing.T) {
	s := Hyper{}.From(1).Derive().String()
	require.NotEmpty(t, s)
	assert.Contains(t, s, "1")

	assert.Equal(t, "(2; 1, 0)", Jet[float64]{}.From(2).Derive().String())
}
