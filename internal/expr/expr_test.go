// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/pdiddy/rootfinder/internal/dual"
	"github.com/pdiddy/rootfinder/internal/rootsearch"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "   ", ErrSyntax},
		{"dangling operator", "x +", ErrSyntax},
		{"unknown identifier", "y + 1", ErrUnsupported},
		{"unknown function", "floor(x)", ErrUnsupported},
		{"xor is not power", "x ^ 2", ErrUnsupported},
		{"string literal", `"x"`, ErrUnsupported},
		{"wrong arity", "sin(x, 1)", ErrSyntax},
		{"pow arity", "pow(x)", ErrSyntax},
		{"selector", "math.Sin(x)", ErrUnsupported},
		{"comparison", "x < 1", ErrUnsupported},
		{"not operator", "!x", ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("y") })
	assert.NotPanics(t, func() { MustParse("x") })
}

func TestString(t *testing.T) {
	assert.Equal(t, "sin(x) - x/2", MustParse("  sin(x) - x/2 ").String())
}

func TestFuncValues(t *testing.T) {
	tests := []struct {
		src   string
		plain func(float64) float64
	}{
		{"x*x - 2", func(x float64) float64 { return x*x - 2 }},
		{"-x + 3/4", func(x float64) float64 { return -x + 0.75 }},
		{"+x", func(x float64) float64 { return x }},
		{"sin(x) - x/2", func(x float64) float64 { return math.Sin(x) - x/2 }},
		{"exp(-x) * cos(2*pi*x)", func(x float64) float64 { return math.Exp(-x) * math.Cos(2*math.Pi*x) }},
		{"log(x) + sqrt(x) + e", func(x float64) float64 { return math.Log(x) + math.Sqrt(x) + math.E }},
		{"tan(x) + sinh(x) - cosh(x) * tanh(x)", func(x float64) float64 {
			return math.Tan(x) + math.Sinh(x) - math.Cosh(x)*math.Tanh(x)
		}},
		{"pow(x, 3) - pow(x, -(1/2))", func(x float64) float64 { return math.Pow(x, 3) - math.Pow(x, -0.5) }},
		{"pow(x, x)", func(x float64) float64 { return math.Pow(x, x) }},
		{"pow(2, x)", func(x float64) float64 { return math.Pow(2, x) }},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := Parse(tt.src)
			require.NoError(t, err)
			f := Func[dual.Hyper](e)
			g := Func[dual.Jet[float64]](e)
			for _, x := range []float64{0.4, 0.8, 1.1} {
				want := tt.plain(x)
				assert.InDelta(t, want, f(dual.Hyper{}.From(x)).Value(), 1e-9, "x=%v", x)

				d1 := fd.Derivative(tt.plain, x, &fd.Settings{Formula: fd.Central})
				assert.InDelta(t, d1, f(dual.Hyper{}.From(x).Derive()).FirstDerivative(), 1e-5, "f′ x=%v", x)
				assert.InDelta(t, d1, g(dual.Jet[float64]{}.From(x).Derive()).FirstDerivative(), 1e-5, "jet f′ x=%v", x)
			}
		})
	}
}

func TestFuncSecondDerivative(t *testing.T) {
	// f(x) = x^4, f″(x) = 12x^2.
	f := Func[dual.Hyper](MustParse("pow(x, 4)"))
	v := f(dual.Hyper{}.From(2).Derive())
	assert.InDelta(t, 16, v.Value(), 1e-12)
	assert.InDelta(t, 32, v.FirstDerivative(), 1e-12)
	assert.InDelta(t, 48, v.SecondDerivative(), 1e-12)
}

func TestFuncDrivesRootSearch(t *testing.T) {
	f := Func[dual.Hyper](MustParse("x*x - 2"))
	res, err := rootsearch.Search[dual.Hyper, float64](f, -3, 3, 600, 100, 1e-8)
	require.NoError(t, err)
	require.Len(t, res.Roots, 2)
	assert.InDelta(t, -math.Sqrt2, res.Roots[0], 1e-8)
	assert.InDelta(t, math.Sqrt2, res.Roots[1], 1e-8)
}

func TestFuncConcurrentUse(t *testing.T) {
	f := Func[dual.Hyper](MustParse("cos(x) - x"))
	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- f(dual.Hyper{}.From(0.5)).Value()
		}()
	}
	want := math.Cos(0.5) - 0.5
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
