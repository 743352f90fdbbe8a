// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan samples a function across an interval and reports the
// sub-intervals where its sign flips.
//
// The scan is a finite-resolution heuristic. It misses roots narrower than
// one step, tangential roots that touch zero without crossing, and pairs of
// roots inside the same step.
package scan

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/pdiddy/rootfinder/internal/dual"
)

// Bracket is a sub-interval (Lower, Upper) across which the sampled
// function value changes sign.
type Bracket[T constraints.Float] struct {
	Lower T
	Upper T
}

// Contains reports whether x lies strictly inside the open interval.
func (b Bracket[T]) Contains(x T) bool {
	return b.Lower < x && x < b.Upper
}

// Width returns Upper − Lower.
func (b Bracket[T]) Width() T {
	return b.Upper - b.Lower
}

func (b Bracket[T]) String() string {
	return fmt.Sprintf("(%v, %v)", b.Lower, b.Upper)
}

// Step returns the sampling step for the interval: the plain width of one
// sub-interval plus the machine epsilon of T. The offset keeps a root that
// lands exactly on a sample point from being seen as zero at both ends.
func Step[T constraints.Float](lower, upper T, resolution int) T {
	return (upper-lower)/T(resolution) + dual.Epsilon[T]()
}

// Brackets splits [lower, upper] into resolution steps and returns, in
// ascending order, every step whose endpoint values are strictly of
// opposite sign. Only the value coefficient of f is consulted.
func Brackets[N dual.Number[N, T], T constraints.Float](f func(N) N, lower, upper T, resolution int) []Bracket[T] {
	var lift N
	step := Step(lower, upper, resolution)

	var out []Bracket[T]
	for i := 0; i < resolution; i++ {
		a := lower + step*T(i)
		b := lower + step*T(i+1)
		fa := f(lift.From(a)).Value()
		fb := f(lift.From(b)).Value()
		if signFlip(fa, fb) {
			out = append(out, Bracket[T]{Lower: a, Upper: b})
		}
	}
	return out
}

func signFlip[T constraints.Float](fa, fb T) bool {
	return (fa > 0 && fb < 0) || (fa < 0 && fb > 0)
}
