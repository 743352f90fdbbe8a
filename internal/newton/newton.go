// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package newton refines a single root estimate with Newton-Raphson steps,
// taking exact derivatives from a derivative-tracking number.
package newton

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/pdiddy/rootfinder/internal/dual"
)

// Outcome is the result of one refinement run. When Converged is false, Root
// is zero and must not be used; Last holds the final iterate for diagnostics.
type Outcome[T constraints.Float] struct {
	Root       T
	Converged  bool
	Guess      T
	Last       T
	Iterations int
}

// Ok returns the root and whether refinement converged.
func (o Outcome[T]) Ok() (T, bool) {
	return o.Root, o.Converged
}

// Diverged reports whether the last iterate is NaN or infinite, which
// happens when the derivative vanishes along the way.
func (o Outcome[T]) Diverged() bool {
	l := float64(o.Last)
	return math.IsNaN(l) || math.IsInf(l, 0)
}

// String renders the outcome as human-readable diagnostic text.
func (o Outcome[T]) String() string {
	if o.Converged {
		return fmt.Sprintf("Found root at: %v (%d iterations)", o.Root, o.Iterations)
	}
	return fmt.Sprintf("Failed to find root with initial guess of %v after %d iterations; last iteration was %v",
		o.Guess, o.Iterations, o.Last)
}

// Refine runs at most patience Newton iterations from guess. Each iteration
// evaluates f once on a derivative-seeded point and steps to
// x − f(x)/f′(x). It converges when successive estimates differ by less than
// tolerance.
//
// A zero derivative is not guarded against: the resulting non-finite
// estimates never satisfy the tolerance test, so the run ends as a failure
// once patience is spent.
func Refine[N dual.Number[N, T], T constraints.Float](f func(N) N, guess T, patience int, tolerance T) Outcome[T] {
	var lift N
	out := Outcome[T]{Guess: guess, Last: guess}
	current := guess

	for out.Iterations < patience {
		out.Iterations++
		x := lift.From(current).Derive()
		z := f(x)
		next := x.Value() - z.Value()/z.FirstDerivative()

		if abs(next-current) < tolerance {
			out.Root = next
			out.Last = next
			out.Converged = true
			return out
		}
		current = next
		out.Last = current
	}
	return out
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
