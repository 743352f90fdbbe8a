// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rootsearch finds the real roots of a function over an interval by
// scanning for sign-change brackets and refining seeds inside each bracket
// with Newton's method.
package rootsearch

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/pdiddy/rootfinder/internal/dual"
	"github.com/pdiddy/rootfinder/internal/newton"
	"github.com/pdiddy/rootfinder/internal/scan"
)

// SeedsPerBracket is the number of evenly spaced Newton seeds tried in each
// bracket.
const SeedsPerBracket = 100

var (
	// ErrInvalidBounds is wrapped by every bounds error below.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrInvertedBounds means lower > upper.
	ErrInvertedBounds = fmt.Errorf("%w: lower bound is greater than upper bound", ErrInvalidBounds)
	// ErrDegenerateBounds means lower == upper.
	ErrDegenerateBounds = fmt.Errorf("%w: bounds cannot be the same", ErrInvalidBounds)
	// ErrNonFiniteBounds means a bound is NaN or infinite.
	ErrNonFiniteBounds = fmt.Errorf("%w: bounds must be finite", ErrInvalidBounds)
	// ErrInvalidConfig means a non-positive resolution, patience or tolerance.
	ErrInvalidConfig = errors.New("invalid search configuration")
)

// BracketReport records what refinement did inside one bracket.
type BracketReport[T constraints.Float] struct {
	Bracket scan.Bracket[T]
	Root    T
	Found   bool
	// SeedsTried counts seeds run, including the one that was accepted or
	// that failed.
	SeedsTried int
	// Failure is the refinement that stopped the bracket, or nil.
	Failure *newton.Outcome[T]
}

// Result holds the accepted roots in bracket order, every scanned bracket,
// and one report per bracket.
type Result[T constraints.Float] struct {
	Roots    []T
	Brackets []scan.Bracket[T]
	Reports  []BracketReport[T]
}

// Search validates the configuration, scans [lower, upper] at the given
// resolution and refines each bracket. At most one root is accepted per
// bracket: the first refined root lying strictly inside it.
//
// Within a bracket, seeds run in ascending order and the first seed that
// fails to converge ends the bracket; later seeds are not tried.
func Search[N dual.Number[N, T], T constraints.Float](f func(N) N, lower, upper T, resolution, patience int, tolerance T) (Result[T], error) {
	if err := validate(lower, upper, resolution, patience, tolerance); err != nil {
		return Result[T]{}, err
	}

	brackets := scan.Brackets(f, lower, upper, resolution)
	res := Result[T]{
		Brackets: brackets,
		Reports:  make([]BracketReport[T], 0, len(brackets)),
	}
	for _, b := range brackets {
		rep := refineBracket(f, b, patience, tolerance)
		if rep.Found {
			res.Roots = append(res.Roots, rep.Root)
		}
		res.Reports = append(res.Reports, rep)
	}
	return res, nil
}

func refineBracket[N dual.Number[N, T], T constraints.Float](f func(N) N, b scan.Bracket[T], patience int, tolerance T) BracketReport[T] {
	rep := BracketReport[T]{Bracket: b}
	step := b.Width() / T(SeedsPerBracket)

	for i := 0; i < SeedsPerBracket; i++ {
		guess := b.Lower + T(i)*step
		out := newton.Refine(f, guess, patience, tolerance)
		rep.SeedsTried++

		root, ok := out.Ok()
		if !ok {
			rep.Failure = &out
			return rep
		}
		if b.Contains(root) {
			rep.Root = root
			rep.Found = true
			return rep
		}
	}
	return rep
}

// ValidateBounds reports whether [lower, upper] is a usable search interval.
// NaN compares false against everything, so finiteness is checked first.
func ValidateBounds[T constraints.Float](lower, upper T) error {
	for _, v := range []T{lower, upper} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w, got [%v, %v]", ErrNonFiniteBounds, lower, upper)
		}
	}
	if lower > upper {
		return ErrInvertedBounds
	}
	if lower == upper {
		return ErrDegenerateBounds
	}
	return nil
}

func validate[T constraints.Float](lower, upper T, resolution, patience int, tolerance T) error {
	if err := ValidateBounds(lower, upper); err != nil {
		return err
	}
	if resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %d", ErrInvalidConfig, resolution)
	}
	if patience <= 0 {
		return fmt.Errorf("%w: patience must be positive, got %d", ErrInvalidConfig, patience)
	}
	if !(tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidConfig, tolerance)
	}
	return nil
}
