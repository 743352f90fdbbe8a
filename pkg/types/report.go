// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and report records shared by the
// rootfinder packages and CLI. Reports are float64 regardless of the
// precision the search ran at.
package types

// BracketReport describes one scanned bracket and what refinement found in it.
type BracketReport struct {
	// Lower and Upper are the bracket endpoints.
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`

	// Found reports whether a root inside the bracket was accepted.
	Found bool `json:"found" yaml:"found"`

	// Root is the accepted root; meaningful only when Found is true.
	Root float64 `json:"root,omitempty" yaml:"root,omitempty"`

	// SeedsTried counts the Newton seeds run for this bracket.
	SeedsTried int `json:"seeds_tried" yaml:"seeds_tried"`

	// Failure describes the refinement that stopped the bracket, if any.
	Failure *RefineReport `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// RefineReport describes a single Newton refinement. Last is the final
// iterate and is nil when that iterate was NaN or infinite.
type RefineReport struct {
	Guess      float64  `json:"guess" yaml:"guess"`
	Converged  bool     `json:"converged" yaml:"converged"`
	Root       float64  `json:"root,omitempty" yaml:"root,omitempty"`
	Last       *float64 `json:"last,omitempty" yaml:"last,omitempty"`
	Iterations int      `json:"iterations" yaml:"iterations"`
	Diverged   bool     `json:"diverged,omitempty" yaml:"diverged,omitempty"`
}

// SearchReport is the machine-readable output of a root search.
type SearchReport struct {
	Function  string          `json:"function" yaml:"function"`
	Precision Precision       `json:"precision" yaml:"precision"`
	Roots     []float64       `json:"roots" yaml:"roots"`
	Brackets  []BracketReport `json:"brackets" yaml:"brackets"`
}
