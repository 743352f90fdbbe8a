// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Precision selects the tracked-value implementation used to evaluate the
// function.
type Precision string

const (
	// PrecisionFloat64 evaluates with gonum hyper-dual numbers.
	PrecisionFloat64 Precision = "float64"
	// PrecisionFloat32 evaluates with single-precision jets.
	PrecisionFloat32 Precision = "float32"
)

// ErrInvalidConfig is returned by SearchConfig.Validate.
var ErrInvalidConfig = errors.New("invalid search configuration")

// SearchConfig holds the settings for one root search. It is loaded from
// rootfinder.yaml, ROOTFINDER_* environment variables and command flags.
type SearchConfig struct {
	// Function is the expression to solve, in terms of x (e.g. "sin(x) - x/2").
	Function string `json:"function" yaml:"function" mapstructure:"function"`

	// Precision is float64 (default) or float32.
	Precision Precision `json:"precision" yaml:"precision" mapstructure:"precision"`

	// Lower and Upper bound the scanned interval; Lower must be below Upper.
	Lower float64 `json:"lower" yaml:"lower" mapstructure:"lower"`
	Upper float64 `json:"upper" yaml:"upper" mapstructure:"upper"`

	// Resolution is the number of equal sub-intervals the scan samples (default 2000).
	Resolution int `json:"resolution" yaml:"resolution" mapstructure:"resolution"`

	// Patience is the maximum number of Newton iterations per seed (default 1000).
	Patience int `json:"patience" yaml:"patience" mapstructure:"patience"`

	// Tolerance is the step size below which Newton declares convergence (default 1e-4).
	Tolerance float64 `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`

	// Guess is the starting point for a single Newton refinement.
	Guess float64 `json:"guess" yaml:"guess" mapstructure:"guess"`
}

// DefaultSearchConfig returns the configuration used when nothing is set.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Precision:  PrecisionFloat64,
		Lower:      -5,
		Upper:      5,
		Resolution: 2000,
		Patience:   1000,
		Tolerance:  1e-4,
		Guess:      1,
	}
}

// Validate checks the fields every command depends on. It does not check
// the bounds ordering; the search itself reports that.
func (c SearchConfig) Validate() error {
	if c.Function == "" {
		return fmt.Errorf("%w: function is empty", ErrInvalidConfig)
	}
	switch c.Precision {
	case PrecisionFloat64, PrecisionFloat32:
	default:
		return fmt.Errorf("%w: unsupported precision %q: use float64 or float32", ErrInvalidConfig, c.Precision)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %d", ErrInvalidConfig, c.Resolution)
	}
	if c.Patience <= 0 {
		return fmt.Errorf("%w: patience must be positive, got %d", ErrInvalidConfig, c.Patience)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidConfig, c.Tolerance)
	}
	return nil
}
