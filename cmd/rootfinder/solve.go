// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"golang.org/x/exp/constraints"

	"github.com/pdiddy/rootfinder/internal/dual"
	"github.com/pdiddy/rootfinder/internal/expr"
	"github.com/pdiddy/rootfinder/internal/newton"
	"github.com/pdiddy/rootfinder/internal/rootsearch"
	"github.com/pdiddy/rootfinder/internal/scan"
	"github.com/pdiddy/rootfinder/pkg/types"
)

// The helpers below pick the tracked-value type from cfg.Precision and run
// one core operation, returning float64 records for printing.

type coefficients struct {
	Value, First, Second float64
}

func evaluate(cfg types.SearchConfig, e *expr.Expr, at float64) coefficients {
	if cfg.Precision == types.PrecisionFloat32 {
		return evaluateAs[dual.Jet[float32], float32](e, at)
	}
	return evaluateAs[dual.Hyper, float64](e, at)
}

func evaluateAs[N dual.Number[N, T], T constraints.Float](e *expr.Expr, at float64) coefficients {
	var lift N
	v := expr.Func[N](e)(lift.From(T(at)).Derive())
	return coefficients{
		Value:  float64(v.Value()),
		First:  float64(v.FirstDerivative()),
		Second: float64(v.SecondDerivative()),
	}
}

// refine returns the outcome report together with its diagnostic text.
func refine(cfg types.SearchConfig, e *expr.Expr) (*types.RefineReport, string) {
	if cfg.Precision == types.PrecisionFloat32 {
		return refineAs[dual.Jet[float32], float32](cfg, e)
	}
	return refineAs[dual.Hyper, float64](cfg, e)
}

func refineAs[N dual.Number[N, T], T constraints.Float](cfg types.SearchConfig, e *expr.Expr) (*types.RefineReport, string) {
	out := newton.Refine(expr.Func[N](e), T(cfg.Guess), cfg.Patience, T(cfg.Tolerance))
	return rootsearch.RefineReport(&out), out.String()
}

func brackets(cfg types.SearchConfig, e *expr.Expr) []types.BracketReport {
	if cfg.Precision == types.PrecisionFloat32 {
		return bracketsAs[dual.Jet[float32], float32](cfg, e)
	}
	return bracketsAs[dual.Hyper, float64](cfg, e)
}

func bracketsAs[N dual.Number[N, T], T constraints.Float](cfg types.SearchConfig, e *expr.Expr) []types.BracketReport {
	found := scan.Brackets(expr.Func[N](e), T(cfg.Lower), T(cfg.Upper), cfg.Resolution)
	out := make([]types.BracketReport, 0, len(found))
	for _, b := range found {
		out = append(out, types.BracketReport{Lower: float64(b.Lower), Upper: float64(b.Upper)})
	}
	return out
}

func search(cfg types.SearchConfig, e *expr.Expr) (types.SearchReport, error) {
	if cfg.Precision == types.PrecisionFloat32 {
		return searchAs[dual.Jet[float32], float32](cfg, e)
	}
	return searchAs[dual.Hyper, float64](cfg, e)
}

func searchAs[N dual.Number[N, T], T constraints.Float](cfg types.SearchConfig, e *expr.Expr) (types.SearchReport, error) {
	res, err := rootsearch.Search(expr.Func[N](e), T(cfg.Lower), T(cfg.Upper), cfg.Resolution, cfg.Patience, T(cfg.Tolerance))
	if err != nil {
		return types.SearchReport{}, err
	}
	return rootsearch.ToReport(res, e.String(), cfg.Precision), nil
}
