// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rootsearch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/exp/constraints"

	"github.com/pdiddy/rootfinder/internal/newton"
	"github.com/pdiddy/rootfinder/pkg/types"
)

// ToReport converts a result into the float64 report record used for
// JSON and YAML output.
func ToReport[T constraints.Float](res Result[T], function string, precision types.Precision) types.SearchReport {
	rep := types.SearchReport{
		Function:  function,
		Precision: precision,
		Roots:     make([]float64, 0, len(res.Roots)),
		Brackets:  make([]types.BracketReport, 0, len(res.Reports)),
	}
	for _, r := range res.Roots {
		rep.Roots = append(rep.Roots, float64(r))
	}
	for _, br := range res.Reports {
		rep.Brackets = append(rep.Brackets, types.BracketReport{
			Lower:      float64(br.Bracket.Lower),
			Upper:      float64(br.Bracket.Upper),
			Found:      br.Found,
			Root:       float64(br.Root),
			SeedsTried: br.SeedsTried,
			Failure:    RefineReport(br.Failure),
		})
	}
	return rep
}

// RefineReport converts a Newton outcome into its report record. A nil
// outcome yields nil.
func RefineReport[T constraints.Float](o *newton.Outcome[T]) *types.RefineReport {
	if o == nil {
		return nil
	}
	rep := &types.RefineReport{
		Guess:      float64(o.Guess),
		Converged:  o.Converged,
		Root:       float64(o.Root),
		Iterations: o.Iterations,
		Diverged:   o.Diverged(),
	}
	if !rep.Diverged {
		last := float64(o.Last)
		rep.Last = &last
	}
	return rep
}

// FormatTable writes the per-bracket reports as a human-readable table to w.
func FormatTable(rep types.SearchReport, w io.Writer) {
	if len(rep.Brackets) == 0 {
		fmt.Fprintln(w, "No sign changes found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-24s  %-24s  %-24s  %-5s  %s\n",
		"#", "Lower", "Upper", "Root", "Seeds", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, b := range rep.Brackets {
		root := "-"
		status := "no root inside bracket"
		switch {
		case b.Found:
			root = fmt.Sprintf("%.12g", b.Root)
			status = "ok"
		case b.Failure != nil && b.Failure.Diverged:
			status = fmt.Sprintf("diverged from %.6g", b.Failure.Guess)
		case b.Failure != nil:
			status = fmt.Sprintf("no convergence from %.6g after %d iterations", b.Failure.Guess, b.Failure.Iterations)
		}
		fmt.Fprintf(w, "%-4d  %-24.12g  %-24.12g  %-24s  %-5d  %s\n",
			i+1, b.Lower, b.Upper, root, b.SeedsTried, status)
	}

	fmt.Fprintf(w, "\n%d roots in %d brackets\n", len(rep.Roots), len(rep.Brackets))
}

// FormatJSON writes the report as indented JSON to w.
func FormatJSON(rep types.SearchReport, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// FormatYAML writes the report as YAML to w.
func FormatYAML(rep types.SearchReport, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
