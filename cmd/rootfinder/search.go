// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rootfinder/internal/rootsearch"
	"github.com/pdiddy/rootfinder/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find all detectable roots in an interval",
	Long: `Search scans [--lower, --upper] for sign changes, then runs Newton's
method from evenly spaced seeds inside each bracket. The first refined root
lying strictly inside a bracket is accepted; a seed that fails to converge
ends the search in that bracket.`,
	RunE: runSearch,
}

func init() {
	def := types.DefaultSearchConfig()
	searchCmd.Flags().Float64("lower", def.Lower, "lower bound of the interval")
	searchCmd.Flags().Float64("upper", def.Upper, "upper bound of the interval")
	searchCmd.Flags().Int("resolution", def.Resolution, "number of equal sub-intervals to sample")
	searchCmd.Flags().Int("patience", def.Patience, "maximum Newton iterations per seed")
	searchCmd.Flags().Float64("tolerance", def.Tolerance, "convergence threshold on the step size")
	searchCmd.Flags().String("format", "table", "output format: table, json or yaml")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q: use table, json or yaml", format)
	}

	cfg, e, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rep, err := search(cfg, e)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return rootsearch.FormatJSON(rep, w)
	case "yaml":
		return rootsearch.FormatYAML(rep, w)
	default:
		rootsearch.FormatTable(rep, w)
		return nil
	}
}
