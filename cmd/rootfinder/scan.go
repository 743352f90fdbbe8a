// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rootfinder/internal/rootsearch"
	"github.com/pdiddy/rootfinder/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the sub-intervals where the function changes sign",
	Long: `Scan samples the function at --resolution equal steps across
[--lower, --upper] and lists every step whose endpoints have strictly
opposite signs. Tangential roots and pairs of roots inside one step are
not detected.`,
	RunE: runScan,
}

func init() {
	def := types.DefaultSearchConfig()
	scanCmd.Flags().Float64("lower", def.Lower, "lower bound of the interval")
	scanCmd.Flags().Float64("upper", def.Upper, "upper bound of the interval")
	scanCmd.Flags().Int("resolution", def.Resolution, "number of equal sub-intervals to sample")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, e, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := rootsearch.ValidateBounds(cfg.Lower, cfg.Upper); err != nil {
		return err
	}

	found := brackets(cfg, e)
	w := cmd.OutOrStdout()
	if len(found) == 0 {
		fmt.Fprintln(w, "No sign changes found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-24s  %s\n", "#", "Lower", "Upper")
	fmt.Fprintln(w, strings.Repeat("-", 56))
	for i, b := range found {
		fmt.Fprintf(w, "%-4d  %-24.12g  %.12g\n", i+1, b.Lower, b.Upper)
	}
	fmt.Fprintf(w, "\n%d brackets\n", len(found))
	return nil
}
