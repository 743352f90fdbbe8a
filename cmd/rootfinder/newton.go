// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/rootfinder/pkg/types"
)

var newtonCmd = &cobra.Command{
	Use:   "newton",
	Short: "Refine a single root from an initial guess",
	Long: `Newton runs Newton-Raphson iterations from --guess until successive
estimates differ by less than --tolerance, giving up after --patience
iterations. A failed refinement exits with a non-zero status.`,
	RunE: runNewton,
}

func init() {
	def := types.DefaultSearchConfig()
	newtonCmd.Flags().Float64("guess", def.Guess, "initial guess")
	newtonCmd.Flags().Int("patience", def.Patience, "maximum Newton iterations")
	newtonCmd.Flags().Float64("tolerance", def.Tolerance, "convergence threshold on the step size")
	newtonCmd.Flags().Bool("json", false, "output the outcome as JSON")

	rootCmd.AddCommand(newtonCmd)
}

func runNewton(cmd *cobra.Command, args []string) error {
	cfg, e, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rep, text := refine(cfg, e)
	w := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, text)
	}

	if !rep.Converged {
		fmt.Fprintln(cmd.ErrOrStderr(), "Try updating the initial guess or increasing the tolerance or patience")
		return fmt.Errorf("no root found from guess %g", cfg.Guess)
	}
	return nil
}
