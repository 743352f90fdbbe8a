// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Print the value and exact first and second derivatives at a point",
	Long: `Eval evaluates the function once on a derivative-seeded dual number and
prints f(x), f'(x) and f''(x) at the point given by --at.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Float64("at", 0, "point at which to evaluate")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, e, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	at, _ := cmd.Flags().GetFloat64("at")

	c := evaluate(cfg, e, at)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "f(%g)   = %.15g\n", at, c.Value)
	fmt.Fprintf(w, "f'(%g)  = %.15g\n", at, c.First)
	fmt.Fprintf(w, "f''(%g) = %.15g\n", at, c.Second)
	return nil
}
