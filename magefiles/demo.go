//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// demoFunctions are solved by Demo over [-5, 5].
var demoFunctions = []string{
	"sin(x)",
	"cos(x)",
	"x*x*x - 2*x + 1",
	"exp(-x) - x",
}

// Demo runs a root search on a few sample functions through the CLI.
func Demo() error {
	for _, f := range demoFunctions {
		fmt.Printf("[demo] %s\n", f)
		if err := sh.RunV("go", "run", cmdPkg, "search", "-f", f, "--lower", "-5", "--upper", "5"); err != nil {
			return fmt.Errorf("search %q: %w", f, err)
		}
	}
	return nil
}
