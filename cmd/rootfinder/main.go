// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rootfinder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/rootfinder/internal/expr"
	"github.com/pdiddy/rootfinder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the rootfinder CLI.
var rootCmd = &cobra.Command{
	Use:   "rootfinder",
	Short: "Find real roots of scalar functions with automatic differentiation",
	Long: `rootfinder finds the real roots of a function of x over a bounded interval.
It scans the interval for sign changes and refines each one with Newton's
method, taking exact derivatives from dual numbers instead of finite
differences.

Functions are written in Go expression syntax, for example:

  rootfinder search -f "sin(x) - x/2" --lower -5 --upper 5

Settings may also come from rootfinder.yaml or ROOTFINDER_* variables.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	def := types.DefaultSearchConfig()
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rootfinder.yaml or ~/.config/rootfinder/rootfinder.yaml)")
	rootCmd.PersistentFlags().StringP("function", "f", "", "function of x to solve, e.g. \"x*x - 2\"")
	rootCmd.PersistentFlags().String("precision", string(def.Precision), "evaluation precision: float64 or float32")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rootfinder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rootfinder"))
		}
	}

	def := types.DefaultSearchConfig()
	viper.SetDefault("precision", string(def.Precision))
	viper.SetDefault("lower", def.Lower)
	viper.SetDefault("upper", def.Upper)
	viper.SetDefault("resolution", def.Resolution)
	viper.SetDefault("patience", def.Patience)
	viper.SetDefault("tolerance", def.Tolerance)
	viper.SetDefault("guess", def.Guess)

	viper.SetEnvPrefix("ROOTFINDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig binds the command's flags over the config file and
// environment, then decodes and validates the merged settings.
func loadConfig(cmd *cobra.Command) (types.SearchConfig, *expr.Expr, error) {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = viper.BindPFlag(f.Name, f)
	})
	if bindErr != nil {
		return types.SearchConfig{}, nil, fmt.Errorf("binding flags: %w", bindErr)
	}

	cfg := types.DefaultSearchConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	e, err := expr.Parse(cfg.Function)
	if err != nil {
		return cfg, nil, fmt.Errorf("parsing function %q: %w", cfg.Function, err)
	}
	return cfg, e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
