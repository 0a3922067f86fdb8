package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/ptef/config"
)

// globalFlags holds flags shared by every subcommand.
type globalFlags struct {
	configFile string
	jsonOut    bool
	verbose    bool
}

var flags globalFlags

// loadConfig returns the parameter file named by --config, or defaults.
func loadConfig() (config.File, error) {
	if flags.configFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return config.File{}, fmt.Errorf("loading %s: %w", flags.configFile, err)
	}
	slog.Debug("loaded config", "path", flags.configFile)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ptef",
		Short: "Pronunciation-time estimation for Brazilian Portuguese numbers",
		Long: `ptef estimates how long it takes to read the numbers 1..N aloud in
Brazilian Portuguese. Token frequencies for the whole range are computed in
closed form, then combined with a lognormal syllable duration model and
prosodic pause heuristics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "parameter file (.yaml, .yml, or .toml)")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose diagnostics")

	rootCmd.AddCommand(newEstimateCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
