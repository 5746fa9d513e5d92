package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/plugbench/plugbench/cmd/plugbench/commands"
	"github.com/plugbench/plugbench/internal/config"
	"github.com/plugbench/plugbench/internal/logging"

	// Plugins register their secret kinds and benchmarks at init time.
	_ "github.com/plugbench/plugbench/internal/plugins/perspective"
	_ "github.com/plugbench/plugbench/internal/plugins/together"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Wipe any locked secret buffers on the way out.
	defer memguard.Purge()

	// Global flags
	var (
		secretsFile string
		noColor     bool
		debug       bool
	)

	// Create config placeholder
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "plugbench",
		Short: "Plugin benchmark harness - declare, audit, and resolve plugin credentials",
		Long: `plugbench runs plugin-provided model benchmarks. Plugins declare the
credentials they need when they register; plugbench audits a local secrets
file against those declarations and reports everything missing in one pass.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger with parsed flags
			logger := logging.New(debug, noColor)

			cfg.Path = secretsFile
			cfg.Logger = logger
		},
	}

	rootCmd.PersistentFlags().StringVar(&secretsFile, "secrets", "secrets.yaml", "Secrets file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewInitCommand(cfg),
		commands.NewSecretsCommand(cfg),
		commands.NewPluginsCommand(cfg),
	)

	return rootCmd.Execute()
}
