package main

import (
	"github.com/spf13/cobra"

	"github.com/lexkit/lexkit/pkg/config"
	"github.com/lexkit/lexkit/pkg/logger"
)

var (
	verbose    bool
	jsonLogs   bool
	configPath string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "lexkit",
	Short: "lexkit - lexeme stream decoder",
	Long: `Lexkit decodes compact lexeme streams, the position-encoded text output
of lexical analyzers, into structured records.

It renders streams as text, JSON, CSV or XML, resolves lexeme numbers to
names through domain definition files, and can persist decoded streams
to a datastore for later reporting.`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .lexkit.yaml in . or $HOME)")

	// Add subcommands
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration file and initializes logging before any
// subcommand runs. Config values fill in flags the user did not set.
func setup(cmd *cobra.Command, args []string) error {
	if err := logger.Initialize(verbose, jsonLogs); err != nil {
		return err
	}

	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return err
	}

	applyConfig(cmd)
	return nil
}

// applyConfig fills in flags the user did not set from the config file.
func applyConfig(cmd *cobra.Command) {
	f := cmd.Flags()
	switch cmd {
	case extractCmd:
		if !f.Changed("format") {
			extractFormat = cfg.Format
		}
		if !f.Changed("color") {
			extractColor = cfg.Color
		}
		if !f.Changed("max-file-size") {
			extractMaxFileSize = cfg.MaxFileSize
		}
		if !f.Changed("include-hidden") {
			extractIncludeHidden = cfg.IncludeHidden
		}
		if cfg.NamesDir != "" {
			extractNamesDirs = append(extractNamesDirs, cfg.NamesDir)
		}
	case reportCmd:
		if !f.Changed("format") {
			reportFormat = cfg.Format
		}
		if !f.Changed("color") {
			reportColor = cfg.Color
		}
	case namesCmd:
		if cfg.NamesDir != "" {
			namesDirs = append(namesDirs, cfg.NamesDir)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
