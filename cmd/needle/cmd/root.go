// Package cmd provides the CLI commands for needle.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haystacksearch/needle/internal/config"
	"github.com/haystacksearch/needle/internal/logging"
	"github.com/haystacksearch/needle/pkg/version"
)

// Debug logging flag
var (
	debugMode      bool
	loggingCleanup func()
)

// Flags shared by all matching commands.
var (
	configFlag        string
	presetFlag        string
	caseSensitiveFlag bool
)

// NewRootCmd creates the root command for the needle CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "needle",
		Short: "Fuzzy string matching for the command line",
		Long: `Needle scores how well a pattern matches inside a target string,
the way editor file pickers do: pattern characters must appear in
order, and matches on word starts and consecutive runs score higher.

Score a single target, filter a list from stdin, or pick one
interactively:

  needle match scc SoccerCartoonController
  git ls-files | needle filter config
  git ls-files | needle pick`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.SetVersionTemplate("needle version {{.Version}}\n")

	// Shared matching flags
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file to use instead of .needle.yaml discovery")
	cmd.PersistentFlags().StringVar(&presetFlag, "preset", "", "Scoring preset (default, word-starts, distance, coverage)")
	cmd.PersistentFlags().BoolVar(&caseSensitiveFlag, "case-sensitive", false, "Match pattern case exactly")

	// Debug logging flag
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.needle/logs/")

	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRunE = stopLogging

	cmd.AddCommand(newMatchCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newPickCmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startLogging sets up debug logging if the flag is set.
func startLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}

	logger, cleanup, err := logging.Setup(logging.DebugConfig())
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	slog.Info("Debug logging enabled",
		slog.String("log_file", logging.DefaultLogPath()),
		slog.String("version", version.Short()))
	return nil
}

// stopLogging closes the debug log if it was opened.
func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		slog.Info("Debug logging stopped")
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig builds the effective configuration, then applies any flags
// the user set on top. Flags outrank config files and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadFile(configFlag)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("preset") {
		if _, ok := config.PresetByName(presetFlag); !ok {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", presetFlag, config.PresetNames())
		}
		cfg.Preset = presetFlag
		// A preset chosen on the command line beats weights from a file.
		cfg.Weights = nil
	}

	if cmd.Flags().Changed("case-sensitive") {
		cfg.CaseSensitive = caseSensitiveFlag
	}

	return cfg, nil
}
