package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haystacksearch/needle/internal/filter"
	"github.com/haystacksearch/needle/internal/ui"
)

func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick one line from stdin",
		Long: `Read candidate lines from stdin and select one interactively,
re-ranking as you type. The chosen line is printed to stdout, so
the command composes with shell pipelines:

  vim "$(git ls-files | needle pick)"

The UI is drawn on stderr. Press enter to select, esc to abort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPick(cmd)
		},
	}

	return cmd
}

func runPick(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scoring, err := cfg.Scoring()
	if err != nil {
		return err
	}

	candidates, err := readLines(cmd)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates on stdin")
	}

	slog.Debug("pick_started", slog.Int("candidates", len(candidates)))

	choice, err := ui.Pick(candidates, filter.Options{
		Scoring:       scoring,
		CaseSensitive: cfg.CaseSensitive,
		Workers:       cfg.Filter.Workers,
		CacheSize:     cfg.Filter.CacheSize,
	})
	if err != nil {
		if errors.Is(err, ui.ErrAborted) {
			slog.Debug("pick_aborted")
		}
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), choice)
	return err
}
