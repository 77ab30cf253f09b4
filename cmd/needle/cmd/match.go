package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haystacksearch/needle/internal/output"
	"github.com/haystacksearch/needle/pkg/fuzzy"
)

// matchOptions holds CLI flags for match.
type matchOptions struct {
	format  string // "text", "json"
	indices bool   // print matched indices after the score
}

// matchResult is the JSON output shape for a single match.
type matchResult struct {
	Score       int          `json:"score"`
	Indices     []int        `json:"indices"`
	Spans       []fuzzy.Span `json:"spans"`
	Highlighted string       `json:"highlighted"`
}

func newMatchCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match <pattern> <target>",
		Short: "Score a pattern against a single target",
		Long: `Score how well a pattern matches inside a target string.

Prints the score and the target with matched runs highlighted.
Exits with an error when the pattern does not match.

Examples:
  needle match scc SoccerCartoonController
  needle match scc SoccerCartoonController --indices
  needle match scc SoccerCartoonController --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.indices, "indices", false, "Print matched rune indices")

	return cmd
}

func runMatch(cmd *cobra.Command, pattern, target string, opts matchOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scoring, err := cfg.Scoring()
	if err != nil {
		return err
	}

	slog.Debug("match_started",
		slog.String("pattern", pattern),
		slog.String("preset", cfg.Preset),
		slog.Bool("case_sensitive", cfg.CaseSensitive))

	m := fuzzy.ComputeBestMatch(pattern, target, scoring, cfg.CaseSensitive)
	if m == nil {
		return fmt.Errorf("no match for %q in %q", pattern, target)
	}

	out := output.New(cmd.OutOrStdout())

	if opts.format == "json" {
		prefix, suffix := cfg.Highlight.Prefix, cfg.Highlight.Suffix
		result := matchResult{
			Score:       m.Score(),
			Indices:     m.MatchedIndices(),
			Spans:       m.ContinuousMatches(),
			Highlighted: fuzzy.FormatSimple(m, target, prefix, suffix),
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	prefix, suffix := out.HighlightTags(cfg.Highlight.Prefix, cfg.Highlight.Suffix)
	out.Result(m.Score(), fuzzy.FormatSimple(m, target, prefix, suffix))

	if opts.indices {
		out.Printf("indices: %v\n", m.MatchedIndices())
	}

	return nil
}
