package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haystacksearch/needle/internal/filter"
	"github.com/haystacksearch/needle/internal/output"
	"github.com/haystacksearch/needle/pkg/fuzzy"
)

// filterOptions holds CLI flags for filter.
type filterOptions struct {
	limit  int
	format string // "text", "json"
	scores bool   // prefix each line with its score
}

// filterResult is the JSON output shape for one ranked candidate.
type filterResult struct {
	Text    string `json:"text"`
	Score   int    `json:"score"`
	Indices []int  `json:"indices"`
}

func newFilterCmd() *cobra.Command {
	var opts filterOptions

	cmd := &cobra.Command{
		Use:   "filter <pattern>",
		Short: "Rank lines from stdin against a pattern",
		Long: `Read candidate lines from stdin, drop the ones the pattern does
not match, and print the rest ranked best-first.

Exits with an error when nothing matches, so it composes with
shell conditionals the way grep does.

Examples:
  git ls-files | needle filter config
  git ls-files | needle filter config --limit 5 --scores
  ls | needle filter rc --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (0 uses the configured default)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.scores, "scores", false, "Prefix each line with its score")

	return cmd
}

func runFilter(cmd *cobra.Command, pattern string, opts filterOptions) error {
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

	slog.Debug("filter_started",
		slog.String("pattern", pattern),
		slog.Int("candidates", len(candidates)))

	f := filter.New(candidates, filter.Options{
		Scoring:       scoring,
		CaseSensitive: cfg.CaseSensitive,
		Workers:       cfg.Filter.Workers,
		CacheSize:     -1, // single-shot invocation, nothing to cache
	})

	ranked, err := f.Rank(cmd.Context(), pattern)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		return fmt.Errorf("no matches for %q", pattern)
	}

	limit := cfg.Filter.MaxResults
	if opts.limit > 0 {
		limit = opts.limit
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if opts.format == "json" {
		results := make([]filterResult, 0, len(ranked))
		for _, r := range ranked {
			results = append(results, filterResult{
				Text:    r.Text,
				Score:   r.Match.Score(),
				Indices: r.Match.MatchedIndices(),
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	out := output.New(cmd.OutOrStdout())
	prefix, suffix := out.HighlightTags(cfg.Highlight.Prefix, cfg.Highlight.Suffix)
	for _, r := range ranked {
		line := fuzzy.FormatSimple(r.Match, r.Text, prefix, suffix)
		if opts.scores {
			out.Result(r.Match.Score(), line)
		} else {
			out.Println(line)
		}
	}

	return nil
}

// readLines collects non-empty candidate lines from stdin.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return lines, nil
}
