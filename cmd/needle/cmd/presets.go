package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haystacksearch/needle/internal/config"
	"github.com/haystacksearch/needle/pkg/fuzzy"
)

// presetInfo is the JSON output shape for one preset.
type presetInfo struct {
	Name    string        `json:"name"`
	Active  bool          `json:"active"`
	Weights fuzzy.Scoring `json:"weights"`
}

func newPresetsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in scoring presets",
		Long: `List the built-in scoring presets and their weights. The preset
currently in effect (from config, environment, or --preset) is
marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresets(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output presets as JSON")

	return cmd
}

func runPresets(cmd *cobra.Command, jsonOutput bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if jsonOutput {
		infos := make([]presetInfo, 0, len(config.PresetNames()))
		for _, name := range config.PresetNames() {
			weights, _ := config.PresetByName(name)
			infos = append(infos, presetInfo{
				Name:    name,
				Active:  name == cfg.Preset && cfg.Weights == nil,
				Weights: weights,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	w := cmd.OutOrStdout()
	for _, name := range config.PresetNames() {
		weights, _ := config.PresetByName(name)
		marker := " "
		if name == cfg.Preset && cfg.Weights == nil {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s %-12s consecutive=%d word_start=%d match_case=%d coverage=%d distance=%d\n",
			marker, name,
			weights.BonusConsecutive,
			weights.BonusWordStart,
			weights.BonusMatchCase,
			weights.BonusCoverage,
			weights.PenaltyDistance)
	}

	if cfg.Weights != nil {
		_, _ = fmt.Fprintln(w, "\n(custom weights from config are in effect)")
	}

	return nil
}
