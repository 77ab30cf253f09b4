// Package config loads needle's CLI configuration: which scoring preset to
// use, optional explicit weights, case sensitivity, highlight markers, and
// filter limits. Configuration is optional; everything has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/haystacksearch/needle/pkg/fuzzy"
)

// Config is the complete needle configuration.
//
// Precedence, lowest to highest: built-in defaults, user config
// (~/.config/needle/config.yaml), project config (.needle.yaml), then
// environment variables (NEEDLE_PRESET, NEEDLE_CASE_SENSITIVE,
// NEEDLE_MAX_RESULTS).
type Config struct {
	// Preset names a built-in scoring configuration. See PresetNames.
	Preset string `yaml:"preset" json:"preset"`

	// Weights, when present, replace the preset's weights entirely. A
	// partial weights block is not merged: zero is a meaningful weight
	// value, so merging field-by-field would be ambiguous.
	Weights *fuzzy.Scoring `yaml:"weights,omitempty" json:"weights,omitempty"`

	// CaseSensitive makes pattern characters match only when case matches.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`

	Highlight HighlightConfig `yaml:"highlight" json:"highlight"`
	Filter    FilterConfig    `yaml:"filter" json:"filter"`
}

// HighlightConfig configures how matched runs are decorated.
type HighlightConfig struct {
	// Prefix and Suffix wrap each continuous matched run in plain output.
	Prefix string `yaml:"prefix" json:"prefix"`
	Suffix string `yaml:"suffix" json:"suffix"`
}

// FilterConfig configures the batch filter commands.
type FilterConfig struct {
	// MaxResults caps how many ranked candidates are printed.
	MaxResults int `yaml:"max_results" json:"max_results"`
	// Workers bounds the parallel fan-out; 0 means one per CPU.
	Workers int `yaml:"workers" json:"workers"`
	// CacheSize is the number of cached pattern rankings.
	CacheSize int `yaml:"cache_size" json:"cache_size"`
}

// presets maps preset names to their scoring factories.
var presets = map[string]func() fuzzy.Scoring{
	"default":     fuzzy.DefaultScoring,
	"word-starts": fuzzy.EmphasizeWordStarts,
	"distance":    fuzzy.EmphasizeDistance,
	"coverage":    fuzzy.EmphasizeCoverage,
}

// PresetByName resolves a named scoring preset.
func PresetByName(name string) (fuzzy.Scoring, bool) {
	factory, ok := presets[name]
	if !ok {
		return fuzzy.Scoring{}, false
	}
	return factory(), true
}

// PresetNames returns all preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Preset:        "default",
		CaseSensitive: false,
		Highlight: HighlightConfig{
			Prefix: "[",
			Suffix: "]",
		},
		Filter: FilterConfig{
			MaxResults: 20,
			Workers:    0,
			CacheSize:  256,
		},
	}
}

// Scoring resolves the effective weights: explicit weights win, otherwise
// the named preset.
func (c *Config) Scoring() (fuzzy.Scoring, error) {
	if c.Weights != nil {
		return *c.Weights, nil
	}
	scoring, ok := PresetByName(c.Preset)
	if !ok {
		return fuzzy.Scoring{}, fmt.Errorf("unknown preset %q (available: %v)", c.Preset, PresetNames())
	}
	return scoring, nil
}

// Load builds the effective configuration for a project directory.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if userCfg, err := loadUserConfig(); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	// Fail early on a bad preset name rather than at first match.
	if _, err := cfg.Scoring(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFile builds the configuration from defaults plus one explicit file,
// skipping the usual user and project config discovery. Environment
// variables still apply on top.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	if err := cfg.loadYAML(path); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if _, err := cfg.Scoring(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile attempts to load configuration from .needle.yaml or .needle.yml.
func (c *Config) loadFromFile(dir string) error {
	yamlPath := filepath.Join(dir, ".needle.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return c.loadYAML(yamlPath)
	}

	ymlPath := filepath.Join(dir, ".needle.yml")
	if _, err := os.Stat(ymlPath); err == nil {
		return c.loadYAML(ymlPath)
	}

	// No config file is fine - use defaults
	return nil
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// loadUserConfig loads ~/.config/needle/config.yaml if it exists.
func loadUserConfig() (*Config, error) {
	path, err := userConfigPath()
	if err != nil {
		return nil, nil // no home directory, no user config
	}

	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &parsed, nil
}

// userConfigPath returns ~/.config/needle/config.yaml.
func userConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "needle", "config.yaml"), nil
}

// mergeWith merges set values from other into c. Weights replace as a
// whole; scalar fields merge when non-zero.
func (c *Config) mergeWith(other *Config) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Weights != nil {
		w := *other.Weights
		c.Weights = &w
	}
	if other.CaseSensitive {
		c.CaseSensitive = true
	}

	if other.Highlight.Prefix != "" {
		c.Highlight.Prefix = other.Highlight.Prefix
	}
	if other.Highlight.Suffix != "" {
		c.Highlight.Suffix = other.Highlight.Suffix
	}

	if other.Filter.MaxResults != 0 {
		c.Filter.MaxResults = other.Filter.MaxResults
	}
	if other.Filter.Workers != 0 {
		c.Filter.Workers = other.Filter.Workers
	}
	if other.Filter.CacheSize != 0 {
		c.Filter.CacheSize = other.Filter.CacheSize
	}
}

// applyEnvOverrides applies environment variables, the highest-precedence
// configuration source.
func (c *Config) applyEnvOverrides() {
	if preset := os.Getenv("NEEDLE_PRESET"); preset != "" {
		c.Preset = preset
		c.Weights = nil
	}
	if v := os.Getenv("NEEDLE_CASE_SENSITIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.CaseSensitive = b
		}
	}
	if v := os.Getenv("NEEDLE_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Filter.MaxResults = n
		}
	}
}

// FindProjectRoot walks up from startDir looking for a directory that
// contains a .git directory or a needle config file. Falls back to the
// starting directory when nothing is found.
func FindProjectRoot(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	currentDir := absDir
	for {
		if dirExists(filepath.Join(currentDir, ".git")) {
			return currentDir, nil
		}
		if fileExists(filepath.Join(currentDir, ".needle.yaml")) ||
			fileExists(filepath.Join(currentDir, ".needle.yml")) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return absDir, nil
		}
		currentDir = parentDir
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
