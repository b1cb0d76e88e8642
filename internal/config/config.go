// Package config holds the single configuration value passed to the
// checkpoint orchestrator. Checkers read thresholds from it and never from
// process state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete scenariolint configuration.
type Config struct {
	BlankToken  string            `yaml:"blank_token"`
	Workers     int               `yaml:"workers"`
	Bounds      Bounds            `yaml:"bounds"`
	Terminology []string          `yaml:"terminology"`
	Naturalness NaturalnessConfig `yaml:"naturalness"`
	Enrichment  EnrichmentConfig  `yaml:"enrichment"`
	Checkpoints CheckpointsConfig `yaml:"checkpoints"`
	Watch       WatchConfig       `yaml:"watch"`
}

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Bounds are the recommended sizes for authored text (runes) and for
// sub-collections (items).
type Bounds struct {
	BreakdownInsight   Range `yaml:"breakdown_insight"`
	OverallInsight     Range `yaml:"overall_insight"`
	PatternName        Range `yaml:"pattern_name"`
	PatternExplanation Range `yaml:"pattern_explanation"`
	Situations         Range `yaml:"situations"`
	ContrastPairs      Range `yaml:"contrast_pairs"`
	UsageNotes         Range `yaml:"usage_notes"`
	BreakdownItems     Range `yaml:"breakdown_items"`
	KeyPatterns        Range `yaml:"key_patterns"`
	ChunkExamples      Range `yaml:"chunk_examples"`
}

// NaturalnessConfig tunes the answer-alternative heuristics.
type NaturalnessConfig struct {
	Enabled         bool      `yaml:"enabled"`
	MinTokens       int       `yaml:"min_tokens"`
	MaxTokens       int       `yaml:"max_tokens"`
	DuplicateWindow int       `yaml:"duplicate_window"`
	MaxNegations    int       `yaml:"max_negations"`
	MaxFormalityGap float64   `yaml:"max_formality_gap"`
	StopWords       []string  `yaml:"stop_words"`
	Negations       []string  `yaml:"negations"`
	FormalWords     []string  `yaml:"formal_words"`
	CasualMarkers   []string  `yaml:"casual_markers"`
	PartOfSpeech    POSConfig `yaml:"part_of_speech"`
}

// POSConfig holds the closed word lists and suffix rules behind the
// part-of-speech guess. Closed lists win over suffixes.
type POSConfig struct {
	Verbs             []string `yaml:"verbs"`
	Nouns             []string `yaml:"nouns"`
	Adjectives        []string `yaml:"adjectives"`
	NounSuffixes      []string `yaml:"noun_suffixes"`
	AdjectiveSuffixes []string `yaml:"adjective_suffixes"`
	VerbSuffixes      []string `yaml:"verb_suffixes"`
}

// EnrichmentConfig limits enrichment files.
type EnrichmentConfig struct {
	MaxSections int `yaml:"max_sections"`
}

// CheckpointsConfig holds per-checkpoint boundary settings.
type CheckpointsConfig struct {
	PreMerge PreMergeConfig `yaml:"pre_merge"`
}

// PreMergeConfig configures the external command run before merging (for
// example a type-checker over the generated content module). An empty
// command is skipped.
type PreMergeConfig struct {
	Command []string      `yaml:"command"`
	Dir     string        `yaml:"dir"`
	Timeout time.Duration `yaml:"timeout"`
}

// WatchConfig tunes check --watch. Debounce is how long the corpus must be
// quiet before a re-check starts.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		// defaults.yaml is compiled in; failing here is a build defect
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return cfg
}

// Parse decodes YAML into a fresh Config without applying defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile loads a YAML file on top of the defaults. Keys absent from
// the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if err := mergeFile(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile decodes a YAML file into cfg, leaving absent keys untouched.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.BlankToken == "" {
		return fmt.Errorf("blank_token is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	ranges := map[string]Range{
		"bounds.breakdown_insight":   c.Bounds.BreakdownInsight,
		"bounds.overall_insight":     c.Bounds.OverallInsight,
		"bounds.pattern_name":        c.Bounds.PatternName,
		"bounds.pattern_explanation": c.Bounds.PatternExplanation,
		"bounds.situations":          c.Bounds.Situations,
		"bounds.contrast_pairs":      c.Bounds.ContrastPairs,
		"bounds.usage_notes":         c.Bounds.UsageNotes,
		"bounds.breakdown_items":     c.Bounds.BreakdownItems,
		"bounds.key_patterns":        c.Bounds.KeyPatterns,
		"bounds.chunk_examples":      c.Bounds.ChunkExamples,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("%s: invalid range %d-%d", name, r.Min, r.Max)
		}
	}

	n := c.Naturalness
	if n.MinTokens < 1 || n.MaxTokens < n.MinTokens {
		return fmt.Errorf("naturalness: invalid token range %d-%d", n.MinTokens, n.MaxTokens)
	}
	if n.DuplicateWindow < 1 {
		return fmt.Errorf("naturalness.duplicate_window must be at least 1")
	}
	if n.MaxFormalityGap < 0 || n.MaxFormalityGap > 1 {
		return fmt.Errorf("naturalness.max_formality_gap must be between 0 and 1")
	}
	if c.Enrichment.MaxSections < 1 {
		return fmt.Errorf("enrichment.max_sections must be at least 1")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}
