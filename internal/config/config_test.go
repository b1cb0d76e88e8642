package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BlankToken != "________" {
		t.Errorf("BlankToken = %q, want 8 underscores", cfg.BlankToken)
	}
	if cfg.Bounds.OverallInsight != (Range{Min: 100, Max: 300}) {
		t.Errorf("OverallInsight = %v, want 100-300", cfg.Bounds.OverallInsight)
	}
	if cfg.Bounds.Situations != (Range{Min: 3, Max: 3}) {
		t.Errorf("Situations = %v, want exactly 3", cfg.Bounds.Situations)
	}
	if cfg.Enrichment.MaxSections != 5 {
		t.Errorf("MaxSections = %d, want 5", cfg.Enrichment.MaxSections)
	}
	if cfg.Naturalness.MaxFormalityGap != 0.5 {
		t.Errorf("MaxFormalityGap = %f, want 0.5", cfg.Naturalness.MaxFormalityGap)
	}
	if cfg.Checkpoints.PreMerge.Timeout != 2*time.Minute {
		t.Errorf("PreMerge.Timeout = %v, want 2m", cfg.Checkpoints.PreMerge.Timeout)
	}
	if cfg.Watch.Debounce != 300*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 300ms", cfg.Watch.Debounce)
	}
	if len(cfg.Naturalness.PartOfSpeech.Verbs) == 0 || len(cfg.Naturalness.PartOfSpeech.NounSuffixes) == 0 {
		t.Error("expected default part-of-speech lists")
	}
	if len(cfg.Terminology) == 0 {
		t.Error("expected a default terminology blocklist")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"missing blank token", func(c *Config) { c.BlankToken = "" }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"inverted range", func(c *Config) { c.Bounds.PatternName = Range{Min: 50, Max: 10} }, true},
		{"negative range", func(c *Config) { c.Bounds.KeyPatterns = Range{Min: -1, Max: 4} }, true},
		{"token range", func(c *Config) { c.Naturalness.MinTokens = 0 }, true},
		{"formality gap too high", func(c *Config) { c.Naturalness.MaxFormalityGap = 1.5 }, true},
		{"no sections allowed", func(c *Config) { c.Enrichment.MaxSections = 0 }, true},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := Range{Min: 2, Max: 4}
	for n, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := r.Contains(n); got != want {
			t.Errorf("Contains(%d) = %v, want %v", n, got, want)
		}
	}
	if r.String() != "2-4" {
		t.Errorf("String() = %q, want 2-4", r.String())
	}
	if (Range{Min: 3, Max: 3}).String() != "3" {
		t.Error("single-value range should print as one number")
	}
}

func TestLoadFromFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "workers: 4\nenrichment:\n  max_sections: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Enrichment.MaxSections != 3 {
		t.Errorf("MaxSections = %d, want 3", cfg.Enrichment.MaxSections)
	}
	if cfg.Bounds.KeyPatterns != (Range{Min: 2, Max: 4}) {
		t.Errorf("KeyPatterns = %v, default should survive", cfg.Bounds.KeyPatterns)
	}
}

func TestLoaderFindsProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "content", "social")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte("workers: 8\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := NewLoader(nil, nested).Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8 from project config", cfg.Workers)
	}
}

func TestLoaderLayersExplicitOverProject(t *testing.T) {
	root := t.TempDir()
	project := "workers: 4\nenrichment:\n  max_sections: 7\n"
	if err := os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte(project), 0o644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}
	explicit := filepath.Join(t.TempDir(), "ci.yaml")
	if err := os.WriteFile(explicit, []byte("enrichment:\n  max_sections: 3\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := NewLoader(nil, root).Load(explicit)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4 from project config", cfg.Workers)
	}
	if cfg.Enrichment.MaxSections != 3 {
		t.Errorf("MaxSections = %d, want 3 from explicit config", cfg.Enrichment.MaxSections)
	}
	if cfg.BlankToken == "" {
		t.Error("defaults should survive both layers")
	}
}

func TestLoaderRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: 0\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := NewLoader(nil, t.TempDir()).Load(path); err == nil {
		t.Error("expected validation error for workers: 0")
	}
}
