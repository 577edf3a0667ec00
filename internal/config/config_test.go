package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points the search order at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadColorGrid("")
	if err != nil {
		t.Fatalf("LoadColorGrid failed: %v", err)
	}
	if cfg != DefaultColorGridConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultColorGridConfig())
	}
}

func TestLoadColorGridCustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "grid:\n  height: 5\ntimer:\n  duration: 90\n")

	cfg, err := LoadColorGrid(path)
	if err != nil {
		t.Fatalf("LoadColorGrid failed: %v", err)
	}
	if cfg.Grid.Height != 5 || cfg.Timer.Duration != 90 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Grid.Width != 11 || cfg.Timer.CadenceMS != 100 {
		t.Errorf("missing fields should keep defaults: %+v", cfg)
	}
}

func TestLoadColorGridCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadColorGrid(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "grid: [1, 2\n")
	if _, err := LoadColorGrid(broken); err == nil {
		t.Error("expected error for unparsable config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "grid:\n  height: 0\n")
	if _, err := LoadColorGrid(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadColorGridSearchOrder(t *testing.T) {
	dir := isolate(t)
	home := os.Getenv("HOME")

	writeFile(t, filepath.Join(dir, "configs", "colorgrid.yaml"), "grid:\n  width: 7\n")
	cfg, err := LoadColorGrid("")
	if err != nil {
		t.Fatalf("LoadColorGrid failed: %v", err)
	}
	if cfg.Grid.Width != 7 {
		t.Errorf("local config not used, width = %d", cfg.Grid.Width)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "colorgrid.yaml"), "grid:\n  width: 3\n")
	cfg, err = LoadColorGrid("")
	if err != nil {
		t.Fatalf("LoadColorGrid failed: %v", err)
	}
	if cfg.Grid.Width != 3 {
		t.Errorf("user config should win over local config, width = %d", cfg.Grid.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ColorGridConfig)
		valid  bool
	}{
		{"defaults", func(*ColorGridConfig) {}, true},
		{"max grid", func(c *ColorGridConfig) { c.Grid.Height, c.Grid.Width = 50, 50 }, true},
		{"zero height", func(c *ColorGridConfig) { c.Grid.Height = 0 }, false},
		{"wide grid", func(c *ColorGridConfig) { c.Grid.Width = 51 }, false},
		{"timer below min", func(c *ColorGridConfig) { c.Timer.Duration = 5 }, false},
		{"timer above max", func(c *ColorGridConfig) { c.Timer.Duration = 1001 }, false},
		{"inverted bounds", func(c *ColorGridConfig) { c.Timer.Min, c.Timer.Max = 100, 50 }, false},
		{"zero step", func(c *ColorGridConfig) { c.Timer.Step = 0 }, false},
		{"zero cadence", func(c *ColorGridConfig) { c.Timer.CadenceMS = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultColorGridConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, valid %v", err, tt.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   string
		expected int
	}{
		{"easy", 60},
		{"normal", 30},
		{"hard", 15},
		{"", 30},
	}

	for _, tc := range tests {
		p, err := ParsePreset(tc.preset)
		if err != nil {
			t.Fatalf("ParsePreset(%q) failed: %v", tc.preset, err)
		}
		cfg := DefaultColorGridConfig()
		ApplyColorGridPreset(&cfg, p)
		if cfg.Timer.Duration != tc.expected {
			t.Errorf("%q: timer = %d, expected %d", tc.preset, cfg.Timer.Duration, tc.expected)
		}
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetRespectsBounds(t *testing.T) {
	cfg := DefaultColorGridConfig()
	cfg.Timer.Min = 20

	ApplyColorGridPreset(&cfg, DifficultyHard)
	if cfg.Timer.Duration != 20 {
		t.Errorf("hard preset should clamp to min, got %d", cfg.Timer.Duration)
	}
}

func TestOverrides(t *testing.T) {
	cfg := DefaultColorGridConfig()
	Overrides{Width: 20, Timer: 45}.Apply(&cfg)

	if cfg.Grid.Height != 8 || cfg.Grid.Width != 20 || cfg.Timer.Duration != 45 {
		t.Errorf("unexpected config after overrides: %+v", cfg)
	}
}
