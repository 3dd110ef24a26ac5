package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse("tetris.yaml", defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
timing:
  tick_ms: 400
rules:
  dot_only: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.TickMS != 400 || !cfg.Rules.DotOnly {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Timing.FPS != 60 || !cfg.Render.Ghost {
		t.Errorf("missing values should keep defaults: %+v", cfg)
	}
	if cfg.TickInterval() != 400*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 400ms", cfg.TickInterval())
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.toml", `
[timing]
tick_ms = 500
fps = 30

[rules]
auto_restart = true

[difficulty.progression]
type = "time"
max_at = 300
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.TickMS != 500 || cfg.Timing.FPS != 30 || !cfg.Rules.AutoRestart {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Difficulty.Progression.Type != "time" || cfg.Difficulty.Progression.MaxAt != 300 {
		t.Errorf("nested table not applied: %+v", cfg.Difficulty)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "timing: [")},
		{"unsupported", writeFile(t, dir, "cfg.json", "{}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "zero.yaml", "timing:\n  fps: 0\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("with no files, expected defaults, got %+v", cfg)
	}

	writeFile(t, work, "configs/tetris.yaml", "timing:\n  tick_ms: 300\n")
	if cfg, _ := Load(""); cfg.Timing.TickMS != 300 {
		t.Errorf("local config ignored, tick_ms = %d", cfg.Timing.TickMS)
	}

	writeFile(t, home, ".tetris/tetris.toml", "[timing]\ntick_ms = 200\n")
	if cfg, _ := Load(""); cfg.Timing.TickMS != 200 {
		t.Errorf("user toml ignored, tick_ms = %d", cfg.Timing.TickMS)
	}

	writeFile(t, home, ".tetris/tetris.yaml", "timing:\n  tick_ms: 150\n")
	if cfg, _ := Load(""); cfg.Timing.TickMS != 150 {
		t.Errorf("user yaml should win, tick_ms = %d", cfg.Timing.TickMS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tick", func(c *Config) { c.Timing.TickMS = 0 }, false},
		{"negative fps", func(c *Config) { c.Timing.FPS = -1 }, false},
		{"floor above base", func(c *Config) { c.Timing.MinTickMS = 1000 }, false},
		{"zero cell width", func(c *Config) { c.Render.CellWidth = 0 }, false},
		{"bad progression", func(c *Config) { c.Difficulty.Progression.Type = "lines" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q): %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}

	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if cfg.Difficulty.InitialLevel != 0 {
		t.Errorf("fixed preset InitialLevel = %v, expected 0", cfg.Difficulty.InitialLevel)
	}
}

func TestFixedPresetOverridesInitialLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Difficulty.InitialLevel = 0.5
	ApplyPreset(&cfg, DifficultyFixed)

	d := NewDifficultyManager(cfg.Difficulty)
	if got := d.Interval(cfg.TickInterval(), cfg.MinTickInterval(), 50, 500); got != cfg.TickInterval() {
		t.Errorf("Interval = %v, expected %v", got, cfg.TickInterval())
	}
}

func TestNextPreset(t *testing.T) {
	tests := []struct {
		from, want DifficultyPreset
	}{
		{DifficultyEasy, DifficultyNormal},
		{DifficultyNormal, DifficultyHard},
		{DifficultyHard, DifficultyFixed},
		{DifficultyFixed, DifficultyEasy},
		{"", DifficultyEasy},
	}
	for _, tc := range tests {
		if got := NextPreset(tc.from); got != tc.want {
			t.Errorf("NextPreset(%q) = %q, expected %q", tc.from, got, tc.want)
		}
	}
}

func TestPresetOf(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, p)
		if got := PresetOf(cfg.Difficulty); got != p {
			t.Errorf("PresetOf(%s config) = %q", p, got)
		}
	}
}
