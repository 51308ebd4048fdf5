package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseCatch(GetDefaultYAML("catch"))
	if err != nil {
		t.Fatalf("embedded catch.yaml failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCatchConfig()) {
		t.Errorf("embedded defaults drifted from DefaultCatchConfig:\n%+v\n%+v", cfg, DefaultCatchConfig())
	}
}

func TestLoadCatchCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	data := "catcher:\n  width: 20\nround:\n  lives: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Catcher.Width != 20 {
		t.Errorf("Catcher.Width = %v, expected 20", cfg.Catcher.Width)
	}
	if cfg.Round.Lives != 5 {
		t.Errorf("Round.Lives = %d, expected 5", cfg.Round.Lives)
	}
	// Untouched keys keep their defaults.
	if cfg.Catcher.Tolerance != 2 || cfg.Field.BandTop != 85 || len(cfg.Categories) != 7 {
		t.Errorf("overlay should keep defaults for unset keys, got %+v", cfg)
	}
}

func TestLoadCatchMissingCustomPath(t *testing.T) {
	_, err := LoadCatch(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadCatchInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.yaml")
	data := "field:\n  band_top: 96\n  band_bottom: 90\ncategories: []\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCatch(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"band_top", "category"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestValidateRejectsZeroPointCategory(t *testing.T) {
	cfg := DefaultCatchConfig()
	cfg.Categories = append(cfg.Categories, CatchCategory{Name: "dud", Points: 0})
	if err := cfg.Validate(); err == nil {
		t.Error("zero-point category should be rejected")
	}
}

func TestApplyCatchPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		width     float64
		tolerance float64
	}{
		{DifficultyEasy, 18, 2},
		{DifficultyNormal, 14, 2},
		{DifficultyHard, 10, 1},
		{"", 14, 2},
	}

	for _, tc := range tests {
		cfg := DefaultCatchConfig()
		ApplyCatchPreset(&cfg, tc.preset)
		if cfg.Catcher.Width != tc.width || cfg.Catcher.Tolerance != tc.tolerance {
			t.Errorf("preset %q: width=%v tolerance=%v, expected %v/%v",
				tc.preset, cfg.Catcher.Width, cfg.Catcher.Tolerance, tc.width, tc.tolerance)
		}
		if cfg.Spawn != DefaultCatchConfig().Spawn {
			t.Errorf("preset %q should not change spawn scaling", tc.preset)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}
