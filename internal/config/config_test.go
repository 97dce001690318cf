package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/gridtris/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridtris.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestPresetsMatchHardcodedDefaults(t *testing.T) {
	tests := []struct {
		variant  string
		fallback func() Config
	}{
		{VariantFlashing, DefaultConfig},
		{VariantClassic, DefaultClassicConfig},
	}

	for _, tc := range tests {
		t.Run(tc.variant, func(t *testing.T) {
			got, err := Preset(tc.variant)
			if err != nil {
				t.Fatalf("Preset(%q) failed: %v", tc.variant, err)
			}
			want := tc.fallback()

			if got.Board != want.Board {
				t.Errorf("Board = %+v, expected %+v", got.Board, want.Board)
			}
			if got.Timing != want.Timing {
				t.Errorf("Timing = %+v, expected %+v", got.Timing, want.Timing)
			}
			if got.Page != want.Page {
				t.Errorf("Page = %+v, expected %+v", got.Page, want.Page)
			}
			if got.Spawn.Row != want.Spawn.Row || got.Spawn.Column != want.Spawn.Column {
				t.Errorf("Spawn = %+v, expected %+v", got.Spawn, want.Spawn)
			}
			if (got.Spawn.InitialColumn == nil) != (want.Spawn.InitialColumn == nil) {
				t.Errorf("InitialColumn presence mismatch")
			}
			for action, keys := range want.Keys {
				if len(got.Keys[action]) != len(keys) {
					t.Errorf("Keys[%s] = %v, expected %v", action, got.Keys[action], keys)
				}
			}
			if err := got.Validate(); err != nil {
				t.Errorf("preset should validate: %v", err)
			}
		})
	}
}

func TestPresetIsFreshCopy(t *testing.T) {
	a, _ := Preset(VariantFlashing)
	a.Keys["drop"] = []string{"z"}

	b, _ := Preset(VariantFlashing)
	if b.Keys["drop"][0] == "z" {
		t.Error("Preset should not share state between calls")
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, err := Preset("sideways"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadOverlaysPreset(t *testing.T) {
	path := writeConfig(t, `
timing:
  advance_interval: 300ms
spawn:
  column: 40
`)

	cfg, err := Load(path, VariantClassic)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Variant != VariantClassic {
		t.Errorf("Variant = %q, expected classic", cfg.Variant)
	}
	if cfg.Timing.AdvanceInterval != 300*time.Millisecond {
		t.Errorf("AdvanceInterval = %s, expected 300ms", cfg.Timing.AdvanceInterval)
	}
	if cfg.Spawn.Column != 40 {
		t.Errorf("Spawn.Column = %d, expected 40", cfg.Spawn.Column)
	}
	// Untouched preset fields survive.
	if cfg.Timing.FlashToggles != 0 || cfg.Board.Columns != 52 {
		t.Errorf("preset fields lost: %+v %+v", cfg.Timing, cfg.Board)
	}
	if cfg.Spawn.InitialColumn == nil || *cfg.Spawn.InitialColumn != 46 {
		t.Error("classic initial column should survive the overlay")
	}
}

func TestLoadVariantFromFile(t *testing.T) {
	path := writeConfig(t, "variant: classic\n")

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.FlashToggles != 0 {
		t.Errorf("expected classic preset, got flash_toggles %d", cfg.Timing.FlashToggles)
	}
}

func TestLoadKeysReplacePreset(t *testing.T) {
	path := writeConfig(t, `
keys:
  drop: [w]
  move_up: [k]
`)

	cfg, err := Load(path, VariantFlashing)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Keys) != 2 {
		t.Fatalf("Keys = %v, expected only the file's bindings", cfg.Keys)
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings() failed: %v", err)
	}
	if bindings[core.ActionDrop][0] != "w" {
		t.Errorf("drop = %v, expected [w]", bindings[core.ActionDrop])
	}
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Variant != DefaultVariant {
		t.Errorf("Variant = %q, expected %q", cfg.Variant, DefaultVariant)
	}
	if cfg.Timing.FlashToggles != 7 {
		t.Errorf("FlashToggles = %d, expected 7", cfg.Timing.FlashToggles)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }},
		{"zero advance", func(c *Config) { c.Timing.AdvanceInterval = 0 }},
		{"negative toggles", func(c *Config) { c.Timing.FlashToggles = -1 }},
		{"flash without interval", func(c *Config) { c.Timing.FlashInterval = 0 }},
		{"unknown action", func(c *Config) { c.Keys["jump"] = []string{"space"} }},
		{"key bound twice", func(c *Config) { c.Keys["drop"] = []string{"W"} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLayoutAndPageOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Board.SentinelColumn = true

	layout := cfg.Layout()
	if layout.Rows != 7 || layout.Columns != 52 || !layout.Sentinel {
		t.Errorf("Layout() = %+v", layout)
	}

	opts := cfg.PageOptions()
	if opts.IndexBase != 1 || opts.IndexAttr != "data-ix" || opts.Layout != layout {
		t.Errorf("PageOptions() = %+v", opts)
	}
}
