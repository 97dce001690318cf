package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flashing.yaml
var defaultFlashingYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// Variant names.
const (
	VariantFlashing = "flashing"
	VariantClassic  = "classic"
)

// DefaultVariant is used when neither a flag nor a config file picks one.
const DefaultVariant = VariantFlashing

// Variants lists the built-in presets with a one-line description.
func Variants() []VariantInfo {
	return []VariantInfo{
		{Name: VariantClassic, Description: "Full columns clear at once; first piece spawns at column 46"},
		{Name: VariantFlashing, Description: "Full columns flash 7 times before clearing"},
	}
}

// VariantInfo describes a built-in preset.
type VariantInfo struct {
	Name        string
	Description string
}

// DefaultConfig returns the hardcoded flashing preset.
// Used when the embedded YAML cannot be decoded.
func DefaultConfig() Config {
	return Config{
		Variant: VariantFlashing,
		Board: BoardConfig{
			Rows:    7,
			Columns: 52,
		},
		Spawn: SpawnConfig{
			Row:    3,
			Column: 51,
		},
		Timing: TimingConfig{
			AdvanceInterval: 150 * time.Millisecond,
			FlashInterval:   150 * time.Millisecond,
			FlashToggles:    7,
		},
		Page: PageConfig{
			IndexBase: 1,
			CellClass: "ContributionCalendar-day",
			IndexAttr: "data-ix",
			LevelAttr: "data-level",
		},
		Keys: KeyBindings{
			"move_up":    {"up", "w"},
			"move_down":  {"down", "s"},
			"rotate_cw":  {"right", "d", "enter"},
			"rotate_ccw": {"a"},
			"drop":       {"left", "space"},
		},
	}
}

// DefaultClassicConfig returns the hardcoded classic preset.
func DefaultClassicConfig() Config {
	cfg := DefaultConfig()
	initial := 46
	cfg.Variant = VariantClassic
	cfg.Spawn.InitialColumn = &initial
	cfg.Timing.FlashToggles = 0
	cfg.Keys = KeyBindings{
		"move_up":    {"up", "t"},
		"move_down":  {"down", "g"},
		"rotate_cw":  {"h"},
		"rotate_ccw": {"f"},
		"drop":       {"left", "x"},
	}
	return cfg
}
