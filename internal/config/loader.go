package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preset returns a fresh copy of a built-in variant.
func Preset(variant string) (Config, error) {
	var (
		data     []byte
		fallback func() Config
	)
	switch variant {
	case VariantFlashing:
		data, fallback = defaultFlashingYAML, DefaultConfig
	case VariantClassic:
		data, fallback = defaultClassicYAML, DefaultClassicConfig
	default:
		return Config{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Load builds the engine configuration.
// The override file is searched in order: customPath -> ~/.gridtris/config.yaml
// -> ./configs/gridtris.yaml. The variant is the flag value, else the file's
// own variant field, else DefaultVariant. The file is laid over the preset,
// so it only needs the fields it changes.
func Load(customPath, variant string) (Config, error) {
	overlay, err := readOverlay(customPath)
	if err != nil {
		return Config{}, err
	}

	var head struct {
		Variant string      `yaml:"variant"`
		Keys    KeyBindings `yaml:"keys"`
	}
	if overlay != nil {
		if err := yaml.Unmarshal(overlay, &head); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
		if variant == "" {
			variant = head.Variant
		}
	}
	if variant == "" {
		variant = DefaultVariant
	}

	cfg, err := Preset(variant)
	if err != nil {
		return Config{}, err
	}

	if overlay != nil {
		// Key bindings replace the preset's as a whole; merging would
		// leave the preset's keys bound alongside the new ones.
		if len(head.Keys) > 0 {
			cfg.Keys = nil
		}
		if err := yaml.Unmarshal(overlay, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
		cfg.Variant = variant
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readOverlay returns the first config file found, or nil if there is none.
// A missing customPath is an error; the other locations are optional.
func readOverlay(customPath string) ([]byte, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return data, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return data, nil
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "gridtris.yaml")); err == nil {
		return data, nil
	}
	return nil, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridtris", filename)
}
