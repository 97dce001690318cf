// Package config provides YAML-based engine configuration: board geometry,
// spawn point, timers, page scanning and key bindings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gridtris/internal/core"
	"github.com/vovakirdan/gridtris/internal/grid"
)

// Config contains everything needed to build a session.
type Config struct {
	Variant string       `yaml:"variant"`
	Board   BoardConfig  `yaml:"board"`
	Spawn   SpawnConfig  `yaml:"spawn"`
	Timing  TimingConfig `yaml:"timing"`
	Page    PageConfig   `yaml:"page"`
	Keys    KeyBindings  `yaml:"keys"`
}

// BoardConfig defines the board geometry.
type BoardConfig struct {
	Rows           int  `yaml:"rows"`
	Columns        int  `yaml:"columns"`
	SentinelColumn bool `yaml:"sentinel_column"`
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`

	// InitialColumn, when set, is used for the first piece only.
	InitialColumn *int `yaml:"initial_column,omitempty"`
}

// TimingConfig defines the two timers.
type TimingConfig struct {
	AdvanceInterval time.Duration `yaml:"advance_interval"`
	FlashInterval   time.Duration `yaml:"flash_interval"`

	// FlashToggles is how many times cleared cells switch between flashing
	// and filled before they empty. 0 clears at landing.
	FlashToggles int `yaml:"flash_toggles"`
}

// PageConfig defines how a profile page is scanned.
type PageConfig struct {
	IndexBase int    `yaml:"index_base"`
	CellClass string `yaml:"cell_class"`
	IndexAttr string `yaml:"index_attr"`
	LevelAttr string `yaml:"level_attr"`
}

// KeyBindings maps action names to the keys that trigger them.
type KeyBindings map[string][]string

// Layout returns the board geometry as a grid layout.
func (c Config) Layout() grid.Layout {
	return grid.Layout{
		Rows:     c.Board.Rows,
		Columns:  c.Board.Columns,
		Sentinel: c.Board.SentinelColumn,
	}
}

// PageOptions returns scanning options for grid.ParsePage.
func (c Config) PageOptions() grid.PageOptions {
	return grid.PageOptions{
		Layout:    c.Layout(),
		IndexBase: c.Page.IndexBase,
		CellClass: c.Page.CellClass,
		IndexAttr: c.Page.IndexAttr,
		LevelAttr: c.Page.LevelAttr,
	}
}

// Bindings resolves key names to actions.
func (c Config) Bindings() (map[core.Action][]string, error) {
	out := make(map[core.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		a, err := core.ParseAction(name)
		if err != nil {
			return nil, err
		}
		out[a] = keys
	}
	return out, nil
}

// Validate checks the config for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Columns <= 0 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Columns)
	}
	if c.Timing.AdvanceInterval <= 0 {
		return fmt.Errorf("config: advance_interval must be positive, got %s", c.Timing.AdvanceInterval)
	}
	if c.Timing.FlashToggles < 0 {
		return fmt.Errorf("config: flash_toggles cannot be negative, got %d", c.Timing.FlashToggles)
	}
	if c.Timing.FlashToggles > 0 && c.Timing.FlashInterval <= 0 {
		return fmt.Errorf("config: flash_interval must be positive when flashing, got %s", c.Timing.FlashInterval)
	}

	seen := make(map[string]string)
	for name, keys := range c.Keys {
		if _, err := core.ParseAction(name); err != nil {
			return fmt.Errorf("config: keys: %w", err)
		}
		for _, k := range keys {
			k = core.NormalizeKey(k)
			if prev, dup := seen[k]; dup && prev != name {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, name)
			}
			seen[k] = name
		}
	}
	return nil
}
