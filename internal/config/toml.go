// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/kanafall/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
}

// GameConfig maps round-related settings.
type GameConfig struct {
	InputMode *string `toml:"input-mode"`
	Level     *int    `toml:"level"`
	List      *string `toml:"list"`
}

// AudioConfig maps audio feedback settings.
type AudioConfig struct {
	Enabled *bool `toml:"enabled"`
}

// DisplayConfig maps display toggles.
type DisplayConfig struct {
	ShowReading *bool `toml:"show-reading"`
	ShowMeaning *bool `toml:"show-meaning"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays file values onto a settings snapshot. Unset values keep
// the snapshot's current (default or flag-provided) values.
func (c FileConfig) Apply(s model.Settings) model.Settings {
	if c.Game.InputMode != nil {
		s.InputMode = model.InputMode(*c.Game.InputMode)
	}
	if c.Game.Level != nil {
		s.Level = *c.Game.Level
	}
	if c.Game.List != nil {
		s.ListID = *c.Game.List
	}
	if c.Audio.Enabled != nil {
		s.SoundEnabled = *c.Audio.Enabled
	}
	if c.Display.ShowReading != nil {
		s.ShowReading = *c.Display.ShowReading
	}
	if c.Display.ShowMeaning != nil {
		s.ShowMeaning = *c.Display.ShowMeaning
	}
	return s
}
