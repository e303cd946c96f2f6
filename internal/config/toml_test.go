package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/kanafall/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Game.Level != nil || cfg.Audio.Enabled != nil {
		t.Fatalf("expected an empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected an error for an empty path")
	}
}

func TestLoadConfigAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[game]
input-mode = "hiragana"
level = 5

[audio]
enabled = false

[display]
show-reading = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	settings := cfg.Apply(model.DefaultSettings())
	if settings.InputMode != model.InputHiragana {
		t.Fatalf("expected hiragana input, got %q", settings.InputMode)
	}
	if settings.Level != 5 {
		t.Fatalf("expected level 5, got %d", settings.Level)
	}
	if settings.SoundEnabled {
		t.Fatalf("expected sound disabled")
	}
	if settings.ShowReading {
		t.Fatalf("expected reading hidden")
	}
	// Unset values keep their defaults.
	if settings.ListID != model.DefaultSettings().ListID {
		t.Fatalf("expected default list, got %q", settings.ListID)
	}
	if !settings.ShowMeaning {
		t.Fatalf("expected meaning shown by default")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("game = ["), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected a decode error")
	}
}
