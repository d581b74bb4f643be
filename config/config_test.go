package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/ferris-fighter/engine"
)

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	data := `
[game]
player_name = "CRAB"
match_seconds = 90
spawn_policy = "drain_all"

[debug]
god_mode = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.PlayerName != "CRAB" || cfg.Game.MatchSeconds != 90 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Game.Width != Default().Game.Width {
		t.Errorf("width = %v, want default kept", cfg.Game.Width)
	}

	s := cfg.Settings()
	if s.MatchDuration != 90*time.Second || s.Spawn.Policy != engine.SpawnDrainAll || !s.Debug.GodMode {
		t.Errorf("settings = %+v", s)
	}
	if s.PlayerName != "CRAB" {
		t.Errorf("player name = %q", s.PlayerName)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cfg.toml")
	want := Default()
	want.Game.Seed = 1234
	want.Audio.Volume = 0.25
	want.Scores.Backend = "json"
	want.Scores.Path = "scores.json"
	want.Spectate.Addr = "127.0.0.1:8787"
	want.Log.Enabled = true

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Game.Width = 0 }},
		{"negative match", func(c *Config) { c.Game.MatchSeconds = -1 }},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"policy", func(c *Config) { c.Game.SpawnPolicy = "random" }},
		{"backend", func(c *Config) { c.Scores.Backend = "redis" }},
		{"postgres without dsn", func(c *Config) { c.Scores.Backend = "postgres" }},
		{"file without path", func(c *Config) { c.Scores.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("[game\nwidth = "), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("malformed toml accepted")
	}

	unknown := filepath.Join(dir, "unknown.toml")
	os.WriteFile(unknown, []byte("[game]\nlives = 3\n"), 0o644)
	if _, err := Load(unknown); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid for unknown key", err)
	}

	invalid := filepath.Join(dir, "invalid.toml")
	os.WriteFile(invalid, []byte("[audio]\nvolume = 4.0\n"), 0o644)
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
