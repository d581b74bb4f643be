// Package config loads the TOML startup configuration and maps it onto engine settings
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/scores"
)

// DefaultPath is the configuration file read when no path is given
const DefaultPath = "ferris-fighter.toml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk configuration; read-only after startup
type Config struct {
	Game     GameConfig     `toml:"game"`
	Debug    DebugConfig    `toml:"debug"`
	Audio    AudioConfig    `toml:"audio"`
	Scores   ScoresConfig   `toml:"scores"`
	Spectate SpectateConfig `toml:"spectate"`
	Log      LogConfig      `toml:"log"`
}

type GameConfig struct {
	Title        string  `toml:"title"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	PlayerName   string  `toml:"player_name"`
	Seed         uint64  `toml:"seed"`
	MatchSeconds int     `toml:"match_seconds"`
	SpawnPolicy  string  `toml:"spawn_policy"`
}

type DebugConfig struct {
	GodMode           bool `toml:"god_mode"`
	ShowBounds        bool `toml:"show_bounds"`
	TrackPeakEntities bool `toml:"track_peak_entities"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type ScoresConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	DSN     string `toml:"dsn"`
}

// SpectateConfig enables the websocket feed when Addr is set
type SpectateConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			Title:        constants.DefaultTitle,
			Width:        constants.DefaultWorldWidth,
			Height:       constants.DefaultWorldHeight,
			PlayerName:   constants.DefaultPlayerName,
			MatchSeconds: int(constants.MatchDuration / time.Second),
			SpawnPolicy:  engine.SpawnOnePerFrame.String(),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.DefaultVolume,
		},
		Scores: ScoresConfig{
			Backend: scores.BackendFile,
			Path:    "scores.txt",
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path as TOML
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// Validate reports the first out-of-range value
func (c Config) Validate() error {
	switch {
	case c.Game.Width <= 0 || c.Game.Height <= 0:
		return fmt.Errorf("%w: playfield %vx%v must be positive", ErrInvalid, c.Game.Width, c.Game.Height)
	case c.Game.MatchSeconds <= 0:
		return fmt.Errorf("%w: match_seconds %d must be positive", ErrInvalid, c.Game.MatchSeconds)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if _, err := ParseSpawnPolicy(c.Game.SpawnPolicy); err != nil {
		return err
	}
	switch c.Scores.Backend {
	case scores.BackendFile, scores.BackendJSON:
		if c.Scores.Path == "" {
			return fmt.Errorf("%w: scores.path required for %s backend", ErrInvalid, c.Scores.Backend)
		}
	case scores.BackendPostgres:
		if c.Scores.DSN == "" {
			return fmt.Errorf("%w: scores.dsn required for postgres backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: scores.backend %q", ErrInvalid, c.Scores.Backend)
	}
	return nil
}

// ParseSpawnPolicy maps a policy name to its value; empty means the default
func ParseSpawnPolicy(name string) (engine.SpawnPolicy, error) {
	switch name {
	case "", engine.SpawnOnePerFrame.String():
		return engine.SpawnOnePerFrame, nil
	case engine.SpawnDrainAll.String():
		return engine.SpawnDrainAll, nil
	}
	return 0, fmt.Errorf("%w: spawn_policy %q", ErrInvalid, name)
}

// Settings maps the configuration onto simulation settings
func (c Config) Settings() engine.Settings {
	s := engine.DefaultSettings()
	s.Width = c.Game.Width
	s.Height = c.Game.Height
	s.PlayerName = c.Game.PlayerName
	s.Seed = c.Game.Seed
	s.MatchDuration = time.Duration(c.Game.MatchSeconds) * time.Second
	s.Debug = engine.DebugConfig{
		GodMode:           c.Debug.GodMode,
		ShowBounds:        c.Debug.ShowBounds,
		TrackPeakEntities: c.Debug.TrackPeakEntities,
	}
	if p, err := ParseSpawnPolicy(c.Game.SpawnPolicy); err == nil {
		s.Spawn.Policy = p
	}
	return s
}
