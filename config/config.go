// Package config resolves runtime settings from defaults, an optional TOML file,
// environment variables and command-line flags, in that order of precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/spacewar/audio"
	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/input"
)

// DefaultPath is read when no -config flag is given and the file exists
const DefaultPath = "spacewar.toml"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type ShipConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Speed        float64 `toml:"speed"`
	Health       int     `toml:"health"`
	FireCap      int     `toml:"fire_cap"`
	HitboxInsetX float64 `toml:"hitbox_inset_x"`
	HitboxInsetY float64 `toml:"hitbox_inset_y"`
}

type ProjectileConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
}

// AudioSection is the [audio] table; volume is a 0-100 percentage
type AudioSection struct {
	Enabled      bool `toml:"enabled"`
	MasterVolume int  `toml:"master_volume"`
	SampleRate   int  `toml:"sample_rate"`
}

// SpectateConfig enables the spectator feed when Addr is non-empty
type SpectateConfig struct {
	Addr string `toml:"addr"`
}

type InputConfig struct {
	HoldMs int `toml:"hold_ms"`
}

// Config is the fully resolved runtime configuration
type Config struct {
	Arena      ArenaConfig          `toml:"arena"`
	Ship       ShipConfig           `toml:"ship"`
	Projectile ProjectileConfig     `toml:"projectile"`
	Audio      AudioSection         `toml:"audio"`
	Spectate   SpectateConfig       `toml:"spectate"`
	Input      InputConfig          `toml:"input"`
	Keys       input.BindingsConfig `toml:"keys"`

	Debug  bool   `toml:"-"`
	Source string `toml:"-"` // File the config was read from, empty for none

	bindings input.Bindings
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{Width: constants.ArenaWidth, Height: constants.ArenaHeight},
		Ship: ShipConfig{
			Width:        constants.ShipWidth,
			Height:       constants.ShipHeight,
			Speed:        constants.ShipSpeed,
			Health:       constants.ShipInitialHealth,
			FireCap:      constants.FireCap,
			HitboxInsetX: constants.HitboxInsetX,
			HitboxInsetY: constants.HitboxInsetY,
		},
		Projectile: ProjectileConfig{
			Width:  constants.ProjectileWidth,
			Height: constants.ProjectileHeight,
			Speed:  constants.ProjectileSpeed,
		},
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: int(constants.AudioMasterVolume * 100),
			SampleRate:   constants.AudioSampleRate,
		},
		Input:    InputConfig{HoldMs: int(constants.KeyHoldWindow / time.Millisecond)},
		bindings: input.DefaultBindings(),
	}
}

// Load resolves the configuration for a process invocation
// args excludes the program name; getenv is typically os.Getenv
func Load(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("spacewar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		path     = fs.String("config", "", "Path to a TOML config file")
		debug    = fs.Bool("debug", false, "Write debug log to "+constants.LogDir+"/"+constants.LogFileName)
		mute     = fs.Bool("mute", false, "Start with audio disabled")
		spectate = fs.String("spectate", "", "Serve the spectator feed on this address, e.g. :8080")
		holdMs   = fs.Int("hold", 0, "Key hold window in milliseconds")
	)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	cfg := Default()

	switch {
	case *path != "":
		if err := cfg.LoadFile(*path); err != nil {
			return nil, err
		}
	default:
		if _, err := os.Stat(DefaultPath); err == nil {
			if err := cfg.LoadFile(DefaultPath); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	// Only flags given explicitly override earlier sources
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "mute":
			cfg.Audio.Enabled = !*mute
		case "spectate":
			cfg.Spectate.Addr = *spectate
		case "hold":
			cfg.Input.HoldMs = *holdMs
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays a TOML file onto the current values
// Keys absent from the file keep their current value
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}

	bindings, err := input.Merge(c.bindings, c.Keys)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	c.bindings = bindings
	c.Source = path
	return nil
}

// ApplyEnv applies SPACEWAR_* environment overrides
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("SPACEWAR_AUDIO_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SPACEWAR_AUDIO_ENABLED: %v", ErrInvalidConfig, err)
		}
		c.Audio.Enabled = enabled
	}

	// 0-100, clamped
	if v := getenv("SPACEWAR_MASTER_VOLUME"); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SPACEWAR_MASTER_VOLUME: %v", ErrInvalidConfig, err)
		}
		c.Audio.MasterVolume = min(max(vol, 0), 100)
	}

	if v := getenv("SPACEWAR_SAMPLE_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SPACEWAR_SAMPLE_RATE: %v", ErrInvalidConfig, err)
		}
		c.Audio.SampleRate = rate
	}

	if v := getenv("SPACEWAR_SPECTATE_ADDR"); v != "" {
		c.Spectate.Addr = v
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena dimensions must be positive"},
		{c.Ship.Width > 0 && c.Ship.Height > 0, "ship dimensions must be positive"},
		{c.Ship.Width <= c.Arena.Width/2 && c.Ship.Height <= c.Arena.Height, "ship must fit in its half of the arena"},
		{c.Ship.Speed > 0, "ship speed must be positive"},
		{c.Ship.Health >= 1, "ship health must be at least 1"},
		{c.Ship.FireCap >= 1, "fire cap must be at least 1"},
		{c.Ship.HitboxInsetX >= 0 && c.Ship.HitboxInsetY >= 0, "hitbox inset must not be negative"},
		{2*c.Ship.HitboxInsetX < c.Ship.Width && 2*c.Ship.HitboxInsetY < c.Ship.Height, "hitbox inset leaves no hitbox"},
		{c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile dimensions must be positive"},
		{c.Projectile.Speed > 0, "projectile speed must be positive"},
		{c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 100, "master volume must be within 0-100"},
		{c.Audio.SampleRate > 0, "sample rate must be positive"},
		{c.Input.HoldMs > 0, "key hold window must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}

	if err := c.bindings.Validate(); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Rules returns the simulation parameters
func (c *Config) Rules() engine.Rules {
	return engine.Rules{
		ArenaWidth:       c.Arena.Width,
		ArenaHeight:      c.Arena.Height,
		ShipWidth:        c.Ship.Width,
		ShipHeight:       c.Ship.Height,
		ShipSpeed:        c.Ship.Speed,
		HitboxInsetX:     c.Ship.HitboxInsetX,
		HitboxInsetY:     c.Ship.HitboxInsetY,
		InitialHealth:    c.Ship.Health,
		FireCap:          c.Ship.FireCap,
		ProjectileWidth:  c.Projectile.Width,
		ProjectileHeight: c.Projectile.Height,
		ProjectileSpeed:  c.Projectile.Speed,
	}
}

// Bindings returns the resolved key bindings
func (c *Config) Bindings() input.Bindings {
	return c.bindings
}

// AudioConfig returns the audio engine settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.MasterVolume) / 100.0
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// HoldWindow returns how long a key counts as held after its last event
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}
