package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/spacewar/constants"
	"github.com/lixenwraith/spacewar/engine"
	"github.com/lixenwraith/spacewar/input"
)

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spacewar.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsMatchEngine(t *testing.T) {
	cfg, err := Load(nil, noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules() != engine.DefaultRules() {
		t.Errorf("Default rules differ:\n got %+v\nwant %+v", cfg.Rules(), engine.DefaultRules())
	}
	if cfg.Bindings() != input.DefaultBindings() {
		t.Error("Default bindings differ")
	}
	if cfg.HoldWindow() != constants.KeyHoldWindow {
		t.Errorf("Hold window = %v, want %v", cfg.HoldWindow(), constants.KeyHoldWindow)
	}
	if cfg.Source != "" {
		t.Errorf("Expected no config source, got %q", cfg.Source)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[ship]
speed = 120.0
fire_cap = 4

[audio]
master_volume = 30

[keys.left]
fire = "f"

[keys.global]
pause = "p"
`)

	cfg, err := Load([]string{"-config", path}, noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rules := cfg.Rules()
	if rules.ShipSpeed != 120 || rules.FireCap != 4 {
		t.Errorf("Ship overrides not applied: %+v", rules)
	}
	if rules.ArenaWidth != constants.ArenaWidth {
		t.Errorf("Unset arena width changed: %f", rules.ArenaWidth)
	}
	if rules.PoolCapacity() != 8 {
		t.Errorf("Pool capacity should follow fire cap, got %d", rules.PoolCapacity())
	}
	if cfg.Bindings().Left.Fire != "f" || cfg.Bindings().Global.Pause != "p" {
		t.Errorf("Key overrides not applied: %+v", cfg.Bindings())
	}
	if cfg.Bindings().Left.Up != "w" {
		t.Error("Unset key binding changed")
	}
	if got := cfg.AudioConfig().MasterVolume; got != 0.3 {
		t.Errorf("Master volume = %f, want 0.3", got)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[audio]\nenabled = true\nsample_rate = 22050\n")

	cfg, err := Load([]string{"-config", path}, envMap(map[string]string{
		"SPACEWAR_AUDIO_ENABLED": "false",
		"SPACEWAR_MASTER_VOLUME": "150",
		"SPACEWAR_SPECTATE_ADDR": ":9000",
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ac := cfg.AudioConfig()
	if ac.Enabled {
		t.Error("Env should disable audio")
	}
	if ac.MasterVolume != 1.0 {
		t.Errorf("Volume should clamp to 1.0, got %f", ac.MasterVolume)
	}
	if ac.SampleRate != 22050 {
		t.Errorf("File sample rate lost, got %d", ac.SampleRate)
	}
	if cfg.Spectate.Addr != ":9000" {
		t.Errorf("Spectate addr = %q", cfg.Spectate.Addr)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := Load(
		[]string{"-mute", "-debug", "-spectate", ":7000", "-hold", "400"},
		envMap(map[string]string{
			"SPACEWAR_AUDIO_ENABLED": "true",
			"SPACEWAR_SPECTATE_ADDR": ":9000",
		}),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Audio.Enabled {
		t.Error("-mute should win over env")
	}
	if !cfg.Debug {
		t.Error("-debug not applied")
	}
	if cfg.Spectate.Addr != ":7000" {
		t.Errorf("Spectate addr = %q, want :7000", cfg.Spectate.Addr)
	}
	if cfg.HoldWindow() != 400*time.Millisecond {
		t.Errorf("Hold window = %v", cfg.HoldWindow())
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative speed", "[ship]\nspeed = -1.0\n"},
		{"zero fire cap", "[ship]\nfire_cap = 0\n"},
		{"zero health", "[ship]\nhealth = 0\n"},
		{"hitbox consumed by inset", "[ship]\nhitbox_inset_x = 5.0\n"},
		{"ship wider than half arena", "[arena]\nwidth = 16.0\n"},
		{"duplicate ship key", "[keys.left]\nfire = \"w\"\n"},
		{"key shared across ships", "[keys.right]\nfire = \"space\"\n"},
		{"pause shadows ship key", "[keys.global]\npause = \"w\"\n"},
		{"unknown table key", "[ship]\nwarp = 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := Load([]string{"-config", path}, noEnv)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestUnknownKeyNameRejected(t *testing.T) {
	path := writeConfig(t, "[keys.left]\nfire = \"hyperdrive\"\n")
	_, err := Load([]string{"-config", path}, noEnv)
	if !errors.Is(err, input.ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey in chain, got %v", err)
	}
}

func TestBadEnvRejected(t *testing.T) {
	_, err := Load(nil, envMap(map[string]string{"SPACEWAR_MASTER_VOLUME": "loud"}))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestMissingExplicitFileFails(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "absent.toml")}, noEnv)
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestMalformedTomlFails(t *testing.T) {
	path := writeConfig(t, "[ship\nspeed = ")
	if _, err := Load([]string{"-config", path}, noEnv); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUnknownFlagFails(t *testing.T) {
	if _, err := Load([]string{"-warp"}, noEnv); err == nil {
		t.Error("Expected flag error")
	}
}
