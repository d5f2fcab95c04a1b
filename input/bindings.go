package input

import "fmt"

// KeyMapConfig is the TOML form of a ship KeyMap; empty fields keep the base binding
type KeyMapConfig struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Fire  string `toml:"fire"`
}

// GlobalKeysConfig is the TOML form of GlobalKeys
type GlobalKeysConfig struct {
	Pause    string `toml:"pause"`
	Select   string `toml:"select"`
	Quit     string `toml:"quit"`
	Mute     string `toml:"mute"`
	MenuUp   string `toml:"menu_up"`
	MenuDown string `toml:"menu_down"`
}

// BindingsConfig mirrors the [keys.*] tables of the config file
type BindingsConfig struct {
	Left   KeyMapConfig     `toml:"left"`
	Right  KeyMapConfig     `toml:"right"`
	Global GlobalKeysConfig `toml:"global"`
}

// Merge returns base with every non-empty config entry applied, then validates the result
func Merge(base Bindings, cfg BindingsConfig) (Bindings, error) {
	result := base

	if err := mergeKeyMap(&result.Left, cfg.Left); err != nil {
		return base, fmt.Errorf("[keys.left] %w", err)
	}
	if err := mergeKeyMap(&result.Right, cfg.Right); err != nil {
		return base, fmt.Errorf("[keys.right] %w", err)
	}

	g := &result.Global
	overrides := []struct {
		dst *Key
		src string
	}{
		{&g.Pause, cfg.Global.Pause},
		{&g.Select, cfg.Global.Select},
		{&g.Quit, cfg.Global.Quit},
		{&g.Mute, cfg.Global.Mute},
		{&g.MenuUp, cfg.Global.MenuUp},
		{&g.MenuDown, cfg.Global.MenuDown},
	}
	for _, o := range overrides {
		if err := override(o.dst, o.src); err != nil {
			return base, fmt.Errorf("[keys.global] %w", err)
		}
	}

	if err := result.Validate(); err != nil {
		return base, err
	}
	return result, nil
}

func mergeKeyMap(dst *KeyMap, src KeyMapConfig) error {
	for _, o := range []struct {
		dst *Key
		src string
	}{
		{&dst.Up, src.Up},
		{&dst.Down, src.Down},
		{&dst.Left, src.Left},
		{&dst.Right, src.Right},
		{&dst.Fire, src.Fire},
	} {
		if err := override(o.dst, o.src); err != nil {
			return err
		}
	}
	return nil
}

func override(dst *Key, name string) error {
	if name == "" {
		return nil
	}
	k, err := ParseKey(name)
	if err != nil {
		return err
	}
	*dst = k
	return nil
}
