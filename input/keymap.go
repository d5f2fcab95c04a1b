package input

import "fmt"

// KeyMap binds the five logical buttons of one ship
type KeyMap struct {
	Up    Key
	Down  Key
	Left  Key
	Right Key
	Fire  Key
}

// GlobalKeys binds keys that are not owned by a ship
type GlobalKeys struct {
	Pause    Key
	Select   Key
	Quit     Key
	Mute     Key // Optional
	MenuUp   Key
	MenuDown Key
}

// Bindings is the complete key configuration for a duel
type Bindings struct {
	Left   KeyMap
	Right  KeyMap
	Global GlobalKeys
}

// DefaultBindings returns WASD+space for the left ship and arrows+comma for the right
func DefaultBindings() Bindings {
	return Bindings{
		Left: KeyMap{
			Up:    "w",
			Down:  "s",
			Left:  "a",
			Right: "d",
			Fire:  KeySpace,
		},
		Right: KeyMap{
			Up:    KeyUp,
			Down:  KeyDown,
			Left:  KeyLeft,
			Right: KeyRight,
			Fire:  ",",
		},
		Global: GlobalKeys{
			Pause:    KeyEscape,
			Select:   KeyEnter,
			Quit:     KeyCtrlC,
			Mute:     "m",
			MenuUp:   KeyUp,
			MenuDown: KeyDown,
		},
	}
}

// keys returns the bindings in a fixed order with their labels
func (m KeyMap) keys() []struct {
	name string
	key  Key
} {
	return []struct {
		name string
		key  Key
	}{
		{"up", m.Up},
		{"down", m.Down},
		{"left", m.Left},
		{"right", m.Right},
		{"fire", m.Fire},
	}
}

// Validate rejects unbound buttons and keys bound to two buttons of the same ship
func (m KeyMap) Validate() error {
	seen := make(map[Key]string, 5)
	for _, b := range m.keys() {
		if b.key == KeyNone {
			return fmt.Errorf("%s: not bound", b.name)
		}
		if prev, ok := seen[b.key]; ok {
			return fmt.Errorf("%s: key %q already bound to %s", b.name, b.key, prev)
		}
		seen[b.key] = b.name
	}
	return nil
}

// Validate checks both ship maps and the global keys
// Ship maps must not share keys since both ships are driven from one keyboard
// Keys checked during play (pause, quit, mute) must not shadow a ship key
func (b Bindings) Validate() error {
	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left ship: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right ship: %w", err)
	}

	owner := make(map[Key]string, 10)
	for _, k := range b.Left.keys() {
		owner[k.key] = "left " + k.name
	}
	for _, k := range b.Right.keys() {
		if _, ok := owner[k.key]; ok {
			return fmt.Errorf("key %q bound to both ships", k.key)
		}
		owner[k.key] = "right " + k.name
	}

	if b.Global.Pause == KeyNone || b.Global.Select == KeyNone || b.Global.Quit == KeyNone {
		return fmt.Errorf("global: pause, select and quit must be bound")
	}

	for _, g := range []struct {
		name string
		key  Key
	}{
		{"pause", b.Global.Pause},
		{"quit", b.Global.Quit},
		{"mute", b.Global.Mute},
	} {
		if g.key == KeyNone {
			continue
		}
		if prev, ok := owner[g.key]; ok {
			return fmt.Errorf("global %s: key %q already bound to %s", g.name, g.key, prev)
		}
		owner[g.key] = g.name
	}
	return nil
}
