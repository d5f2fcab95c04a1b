package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Key is the canonical config name of a keyboard key ("w", "space", "up", "ctrl_c")
type Key string

const KeyNone Key = ""

// Named keys
const (
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyEscape    Key = "escape"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyCtrlC     Key = "ctrl_c"
	KeyCtrlQ     Key = "ctrl_q"
)

// ErrUnknownKey is returned when a binding names a key the terminal cannot report
var ErrUnknownKey = errors.New("unknown key name")

// specialKeys maps tcell special keys to canonical names
var specialKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlQ:      KeyCtrlQ,
}

// Rune aliases for keys that can't be bare single-char TOML values
var runeAliases = map[string]rune{
	"space":     ' ',
	"comma":     ',',
	"period":    '.',
	"slash":     '/',
	"backslash": '\\',
}

// KeyFromEvent converts a tcell key event to its canonical name
// Letters are folded to lower case so a held shift does not change the binding
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return keyFromRune(ev.Rune())
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k
	}
	return KeyNone
}

func keyFromRune(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	return Key(string(unicode.ToLower(r)))
}

// ParseKey resolves a config string to a canonical Key
// Accepts special key names, rune aliases and single printable characters
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return KeyNone, fmt.Errorf("%w: empty", ErrUnknownKey)
	}

	for _, k := range specialKeys {
		if Key(name) == k {
			return k, nil
		}
	}

	if r, ok := runeAliases[name]; ok {
		return keyFromRune(r), nil
	}

	runes := []rune(name)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return keyFromRune(runes[0]), nil
	}

	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}
