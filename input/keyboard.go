package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard turns terminal key events into per-frame key state
// Terminals report presses and auto-repeats but never releases, so a key counts as held
// for the hold window after its most recent event
// The window must exceed the terminal's initial repeat delay, otherwise a held key
// drops out between the press and its first repeat
// Not safe for concurrent use: feed it from the goroutine that runs the frame loop
type Keyboard struct {
	hold time.Duration

	lastSeen map[Key]time.Time
	pressed  map[Key]bool // Fresh presses since the last Frame
	closed   bool
}

// NewKeyboard creates a keyboard with the given hold window
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold:     hold,
		lastSeen: make(map[Key]time.Time),
		pressed:  make(map[Key]bool),
	}
}

// HandleEvent records a tcell event received at now
func (kb *Keyboard) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k := KeyFromEvent(ev); k != KeyNone {
			kb.Press(k, now)
		}
	case *tcell.EventInterrupt:
		kb.closed = true
	}
}

// Press records a key event at now
// It counts as a fresh press only when the key is not already held
func (kb *Keyboard) Press(k Key, now time.Time) {
	if !kb.held(k, now) {
		kb.pressed[k] = true
	}
	kb.lastSeen[k] = now
}

func (kb *Keyboard) held(k Key, now time.Time) bool {
	last, seen := kb.lastSeen[k]
	return seen && now.Sub(last) <= kb.hold
}

// RequestClose marks the next frame as carrying a close request
func (kb *Keyboard) RequestClose() {
	kb.closed = true
}

// Frame snapshots key state at now and clears the fresh-press set
func (kb *Keyboard) Frame(now time.Time) Frame {
	f := Frame{
		down:    make(map[Key]bool, len(kb.lastSeen)),
		pressed: kb.pressed,
		closed:  kb.closed,
	}
	for k := range kb.lastSeen {
		if kb.held(k, now) {
			f.down[k] = true
		} else {
			delete(kb.lastSeen, k)
		}
	}
	for k := range f.pressed {
		f.down[k] = true
	}

	kb.pressed = make(map[Key]bool)
	kb.closed = false
	return f
}
