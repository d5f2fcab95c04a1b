package modes

import "github.com/lixenwraith/spacewar/engine"

// Mode is the top-level application phase
type Mode uint8

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModePaused
	ModeRoundOver
	// ModeQuit is terminal: no mode follows it and the process ends
	ModeQuit

	modeCount
	modeNone Mode = 255 // No mode entered yet
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main_menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeRoundOver:
		return "round_over"
	case ModeQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action is what a menu item does when selected
type Action uint8

const (
	ActionStart Action = iota
	ActionResume
	ActionRematch
	ActionMainMenu
	ActionQuit
)

// MenuItem is one selectable menu row
type MenuItem struct {
	Label  string
	Action Action
}

// MenuView is everything a presenter needs to draw a menu
type MenuView struct {
	Title    string
	Subtitle string
	Items    []string
	Cursor   int
	Overlay  bool // Drawn over the frozen arena; otherwise the menu owns the whole screen
}

// Presenter is the presentation sink driven by each mode's Draw
// The machine never reads back from it
type Presenter interface {
	// DrawArena draws the round scene; dimmed renders it frozen under an overlay
	DrawArena(snap engine.Snapshot, dimmed bool)
	// DrawMenu draws a menu; without Overlay it clears the screen first
	DrawMenu(view MenuView)
	// Show flushes the frame
	Show()
}
