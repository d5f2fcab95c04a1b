package events

import "github.com/lixenwraith/spacewar/components"

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStart marks a freshly reset round entering play
	// Trigger: Playing OnEnter from MainMenu or RoundOver | Payload: none
	EventRoundStart EventType = iota

	// EventShotFired marks a projectile emitted from a ship
	// Trigger: TryFire success | Payload: Side
	EventShotFired

	// EventHit marks projectiles striking a ship this frame
	// Trigger: Round step damage application | Payload: Side (defender), Count
	EventHit

	// EventRoundOver marks a decided round
	// Trigger: Winner evaluation | Payload: Winner
	EventRoundOver

	// EventPaused marks entering the pause mode
	EventPaused

	// EventResumed marks leaving pause back into play
	EventResumed

	// EventMenuSelect marks a menu item being activated
	EventMenuSelect

	// EventMuteToggled marks the global mute key being pressed in any mode
	EventMuteToggled
)

func (t EventType) String() string {
	switch t {
	case EventRoundStart:
		return "round_start"
	case EventShotFired:
		return "shot_fired"
	case EventHit:
		return "hit"
	case EventRoundOver:
		return "round_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventMenuSelect:
		return "menu_select"
	case EventMuteToggled:
		return "mute_toggled"
	default:
		return "unknown"
	}
}

// GameEvent is one fire-and-forget notification from the simulation
// Fields not relevant to Type are zero
type GameEvent struct {
	Type   EventType
	Side   components.Side
	Count  int
	Winner components.Winner
}
