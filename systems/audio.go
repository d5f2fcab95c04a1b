package systems

import (
	"log"

	"github.com/lixenwraith/spacewar/audio"
	"github.com/lixenwraith/spacewar/components"
	"github.com/lixenwraith/spacewar/events"
)

// AudioSystem consumes game events and plays the matching sound
// Decouples the simulation from the audio backend
type AudioSystem struct {
	player audio.Player
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player audio.Player) *AudioSystem {
	return &AudioSystem{player: player}
}

// SoundFor maps an event to its sound; false when the event is silent
func SoundFor(ev events.GameEvent) (audio.SoundType, bool) {
	switch ev.Type {
	case events.EventShotFired:
		return audio.SoundFire, true
	case events.EventHit:
		return audio.SoundHit, true
	case events.EventRoundOver:
		if ev.Winner == components.WinnerDraw {
			return audio.SoundDraw, true
		}
		return audio.SoundWin, true
	case events.EventPaused, events.EventMenuSelect:
		return audio.SoundBlip, true
	default:
		return 0, false
	}
}

// HandleEvent plays the sound for a single event
// Mute toggles reach the player only when it implements audio.Muter
func (s *AudioSystem) HandleEvent(ev events.GameEvent) {
	if s.player == nil {
		return
	}
	if ev.Type == events.EventMuteToggled {
		if m, ok := s.player.(audio.Muter); ok {
			m.ToggleMute()
			log.Printf("audio muted: %t", m.IsMuted())
		}
		return
	}
	if st, ok := SoundFor(ev); ok {
		s.player.Play(st)
	}
}

// Drain plays sounds for every pending event and empties the queue
// Returns the consumed events for other observers
func (s *AudioSystem) Drain(q *events.EventQueue) []events.GameEvent {
	evs := q.Consume()
	for _, ev := range evs {
		s.HandleEvent(ev)
	}
	return evs
}
