package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire SoundType = iota // Projectile emitted
	SoundHit                   // Projectile struck a ship
	SoundWin                   // Round decided with a winner
	SoundDraw                  // Both ships destroyed together
	SoundBlip                  // Pause and menu select
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	case SoundWin:
		return "win"
	case SoundDraw:
		return "draw"
	case SoundBlip:
		return "blip"
	default:
		return "unknown"
	}
}

// Player is the fire-and-forget audio sink
// Play never blocks on playback and reports whether the sound was queued
type Player interface {
	Play(st SoundType) bool
}

// Muter is implemented by players that can be silenced at runtime
type Muter interface {
	ToggleMute()
	IsMuted() bool
}

// ErrNotInitialized is returned by operations that need the speaker
var ErrNotInitialized = errors.New("audio not initialized")
