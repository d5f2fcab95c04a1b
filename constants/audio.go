package constants

import "time"

// Audio Engine Defaults
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond
)

// Fire Sound Timing
const (
	FireSoundDuration = 90 * time.Millisecond
	FireSoundAttack   = 3 * time.Millisecond
	FireSoundRelease  = 60 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 220 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 180 * time.Millisecond
)

// Win Sound Timing
const (
	WinSoundNote1Duration = 120 * time.Millisecond
	WinSoundNote2Duration = 360 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundNote1Release  = 60 * time.Millisecond
	WinSoundNote2Release  = 280 * time.Millisecond
)

// Draw Sound Timing
const (
	DrawSoundDuration = 300 * time.Millisecond
	DrawSoundAttack   = 10 * time.Millisecond
	DrawSoundRelease  = 120 * time.Millisecond
)

// Blip Sound Timing (pause, menu select)
const (
	BlipSoundDuration = 40 * time.Millisecond
	BlipSoundAttack   = 2 * time.Millisecond
	BlipSoundRelease  = 20 * time.Millisecond
)
