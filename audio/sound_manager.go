package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/spacewar/constants"
)

// SoundManager plays duel effects through the beep speaker
// Play is fire-and-forget: each effect joins a shared mixer and is never awaited
type SoundManager struct {
	cfg   *AudioConfig
	mixer *beep.Mixer

	mu     sync.Mutex
	ready  bool // Speaker open and mixer attached
	muted  bool
	queued uint64
}

// NewSoundManager creates a manager that starts muted when cfg disables audio; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{cfg: cfg, mixer: &beep.Mixer{}, muted: !cfg.Enabled}
}

// Initialize opens the speaker and attaches the mixer
// A failure leaves the manager silent; repeated calls after success do nothing
func (s *SoundManager) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	rate := beep.SampleRate(s.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", s.cfg.SampleRate, err)
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Cleanup drops every effect still playing
func (s *SoundManager) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		s.withSpeaker(s.mixer.Clear)
		s.ready = false
	}
}

// withSpeaker runs fn while the speaker goroutine is locked out of the mixer
func (s *SoundManager) withSpeaker(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

// Play queues an effect and reports whether it will be heard
func (s *SoundManager) Play(st SoundType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready || s.muted {
		return false
	}

	effect := GetSoundEffect(st, s.cfg)
	if effect == nil {
		return false
	}
	s.withSpeaker(func() { s.mixer.Add(effect) })
	s.queued++
	return true
}

// ToggleMute flips the mute state; muted effects are dropped, not deferred
func (s *SoundManager) ToggleMute() {
	s.mu.Lock()
	s.muted = !s.muted
	s.mu.Unlock()
}

// IsMuted reports the mute state
func (s *SoundManager) IsMuted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Played returns how many effects were queued since creation
func (s *SoundManager) Played() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queued
}
