package audio

import "github.com/lixenwraith/spacewar/constants"

// AudioConfig holds audio engine parameters
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundFire: 0.5,
			SoundHit:  0.9,
			SoundWin:  0.7,
			SoundDraw: 0.7,
			SoundBlip: 0.4,
		},
	}
}

// EffectVolume returns the effective volume of a sound after the master volume
func (c *AudioConfig) EffectVolume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}
