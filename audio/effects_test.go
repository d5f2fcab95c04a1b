package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every left-channel sample
func drain(t *testing.T, s beep.Streamer, limit int) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] != buf[i][1] {
				t.Fatalf("Channels differ at sample %d", len(out))
			}
			out = append(out, buf[i][0])
		}
		if !ok || n == 0 {
			return out
		}
		if len(out) > limit {
			t.Fatalf("Stream exceeded %d samples", limit)
		}
	}
}

// TestEffectLengthsAndBounds verifies each duel sound has its configured length and stays in range
func TestEffectLengthsAndBounds(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for st := SoundFire; st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			want := scoreFor(st).samples(rate)
			if want == 0 {
				t.Fatal("Empty score")
			}

			samples := drain(t, GetSoundEffect(st, cfg), cfg.SampleRate)
			if len(samples) != want {
				t.Errorf("Length = %d samples, want %d", len(samples), want)
			}
			peak := 0.0
			for i, v := range samples {
				if v < -1 || v > 1 {
					t.Fatalf("Sample %d out of range: %f", i, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
			if peak == 0 {
				t.Error("Sound is silent")
			}
		})
	}
}

func TestEffectsAreShortEnoughForPlay(t *testing.T) {
	rate := beep.SampleRate(DefaultAudioConfig().SampleRate)
	for st := SoundFire; st < soundTypeCount; st++ {
		if n := scoreFor(st).samples(rate); n > rate.N(500*time.Millisecond) {
			t.Errorf("%s lasts %d samples, longer than half a second", st, n)
		}
	}
}

func TestGetSoundEffectUnknown(t *testing.T) {
	if GetSoundEffect(soundTypeCount, DefaultAudioConfig()) != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[SoundBlip] = 0

	for i, v := range drain(t, GetSoundEffect(SoundBlip, cfg), cfg.SampleRate) {
		if v != 0 {
			t.Fatalf("Expected silence, got %f at %d", v, i)
		}
	}
}

// TestToneEnvelopeRamps checks a tone starts and ends at zero and peaks at full gain
func TestToneEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := Tone{Wave: WaveSquare, StartHz: 440, EndHz: 440, Gain: 0.5,
		Length: 100 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 20 * time.Millisecond}

	samples := drain(t, tone.Streamer(rate), int(rate))
	if samples[0] != 0 {
		t.Errorf("First sample = %f, want 0 at start of attack", samples[0])
	}
	if last := samples[len(samples)-1]; math.Abs(last) > 0.5/float64(rate.N(20*time.Millisecond))+1e-9 {
		t.Errorf("Last sample = %f, want near 0 at end of release", last)
	}
	if mid := samples[len(samples)/2]; math.Abs(mid) != 0.5 {
		t.Errorf("Sustain sample = %f, want +-0.5", mid)
	}
}

// zeroCrossings counts sign changes in samples[from:to]
func zeroCrossings(samples []float64, from, to int) int {
	n := 0
	for i := from + 1; i < to; i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) && samples[i-1] != 0 && samples[i] != 0 {
			n++
		}
	}
	return n
}

func TestFireSoundFallsInPitch(t *testing.T) {
	cfg := DefaultAudioConfig()
	samples := drain(t, GetSoundEffect(SoundFire, cfg), cfg.SampleRate)

	q := len(samples) / 4
	early := zeroCrossings(samples, 0, q)
	late := zeroCrossings(samples, 2*q, 3*q)
	if early <= late {
		t.Errorf("Expected falling pitch, early crossings %d late %d", early, late)
	}
}

func TestHitSoundLayersNoise(t *testing.T) {
	cfg := DefaultAudioConfig()
	samples := drain(t, GetSoundEffect(SoundHit, cfg), cfg.SampleRate)

	// A 50-90 Hz thud alone crosses zero a handful of times in 20 ms; noise crosses constantly
	window := beep.SampleRate(cfg.SampleRate).N(20 * time.Millisecond)
	if c := zeroCrossings(samples, 0, window); c < 50 {
		t.Errorf("Expected noisy hit, got %d crossings in the first 20 ms", c)
	}
}
