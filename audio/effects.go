package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/spacewar/constants"
)

// Wave is an oscillator shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one synthesized note: a linear pitch glide from StartHz to EndHz,
// shaped by a linear attack and release
type Tone struct {
	Wave    Wave
	StartHz float64
	EndHz   float64
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
	Gain    float64 // Mix level within its chord
}

// Streamer renders the tone at rate
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &voice{
		tone:    t,
		total:   rate.N(t.Length),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
		rate:    float64(rate),
	}
}

// voice streams a single Tone
type voice struct {
	tone    Tone
	total   int // Samples
	attack  int
	release int
	rate    float64

	pos   int
	phase float64 // [0, 1)
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= v.total {
		return 0, false
	}
	for n < len(samples) && v.pos < v.total {
		s := v.wave() * v.level() * v.tone.Gain
		samples[n] = [2]float64{s, s}

		progress := float64(v.pos) / float64(v.total)
		hz := v.tone.StartHz + (v.tone.EndHz-v.tone.StartHz)*progress
		v.phase += hz / v.rate
		v.phase -= math.Floor(v.phase)
		v.pos++
		n++
	}
	return n, true
}

func (v *voice) Err() error { return nil }

func (v *voice) wave() float64 {
	switch v.tone.Wave {
	case WaveSquare:
		if v.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*v.phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * v.phase)
	}
}

// level is the envelope gain at the current sample; overlapping ramps take the lower
func (v *voice) level() float64 {
	g := 1.0
	if v.pos < v.attack {
		g = float64(v.pos) / float64(v.attack)
	}
	if left := v.total - v.pos; left <= v.release {
		if r := float64(left) / float64(v.release); r < g {
			g = r
		}
	}
	return g
}

// score is a sound as a sequence of chords; the tones of one chord play together
type score [][]Tone

// samples returns the total length of the score at rate
func (s score) samples(rate beep.SampleRate) int {
	total := 0
	for _, chord := range s {
		longest := 0
		for _, t := range chord {
			if n := rate.N(t.Length); n > longest {
				longest = n
			}
		}
		total += longest
	}
	return total
}

// scoreFor returns the notes of each sound effect, nil for unknown types
func scoreFor(st SoundType) score {
	switch st {
	case SoundFire:
		// Falling zap
		return score{{
			{Wave: WaveSquare, StartHz: 1320, EndHz: 440, Gain: 1,
				Length: constants.FireSoundDuration, Attack: constants.FireSoundAttack, Release: constants.FireSoundRelease},
		}}
	case SoundHit:
		// Noise burst over a dropping thud
		return score{{
			{Wave: WaveNoise, Gain: 0.6,
				Length: constants.HitSoundDuration, Attack: constants.HitSoundAttack, Release: constants.HitSoundRelease},
			{Wave: WaveSine, StartHz: 90, EndHz: 50, Gain: 0.4,
				Length: constants.HitSoundDuration, Attack: constants.HitSoundAttack, Release: constants.HitSoundRelease},
		}}
	case SoundWin:
		// E5 then A5
		return score{
			{{Wave: WaveSquare, StartHz: 659.25, EndHz: 659.25, Gain: 1,
				Length: constants.WinSoundNote1Duration, Attack: constants.WinSoundAttack, Release: constants.WinSoundNote1Release}},
			{{Wave: WaveSquare, StartHz: 880, EndHz: 880, Gain: 1,
				Length: constants.WinSoundNote2Duration, Attack: constants.WinSoundAttack, Release: constants.WinSoundNote2Release}},
		}
	case SoundDraw:
		// Sagging saw buzz
		return score{{
			{Wave: WaveSaw, StartHz: 110, EndHz: 70, Gain: 1,
				Length: constants.DrawSoundDuration, Attack: constants.DrawSoundAttack, Release: constants.DrawSoundRelease},
		}}
	case SoundBlip:
		return score{{
			{Wave: WaveSine, StartHz: 1000, EndHz: 1000, Gain: 1,
				Length: constants.BlipSoundDuration, Attack: constants.BlipSoundAttack, Release: constants.BlipSoundRelease},
		}}
	default:
		return nil
	}
}

// GetSoundEffect renders a sound as a finite stream at the configured rate and effect volume
// Returns nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	sc := scoreFor(st)
	if sc == nil {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	chords := make([]beep.Streamer, len(sc))
	for i, chord := range sc {
		if len(chord) == 1 {
			chords[i] = chord[0].Streamer(rate)
			continue
		}
		layers := make([]beep.Streamer, len(chord))
		for j, t := range chord {
			layers[j] = t.Streamer(rate)
		}
		chords[i] = beep.Mix(layers...)
	}
	sound := beep.Take(sc.samples(rate), beep.Seq(chords...))
	return withGain(sound, cfg.EffectVolume(st))
}

// withGain scales s by a linear gain; effects.Volume is logarithmic, so zero maps to Silent
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2, Silent: gain <= 0}
	if gain > 0 {
		v.Volume = math.Log2(gain)
	}
	return v
}
