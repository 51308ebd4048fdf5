// Package audio synthesizes the game's sound cues with beep.
// Every sound is generated from oscillators at runtime; there are no assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/starcatch/internal/core"
)

// SampleRate is the output rate used for all generated sounds.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Note frequencies in Hz.
const (
	noteA2 = 110.00
	noteE3 = 164.81
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteA5 = 880.00
	noteC6 = 1046.50
)

// oscillator generates a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and duration.
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator.
func tone(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, SampleRate), d, 5*time.Millisecond, d/2, SampleRate)
}

// melody plays notes back to back, each lasting d.
func melody(d time.Duration, wave WaveType, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, d, wave)
	}
	return beep.Seq(notes...)
}

// Sound builds the streamer for a cue at the given volume, or nil for
// cues without a sound.
func Sound(c core.Cue, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueGoodCatch:
		// Bright two-note chime with an octave overtone.
		s = beep.Mix(
			newVolume(melody(60*time.Millisecond, WaveSine, noteE5, noteA5), 0.7),
			newVolume(melody(60*time.Millisecond, WaveSine, noteE5*2, noteA5*2), 0.3),
		)
	case core.CueBadCatch:
		s = tone(noteA2, 150*time.Millisecond, WaveSaw)
	case core.CueLifeLost:
		s = melody(120*time.Millisecond, WaveSquare, noteA3, noteE3)
	case core.CueGameOver:
		s = melody(180*time.Millisecond, WaveSquare, noteG4, noteE4, noteC4, noteA3)
	case core.CueNewBest:
		s = melody(90*time.Millisecond, WaveSine, noteA4, noteC5, noteE5, noteA5, noteC6)
	default:
		return nil
	}
	return newVolume(s, volume)
}
