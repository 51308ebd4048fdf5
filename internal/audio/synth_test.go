package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/starcatch/internal/core"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, SampleRate)
	n, peak := drain(t, osc)

	if want := SampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak > 1 || peak < 0.9 {
		t.Errorf("Sine peak out of range: %f", peak)
	}
}

func TestOscillatorWaves(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := NewOscillator(220, 20*time.Millisecond, wave, SampleRate)
		buf := make([][2]float64, 256)
		n, ok := osc.Stream(buf)
		if !ok || n != 256 {
			t.Fatalf("wave %d: got n=%d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("wave %d: bad sample %v", wave, buf[i])
			}
		}
	}
}

func TestEnvelopeFadesEnds(t *testing.T) {
	d := 50 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("Expected full volume in the middle, got %f", mid)
	}
	if last := buf[n-1][0]; last > 0.01 {
		t.Errorf("Expected faded last sample, got %f", last)
	}
}

func TestSoundForEveryCue(t *testing.T) {
	for _, c := range []core.Cue{core.CueGoodCatch, core.CueBadCatch, core.CueLifeLost, core.CueGameOver, core.CueNewBest} {
		s := Sound(c, 0.5)
		if s == nil {
			t.Errorf("%v: expected a sound", c)
			continue
		}
		n, peak := drain(t, s)
		if n == 0 {
			t.Errorf("%v: empty sound", c)
		}
		if n > SampleRate.N(time.Second) {
			t.Errorf("%v: sound too long (%d samples)", c, n)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%v: unexpected peak %f", c, peak)
		}
	}

	if Sound(core.CueNone, 1) != nil {
		t.Error("CueNone should be silent")
	}
}

func TestSilentVolume(t *testing.T) {
	_, peak := drain(t, Sound(core.CueBadCatch, 0))
	if peak != 0 {
		t.Errorf("Expected silence at volume 0, got peak %f", peak)
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(2)
	if p.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", p.volume)
	}

	if err := p.TryPlay(core.CueGoodCatch); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	p.Play(core.CueGameOver)
	p.Close()
}
