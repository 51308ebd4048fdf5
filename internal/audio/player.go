package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starcatch/internal/core"
)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio: not initialized")

// Player plays cue sounds through the system speaker.
// Playing never blocks the game loop; sounds are mixed by the speaker goroutine.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Init opens the audio device. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for c. It does nothing before Init or for silent cues.
func (p *Player) Play(c core.Cue) {
	_ = p.TryPlay(c)
}

// TryPlay is Play with a report of why nothing was queued.
func (p *Player) TryPlay(c core.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	s := Sound(c, p.volume)
	if s == nil {
		return nil
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Close silences pending sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
