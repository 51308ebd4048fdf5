package catch

import (
	"fmt"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// State is the phase of the game.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// TickResult describes what one call to Machine.Tick did.
type TickResult struct {
	State      State
	Spawned    bool
	Caught     []Item
	Missed     []Item
	ScoreDelta int
	LivesLost  int
	GameOver   bool // the round ended during this tick
	NewBest    bool // the round ended with a new high score
	Err        error
}

// Machine owns the round and drives it one frame at a time:
// menu -> playing -> gameover -> playing ...
// It is not safe for concurrent use; the platform calls it from a single loop.
type Machine struct {
	cfg        config.CatchConfig
	difficulty *config.DifficultyManager
	geometry   Geometry
	spawner    *Spawner
	clock      FrameClock
	feedback   FeedbackQueue
	store      core.HighScoreStore

	state      State
	round      Round
	items      []Item
	highScore  int
	ticks      uint64
	pendingErr error
}

// NewMachine creates a machine in the menu state. store may be nil.
func NewMachine(cfg config.CatchConfig, seed int64, store core.HighScoreStore) *Machine {
	diff := config.NewDifficultyManager(cfg.Spawn, cfg.Round.PointsPerLevel)
	m := &Machine{
		cfg:        cfg,
		difficulty: diff,
		geometry:   NewGeometry(cfg),
		spawner:    NewSpawner(seed, cfg, diff),
		feedback:   NewFeedbackQueue(time.Duration(cfg.Round.FeedbackMs) * time.Millisecond),
		store:      store,
		state:      StateMenu,
		round:      NewRound(cfg, diff),
	}
	m.pendingErr = m.refreshHighScore()
	return m
}

// Start begins a new round from the menu or game over screen.
// It does nothing while a round is in progress and reports whether it started one.
func (m *Machine) Start() bool {
	if m.state == StatePlaying {
		return false
	}
	if err := m.refreshHighScore(); err != nil {
		m.pendingErr = err
	}
	m.round = NewRound(m.cfg, m.difficulty)
	m.items = m.items[:0]
	m.spawner.Reset()
	m.clock.Reset()
	m.feedback.Clear()
	m.ticks = 0
	m.state = StatePlaying
	return true
}

// MoveCatcher sets the catcher position (clamped). Ignored outside a round.
func (m *Machine) MoveCatcher(x float64) bool {
	if m.state != StatePlaying {
		return false
	}
	m.round.MoveCatcher(x)
	return true
}

// Nudge moves the catcher one keyboard step left (dir < 0) or right (dir > 0).
func (m *Machine) Nudge(dir int) bool {
	switch {
	case dir < 0:
		return m.MoveCatcher(m.round.CatcherX - m.cfg.Catcher.KeyStep)
	case dir > 0:
		return m.MoveCatcher(m.round.CatcherX + m.cfg.Catcher.KeyStep)
	default:
		return false
	}
}

// Tick advances the game to the frame timestamp now.
// Outside a round only pop-up expiry runs.
func (m *Machine) Tick(now time.Time) TickResult {
	res := TickResult{Err: m.pendingErr}
	m.pendingErr = nil

	if m.state != StatePlaying {
		m.feedback.Expire(now)
		res.State = m.state
		return res
	}

	m.ticks++
	dt := m.clock.Advance(now)
	level := m.round.Level()

	if item, ok := m.spawner.Maybe(now, level); ok {
		m.items = append(m.items, item)
		res.Spawned = true
	}

	out := Advance(m.items, m.round.CatcherX, dt, m.geometry)
	m.items = out.Survivors
	for _, it := range out.Caught {
		m.feedback.Push(Feedback{ItemID: it.ID, X: it.X, Points: it.Points(), At: now})
	}

	// Deltas are applied once per tick, after every item has been resolved.
	m.round.ApplyScoreDelta(out.ScoreDelta)
	exhausted := m.round.ApplyLivesLost(out.LivesLost)

	res.Caught = out.Caught
	res.Missed = out.Missed
	res.ScoreDelta = out.ScoreDelta
	res.LivesLost = out.LivesLost

	if exhausted {
		newBest, err := m.enterGameOver()
		res.GameOver = true
		res.NewBest = newBest
		if err != nil {
			res.Err = err
		}
	}

	m.feedback.Expire(now)
	res.State = m.state
	return res
}

// enterGameOver freezes the round and persists a new best score.
func (m *Machine) enterGameOver() (bool, error) {
	m.state = StateGameOver
	return m.recordHighScore(m.round.Score)
}

// recordHighScore writes score if it beats the known best.
// Repeating the call with the same score does not write again.
func (m *Machine) recordHighScore(score int) (bool, error) {
	if score <= m.highScore {
		return false, nil
	}
	m.highScore = score
	if m.store == nil {
		return true, nil
	}
	if err := m.store.Write(score); err != nil {
		return true, fmt.Errorf("catch: save high score %d: %w", score, err)
	}
	return true, nil
}

// refreshHighScore reloads the best score. On failure the cached value stays.
func (m *Machine) refreshHighScore() error {
	if m.store == nil {
		return nil
	}
	best, err := m.store.Read()
	if err != nil {
		return fmt.Errorf("catch: read high score: %w", err)
	}
	if best > m.highScore {
		m.highScore = best
	}
	return nil
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.state
}

// Round returns a copy of the current round.
func (m *Machine) Round() Round {
	return m.round
}

// Items returns a copy of the live items.
func (m *Machine) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// HighScore returns the best score known to this machine.
func (m *Machine) HighScore() int {
	return m.highScore
}

// Feedback returns the pending catch pop-ups.
func (m *Machine) Feedback() []Feedback {
	return m.feedback.Active()
}

// Ticks returns how many frames the current round has run.
func (m *Machine) Ticks() uint64 {
	return m.ticks
}

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.CatchConfig {
	return m.cfg
}
