package catch

import (
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Round is the mutable state of one play session.
type Round struct {
	Score    int
	Lives    int
	CatcherX float64

	maxLives   int
	halfWidth  float64
	difficulty *config.DifficultyManager
}

// NewRound returns a fresh round: zero score, full lives, catcher at its start.
func NewRound(cfg config.CatchConfig, diff *config.DifficultyManager) Round {
	r := Round{
		Score:      0,
		Lives:      cfg.Round.Lives,
		maxLives:   cfg.Round.Lives,
		halfWidth:  cfg.Catcher.HalfWidth(),
		difficulty: diff,
	}
	r.MoveCatcher(cfg.Catcher.Start)
	return r
}

// Level is derived from score on every call.
func (r Round) Level() int {
	return r.difficulty.Level(r.Score)
}

// MaxLives returns the number of lives a round starts with.
func (r Round) MaxLives() int {
	return r.maxLives
}

// ApplyScoreDelta adds delta to the score, never letting it drop below zero.
func (r *Round) ApplyScoreDelta(delta int) {
	r.Score = core.Max(0, r.Score+delta)
}

// ApplyLivesLost removes n lives (floored at zero) and reports whether the
// round is now out of lives.
func (r *Round) ApplyLivesLost(n int) bool {
	if n > 0 {
		r.Lives = core.Max(0, r.Lives-n)
	}
	return r.Lives == 0
}

// MoveCatcher sets the catcher position, clamped so it stays inside the field.
func (r *Round) MoveCatcher(x float64) {
	r.CatcherX = core.ClampF(x, r.halfWidth, 100-r.halfWidth)
}
