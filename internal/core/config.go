package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HighScores persists the best score across sessions. May be nil,
	// in which case the best score lives only as long as the game.
	HighScores HighScoreStore
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// HighScoreStore is the persistence boundary for a single best score.
// Read returns 0 when nothing has been stored yet.
type HighScoreStore interface {
	Read() (int, error)
	Write(score int) error
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Playing  bool // Whether a round is in progress
	GameOver bool // Whether the last round has ended
}

// Cue is a presentation hint emitted by a simulation tick.
// The platform maps cues to sounds; games never play audio themselves.
type Cue int

const (
	CueNone      Cue = iota
	CueGoodCatch     // caught an item worth points
	CueBadCatch      // caught an item that costs points
	CueLifeLost      // a good item fell past the catcher
	CueGameOver      // the round ended
	CueNewBest       // the round ended with a new high score
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueGoodCatch:
		return "GoodCatch"
	case CueBadCatch:
		return "BadCatch"
	case CueLifeLost:
		return "LifeLost"
	case CueGameOver:
		return "GameOver"
	case CueNewBest:
		return "NewBest"
	default:
		return "None"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
	// Err carries a non-fatal adapter failure (e.g. a high score that could
	// not be written). The tick itself always completes.
	Err error
}
