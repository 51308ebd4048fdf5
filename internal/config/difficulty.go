package config

import (
	"math/rand"
	"time"
)

// DifficultyManager derives level, spawn cadence and fall speed from score.
// Level is always computed, never stored, so it cannot drift from the score.
type DifficultyManager struct {
	spawn          CatchSpawn
	pointsPerLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(spawn CatchSpawn, pointsPerLevel int) *DifficultyManager {
	if pointsPerLevel <= 0 {
		pointsPerLevel = 100
	}
	return &DifficultyManager{
		spawn:          spawn,
		pointsPerLevel: pointsPerLevel,
	}
}

// Level returns the difficulty tier for a score: floor(score/pointsPerLevel) + 1.
func (d *DifficultyManager) Level(score int) int {
	if score < 0 {
		score = 0
	}
	return score/d.pointsPerLevel + 1
}

// SpawnInterval returns the minimum gap between spawns at the given level:
// max(min, base - level*step).
func (d *DifficultyManager) SpawnInterval(level int) time.Duration {
	ms := d.spawn.BaseIntervalMs - level*d.spawn.LevelStepMs
	if ms < d.spawn.MinIntervalMs {
		ms = d.spawn.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// FallSpeed draws a fall speed for a new item: base + U(0, variance) + level*levelSpeed.
func (d *DifficultyManager) FallSpeed(level int, rng *rand.Rand) float64 {
	return d.spawn.BaseSpeed + rng.Float64()*d.spawn.SpeedVariance + float64(level)*d.spawn.LevelSpeed
}
