// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// CatchConfig contains all configuration for the Star Catch game.
// Positions and distances are percentages of the play field; speeds are
// percent of field height per second.
type CatchConfig struct {
	Field      CatchField      `yaml:"field"`
	Catcher    CatchCatcher    `yaml:"catcher"`
	Spawn      CatchSpawn      `yaml:"spawn"`
	Round      CatchRound      `yaml:"round"`
	Categories []CatchCategory `yaml:"categories"`
}

// CatchField defines the vertical landmarks of the play field.
type CatchField struct {
	SpawnY      float64 `yaml:"spawn_y"`      // Items appear here, above the visible field
	SpawnMargin float64 `yaml:"spawn_margin"` // Items spawn in [margin, 100-margin]
	BandTop     float64 `yaml:"band_top"`     // Catch band upper bound (inclusive)
	BandBottom  float64 `yaml:"band_bottom"`  // Catch band lower bound (inclusive)
	MissLine    float64 `yaml:"miss_line"`    // Items strictly below this are missed
	CatcherY    float64 `yaml:"catcher_y"`    // Where the catcher is drawn
	FeedbackY   float64 `yaml:"feedback_y"`   // Where catch pop-ups are drawn
}

// CatchCatcher defines the player-controlled catcher.
type CatchCatcher struct {
	Width     float64 `yaml:"width"`
	Tolerance float64 `yaml:"tolerance"` // Extra reach beyond half the width
	Start     float64 `yaml:"start"`
	KeyStep   float64 `yaml:"key_step"` // Distance moved per keyboard nudge
}

// HalfWidth returns half the catcher width.
func (c CatchCatcher) HalfWidth() float64 {
	return c.Width / 2
}

// CatchSpawn defines spawn cadence and fall speed scaling.
type CatchSpawn struct {
	BaseIntervalMs int     `yaml:"base_interval_ms"`
	LevelStepMs    int     `yaml:"level_step_ms"`
	MinIntervalMs  int     `yaml:"min_interval_ms"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedVariance  float64 `yaml:"speed_variance"`
	LevelSpeed     float64 `yaml:"level_speed"`
}

// CatchRound defines per-round rules.
type CatchRound struct {
	Lives          int `yaml:"lives"`
	PointsPerLevel int `yaml:"points_per_level"`
	FeedbackMs     int `yaml:"feedback_ms"`
}

// CatchCategory is one kind of falling item.
type CatchCategory struct {
	Name   string `yaml:"name"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
	Points int    `yaml:"points"`
}

// Validate reports configuration values the game cannot run with.
func (c CatchConfig) Validate() error {
	var errs []error
	if c.Catcher.Width <= 0 || c.Catcher.Width >= 100 {
		errs = append(errs, fmt.Errorf("catcher.width must be in (0, 100), got %v", c.Catcher.Width))
	}
	if c.Field.BandTop > c.Field.BandBottom {
		errs = append(errs, fmt.Errorf("field.band_top (%v) must not exceed field.band_bottom (%v)", c.Field.BandTop, c.Field.BandBottom))
	}
	if c.Field.MissLine <= c.Field.BandBottom {
		errs = append(errs, fmt.Errorf("field.miss_line (%v) must be below the catch band", c.Field.MissLine))
	}
	if c.Field.SpawnMargin < 0 || c.Field.SpawnMargin >= 50 {
		errs = append(errs, fmt.Errorf("field.spawn_margin must be in [0, 50), got %v", c.Field.SpawnMargin))
	}
	if c.Round.Lives <= 0 {
		errs = append(errs, fmt.Errorf("round.lives must be positive, got %d", c.Round.Lives))
	}
	if c.Round.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("round.points_per_level must be positive, got %d", c.Round.PointsPerLevel))
	}
	if c.Spawn.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn.min_interval_ms must be positive, got %d", c.Spawn.MinIntervalMs))
	}
	if len(c.Categories) == 0 {
		errs = append(errs, errors.New("at least one category is required"))
	}
	for i, cat := range c.Categories {
		if cat.Points == 0 {
			errs = append(errs, fmt.Errorf("categories[%d] (%s): points must be non-zero", i, cat.Name))
		}
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" (use config as-is).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
