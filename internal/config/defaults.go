package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in Star Catch configuration.
// It mirrors defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: CatchField{
			SpawnY:      -5,
			SpawnMargin: 4,
			BandTop:     85,
			BandBottom:  95,
			MissLine:    105,
			CatcherY:    88,
			FeedbackY:   78,
		},
		Catcher: CatchCatcher{
			Width:     14,
			Tolerance: 2,
			Start:     50,
			KeyStep:   4,
		},
		Spawn: CatchSpawn{
			BaseIntervalMs: 1200,
			LevelStepMs:    80,
			MinIntervalMs:  400,
			BaseSpeed:      15,
			SpeedVariance:  10,
			LevelSpeed:     3,
		},
		Round: CatchRound{
			Lives:          3,
			PointsPerLevel: 100,
			FeedbackMs:     600,
		},
		Categories: []CatchCategory{
			{Name: "star", Glyph: "★", Color: "yellow", Points: 10},
			{Name: "diamond", Glyph: "◆", Color: "cyan", Points: 25},
			{Name: "blossom", Glyph: "✿", Color: "magenta", Points: 15},
			{Name: "candy", Glyph: "●", Color: "white", Points: 5},
			{Name: "heart", Glyph: "♥", Color: "bright_magenta", Points: 20},
			{Name: "fire", Glyph: "▲", Color: "orange", Points: -10},
			{Name: "skull", Glyph: "✖", Color: "gray", Points: -20},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catch":
		return defaultCatchYAML
	default:
		return nil
	}
}
