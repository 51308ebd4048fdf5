package catch

import (
	"math"

	"github.com/vovakirdan/starcatch/internal/config"
)

// Geometry holds the vertical landmarks and reach used by the catch test.
type Geometry struct {
	BandTop    float64 // inclusive
	BandBottom float64 // inclusive
	MissLine   float64 // exclusive
	Reach      float64 // half catcher width + tolerance; distance must be strictly less
}

// NewGeometry derives catch geometry from configuration.
func NewGeometry(cfg config.CatchConfig) Geometry {
	return Geometry{
		BandTop:    cfg.Field.BandTop,
		BandBottom: cfg.Field.BandBottom,
		MissLine:   cfg.Field.MissLine,
		Reach:      cfg.Catcher.HalfWidth() + cfg.Catcher.Tolerance,
	}
}

// Outcome aggregates everything one motion step produced.
type Outcome struct {
	Survivors  []Item
	Caught     []Item // positions are the ones at which they were caught
	Missed     []Item
	ScoreDelta int
	LivesLost  int
}

// Advance moves every item by its fall speed over dt seconds and resolves
// catches and misses against the catcher position. Each item ends up in
// exactly one of Survivors, Caught or Missed. The input slice is not modified.
func Advance(items []Item, catcherX, dt float64, g Geometry) Outcome {
	out := Outcome{Survivors: make([]Item, 0, len(items))}

	for _, it := range items {
		newY := it.Y + it.FallSpeed*dt
		it.Y = newY

		if newY >= g.BandTop && newY <= g.BandBottom && math.Abs(it.X-catcherX) < g.Reach {
			out.Caught = append(out.Caught, it)
			out.ScoreDelta += it.Points()
			continue
		}

		if newY > g.MissLine {
			out.Missed = append(out.Missed, it)
			if it.Category.Good() {
				out.LivesLost++
			}
			continue
		}

		out.Survivors = append(out.Survivors, it)
	}

	return out
}
