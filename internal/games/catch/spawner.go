package catch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
)

// Spawner creates falling items at a cadence that tightens with level.
type Spawner struct {
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	catalogue  []Category
	field      config.CatchField

	nextID    int
	lastSpawn time.Time
	spawned   bool // false until the first spawn of the round
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, cfg config.CatchConfig, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: diff,
		catalogue:  NewCatalogue(cfg.Categories),
		field:      cfg.Field,
	}
}

// Reset restarts ID assignment and spawn timing for a new round.
// The RNG keeps its sequence so consecutive rounds differ.
func (s *Spawner) Reset() {
	s.nextID = 0
	s.lastSpawn = time.Time{}
	s.spawned = false
}

// Due reports whether an item should spawn at now for the given level.
// The first call of a round is always due.
func (s *Spawner) Due(now time.Time, level int) bool {
	if !s.spawned {
		return true
	}
	return now.Sub(s.lastSpawn) > s.difficulty.SpawnInterval(level)
}

// Spawn builds a new item at the top of the field and records the spawn time.
func (s *Spawner) Spawn(now time.Time, level int) Item {
	margin := s.field.SpawnMargin
	item := Item{
		ID:        s.nextID,
		X:         margin + s.rng.Float64()*(100-2*margin),
		Y:         s.field.SpawnY,
		Category:  s.catalogue[s.rng.Intn(len(s.catalogue))],
		FallSpeed: s.difficulty.FallSpeed(level, s.rng),
	}
	s.nextID++
	s.lastSpawn = now
	s.spawned = true
	return item
}

// Maybe spawns at most one item if the cadence allows it.
func (s *Spawner) Maybe(now time.Time, level int) (Item, bool) {
	if !s.Due(now, level) {
		return Item{}, false
	}
	return s.Spawn(now, level), true
}
