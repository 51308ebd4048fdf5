package catch

import (
	"errors"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
)

var (
	star  = Category{Name: "star", Glyph: '★', Points: 10}
	gem   = Category{Name: "diamond", Glyph: '◆', Points: 25}
	fire  = Category{Name: "fire", Glyph: '▲', Points: -10}
	skull = Category{Name: "skull", Glyph: '✖', Points: -20}
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func testGeometry() Geometry {
	return NewGeometry(config.DefaultCatchConfig())
}

// memStore is an in-memory HighScoreStore that counts writes.
type memStore struct {
	value    int
	writes   int
	readErr  error
	writeErr error
}

func (s *memStore) Read() (int, error) {
	if s.readErr != nil {
		return 0, s.readErr
	}
	return s.value, nil
}

func (s *memStore) Write(score int) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.value = score
	return nil
}

var errDisk = errors.New("disk on fire")

// startedMachine returns a machine that has just entered playing.
func startedMachine(store *memStore) *Machine {
	var m *Machine
	if store == nil {
		m = NewMachine(config.DefaultCatchConfig(), 1, nil)
	} else {
		m = NewMachine(config.DefaultCatchConfig(), 1, store)
	}
	m.Start()
	return m
}
