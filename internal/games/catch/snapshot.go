package catch

// ItemSnapshot is the render view of one falling item.
type ItemSnapshot struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category"`
	Glyph    string  `json:"glyph"`
	Points   int     `json:"points"`
}

// FeedbackSnapshot is the render view of a pending catch pop-up.
type FeedbackSnapshot struct {
	ItemID int     `json:"item_id"`
	X      float64 `json:"x"`
	Points int     `json:"points"`
}

// Snapshot captures the complete game state for rendering, spectators and
// determinism testing. It shares no memory with the machine.
type Snapshot struct {
	Tick         uint64             `json:"tick"`
	State        string             `json:"state"`
	Score        int                `json:"score"`
	Lives        int                `json:"lives"`
	MaxLives     int                `json:"max_lives"`
	Level        int                `json:"level"`
	HighScore    int                `json:"high_score"`
	CatcherX     float64            `json:"catcher_x"`
	CatcherWidth float64            `json:"catcher_width"`
	Items        []ItemSnapshot     `json:"items"`
	Feedback     []FeedbackSnapshot `json:"feedback"`
	NewHighScore bool               `json:"new_high_score"`
}

// Snapshot returns a copy of the machine state.
func (m *Machine) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(m.items))
	for _, it := range m.items {
		items = append(items, ItemSnapshot{
			ID:       it.ID,
			X:        it.X,
			Y:        it.Y,
			Category: it.Category.Name,
			Glyph:    string(it.Category.Glyph),
			Points:   it.Points(),
		})
	}

	active := m.feedback.Active()
	fb := make([]FeedbackSnapshot, 0, len(active))
	for _, f := range active {
		fb = append(fb, FeedbackSnapshot{ItemID: f.ItemID, X: f.X, Points: f.Points})
	}

	return Snapshot{
		Tick:         m.ticks,
		State:        m.state.String(),
		Score:        m.round.Score,
		Lives:        m.round.Lives,
		MaxLives:     m.round.MaxLives(),
		Level:        m.round.Level(),
		HighScore:    m.highScore,
		CatcherX:     m.round.CatcherX,
		CatcherWidth: m.cfg.Catcher.Width,
		Items:        items,
		Feedback:     fb,
		NewHighScore: m.NewHighScore(),
	}
}

// NewHighScore reports whether the finished round matched or beat the best score.
func (m *Machine) NewHighScore() bool {
	return m.state == StateGameOver && m.round.Score > 0 && m.round.Score >= m.highScore
}
