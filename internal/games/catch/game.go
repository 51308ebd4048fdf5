package catch

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "catch"

// Minimum playable terminal size.
const (
	minScreenW = 30
	minScreenH = 14
)

// HUD glyphs.
const (
	HeartFull    = '♥'
	HeartEmpty   = '♡'
	CatcherGlyph = '▀'
	FieldRule    = '─'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Machine to the registry Game interface and draws it.
type Game struct {
	machine *Machine
	cfg     config.CatchConfig

	screenW int
	screenH int
	frame   time.Duration
	now     time.Time // synthetic clock used when input frames carry no timestamp

	loadErr error
}

// New creates a Star Catch game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Star Catch"
}

// Reset loads configuration and puts the game on its start menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		g.loadErr = fmt.Errorf("catch: load config: %w", err)
		cfg = config.DefaultCatchConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCatchPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(rc, cfg)
}

// ResetWith is Reset with an explicit configuration.
func (g *Game) ResetWith(rc core.RuntimeConfig, cfg config.CatchConfig) {
	g.cfg = cfg
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	rate := rc.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.frame = time.Second / time.Duration(rate)
	g.now = time.Unix(0, 0)

	g.machine = NewMachine(cfg, rc.Seed, rc.HighScores)
}

// Step applies input then advances one frame. A frame without a timestamp
// advances a synthetic clock by one tick period.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	if in.Has(core.ActionConfirm) {
		g.machine.Start()
	}
	if in.HasPointer {
		g.machine.MoveCatcher(in.Pointer)
	}
	if in.Has(core.ActionLeft) {
		g.machine.Nudge(-1)
	}
	if in.Has(core.ActionRight) {
		g.machine.Nudge(1)
	}

	now := in.At
	if now.IsZero() {
		now = g.now.Add(g.frame)
	}
	g.now = now

	res := g.machine.Tick(now)
	for _, it := range res.Caught {
		if it.Category.Good() {
			cues = append(cues, core.CueGoodCatch)
		} else {
			cues = append(cues, core.CueBadCatch)
		}
	}
	if res.LivesLost > 0 && !res.GameOver {
		cues = append(cues, core.CueLifeLost)
	}
	if res.GameOver {
		cues = append(cues, core.CueGameOver)
	}
	if res.NewBest {
		cues = append(cues, core.CueNewBest)
	}

	err := res.Err
	if g.loadErr != nil {
		err = g.loadErr
		g.loadErr = nil
	}

	return core.StepResult{
		State: g.State(),
		Cues:  cues,
		Err:   err,
	}
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	r := g.machine.Round()
	return core.GameState{
		Score:    r.Score,
		Playing:  g.machine.State() == StatePlaying,
		GameOver: g.machine.State() == StateGameOver,
	}
}

// Machine exposes the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.machine.Snapshot()
}

// SpectatorState implements registry.Spectatable.
func (g *Game) SpectatorState() any {
	return g.machine.Snapshot()
}

// Render draws the current screen: menu, field or game over.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	snap := g.machine.Snapshot()
	switch g.machine.State() {
	case StateMenu:
		g.renderMenu(dst, snap)
	case StatePlaying:
		g.renderHUD(dst, snap)
		g.renderField(dst, snap)
	case StateGameOver:
		g.renderHUD(dst, snap)
		g.renderGameOver(dst, snap)
	}
}

// fieldTop is the first row below the HUD.
const fieldTop = 2

func fieldRows(dst *core.Screen) int {
	return dst.Height() - fieldTop
}

// renderHUD draws lives, score and level on row 0 and a rule on row 1.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	for i := 0; i < snap.MaxLives; i++ {
		if i < snap.Lives {
			dst.SetColor(1+i*2, 0, HeartFull, core.ColorRed)
		} else {
			dst.SetColor(1+i*2, 0, HeartEmpty, core.ColorGray)
		}
	}

	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)

	level := fmt.Sprintf("Lv.%d", snap.Level)
	dst.DrawTextColor(dst.Width()-len(level)-1, 0, level, core.ColorBrightCyan)

	dst.DrawHLine(0, 1, dst.Width(), FieldRule, core.ColorGray)
}

// renderField draws items, the catcher and catch pop-ups.
func (g *Game) renderField(dst *core.Screen, snap Snapshot) {
	rows := fieldRows(dst)
	w := dst.Width()

	// Items above the field or past its bottom are not drawn.
	for _, it := range g.machine.Items() {
		if it.Y < 0 || it.Y > 100 {
			continue
		}
		dst.SetColor(core.Scale(it.X, w, 0), core.Scale(it.Y, rows, fieldTop), it.Category.Glyph, it.Category.Color)
	}

	cw := max(1, int(snap.CatcherWidth/100*float64(w)+0.5))
	cx := core.Scale(snap.CatcherX, w, 0) - cw/2
	cy := core.Scale(g.cfg.Field.CatcherY, rows, fieldTop)
	dst.DrawHLine(cx, cy, cw, CatcherGlyph, core.ColorBrightCyan)

	fy := core.Scale(g.cfg.Field.FeedbackY, rows, fieldTop)
	for _, f := range snap.Feedback {
		text := fmt.Sprintf("%+d", f.Points)
		color := core.ColorBrightGreen
		if f.Points < 0 {
			color = core.ColorBrightRed
		}
		fx := core.Scale(f.X, w, 0) - len(text)/2
		dst.DrawTextColor(core.Clamp(fx, 0, w-len(text)), fy, text, color)
	}
}

// renderMenu draws the title screen with the item legend.
func (g *Game) renderMenu(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-5, "★  STAR CATCH  ★", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-3, "Catch the stars, dodge the fire!", core.ColorDefault)
	dst.DrawTextCentered(mid-1, "Press ENTER to play", core.ColorBrightGreen)
	if snap.HighScore > 0 {
		dst.DrawTextCentered(mid, fmt.Sprintf("Best: %d", snap.HighScore), core.ColorYellow)
	}
	g.renderLegend(dst, mid+2)
}

// renderLegend draws one line per category: glyph, name and points.
func (g *Game) renderLegend(dst *core.Screen, y int) {
	cats := NewCatalogue(g.cfg.Categories)
	var good, bad []string
	for _, c := range cats {
		entry := fmt.Sprintf("%c %+d", c.Glyph, c.Points)
		if c.Good() {
			good = append(good, entry)
		} else {
			bad = append(bad, entry)
		}
	}
	dst.DrawTextCentered(y, strings.Join(good, "  "), core.ColorBrightGreen)
	if len(bad) > 0 {
		dst.DrawTextCentered(y+1, "avoid: "+strings.Join(bad, "  "), core.ColorBrightRed)
	}
}

// renderGameOver draws the final score in a panel below the HUD.
func (g *Game) renderGameOver(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	bw := core.Min(32, dst.Width())
	panel := core.NewRect((dst.Width()-bw)/2, mid-5, bw, 9)
	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel, core.ColorGray)

	dst.DrawTextCentered(mid-3, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid-1, fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level), core.ColorDefault)
	if snap.NewHighScore {
		dst.DrawTextCentered(mid, "New High Score!", core.ColorBrightYellow)
	} else if snap.HighScore > 0 {
		dst.DrawTextCentered(mid, fmt.Sprintf("Best: %d", snap.HighScore), core.ColorYellow)
	}
	dst.DrawTextCentered(mid+2, "Press ENTER to play again", core.ColorBrightGreen)
}
