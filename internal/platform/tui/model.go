package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// CuePlayer turns game cues into sound.
type CuePlayer interface {
	Play(c core.Cue)
}

// Publisher receives read-only game state for remote viewers.
type Publisher interface {
	Publish(v any)
}

// Options wires optional collaborators into a Model. Every field may be nil.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Sound    CuePlayer
	Spectate Publisher
	Renderer *lipgloss.Renderer
	ShotDir  string // screenshot directory, default ~/.arcade/screenshots
	HideHelp bool
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	palette    Palette
	opts       Options
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// When a store is given, the game's best score is persisted in it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Store != nil && cfg.HighScores == nil {
		cfg.HighScores = opts.Store.HighScores(game.ID())
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		palette:    NewPalette(opts.Renderer),
		opts:       opts,
		logger:     logger.With("game", game.ID()),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldHeight(cfg.ScreenH))
	return m
}

// fieldHeight is the screen height left for the game after the help line.
func (m Model) fieldHeight(h int) int {
	if m.opts.HideHelp {
		return h
	}
	return max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Leaving is only allowed between rounds.
		if !m.gameState.Playing {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse maps pointer motion to the catcher position.
// A left click between rounds starts the next one.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.inputFrame.SetPointer(PointerFromColumn(msg.X, m.screen.Width()))
	case tea.MouseActionPress:
		m.inputFrame.SetPointer(PointerFromColumn(msg.X, m.screen.Width()))
		if msg.Button == tea.MouseButtonLeft && !m.gameState.Playing {
			m.inputFrame.Set(core.ActionConfirm)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
// Game coordinates are relative, so a resize never restarts the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.fieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	prev := m.gameState

	m.inputFrame.At = now
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Err != nil {
		m.logger.Warn("tick reported an error", "error", result.Err)
	}

	newBest := false
	for _, c := range result.Cues {
		if c == core.CueNewBest {
			newBest = true
		}
		if m.opts.Sound != nil {
			m.opts.Sound.Play(c)
		}
	}

	switch {
	case m.gameState.Playing && !prev.Playing:
		m.logger.Info("round started")
	case m.gameState.GameOver && !prev.GameOver:
		m.logger.Info("round over", "score", m.gameState.Score, "new_best", newBest)
	}

	if m.opts.Spectate != nil {
		if sp, ok := m.game.(registry.Spectatable); ok {
			m.opts.Spectate.Publish(sp.SpectatorState())
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ShotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen, m.palette)
	if m.opts.HideHelp {
		return view
	}
	return view + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Report motion without a pressed button
	)

	_, err := p.Run()
	return err
}
