package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/audio"
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/catch"
	"github.com/vovakirdan/starcatch/internal/platform/spectate"
	"github.com/vovakirdan/starcatch/internal/platform/tui"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// spectatorRate caps snapshots sent to viewers per second.
const spectatorRate = 30

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: catch).

Controls:
  Mouse            - Move the catcher
  Left/Right, h/l  - Nudge the catcher
  Enter/Space      - Start a round
  Esc              - Leave (between rounds)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wide catcher
  normal - Default catcher
  hard   - Narrow catcher with a tight catch tolerance

Examples:
  starcatch play
  starcatch play catch --difficulty hard
  starcatch play --config ./my-catch.yaml
  starcatch play --sound --volume 0.3
  starcatch play --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a WebSocket spectator feed on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fail("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	logger, closeLog := newLogger("starcatch")
	defer closeLog() //nolint:errcheck

	width, height := terminalSize()

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path and difficulty before the game is created
	if gameID == catch.GameID {
		catch.SetConfigPath(flagConfig)
		catch.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	opts := tui.Options{Logger: logger}

	// Continue without storage - the best score then lasts for this run only
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "error", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if flagSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			opts.Sound = player
			defer player.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flagSpectate != "" {
		hub := spectate.NewHub(logger.WithPrefix("spectate"), time.Second/spectatorRate)
		go hub.Run(ctx)
		go func() {
			if err := hub.ListenAndServe(ctx, flagSpectate); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
		opts.Spectate = hub
	}

	logger.Info("starting game", "game", gameID, "fps", flagFPS, "difficulty", flagDifficulty)

	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("game exited with error", "error", err)
		fail("running game: %v", err)
	}
}
