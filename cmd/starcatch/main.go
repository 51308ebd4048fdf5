// starcatch is a terminal arcade game: catch the falling stars, dodge the fire.
//
// Usage:
//
//	starcatch list              - List available games
//	starcatch play [game]       - Play a game (default: catch)
//	starcatch serve             - Start SSH server for remote play
//	starcatch scores [game]     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.arcade/scores.db)
//	--log <path>      - Set log file, "-" for stderr (default: ~/.arcade/starcatch.log)
//	--log-level <lvl> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starcatch/internal/games/catch"
	"github.com/vovakirdan/starcatch/internal/logging"
	"github.com/vovakirdan/starcatch/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Star Catch - catch falling stars in your terminal",
	Long: `Star Catch is a terminal arcade game. Move the catcher with the mouse
or the arrow keys, catch the good items and let the bad ones fall.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  starcatch play
  starcatch play catch --difficulty hard --sound
  starcatch serve --ssh :2222
  starcatch scores catch`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", logging.DefaultPath, `Path to log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// gameArg returns the game named on the command line, or the default game.
func gameArg(args []string) string {
	gameID := catch.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starcatch list' to see available games.")
		os.Exit(1)
	}
	return gameID
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// newLogger builds the logger for a command writing to the --log destination.
// The returned function closes the log file.
func newLogger(prefix string) (*log.Logger, func() error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level: %v", err)
	}

	w, closeFn, err := logging.OpenFile(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging to stderr\n", err)
		w = os.Stderr
	}

	logger := logging.New(w, prefix)
	logger.SetLevel(level)
	return logger, closeFn
}
