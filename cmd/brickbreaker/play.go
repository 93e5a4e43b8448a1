package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Brick Breaker.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  Space       - Launch the ball
  P/Esc       - Pause
  R           - Restart (after the game ends)
  Tab         - Show the scoreboard
  Q/Ctrl+C    - Quit

Examples:
  brickbreaker play
  brickbreaker play --fps 60
  brickbreaker play --config ./my-brickbreaker.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := tui.NewLogger(flagLogPath, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Results are optional: play on without saving when the database is unavailable.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	logger.Info("starting", "width", width, "height", height, "fps", flagFPS)

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
		},
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
