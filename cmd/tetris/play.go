package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Soft drop
  Up/Space         - Hard drop
  X / Z            - Rotate clockwise / counter-clockwise
  P/Esc            - Pause
  R                - Restart
  V                - Cycle difficulty preset
  Ctrl+S           - Save a text screenshot to ~/.tetris/screenshots
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at base speed, speeds up with cleared lines
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, gravity stays at timing.tick_ms

Examples:
  tetris play
  tetris play --difficulty fixed
  tetris play --config ./my-tetris.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("tetris")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     seed(),
	}
	logger.Debug("starting terminal game", "width", width, "height", height, "seed", rc.Seed)

	final, err := tui.Run(game.New(cfg), rc, tui.WithScreenshotDir(config.UserDir("screenshots")))
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("bye", "lines", final.Score, "turns", final.Turns)
	return nil
}
