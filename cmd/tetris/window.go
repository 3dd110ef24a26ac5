package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
	"github.com/vovakirdan/tui-tetris/internal/platform/desktop"
)

var (
	flagWindowW int
	flagWindowH int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a native window. The board scales with the window.

Controls are the same as 'tetris play'; Esc or Q closes the window.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowW, "width", 480, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowH, "height", 640, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("tetris")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	final, err := desktop.Run(game.New(cfg), desktop.Options{
		Width:  flagWindowW,
		Height: flagWindowH,
		FPS:    cfg.Timing.FPS,
		Seed:   seed(),
		OnGameOver: func(st core.GameState) {
			logger.Info("game over", "lines", st.Score, "turns", st.Turns)
		},
	})
	if err != nil {
		return err
	}

	logger.Info("bye", "lines", final.Score, "turns", final.Turns)
	return nil
}
