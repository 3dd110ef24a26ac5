// tetris is a falling-block puzzle game for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	tetris play              - Play in the terminal
//	tetris window            - Play in a desktop window
//	tetris serve             - Start SSH server for remote play
//	tetris shapes            - Print the piece catalog
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a falling-block puzzle game. Pieces drop into a 10x20 well;
complete rows flash and are cleared, and every cleared row scores a line.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  shapes   - Print the piece catalog and rotations

Examples:
  tetris play
  tetris play --difficulty hard
  tetris window --seed 42
  tetris serve --ssh :2222
  tetris shapes --rotate cw`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
}
