// Package game adapts the simulation engine to the platform frame loop.
// It maps platform actions to engine intents, owns pause, game-over and
// difficulty state, and draws the board into a character screen.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Game implements a single-player tetris session.
type Game struct {
	cfg        config.Config
	difficulty *config.DifficultyManager
	preset     config.DifficultyPreset
	board      *engine.Board
	rng        *rand.Rand
	frame      uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Game state flags
	paused   bool
	gameOver bool
	played   int // games lost since Reset
}

// New creates a game using cfg. Call Reset before the first Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		preset:     config.PresetOf(cfg.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.board = engine.NewBoard(engine.Settings{
		Width:        engine.BoardWidth,
		Height:       engine.BoardHeight,
		TickInterval: g.cfg.TickInterval(),
		FlashColor:   core.ColorBrightWhite,
		DotOnly:      g.cfg.Rules.DotOnly,
	}, g.rng)
	g.frame = 0
	g.paused = false
	g.gameOver = false
	g.played = 0
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one frame of dt wall-clock time.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.frame++

	intents := intentsFrom(in)

	// Handle restart
	if intents.Reset {
		g.gameOver = false
		g.paused = false
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if in.Has(core.ActionDifficulty) {
		g.SetDifficultyPreset(config.NextPreset(g.preset))
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	ev := g.board.Update(dt, &intents)
	if ev.GameOver {
		g.played++
		if !g.cfg.Rules.AutoRestart {
			g.gameOver = true
		}
	}

	g.board.SetTickInterval(g.difficulty.Interval(
		g.cfg.TickInterval(), g.cfg.MinTickInterval(), g.board.Score(), g.board.Turns()))

	return core.StepResult{
		State:       g.State(),
		RowsCleared: ev.RowsCleared,
		Locked:      ev.Locked,
		Ended:       ev.GameOver,
	}
}

// intentsFrom maps platform actions to engine intents.
func intentsFrom(in core.InputFrame) engine.Intents {
	return engine.Intents{
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
		SoftDrop:  in.Has(core.ActionSoftDrop),
		HardDrop:  in.Has(core.ActionHardDrop),
		RotateCW:  in.Has(core.ActionRotateCW),
		RotateCCW: in.Has(core.ActionRotateCCW),
		Reset:     in.Has(core.ActionRestart),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		Turns:    g.board.Turns(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board exposes the simulation for frontends that draw it directly.
// Callers must not mutate it.
func (g *Game) Board() *engine.Board { return g.board }

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config { return g.cfg }

// Level returns the current difficulty level in [0, 1].
func (g *Game) Level() float64 {
	return g.difficulty.Level(g.board.Score(), g.board.Turns())
}

// Preset returns the active difficulty preset.
func (g *Game) Preset() config.DifficultyPreset { return g.preset }

// SetDifficultyPreset applies a named preset to the running game. The
// gravity interval follows on the next Step.
func (g *Game) SetDifficultyPreset(preset config.DifficultyPreset) {
	config.ApplyPreset(&g.cfg, preset)
	g.preset = preset
	g.difficulty.SetEnabled(g.cfg.Difficulty.Enabled)
	g.difficulty.SetInitialLevel(g.cfg.Difficulty.InitialLevel)
}
