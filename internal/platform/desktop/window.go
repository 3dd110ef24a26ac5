// Package desktop runs the game in a native window using Ebitengine.
// The logical board is always 10x20; the window size only decides how
// many pixels each cell gets.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/game"
)

const (
	panelCells = 6 // side panel width in cells
	marginPx   = 8
	ghostAlpha = 70
)

var (
	backgroundColor = color.RGBA{20, 20, 20, 255}
	wellColor       = color.RGBA{35, 35, 35, 255}
)

// keyBindings pairs window keys with game actions.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyDown, core.ActionSoftDrop},
	{ebiten.KeyS, core.ActionSoftDrop},
	{ebiten.KeyUp, core.ActionHardDrop},
	{ebiten.KeySpace, core.ActionHardDrop},
	{ebiten.KeyX, core.ActionRotateCW},
	{ebiten.KeyZ, core.ActionRotateCCW},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyV, core.ActionDifficulty},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// App implements ebiten.Game around a tetris session.
type App struct {
	game       *game.Game
	last       time.Time
	state      core.GameState
	onGameOver func(core.GameState)
}

// New creates a window app for g. The game is reset with a screen large
// enough that the character-mode size check never triggers.
func New(g *game.Game, seed int64, onGameOver func(core.GameState)) *App {
	w, h := g.MinSize()
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed})
	return &App{game: g, onGameOver: onGameOver}
}

// Update polls input and advances one frame.
func (a *App) Update() error {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Set(b.action)
		}
	}
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	now := time.Now()
	var dt time.Duration
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
	}
	a.last = now

	res := a.game.Step(in, dt)
	a.state = res.State
	if res.Ended && a.onGameOver != nil {
		a.onGameOver(res.State)
	}
	return nil
}

// cellSize returns the pixel size of one cell that fits a w x h window.
func cellSize(w, h int) float32 {
	cols := engine.BoardWidth + panelCells
	size := min((w-2*marginPx)/cols, (h-2*marginPx)/engine.BoardHeight)
	return float32(max(size, 1))
}

func rgba(c core.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{r, g, b, alpha}
}

// Draw renders the board, the ghost, the active piece and the side panel.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	cell := cellSize(bounds.Dx(), bounds.Dy())
	ox, oy := float32(marginPx), float32(marginPx)
	board := a.game.Board()

	fillCell := func(col, row int, c color.Color) {
		x := ox + float32(col)*cell
		y := oy + float32(row)*cell
		vector.DrawFilledRect(screen, x+1, y+1, cell-2, cell-2, c, false)
	}

	vector.DrawFilledRect(screen, ox, oy, cell*engine.BoardWidth, cell*engine.BoardHeight, wellColor, false)

	board.Grid().Each(func(col, row int, c engine.Cell) {
		fillCell(col, row, rgba(c.Color, 255))
	})

	if a.game.Config().Render.Ghost {
		if ghost := board.Ghost(); ghost != nil {
			for _, p := range ghost.Cells() {
				fillCell(p.X, p.Y, rgba(ghost.Color, ghostAlpha))
			}
		}
	}

	if active := board.Active(); active != nil {
		for _, p := range active.Cells() {
			fillCell(p.X, p.Y, rgba(active.Color, 255))
		}
	}

	// Side panel
	px := ox + cell*float32(engine.BoardWidth+1)
	ebitenutil.DebugPrintAt(screen, "NEXT", int(px), int(oy))
	next := engine.LookupShape(board.Next())
	next.Mask.Each(func(col, row int) {
		x := px + float32(col)*cell/2
		y := oy + 16 + float32(row)*cell/2
		vector.DrawFilledRect(screen, x, y, cell/2-1, cell/2-1, rgba(next.Color, 255), false)
	})

	ty := int(oy + 16 + 2*cell + 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", board.Score()), int(px), ty)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TURNS %d", board.Turns()), int(px), ty+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SPEED %dms", board.TickInterval().Milliseconds()), int(px), ty+32)

	switch {
	case a.state.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - R to restart", int(ox)+4, int(oy+cell*engine.BoardHeight/2))
	case a.state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(ox)+4, int(oy+cell*engine.BoardHeight/2))
	}
}

// Layout uses the window size directly so cells scale with it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Options configures the window.
type Options struct {
	Width  int
	Height int
	FPS    int
	Seed   int64
	Title  string

	OnGameOver func(core.GameState)
}

// Run opens the window and blocks until it is closed. Returns the state
// of the last frame.
func Run(g *game.Game, opts Options) (core.GameState, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 480, 640
	}
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}
	if opts.Title == "" {
		opts.Title = g.Title()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := New(g, opts.Seed, opts.OnGameOver)
	if err := ebiten.RunGame(app); err != nil {
		return app.state, fmt.Errorf("run window: %w", err)
	}
	return app.state, nil
}
