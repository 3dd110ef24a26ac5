package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

const (
	panelWidth = 14 // side panel with preview and counters
	panelGap   = 1
	previewH   = 4

	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// MinSize returns the smallest screen that fits the board and side panel.
func (g *Game) MinSize() (w, h int) {
	return g.boardRect().W + panelGap + panelWidth, engine.BoardHeight + 2
}

// boardRect returns the board box, border included, at the origin.
func (g *Game) boardRect() core.Rect {
	return core.NewRect(0, 0, engine.BoardWidth*g.cellWidth()+2, engine.BoardHeight+2)
}

func (g *Game) cellWidth() int {
	return max(g.cfg.Render.CellWidth, 1)
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		minW, minH := g.MinSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	minW, minH := g.MinSize()
	originX := (dst.Width() - minW) / 2
	originY := (dst.Height() - minH) / 2

	box := g.boardRect()
	box.X, box.Y = originX, originY
	dst.DrawBox(box)

	g.renderGrid(dst, box.X+1, box.Y+1)
	g.renderPanel(dst, box.Right()+panelGap, box.Y)

	// Draw overlays
	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Lines: %d  R to restart", g.board.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderGrid draws settled cells, the ghost and the active piece with the
// top-left board cell at (x0, y0).
func (g *Game) renderGrid(dst *core.Screen, x0, y0 int) {
	cw := g.cellWidth()
	drawCell := func(col, row int, r rune, c core.Color) {
		for i := 0; i < cw; i++ {
			dst.SetColored(x0+col*cw+i, y0+row, r, c)
		}
	}

	for row := 0; row < engine.BoardHeight; row++ {
		for col := 0; col < engine.BoardWidth; col++ {
			dst.SetColored(x0+col*cw+cw/2, y0+row, emptyRune, core.ColorDarkGray)
		}
	}

	g.board.Grid().Each(func(col, row int, c engine.Cell) {
		drawCell(col, row, blockRune, c.Color)
	})

	if g.cfg.Render.Ghost {
		if ghost := g.board.Ghost(); ghost != nil {
			for _, p := range ghost.Cells() {
				drawCell(p.X, p.Y, ghostRune, core.ColorGray)
			}
		}
	}

	if active := g.board.Active(); active != nil {
		for _, p := range active.Cells() {
			drawCell(p.X, p.Y, blockRune, active.Color)
		}
	}
}

// renderPanel draws the next-piece preview and counters at (x, y).
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	cw := g.cellWidth()
	dst.DrawText(x, y, "NEXT")

	preview := core.NewRect(x, y+1, 4*cw+2, previewH+2)
	dst.DrawBox(preview)

	next := engine.LookupShape(g.board.Next())
	next.Mask.Each(func(col, row int) {
		for i := 0; i < cw; i++ {
			dst.SetColored(preview.X+1+col*cw+i, preview.Y+1+row, blockRune, next.Color)
		}
	})

	line := preview.Bottom() + 1
	dst.DrawText(x, line, fmt.Sprintf("LINES %d", g.board.Score()))
	dst.DrawText(x, line+1, fmt.Sprintf("TURNS %d", g.board.Turns()))
	dst.DrawText(x, line+2, fmt.Sprintf("SPEED %dms", g.board.TickInterval().Milliseconds()))
	if g.difficulty.IsEnabled() {
		dst.DrawText(x, line+3, fmt.Sprintf("LEVEL %.0f%%", g.Level()*100))
	}
	dst.DrawTextColored(x, line+4, strings.ToUpper(string(g.preset)), core.ColorGray)
	if g.cfg.Rules.DotOnly {
		dst.DrawTextColored(x, line+5, "DOT MODE", core.ColorDarkGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
