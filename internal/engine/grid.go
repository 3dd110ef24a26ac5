package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Logical board size. Window size never changes these.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is one settled grid position. When Exists is false, Color and
// Marked carry no meaning.
type Cell struct {
	Exists bool
	Color  core.Color
	Marked bool // drawn with the flash color until its row is removed
}

// Grid is the authoritative occupancy of every settled cell.
// Cells are stored in row-major order; row 0 is the top.
type Grid struct {
	w, h     int
	cells    []Cell
	removing []bool // rows queued for the next Collapse
}

// NewGrid creates an empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		w:        w,
		h:        h,
		cells:    make([]Cell, w*h),
		removing: make([]bool, h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (col, row) addresses a grid cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.w && row >= 0 && row < g.h
}

// Cell returns the cell at (col, row).
func (g *Grid) Cell(col, row int) (Cell, error) {
	if !g.InBounds(col, row) {
		return Cell{}, &BoundsError{Col: col, Row: row, W: g.w, H: g.h}
	}
	return g.cells[index(col, row, g.w)], nil
}

// IsOccupied reports whether a settled cell exists at (col, row).
// Positions outside the grid are never occupied.
func (g *Grid) IsOccupied(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[index(col, row, g.w)].Exists
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	for i := range g.removing {
		g.removing[i] = false
	}
}

// Stamp writes every set mask cell of p into the grid with the piece's color.
func (g *Grid) Stamp(p *Piece) {
	p.Mask.Each(func(col, row int) {
		x, y := p.Pos.X+col, p.Pos.Y+row
		if !g.InBounds(x, y) {
			return
		}
		g.cells[index(x, y, g.w)] = Cell{Exists: true, Color: p.Color}
	})
}

// RowFull reports whether every column of row is occupied.
func (g *Grid) RowFull(row int) bool {
	for col := 0; col < g.w; col++ {
		if !g.cells[index(col, row, g.w)].Exists {
			return false
		}
	}
	return true
}

// FullRows returns the indices of every full row, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for row := 0; row < g.h; row++ {
		if g.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// MarkRow queues row for removal and recolors its occupied cells.
func (g *Grid) MarkRow(row int, flash core.Color) {
	g.removing[row] = true
	for col := 0; col < g.w; col++ {
		c := &g.cells[index(col, row, g.w)]
		if !c.Exists {
			continue
		}
		c.Marked = true
		c.Color = flash
	}
}

// RowMarked reports whether row is queued for removal.
func (g *Grid) RowMarked(row int) bool {
	return g.removing[row]
}

// Collapse removes every queued row and compacts the rows above it
// downward in one pass. The write index walks bottom-up and only rows
// that are not queued are copied, so several cleared rows shift the
// stack by the right amount. Returns the number of rows removed.
func (g *Grid) Collapse() int {
	write := g.h - 1
	for read := g.h - 1; read >= 0; read-- {
		if g.removing[read] {
			g.removing[read] = false
			continue
		}
		if write != read {
			g.copyRow(read, write)
		}
		write--
	}
	removed := write + 1
	for row := write; row >= 0; row-- {
		g.clearRow(row)
	}
	return removed
}

// RemoveRowAndCollapse removes row whatever its contents and shifts every
// row above it down by one.
func (g *Grid) RemoveRowAndCollapse(row int) {
	g.MarkRow(row, core.ColorBrightWhite)
	g.Collapse()
}

func (g *Grid) copyRow(src, dst int) {
	copy(g.cells[index(0, dst, g.w):index(0, dst+1, g.w)], g.cells[index(0, src, g.w):index(0, src+1, g.w)])
}

func (g *Grid) clearRow(row int) {
	for col := 0; col < g.w; col++ {
		g.cells[index(col, row, g.w)] = Cell{}
	}
}

// Each calls fn for every occupied cell, row by row.
func (g *Grid) Each(fn func(col, row int, c Cell)) {
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if c := g.cells[index(col, row, g.w)]; c.Exists {
				fn(col, row, c)
			}
		}
	}
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c.Exists {
			n++
		}
	}
	return n
}
