package engine

import "strings"

// maxMaskCells bounds a mask to a 4x4 bounding box.
const maxMaskCells = 16

// Mask is a row-major boolean occupancy grid of a piece's bounding box.
// The zero value is an empty 0x0 mask.
type Mask struct {
	W, H  int
	cells [maxMaskCells]bool
}

// index is the row-major addressing function shared by masks and grids.
func index(col, row, width int) int {
	return row*width + col
}

// MaskFromRows builds a mask from strings where '#' marks a set cell.
// All rows must have the same length.
func MaskFromRows(rows ...string) Mask {
	m := Mask{H: len(rows)}
	if len(rows) > 0 {
		m.W = len(rows[0])
	}
	if m.W*m.H > maxMaskCells {
		panic("engine: mask larger than 4x4")
	}
	for row, line := range rows {
		for col, ch := range line {
			if ch == '#' {
				m.cells[index(col, row, m.W)] = true
			}
		}
	}
	return m
}

// At reports whether the cell at (col, row) is set.
func (m Mask) At(col, row int) bool {
	if col < 0 || col >= m.W || row < 0 || row >= m.H {
		return false
	}
	return m.cells[index(col, row, m.W)]
}

// Count returns the number of set cells.
func (m Mask) Count() int {
	n := 0
	for i := 0; i < m.W*m.H; i++ {
		if m.cells[i] {
			n++
		}
	}
	return n
}

// Each calls fn with the bounding-box offset of every set cell, row by row.
func (m Mask) Each(fn func(col, row int)) {
	for row := 0; row < m.H; row++ {
		for col := 0; col < m.W; col++ {
			if m.cells[index(col, row, m.W)] {
				fn(col, row)
			}
		}
	}
}

// Transpose swaps rows and columns. A WxH mask becomes HxW.
func (m Mask) Transpose() Mask {
	t := Mask{W: m.H, H: m.W}
	for row := 0; row < m.H; row++ {
		for col := 0; col < m.W; col++ {
			t.cells[index(row, col, t.W)] = m.cells[index(col, row, m.W)]
		}
	}
	return t
}

// ReverseRows mirrors every row left to right.
func (m Mask) ReverseRows() Mask {
	r := Mask{W: m.W, H: m.H}
	for row := 0; row < m.H; row++ {
		for col := 0; col < m.W; col++ {
			r.cells[index(m.W-1-col, row, m.W)] = m.cells[index(col, row, m.W)]
		}
	}
	return r
}

// ReverseColumns mirrors every column top to bottom.
func (m Mask) ReverseColumns() Mask {
	r := Mask{W: m.W, H: m.H}
	for row := 0; row < m.H; row++ {
		for col := 0; col < m.W; col++ {
			r.cells[index(col, m.H-1-row, m.W)] = m.cells[index(col, row, m.W)]
		}
	}
	return r
}

// RotateCW is a quarter turn clockwise: transpose, then reverse rows.
func (m Mask) RotateCW() Mask {
	return m.Transpose().ReverseRows()
}

// RotateCCW is a quarter turn counter-clockwise: transpose, then reverse columns.
func (m Mask) RotateCCW() Mask {
	return m.Transpose().ReverseColumns()
}

// Rows renders the mask in the same notation MaskFromRows accepts.
func (m Mask) Rows() []string {
	out := make([]string, m.H)
	var sb strings.Builder
	for row := 0; row < m.H; row++ {
		sb.Reset()
		for col := 0; col < m.W; col++ {
			if m.cells[index(col, row, m.W)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[row] = sb.String()
	}
	return out
}
