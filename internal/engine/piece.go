package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// kickOffsets are the horizontal shifts tried, in order, when a rotation collides.
var kickOffsets = [...]int{0, -1, 1}

// Piece is the falling shape instance. Rotation mutates the piece's own
// mask copy, never the catalog.
type Piece struct {
	Shape    ShapeID
	Pos      core.Point // top-left of the bounding box
	Mask     Mask
	Color    core.Color
	Grounded bool
}

// NewPiece creates an unrotated piece of the given shape at pos.
func NewPiece(id ShapeID, pos core.Point) *Piece {
	s := LookupShape(id)
	return &Piece{
		Shape: id,
		Pos:   pos,
		Mask:  s.Mask,
		Color: s.Color,
	}
}

// Clone returns an independent copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Cells returns the absolute grid positions of the piece's set cells.
func (p *Piece) Cells() []core.Point {
	pts := make([]core.Point, 0, 4)
	p.Mask.Each(func(col, row int) {
		pts = append(pts, p.Pos.Add(col, row))
	})
	return pts
}

// Collides reports whether any set cell is outside the grid or on an
// occupied cell.
func (p *Piece) Collides(g *Grid) bool {
	hit := false
	p.Mask.Each(func(col, row int) {
		if hit {
			return
		}
		x, y := p.Pos.X+col, p.Pos.Y+row
		if !g.InBounds(x, y) || g.IsOccupied(x, y) {
			hit = true
		}
	})
	return hit
}

// TryMove translates the piece by (dx, dy). A colliding translation is
// rolled back and reported as false.
func (p *Piece) TryMove(g *Grid, dx, dy int) bool {
	p.Pos = p.Pos.Add(dx, dy)
	if p.Collides(g) {
		p.Pos = p.Pos.Add(-dx, -dy)
		return false
	}
	return true
}

// Rotate turns the piece a quarter turn and resolves collisions by trying
// the current column, one to the left, then one to the right. If every
// placement collides the piece is left exactly as it was. Reports whether
// the rotation was applied.
func (p *Piece) Rotate(g *Grid, clockwise bool) bool {
	if p.Shape == ShapeO {
		return true
	}

	origMask, origPos := p.Mask, p.Pos
	if clockwise {
		p.Mask = origMask.RotateCW()
	} else {
		p.Mask = origMask.RotateCCW()
	}

	for _, dx := range kickOffsets {
		p.Pos = origPos.Add(dx, 0)
		if !p.Collides(g) {
			return true
		}
	}

	p.Mask, p.Pos = origMask, origPos
	return false
}

// IsGrounded reports whether the piece rests on the floor or on a settled cell.
func (p *Piece) IsGrounded(g *Grid) bool {
	grounded := false
	p.Mask.Each(func(col, row int) {
		x, y := p.Pos.X+col, p.Pos.Y+row
		if y >= g.Height()-1 || g.IsOccupied(x, y+1) {
			grounded = true
		}
	})
	return grounded
}

// HardDrop moves the piece down until it is grounded and returns the
// number of rows travelled. Locking is left to the caller.
func (p *Piece) HardDrop(g *Grid) int {
	rows := 0
	for !p.IsGrounded(g) {
		if !p.TryMove(g, 0, 1) {
			break
		}
		rows++
	}
	p.Grounded = true
	return rows
}
