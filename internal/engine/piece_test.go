package engine

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestMoveLeftAtWall(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	p := NewPiece(ShapeI, core.Point{X: 0, Y: 0})

	if p.TryMove(g, -1, 0) {
		t.Error("Move left at column 0 should fail")
	}
	if p.Pos != (core.Point{X: 0, Y: 0}) {
		t.Errorf("Position changed on failed move: %v", p.Pos)
	}
	if !p.TryMove(g, 1, 0) {
		t.Error("Move right into empty space should succeed")
	}
}

func TestMoveIntoSettledCell(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	g.cells[index(2, 1, g.w)] = Cell{Exists: true}
	p := NewPiece(ShapeDot, core.Point{X: 2, Y: 0}) // cell at (3,1)

	if p.TryMove(g, -1, 0) {
		t.Error("Move onto an occupied cell should fail")
	}
	if p.Pos.X != 2 {
		t.Errorf("Expected X=2, got %d", p.Pos.X)
	}
}

func TestRotationPreservesCellCount(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	for _, id := range AllShapes() {
		p := NewPiece(id, core.Point{X: 3, Y: 5})
		want := p.Mask.Count()
		for i := 0; i < 4; i++ {
			for _, cw := range []bool{true, false} {
				p.Rotate(g, cw)
				if got := p.Mask.Count(); got != want {
					t.Fatalf("%v: cell count %d after rotation, want %d", id, got, want)
				}
			}
			p.Rotate(g, true)
		}
	}
}

func TestRotationRoundTrip(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	for _, id := range AllShapes() {
		for _, cw := range []bool{true, false} {
			p := NewPiece(id, core.Point{X: 3, Y: 5})
			orig := p.Clone()

			if !p.Rotate(g, cw) || !p.Rotate(g, !cw) {
				t.Fatalf("%v: rotation in open space failed", id)
			}
			if p.Mask != orig.Mask || p.Pos != orig.Pos {
				t.Errorf("%v cw=%v: round trip changed piece: %v at %v", id, cw, p.Mask.Rows(), p.Pos)
			}
		}
	}
}

func TestRotateO(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	p := NewPiece(ShapeO, core.Point{X: 4, Y: 0})
	orig := p.Mask

	if !p.Rotate(g, true) || p.Mask != orig {
		t.Error("Clockwise rotation of O should be a no-op")
	}
	if !p.Rotate(g, false) || p.Mask != orig {
		t.Error("Counter-clockwise rotation of O should be a no-op")
	}
}

// isolatedCell finds a cell that the rotated mask covers at zero offset but
// not when shifted one column either way, and that the unrotated mask leaves
// free. A settled block there forces a kick with both neighbours open.
func isolatedCell(before, after Mask) (col, row int, ok bool) {
	for row := 0; row < after.H; row++ {
		for col := 0; col < after.W; col++ {
			if after.At(col, row) && !after.At(col-1, row) && !after.At(col+1, row) && !before.At(col, row) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}

func TestRotateKickOrder(t *testing.T) {
	up := LookupShape(ShapeT).Mask
	right := up.RotateCW() // empty left column
	left := up.RotateCCW() // empty right column

	tests := []struct {
		name  string
		setup func(g *Grid) *Piece
		wantX int
	}{
		{
			name: "left wall kicks right",
			setup: func(g *Grid) *Piece {
				p := NewPiece(ShapeT, core.Point{X: -1, Y: 5})
				p.Mask = right
				return p
			},
			wantX: 0,
		},
		{
			name: "right wall kicks left",
			setup: func(g *Grid) *Piece {
				p := NewPiece(ShapeT, core.Point{X: BoardWidth - 2, Y: 5})
				p.Mask = left
				return p
			},
			wantX: BoardWidth - 3,
		},
		{
			name: "settled cell prefers left over right",
			setup: func(g *Grid) *Piece {
				p := NewPiece(ShapeT, core.Point{X: 4, Y: 5})
				col, row, ok := isolatedCell(p.Mask, p.Mask.RotateCW())
				if !ok {
					t.Fatal("No isolated cell in rotated T mask")
				}
				g.cells[index(p.Pos.X+col, p.Pos.Y+row, g.w)] = Cell{Exists: true}
				return p
			},
			wantX: 3,
		},
		{
			name: "settled cells on the left kick right",
			setup: func(g *Grid) *Piece {
				p := NewPiece(ShapeT, core.Point{X: 4, Y: 5})
				col, row, _ := isolatedCell(p.Mask, p.Mask.RotateCW())
				g.cells[index(p.Pos.X+col, p.Pos.Y+row, g.w)] = Cell{Exists: true}
				g.cells[index(p.Pos.X+col-1, p.Pos.Y+row, g.w)] = Cell{Exists: true}
				return p
			},
			wantX: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(BoardWidth, BoardHeight)
			p := tc.setup(g)
			if p.Collides(g) {
				t.Fatal("Setup piece should not collide")
			}
			rotated := p.Clone()
			rotated.Mask = p.Mask.RotateCW()
			if !rotated.Collides(g) {
				t.Fatal("Rotation in place should collide so a kick is needed")
			}

			if !p.Rotate(g, true) {
				t.Fatal("Rotation should succeed with a kick")
			}
			if p.Pos.X != tc.wantX {
				t.Errorf("Pos.X = %d, expected %d", p.Pos.X, tc.wantX)
			}
			if p.Mask != rotated.Mask {
				t.Error("Kicked piece should keep the rotated mask")
			}
			if p.Collides(g) {
				t.Error("Kicked piece collides")
			}
		})
	}
}

func TestRotateBlockedReverts(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	for col := 4; col <= 6; col++ {
		for row := 2; row <= 3; row++ {
			g.cells[index(col, row, g.w)] = Cell{Exists: true}
		}
	}
	p := NewPiece(ShapeI, core.Point{X: 3, Y: 0})
	orig := p.Clone()

	if p.Rotate(g, true) {
		t.Fatal("Rotation should fail when every kick collides")
	}
	if p.Mask != orig.Mask || p.Pos != orig.Pos {
		t.Error("Failed rotation must leave the piece unchanged")
	}
}

func TestHardDropGrounds(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	for col := 0; col < 5; col++ {
		g.cells[index(col, 15, g.w)] = Cell{Exists: true}
	}

	for _, id := range AllShapes() {
		for x := -1; x <= 7; x++ {
			p := NewPiece(id, core.Point{X: x, Y: 0})
			if p.Collides(g) {
				continue
			}
			p.HardDrop(g)
			if !p.IsGrounded(g) {
				t.Errorf("%v at x=%d: not grounded after hard drop", id, x)
			}
			if p.Collides(g) {
				t.Errorf("%v at x=%d: collides after hard drop", id, x)
			}
			for _, pt := range p.Cells() {
				if pt.Y >= BoardHeight {
					t.Errorf("%v at x=%d: cell below the board at %v", id, x, pt)
				}
			}
		}
	}
}

func TestHardDropDistance(t *testing.T) {
	g := NewGrid(BoardWidth, BoardHeight)
	p := NewPiece(ShapeI, core.Point{X: 3, Y: 0})

	if rows := p.HardDrop(g); rows != 18 {
		t.Errorf("Expected I piece to fall 18 rows, got %d", rows)
	}
	if !p.Grounded {
		t.Error("Grounded flag should be set")
	}
}
