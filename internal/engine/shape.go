// Package engine implements the falling-block simulation: the shape
// catalog, the occupancy grid, the active piece controller, the gravity
// clock and the line-clear state machine.
//
// The package is deliberately free of terminal or window concerns. A
// frontend owns one Board, calls Update once per frame with the elapsed
// time and the player's intents, then reads the board back for drawing.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ShapeID identifies a catalog shape.
type ShapeID uint8

const (
	ShapeI ShapeID = iota + 1
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
	ShapeDot // single centre cell, used for testing
)

// String returns the conventional letter for the shape.
func (id ShapeID) String() string {
	switch id {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeDot:
		return "DOT"
	default:
		return fmt.Sprintf("ShapeID(%d)", uint8(id))
	}
}

// Pivot is the rotation centre of a shape in bounding-box units.
type Pivot struct {
	X, Y float64
}

// Shape is an immutable catalog entry.
type Shape struct {
	ID     ShapeID
	Width  int
	Height int
	Pivot  Pivot
	Mask   Mask
	Color  core.Color
}

// catalog is indexed by ShapeID; slot 0 is unused.
var catalog = [...]Shape{
	ShapeI: {
		ID: ShapeI, Width: 4, Height: 4, Pivot: Pivot{2, 2}, Color: core.ColorCyan,
		Mask: MaskFromRows(
			"....",
			"####",
			"....",
			"....",
		),
	},
	ShapeO: {
		ID: ShapeO, Width: 4, Height: 3, Pivot: Pivot{2, 1}, Color: core.ColorYellow,
		Mask: MaskFromRows(
			".##.",
			".##.",
			"....",
		),
	},
	ShapeT: {
		ID: ShapeT, Width: 3, Height: 3, Pivot: Pivot{1.5, 1.5}, Color: core.ColorMagenta,
		Mask: MaskFromRows(
			".#.",
			"###",
			"...",
		),
	},
	ShapeJ: {
		ID: ShapeJ, Width: 3, Height: 3, Pivot: Pivot{1.5, 1.5}, Color: core.ColorBlue,
		Mask: MaskFromRows(
			".#.",
			".#.",
			"##.",
		),
	},
	ShapeL: {
		ID: ShapeL, Width: 3, Height: 3, Pivot: Pivot{1.5, 1.5}, Color: core.ColorOrange,
		Mask: MaskFromRows(
			".#.",
			".#.",
			".##",
		),
	},
	ShapeS: {
		ID: ShapeS, Width: 3, Height: 3, Pivot: Pivot{1.5, 1.5}, Color: core.ColorGreen,
		Mask: MaskFromRows(
			".##",
			"##.",
			"...",
		),
	},
	ShapeZ: {
		ID: ShapeZ, Width: 3, Height: 3, Pivot: Pivot{1.5, 1.5}, Color: core.ColorRed,
		Mask: MaskFromRows(
			"##.",
			".##",
			"...",
		),
	},
	ShapeDot: {
		ID: ShapeDot, Width: 3, Height: 3, Pivot: Pivot{1.5, 1.5}, Color: core.ColorDarkGray,
		Mask: MaskFromRows(
			"...",
			".#.",
			"...",
		),
	},
}

var standardShapes = []ShapeID{ShapeI, ShapeO, ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ}

// LookupShape returns the catalog definition for id.
// An identity outside the catalog is a programming error and panics.
func LookupShape(id ShapeID) Shape {
	if id == 0 || int(id) >= len(catalog) {
		panic(fmt.Errorf("%w: %d", ErrUnknownShape, uint8(id)))
	}
	return catalog[id]
}

// StandardShapes returns the seven tetrominoes in catalog order.
func StandardShapes() []ShapeID {
	out := make([]ShapeID, len(standardShapes))
	copy(out, standardShapes)
	return out
}

// AllShapes returns every catalog identity, DOT included.
func AllShapes() []ShapeID {
	return append(StandardShapes(), ShapeDot)
}
