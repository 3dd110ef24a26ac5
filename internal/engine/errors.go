package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownShape is wrapped by the panic raised for identities outside the catalog.
var ErrUnknownShape = errors.New("engine: unknown shape")

// BoundsError reports a grid access outside [0,W)x[0,H).
type BoundsError struct {
	Col, Row int
	W, H     int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("engine: cell (%d,%d) outside %dx%d grid", e.Col, e.Row, e.W, e.H)
}
