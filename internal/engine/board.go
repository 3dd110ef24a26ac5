package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Settings configures a Board.
type Settings struct {
	Width        int
	Height       int
	TickInterval time.Duration
	FlashColor   core.Color // color of rows waiting for removal
	DotOnly      bool       // spawn only DOT pieces
}

// DefaultSettings returns the classic 10x20 board with a 650ms tick.
func DefaultSettings() Settings {
	return Settings{
		Width:        BoardWidth,
		Height:       BoardHeight,
		TickInterval: DefaultTickInterval,
		FlashColor:   core.ColorBrightWhite,
	}
}

// Events reports what happened during one Update.
type Events struct {
	Reset       bool // the board was reinitialized at the start of the frame
	Spawned     bool
	Ticked      bool
	Locked      bool
	RowsMarked  int
	RowsCleared int

	// GameOver is set when a freshly spawned piece collided with settled
	// cells. FinalScore holds the score reached; the board resets itself
	// on the following Update.
	GameOver   bool
	FinalScore int
}

// Board is the simulation context: the settled grid, the active piece,
// the next-piece preview, the gravity clock and the line-clear flags.
// A Board is not safe for concurrent use; one goroutine calls Update and
// reads it back for drawing.
type Board struct {
	settings Settings
	rng      *rand.Rand
	clock    *Clock
	grid     *Grid

	active *Piece
	next   ShapeID
	score  int

	checkForClear      bool
	rowsPendingRemoval bool
	resetPending       bool
}

// NewBoard creates a board ready for its first Update. The active piece
// is spawned by that first Update.
func NewBoard(s Settings, rng *rand.Rand) *Board {
	if s.Width <= 0 {
		s.Width = BoardWidth
	}
	if s.Height <= 0 {
		s.Height = BoardHeight
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Board{
		settings: s,
		rng:      rng,
		clock:    NewClock(s.TickInterval),
		grid:     NewGrid(s.Width, s.Height),
	}
	b.Reset()
	return b
}

// Reset clears the grid, score, flags and clock and picks a fresh next
// shape. No piece is spawned.
func (b *Board) Reset() {
	b.grid.Clear()
	b.active = nil
	b.score = 0
	b.checkForClear = false
	b.rowsPendingRemoval = false
	b.resetPending = false
	b.clock.Reset()
	b.next = b.pickNext()
}

// Update advances the simulation by one frame. Intents are applied to the
// pre-tick position, then gravity runs, then newly locked rows are
// checked. Every flag in in is cleared.
func (b *Board) Update(dt time.Duration, in *Intents) Events {
	var ev Events
	if in == nil {
		in = &Intents{}
	}

	if take(&in.Reset) || b.resetPending {
		b.Reset()
		ev.Reset = true
	}

	if b.active == nil {
		ev.Spawned = true
		if b.spawn() {
			ev.GameOver = true
			ev.FinalScore = b.score
			b.active = nil
			b.resetPending = true
			*in = Intents{}
			return ev
		}
	}

	b.applyIntents(in, &ev)

	if b.clock.Advance(dt) {
		ev.Ticked = true
		b.tick(&ev)
	}

	ev.RowsMarked = b.detectClears()
	return ev
}

// applyIntents consumes movement, rotation and drop intents in a fixed order.
func (b *Board) applyIntents(in *Intents, ev *Events) {
	a := b.active
	if take(&in.MoveLeft) && a != nil {
		a.TryMove(b.grid, -1, 0)
	}
	if take(&in.MoveRight) && a != nil {
		a.TryMove(b.grid, 1, 0)
	}
	if take(&in.RotateCW) && a != nil {
		a.Rotate(b.grid, true)
	}
	if take(&in.RotateCCW) && a != nil {
		a.Rotate(b.grid, false)
	}
	if take(&in.SoftDrop) {
		b.clock.Expire()
	}
	if take(&in.HardDrop) && a != nil {
		a.HardDrop(b.grid)
		b.lock()
		ev.Locked = true
		b.clock.Expire()
	}
}

// tick is one gravity step: move the active piece down or lock it, then
// remove rows marked on an earlier frame.
func (b *Board) tick(ev *Events) {
	if a := b.active; a != nil {
		if a.IsGrounded(b.grid) {
			b.lock()
			ev.Locked = true
		} else {
			a.TryMove(b.grid, 0, 1)
		}
	}
	ev.RowsCleared = b.removeMarked()
}

// spawn creates the active piece from the preview and rolls a new
// preview. Reports true if the new piece collides with settled cells.
func (b *Board) spawn() bool {
	b.active = NewPiece(b.next, core.Point{X: b.settings.Width / 2, Y: 0})
	b.next = b.pickNext()
	return b.active.Collides(b.grid)
}

// lock converts the active piece into grid cells.
func (b *Board) lock() {
	b.active.Grounded = true
	b.grid.Stamp(b.active)
	b.active = nil
	b.checkForClear = true
}

func (b *Board) pickNext() ShapeID {
	if b.settings.DotOnly {
		return ShapeDot
	}
	return standardShapes[b.rng.Intn(len(standardShapes))]
}

// SetTickInterval changes the gravity period.
func (b *Board) SetTickInterval(d time.Duration) {
	b.clock.SetInterval(d)
}

// TickInterval returns the current gravity period.
func (b *Board) TickInterval() time.Duration { return b.clock.Interval() }

// Grid returns the settled-cell grid. Only Update may mutate it.
func (b *Board) Grid() *Grid { return b.grid }

// Active returns a copy of the falling piece, or nil between lock and spawn.
func (b *Board) Active() *Piece {
	if b.active == nil {
		return nil
	}
	return b.active.Clone()
}

// Ghost returns a copy of the active piece moved to where a hard drop
// would land it, or nil if there is no active piece.
func (b *Board) Ghost() *Piece {
	if b.active == nil {
		return nil
	}
	g := b.active.Clone()
	for !g.IsGrounded(b.grid) && g.TryMove(b.grid, 0, 1) {
	}
	return g
}

// Next returns the preview shape.
func (b *Board) Next() ShapeID { return b.next }

// Score returns the number of rows cleared since the last reset.
func (b *Board) Score() int { return b.score }

// Turns returns the gravity ticks since the last reset.
func (b *Board) Turns() int { return b.clock.Turns() }

// CheckForClear reports whether a lock is waiting for the mark phase.
func (b *Board) CheckForClear() bool { return b.checkForClear }

// RowsPendingRemoval reports whether marked rows wait for the next tick.
func (b *Board) RowsPendingRemoval() bool { return b.rowsPendingRemoval }

// Width returns the number of columns.
func (b *Board) Width() int { return b.settings.Width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.settings.Height }
