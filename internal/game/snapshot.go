package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame    uint64
	Score    int
	Turns    int
	Played   int
	Next     string
	Active   string // shape letter, empty between lock and spawn
	ActiveX  int
	ActiveY  int
	Occupied int
	TickMS   int64
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Frame:    g.frame,
		Score:    g.board.Score(),
		Turns:    g.board.Turns(),
		Played:   g.played,
		Next:     g.board.Next().String(),
		Occupied: g.board.Grid().Occupied(),
		TickMS:   g.board.TickInterval().Milliseconds(),
		State:    state,
	}
	if a := g.board.Active(); a != nil {
		s.Active = a.Shape.String()
		s.ActiveX = a.Pos.X
		s.ActiveY = a.Pos.Y
	}
	return s
}
