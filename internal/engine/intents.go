package engine

// Intents is one frame's batch of edge-triggered player input.
// Board.Update consumes each flag and clears it.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	SoftDrop  bool
	HardDrop  bool
	RotateCW  bool
	RotateCCW bool
	Reset     bool
}

// Any reports whether any intent is set.
func (in Intents) Any() bool {
	return in.MoveLeft || in.MoveRight || in.SoftDrop || in.HardDrop ||
		in.RotateCW || in.RotateCCW || in.Reset
}

// take returns the flag's value and clears it.
func take(flag *bool) bool {
	v := *flag
	*flag = false
	return v
}
