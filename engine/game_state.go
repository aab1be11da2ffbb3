package engine

// GameState is the loop state machine: Running until the first fatal tick, then Over
type GameState uint8

const (
	StateRunning GameState = iota
	StateOver
)

func (s GameState) String() string {
	if s == StateOver {
		return "over"
	}
	return "running"
}
