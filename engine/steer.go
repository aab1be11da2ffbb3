package engine

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/input"
)

// steerTable gives the heading each arrow key requests.
// Vertical keys are inverted to match the Y axis used by core.Point.Shift.
var steerTable = map[input.Intent]core.Direction{
	input.IntentKeyUp:    core.Down,
	input.IntentKeyDown:  core.Up,
	input.IntentKeyLeft:  core.Left,
	input.IntentKeyRight: core.Right,
}

// Steer returns the new heading for a key press, or false when the heading stays.
// Only turns orthogonal to current are accepted; same, reverse and non-steering keys are ignored.
func Steer(current core.Direction, intent input.Intent) (core.Direction, bool) {
	next, ok := steerTable[intent]
	if !ok {
		return current, false
	}
	if next.Vertical() == current.Vertical() {
		return current, false
	}
	return next, true
}

// Steer applies a key press to the snake heading
func (s *Snake) Steer(intent input.Intent) bool {
	next, changed := Steer(s.Dir, intent)
	if changed {
		s.Dir = next
	}
	return changed
}
