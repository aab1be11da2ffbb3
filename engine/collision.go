package engine

import "github.com/lixenwraith/snake/core"

// HitsWall reports whether the current head already sits next to the wall in its direction of travel.
// The check runs on the head before it moves, so the candidate head never lands on the wall ring.
func HitsWall(head core.Point, dir core.Direction, b core.Bounds) bool {
	switch dir {
	case core.Down:
		return head.Y == 1
	case core.Up:
		return head.Y == b.Height-2
	case core.Left:
		return head.X == 1
	case core.Right:
		return head.X == b.Width-2
	}
	return false
}

// CrashesIntoSelf reports whether next overlaps any body segment
func CrashesIntoSelf(body []core.Point, next core.Point) bool {
	return core.ContainsPoint(body, next)
}
