package engine

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// MoveResult tells how a successful tick changed the body
type MoveResult uint8

const (
	MoveSlid MoveResult = iota // tail dropped, length unchanged
	MoveGrew                   // food eaten, length +1
)

// Snake is the player chain. Body[0] is the head and the body is never empty.
type Snake struct {
	Dir  core.Direction
	Body []core.Point
}

// NewSnake creates the two-segment snake heading right
func NewSnake() *Snake {
	return &Snake{
		Dir: core.Right,
		Body: []core.Point{
			{X: constants.InitialHeadX, Y: constants.InitialHeadY},
			{X: constants.InitialHeadX - 1, Y: constants.InitialHeadY},
		},
	}
}

// Head returns the first segment
func (s *Snake) Head() core.Point {
	return s.Body[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.Body)
}

// Next returns the cell the head moves into on the next tick
func (s *Snake) Next() core.Point {
	return s.Head().Shift(s.Dir)
}

// Advance moves the snake one cell along its heading.
// Eating food grows the body and re-places the food; otherwise the tail cell is vacated and cleared on surface.
func (s *Snake) Advance(surface core.Surface, food *Food, placer *FoodPlacer) (MoveResult, error) {
	bounds := core.BoundsOf(surface)

	if HitsWall(s.Head(), s.Dir, bounds) {
		return MoveSlid, ErrHitWall
	}

	next := s.Next()
	if CrashesIntoSelf(s.Body, next) {
		return MoveSlid, ErrCrashedIntoSelf
	}

	if next.Equal(food.Point) {
		s.Body = slices.Insert(s.Body, 0, next)
		*food = placer.Place(s.Body, bounds)
		return MoveGrew, nil
	}

	last := len(s.Body) - 1
	tail := s.Body[last]
	s.Body = s.Body[:last]
	surface.SetContent(tail.X, tail.Y, constants.BlankRune, nil, tcell.StyleDefault)
	s.Body = slices.Insert(s.Body, 0, next)

	return MoveSlid, nil
}
