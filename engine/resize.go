package engine

import (
	"log"

	"github.com/lixenwraith/snake/core"
)

// ResizeState carries the previous tick's surface size through the loop.
// The zero value starts at 0x0, so the first reconcile always clears.
type ResizeState struct {
	PrevWidth, PrevHeight int

	// Relocations counts food re-placements caused by resizes
	Relocations int
}

// Reconcile brings food and snake in line with the current surface size.
// It returns ErrSnakeLost when a shrink leaves any body segment off the surface.
func (r *ResizeState) Reconcile(surface core.Surface, snake *Snake, food *Food, placer *FoodPlacer) error {
	bounds := core.BoundsOf(surface)

	changed := bounds.Width != r.PrevWidth || bounds.Height != r.PrevHeight
	r.PrevWidth, r.PrevHeight = bounds.Width, bounds.Height

	if changed {
		log.Printf("resize: surface now %dx%d", bounds.Width, bounds.Height)
		surface.Clear()
	}

	if !bounds.InInterior(food.Point) {
		*food = placer.Place(snake.Body, bounds)
		r.Relocations++
		log.Printf("resize: food relocated to %d,%d", food.X, food.Y)
		surface.Clear()
	}

	for _, seg := range snake.Body {
		if !bounds.OnSurface(seg) {
			return ErrSnakeLost
		}
	}

	return nil
}
