package engine

import (
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// Food is the single cell the snake grows by eating
type Food struct {
	core.Point
}

// FoodPlacer draws food cells uniformly from the arena interior
type FoodPlacer struct {
	rng     *rand.Rand
	retries int
}

// NewFoodPlacer creates a placer; a nil rng is seeded from the runtime source
func NewFoodPlacer(rng *rand.Rand) *FoodPlacer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &FoodPlacer{
		rng:     rng,
		retries: constants.FoodPlacementRetries,
	}
}

// Place returns a food cell inside b that is not on body
func (p *FoodPlacer) Place(body []core.Point, b core.Bounds) Food {
	food, ok := p.TryPlace(body, b)
	if !ok {
		log.Printf("food: no free interior cell in %dx%d arena, body length %d", b.Width, b.Height, len(body))
	}
	return food
}

// TryPlace draws random interior cells until one is off the body. After the retry budget
// is spent it samples the remaining free cells directly. ok is false only when the
// interior has no free cell, in which case the returned food overlaps the body or the wall.
func (p *FoodPlacer) TryPlace(body []core.Point, b core.Bounds) (Food, bool) {
	if b.InteriorCells() == 0 {
		return Food{core.Point{X: 1, Y: 1}}, false
	}

	var cell core.Point
	for range p.retries {
		cell = p.draw(b)
		if !core.ContainsPoint(body, cell) {
			return Food{cell}, true
		}
	}

	free := freeCells(body, b)
	if len(free) == 0 {
		return Food{cell}, false
	}
	return Food{free[p.rng.IntN(len(free))]}, true
}

// draw picks x in [1, width-2] and y in [1, height-2]
func (p *FoodPlacer) draw(b core.Bounds) core.Point {
	return core.Point{
		X: 1 + p.rng.IntN(b.Width-2),
		Y: 1 + p.rng.IntN(b.Height-2),
	}
}

func freeCells(body []core.Point, b core.Bounds) []core.Point {
	occupied := make(map[core.Point]struct{}, len(body))
	for _, seg := range body {
		occupied[seg] = struct{}{}
	}

	free := make([]core.Point, 0, b.InteriorCells())
	for y := 1; y <= b.Height-2; y++ {
		for x := 1; x <= b.Width-2; x++ {
			pt := core.Point{X: x, Y: y}
			if _, taken := occupied[pt]; !taken {
				free = append(free, pt)
			}
		}
	}
	return free
}
