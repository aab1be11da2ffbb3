package renderers

import (
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
)

// FoodRenderer draws the food cell
type FoodRenderer struct{}

func NewFoodRenderer() *FoodRenderer {
	return &FoodRenderer{}
}

func (r *FoodRenderer) Render(ctx render.RenderContext, s core.Surface) {
	if !ctx.Bounds.OnSurface(ctx.Food) {
		return
	}
	s.SetContent(ctx.Food.X, ctx.Food.Y, constants.FoodRune, nil, render.StyleFood)
}
