package renderers

import (
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
)

// SnakeRenderer draws every body segment
type SnakeRenderer struct{}

// NewSnakeRenderer creates a new snake renderer
func NewSnakeRenderer() *SnakeRenderer {
	return &SnakeRenderer{}
}

// Render draws the body tail-first so the head wins any overlap
func (r *SnakeRenderer) Render(ctx render.RenderContext, s core.Surface) {
	for i := len(ctx.Body) - 1; i >= 0; i-- {
		seg := ctx.Body[i]
		if !ctx.Bounds.OnSurface(seg) {
			continue
		}
		style := render.StyleSnake
		if i == 0 {
			style = render.StyleHead
		}
		s.SetContent(seg.X, seg.Y, constants.SnakeRune, nil, style)
	}
}
