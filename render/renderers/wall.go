package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
)

// WallRenderer draws the one-cell box around the arena
type WallRenderer struct{}

// NewWallRenderer creates a new wall renderer
func NewWallRenderer() *WallRenderer {
	return &WallRenderer{}
}

// Render draws edges first, then the four corners
func (w *WallRenderer) Render(ctx render.RenderContext, s core.Surface) {
	width, height := ctx.Bounds.Width, ctx.Bounds.Height
	if width < 2 || height < 2 {
		return
	}
	right, bottom := width-1, height-1

	for x := 1; x < right; x++ {
		s.SetContent(x, 0, tcell.RuneHLine, nil, render.StyleWall)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, render.StyleWall)
	}
	for y := 1; y < bottom; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, render.StyleWall)
		s.SetContent(right, y, tcell.RuneVLine, nil, render.StyleWall)
	}

	s.SetContent(0, 0, tcell.RuneULCorner, nil, render.StyleWall)
	s.SetContent(right, 0, tcell.RuneURCorner, nil, render.StyleWall)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, render.StyleWall)
	s.SetContent(0, bottom, tcell.RuneLLCorner, nil, render.StyleWall)
}
