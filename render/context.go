package render

import "github.com/lixenwraith/snake/core"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Surface extent read at the start of the frame
	Bounds core.Bounds

	// Snake body, head first. Renderers must not modify it
	Body []core.Point

	Food core.Point
}
