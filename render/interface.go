package render

import "github.com/lixenwraith/snake/core"

// SystemRenderer draws one layer of the frame onto the surface
type SystemRenderer interface {
	Render(ctx RenderContext, s core.Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
