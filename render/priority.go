package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityWall RenderPriority = iota
	PrioritySnake
	PriorityFood
)
