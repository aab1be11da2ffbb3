package constants

import "time"

// Game Loop Timing Constants
const (
	// HorizontalTickDelay is the pause after a tick while heading left or right
	HorizontalTickDelay = 200 * time.Millisecond

	// VerticalTickDelay is the pause after a tick while heading up or down.
	// Terminal cells are roughly twice as tall as wide, so vertical travel is slowed to match.
	VerticalTickDelay = 400 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 100
)

// Snake Setup
const (
	// InitialHeadX, InitialHeadY place the head of a new snake; the tail sits one cell to the left
	InitialHeadX = 3
	InitialHeadY = 3
)

// Food Placement
const (
	// FoodPlacementRetries bounds random draws before falling back to free-cell enumeration
	FoodPlacementRetries = 64
)
