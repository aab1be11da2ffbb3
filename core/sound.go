package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundCrash                  // Game over
	SoundTypeCount
)

// SoundPlayer plays one-shot effects. Implementations must not block the caller.
type SoundPlayer interface {
	Play(SoundType)
}
