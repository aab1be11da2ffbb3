package engine

import (
	"errors"

	"github.com/lixenwraith/snake/constants"
)

// Reason identifies why a game ended
type Reason uint8

const (
	ReasonHitWall Reason = iota
	ReasonCrashedIntoSelf
	ReasonSnakeLost
)

func (r Reason) String() string {
	switch r {
	case ReasonHitWall:
		return constants.MessageHitWall
	case ReasonCrashedIntoSelf:
		return constants.MessageCrashedIntoSelf
	case ReasonSnakeLost:
		return constants.MessageSnakeLost
	default:
		return "unknown"
	}
}

// GameOverError is the fatal outcome of a tick. None of its reasons are recoverable.
type GameOverError struct {
	Reason Reason
}

func (e *GameOverError) Error() string {
	return e.Reason.String()
}

// Sentinel errors
var (
	ErrHitWall         = &GameOverError{Reason: ReasonHitWall}
	ErrCrashedIntoSelf = &GameOverError{Reason: ReasonCrashedIntoSelf}
	ErrSnakeLost       = &GameOverError{Reason: ReasonSnakeLost}

	// ErrQuit ends the loop on a player quit request; it is not a game-over reason
	ErrQuit = errors.New(constants.MessageQuit)
)

// IsGameOver reports whether err carries a game-over reason
func IsGameOver(err error) bool {
	var goErr *GameOverError
	return errors.As(err, &goErr)
}
