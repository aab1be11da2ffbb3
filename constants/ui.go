package constants

// Game over messages printed after the terminal is restored
const (
	MessageHitWall         = "hit the wall"
	MessageCrashedIntoSelf = "you crash body"
	MessageSnakeLost       = "snake is lost"
	MessageQuit            = "quit"
	MessageGameOver        = "Game Over"
)
