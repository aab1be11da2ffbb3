package constants

// Glyphs drawn on the surface
const (
	SnakeRune = 'O'
	FoodRune  = 'O'
	BlankRune = ' '
)
