package render

import "github.com/gdamore/tcell/v2"

// Frame styles
var (
	StyleWall  = tcell.StyleDefault
	StyleSnake = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleHead  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	StyleFood  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)
