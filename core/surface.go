package core

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the game draws on.
// tcell.Screen and tcell.SimulationScreen both satisfy it.
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Bounds is the surface extent in character cells, read live each tick
type Bounds struct {
	Width, Height int
}

// BoundsOf reads the current extent of s
func BoundsOf(s Surface) Bounds {
	w, h := s.Size()
	return Bounds{Width: w, Height: h}
}

// InInterior reports whether p lies inside the wall ring
func (b Bounds) InInterior(p Point) bool {
	return p.X >= 1 && p.X <= b.Width-2 && p.Y >= 1 && p.Y <= b.Height-2
}

// OnSurface reports whether p is a drawable cell, wall ring included
func (b Bounds) OnSurface(p Point) bool {
	return p.X >= 0 && p.X <= b.Width-1 && p.Y >= 0 && p.Y <= b.Height-1
}

// InteriorCells returns the number of playable cells
func (b Bounds) InteriorCells() int {
	w, h := b.Width-2, b.Height-2
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
