package core

// Point is a cell coordinate on the terminal grid
type Point struct {
	X, Y int
}

// Equal reports component-wise equality
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Shift returns the neighbouring cell one step along dir.
// The vertical axis is inverted relative to screen rows: Up increases Y, Down decreases it.
func (p Point) Shift(dir Direction) Point {
	switch dir {
	case Up:
		return Point{X: p.X, Y: p.Y + 1}
	case Down:
		return Point{X: p.X, Y: p.Y - 1}
	case Left:
		return Point{X: p.X - 1, Y: p.Y}
	case Right:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// ContainsPoint reports whether pts holds a cell equal to p
func ContainsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
