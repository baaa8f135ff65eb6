package types

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p moved by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Neg returns the opposite vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Velocity values the head may be stepped by each tick.
var (
	Still = Point{}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Square returns a tileCount x tileCount grid.
func Square(tileCount int) Grid {
	return Grid{Width: tileCount, Height: tileCount}
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of tiles on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
