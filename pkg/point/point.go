// Package point holds the integer coordinate type shared by the tile
// geometry packages. The plane follows map convention: x grows to the
// right and y grows upward.
package point

// Point is a position on the integer coordinate plane.
type Point struct {
	X, Y int32
}

// New creates a point at (x, y).
func New(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}
