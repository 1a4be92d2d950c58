// Package rect implements an axis-aligned rectangle on the integer tile
// plane, with the geometric queries and cell traversal that map
// generation leans on.
package rect

import (
	"github.com/rywk/rect/pkg/point"
)

// Rect is a rectangle on the tile plane.
//
// The plane reads like a map, not a screen: y grows upward, so Top is
// the largest y co-ord of the rect and Bottom() the smallest. A 4 wide,
// 3 tall rect with its top left at (1, 1), next to the origin O:
//
//	 +--+
//	O|  |
//	 +--+
//
// Right() is 4 and Bottom() is -1. A well formed rect has Wid and Hgt
// of at least 1. Nothing validates that; zero or negative sizes stay
// representable and every operation degrades to a defined result on
// them rather than panicking.
type Rect struct {
	Top  int32 // largest y co-ord
	Left int32 // smallest x co-ord
	Wid  int32 // width in tiles
	Hgt  int32 // height in tiles
}

// New creates a rect from its top left corner and size. No validation.
func New(left, top, wid, hgt int32) Rect {
	return Rect{
		Top:  top,
		Left: left,
		Wid:  wid,
		Hgt:  hgt,
	}
}

// Right returns the largest x co-ord of the rect.
func (r Rect) Right() int32 {
	return r.Left + r.Wid - 1
}

// Bottom returns the smallest y co-ord of the rect.
func (r Rect) Bottom() int32 {
	return r.Top - r.Hgt + 1
}

// TopLeft returns the top left corner as a point.
func (r Rect) TopLeft() point.Point {
	return point.New(r.Left, r.Top)
}

// Overlaps returns true if r and other share at least one cell. The
// relation is symmetric for well formed rects.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left <= other.Right() &&
		r.Right() >= other.Left &&
		r.Top >= other.Bottom() &&
		r.Bottom() <= other.Top
}

// Corners returns the four corners of the rect in top-left, top-right,
// bottom-left, bottom-right order.
func (r Rect) Corners() []point.Point {
	left := r.Left
	right := r.Right()
	top := r.Top
	bottom := r.Bottom()

	return []point.Point{
		point.New(left, top),
		point.New(right, top),
		point.New(left, bottom),
		point.New(right, bottom),
	}
}

// Edges returns every cell on the boundary of the rect: the top and
// bottom rows paired per column from left to right, then the left and
// right columns paired per row from bottom to top with the corner rows
// skipped. Nothing is deduplicated, so a rect one tile wide or one tile
// tall reports the cells on its coinciding edges twice. Consumers rely
// on this exact order and multiplicity.
func (r Rect) Edges() []point.Point {
	var points []point.Point

	for x := r.Left; x <= r.Right(); x++ {
		points = append(points, point.New(x, r.Top), point.New(x, r.Bottom()))
	}

	for y := r.Bottom() + 1; y <= r.Top-1; y++ {
		points = append(points, point.New(r.Left, y), point.New(r.Right(), y))
	}

	return points
}

// Expand grows the rect by the absolute size of dir on each axis. The
// sign of each component picks the edge that moves: positive x grows the
// rect rightward and negative x leftward, positive y grows it upward and
// negative y downward. The opposite edge stays anchored, and a zero
// component leaves its axis alone.
func (r *Rect) Expand(dir point.Point) {
	r.Wid += abs(dir.X)

	if dir.X < 0 {
		r.Left += dir.X
	}

	r.Hgt += abs(dir.Y)

	if dir.Y > 0 {
		r.Top += dir.Y
	}
}

// Contains returns true if pos is within or on the rect's boundaries.
func (r Rect) Contains(pos point.Point) bool {
	return r.Left <= pos.X && r.Right() >= pos.X && r.Top >= pos.Y && r.Bottom() <= pos.Y
}

// Cells returns an iterator over every position inside the rect, edges
// included. Traversal runs from the top row to the bottom row, left to
// right within each row.
func (r Rect) Cells() InteriorIter {
	return newInteriorIter(r)
}

// InnerCells returns an iterator over the positions strictly inside the
// rect, excluding the one-tile boundary ring. A rect too thin to have an
// interior (Wid or Hgt of 2 or less) yields nothing.
func (r Rect) InnerCells() InteriorIter {
	return newInteriorIter(New(r.Left+1, r.Top-1, r.Wid-2, r.Hgt-2))
}

// Area returns the number of cells the rect covers. Malformed negative
// sizes still report a non-negative count.
func (r Rect) Area() uint32 {
	a := r.Wid * r.Hgt
	if a < 0 {
		a = -a
	}
	return uint32(a)
}

// MoveTo relocates the rect so its top left corner lands on pos. The
// size is unchanged.
func (r *Rect) MoveTo(pos point.Point) {
	r.Left = pos.X
	r.Top = pos.Y
}

// CentreOn moves the rect so its centre lands on centre. When exact
// centring is impossible (even width or height) the cell placed on
// centre sits to the right of and/or below the true middle of the rect.
func (r *Rect) CentreOn(centre point.Point) {
	r.MoveTo(centre.Add(point.New(-r.Wid/2, r.Hgt/2)))
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
