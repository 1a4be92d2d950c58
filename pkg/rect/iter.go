package rect

import (
	"github.com/rywk/rect/pkg/point"
)

// InteriorIter walks the cells of a rect without materializing them:
// top row to bottom row, left to right within a row. It is a single
// pass cursor; once exhausted it stays exhausted, and a fresh iterator
// has to be constructed to traverse again.
type InteriorIter struct {
	cur     point.Point
	rect    Rect
	started bool
	done    bool
}

func newInteriorIter(r Rect) InteriorIter {
	return InteriorIter{
		cur:  r.TopLeft(),
		rect: r,
		// Inverted bounds hold no cells to visit.
		done: r.Wid <= 0 || r.Hgt <= 0,
	}
}

// Next advances the iterator to the next cell. It returns false once
// every cell has been produced, and keeps returning false after that.
func (it *InteriorIter) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}

	newX := it.cur.X + 1

	// Wrap at the end of the row.
	if newX > it.rect.Right() {
		newX = it.rect.Left
		it.cur.Y--

		// Past the last row the traversal is finished.
		if it.cur.Y < it.rect.Bottom() {
			it.done = true
			return false
		}
	}

	it.cur.X = newX
	return true
}

// Pos returns the cell the iterator is on. It is valid after a call to
// Next that returned true.
func (it *InteriorIter) Pos() point.Point {
	return it.cur
}
