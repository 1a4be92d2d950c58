package rect_test

import (
	"fmt"

	"github.com/rywk/rect/pkg/point"
	"github.com/rywk/rect/pkg/rect"
)

func ExampleRect_Right() {
	r := rect.New(1, 1, 4, 3)

	fmt.Println(r.Right())
	// Output: 4
}

func ExampleRect_Bottom() {
	r := rect.New(1, 1, 4, 3)

	fmt.Println(r.Bottom())
	// Output: -1
}

func ExampleRect_Overlaps() {
	// Rect 1 and 2 share cells, rect 3 sits apart from both:
	//
	//	+--+
	//	|1 !---+
	//	+--!   |
	//	   | 2 |
	//	   |   |
	//	   +---+  +-+
	//	          |3|
	//	O         +-+
	rect1 := rect.New(0, 7, 4, 3)
	rect2 := rect.New(3, 6, 5, 5)
	rect3 := rect.New(10, 2, 3, 3)

	fmt.Println(rect1.Overlaps(rect2))
	fmt.Println(rect2.Overlaps(rect1))
	fmt.Println(rect3.Overlaps(rect1))
	fmt.Println(rect3.Overlaps(rect2))
	// Output:
	// true
	// true
	// false
	// false
}

func ExampleRect_TopLeft() {
	r := rect.New(2, 1, 4, 3)

	fmt.Println(r.TopLeft())
	// Output: {2 1}
}

func ExampleRect_Corners() {
	r := rect.New(1, 1, 3, 5)

	fmt.Println(r.Corners())
	// Output: [{1 1} {3 1} {1 -3} {3 -3}]
}

func ExampleRect_Expand() {
	r := rect.New(1, 1, 3, 5)
	r.Expand(point.New(1, 0))

	fmt.Println(r == rect.New(1, 1, 4, 5))
	// Output: true
}

func ExampleRect_Contains() {
	r := rect.New(0, 0, 3, 5)

	fmt.Println(r.Contains(point.New(1, -3)))
	fmt.Println(r.Contains(point.New(1, 0)))
	fmt.Println(r.Contains(point.New(-1, 0)))
	// Output:
	// true
	// true
	// false
}

func ExampleRect_Area() {
	r := rect.New(0, 5, 3, 5)

	fmt.Println(r.Area())
	// Output: 15
}

func ExampleRect_CentreOn() {
	r := rect.New(0, 4, 4, 4)
	r.CentreOn(point.New(4, 4))

	fmt.Println(r.TopLeft())
	// Output: {2 6}
}

func ExampleRect_Cells() {
	it := rect.New(0, 1, 2, 2).Cells()
	for it.Next() {
		fmt.Println(it.Pos())
	}
	// Output:
	// {0 1}
	// {1 1}
	// {0 0}
	// {1 0}
}

func ExampleRect_InnerCells() {
	it := rect.New(0, 3, 4, 4).InnerCells()
	for it.Next() {
		fmt.Println(it.Pos())
	}
	// Output:
	// {1 2}
	// {2 2}
	// {1 1}
	// {2 1}
}
