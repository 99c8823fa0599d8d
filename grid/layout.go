package grid

import "fmt"

// Layout addresses a row-major 2D array stored in one slice: x is the column
// and runs fastest, y is the row. Every producer and consumer of a flattened
// array goes through a Layout so the (x, y) interpretation cannot drift.
type Layout struct {
	Width, Height int
	Stride        int // Distance between the first elements of two adjacent rows
}

func NewLayout(width, height int) Layout {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("invalid layout dimensions %d x %d", width, height))
	}
	return Layout{
		Width:  width,
		Height: height,
		Stride: width,
	}
}

func (l Layout) Len() int {
	return l.Stride * l.Height
}

func (l Layout) Contains(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Offset is the unchecked flat index of (x, y).
func (l Layout) Offset(x, y int) int {
	return y*l.Stride + x
}

func (l Layout) mustContain(x, y int) {
	if !l.Contains(x, y) {
		panic(fmt.Errorf("index (%d,%d) out of range for %d x %d grid", x, y, l.Width, l.Height))
	}
}
