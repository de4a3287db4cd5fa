// Package canvas rasterizes boxes and connector paths onto a grid of
// terminal cells.
package canvas

import "fmt"

// Cell is a character position. (0,0) is the top-left cell; X grows
// rightward and Y downward.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Canvas is a 2D grid of runes.
type Canvas interface {
	Get(c Cell) rune
	Set(c Cell, r rune) error
	Size() (width, height int)
	Clear()
	String() string
}
