package canvas

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas is a rune matrix with line-drawing primitives. Overlapping
// lines are merged into junctions by a CharacterMerger.
//
// MatrixCanvas is not safe for concurrent writes.
type MatrixCanvas struct {
	matrix [][]rune
	width  int
	height int
	merger *CharacterMerger
}

// NewMatrixCanvas creates a blank canvas. It returns nil for a non-positive
// size.
func NewMatrixCanvas(width, height int) *MatrixCanvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	matrix := make([][]rune, height)
	for y := range matrix {
		matrix[y] = []rune(strings.Repeat(" ", width))
	}
	return &MatrixCanvas{
		matrix: matrix,
		width:  width,
		height: height,
		merger: NewCharacterMerger(),
	}
}

// Size returns the width and height in cells.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Matrix exposes the underlying rows.
func (c *MatrixCanvas) Matrix() [][]rune {
	return c.matrix
}

func (c *MatrixCanvas) inBounds(p Cell) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Get returns the rune at p, or a space outside the canvas.
func (c *MatrixCanvas) Get(p Cell) rune {
	if !c.inBounds(p) {
		return ' '
	}
	return c.matrix[p.Y][p.X]
}

// Set merges r into the cell at p.
func (c *MatrixCanvas) Set(p Cell, r rune) error {
	if !c.inBounds(p) {
		return ErrOutOfBounds
	}
	c.matrix[p.Y][p.X] = c.merger.Merge(c.matrix[p.Y][p.X], r)
	return nil
}

// Put overwrites the cell at p without merging.
func (c *MatrixCanvas) Put(p Cell, r rune) error {
	if !c.inBounds(p) {
		return ErrOutOfBounds
	}
	c.matrix[p.Y][p.X] = r
	return nil
}

// Clear resets every cell to a space.
func (c *MatrixCanvas) Clear() {
	for _, row := range c.matrix {
		for x := range row {
			row[x] = ' '
		}
	}
}

// String returns the rows joined by newlines. Continuation cells of wide
// runes are skipped.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y, row := range c.matrix {
		for _, r := range row {
			if r != 0 {
				sb.WriteRune(r)
			}
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// DrawBox outlines the rectangle with its top-left cell at (x,y).
func (c *MatrixCanvas) DrawBox(x, y, width, height int, style BoxStyle) error {
	if width < 2 || height < 2 {
		return ErrInvalidSize
	}
	right, bottom := x+width-1, y+height-1
	for i := x + 1; i < right; i++ {
		c.Set(Cell{i, y}, style.Horizontal)
		c.Set(Cell{i, bottom}, style.Horizontal)
	}
	for j := y + 1; j < bottom; j++ {
		c.Set(Cell{x, j}, style.Vertical)
		c.Set(Cell{right, j}, style.Vertical)
	}
	c.Set(Cell{x, y}, style.TopLeft)
	c.Set(Cell{right, y}, style.TopRight)
	c.Set(Cell{x, bottom}, style.BottomLeft)
	c.Set(Cell{right, bottom}, style.BottomRight)
	return nil
}

// DrawHorizontalLine merges r into every cell from x1 to x2 on row y,
// clipping to the canvas.
func (c *MatrixCanvas) DrawHorizontalLine(x1, y, x2 int, r rune) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := max(x1, 0); x <= min(x2, c.width-1); x++ {
		c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], r)
	}
	return nil
}

// DrawVerticalLine merges r into every cell from y1 to y2 in column x,
// clipping to the canvas.
func (c *MatrixCanvas) DrawVerticalLine(x, y1, y2 int, r rune) error {
	if x < 0 || x >= c.width {
		return ErrOutOfBounds
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := max(y1, 0); y <= min(y2, c.height-1); y++ {
		c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], r)
	}
	return nil
}

// DrawLine draws an arbitrary line with Bresenham's algorithm.
func (c *MatrixCanvas) DrawLine(from, to Cell, r rune) {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	x, y := from.X, from.Y
	e := dx - dy
	for {
		if p := (Cell{x, y}); c.inBounds(p) {
			c.matrix[y][x] = c.merger.Merge(c.matrix[y][x], r)
		}
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

// DrawText writes text starting at (x,y), overwriting what is there. Wide
// runes take two cells; text past the right edge is dropped.
func (c *MatrixCanvas) DrawText(x, y int, text string) error {
	if y < 0 || y >= c.height {
		return ErrOutOfBounds
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.width {
			break
		}
		if x >= 0 {
			c.matrix[y][x] = r
			if w == 2 {
				c.matrix[y][x+1] = 0
			}
		}
		x += w
	}
	return nil
}

// DrawPath draws an orthogonal polyline through cells, joining segments
// with rounded corners. Diagonal segments use chars.Diagonal.
func (c *MatrixCanvas) DrawPath(cells []Cell, chars Charset) {
	cells = compact(cells)
	for i := 0; i+1 < len(cells); i++ {
		a, b := cells[i], cells[i+1]
		switch {
		case a.Y == b.Y:
			c.DrawHorizontalLine(a.X, a.Y, b.X, chars.Horizontal)
		case a.X == b.X:
			c.DrawVerticalLine(a.X, a.Y, b.Y, chars.Vertical)
		default:
			c.DrawLine(a, b, chars.Diagonal)
		}
	}
	for i := 1; i+1 < len(cells); i++ {
		if r, ok := corner(cells[i-1], cells[i], cells[i+1], chars); ok {
			c.Put(cells[i], r)
		}
	}
}

// compact drops consecutive duplicate cells.
func compact(cells []Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, p := range cells {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// direction of travel from a to b: 'E', 'W', 'S', 'N', or 0 for a diagonal.
func direction(a, b Cell) byte {
	switch {
	case a.Y == b.Y && b.X > a.X:
		return 'E'
	case a.Y == b.Y && b.X < a.X:
		return 'W'
	case a.X == b.X && b.Y > a.Y:
		return 'S'
	case a.X == b.X && b.Y < a.Y:
		return 'N'
	}
	return 0
}

// corner picks the rune for a turn at curr. ok is false when the path runs
// straight through or a neighbouring segment is diagonal.
func corner(prev, curr, next Cell, chars Charset) (rune, bool) {
	in, out := direction(prev, curr), direction(curr, next)
	switch {
	case in == 'E' && out == 'S', in == 'N' && out == 'W':
		return chars.DownLeft, true
	case in == 'E' && out == 'N', in == 'S' && out == 'W':
		return chars.UpLeft, true
	case in == 'W' && out == 'S', in == 'N' && out == 'E':
		return chars.DownRight, true
	case in == 'W' && out == 'N', in == 'S' && out == 'E':
		return chars.UpRight, true
	}
	return 0, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
