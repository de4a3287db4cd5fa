package canvas

import (
	"math"

	"elbow/core"
)

// Shape is a labelled box to draw.
type Shape struct {
	Box   core.Box
	Label string
	Color string
}

// Options controls how layout coordinates become cells.
type Options struct {
	// CellWidth and CellHeight are the layout units covered by one cell.
	CellWidth  float64
	CellHeight float64
	// Padding is the number of blank cells around the drawing.
	Padding int

	Box       BoxStyle
	Lines     Charset
	Arrow     bool
	LineColor string
}

// DefaultOptions maps 10x20 layout units onto one cell, which keeps the
// aspect ratio of a typical terminal font.
func DefaultOptions() Options {
	return Options{
		CellWidth:  10,
		CellHeight: 20,
		Padding:    1,
		Box:        SharpBox,
		Lines:      UnicodeLines,
		Arrow:      true,
	}
}

// Grid maps layout coordinates onto cells.
type Grid struct {
	bounds     core.Box
	cellWidth  float64
	cellHeight float64
	padding    int
}

// NewGrid creates a grid covering bounds.
func NewGrid(bounds core.Box, opts Options) Grid {
	cw, ch := opts.CellWidth, opts.CellHeight
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return Grid{bounds: bounds, cellWidth: cw, cellHeight: ch, padding: max(opts.Padding, 0)}
}

// Cell returns the cell nearest to p.
func (g Grid) Cell(p core.Point) Cell {
	return Cell{
		X: int(math.Round((p.X-g.bounds.Left)/g.cellWidth)) + g.padding,
		Y: int(math.Round((p.Y-g.bounds.Top)/g.cellHeight)) + g.padding,
	}
}

// Size returns the canvas size needed to hold the grid.
func (g Grid) Size() (width, height int) {
	br := g.Cell(core.Pt(g.bounds.Right, g.bounds.Bottom))
	return br.X + 1 + g.padding, br.Y + 1 + g.padding
}

// Render draws the shapes, their labels and the connector path.
func Render(shapes []Shape, path core.Path, opts Options) (*ColoredMatrixCanvas, Grid) {
	var bounds core.Box
	for i, s := range shapes {
		if i == 0 {
			bounds = s.Box
			continue
		}
		bounds = bounds.Union(s.Box)
	}
	if !path.IsEmpty() {
		if len(shapes) == 0 {
			bounds = path.Bounds()
		} else {
			bounds = bounds.Union(path.Bounds())
		}
	}

	grid := NewGrid(bounds, opts)
	c := NewColoredMatrixCanvas(grid.Size())

	outlines := make([][4]int, 0, len(shapes))
	for _, s := range shapes {
		x, y, w, h := grid.rect(s.Box)
		c.DrawBox(x, y, w, h, opts.Box)
		if s.Color != "" {
			c.PaintRect(s.Color, x, y, w, h)
		}
		drawLabel(c, s.Label, x, y, w, h)
		outlines = append(outlines, [4]int{x, y, w, h})
	}

	if path.Len() < 2 {
		return c, grid
	}

	cells := make([]Cell, 0, path.Len())
	for _, p := range path.Points {
		cells = append(cells, grid.Cell(p))
	}
	cells = compact(cells)
	if len(cells) < 2 {
		return c, grid
	}

	c.DrawPath(cells, opts.Lines)
	if opts.LineColor != "" {
		c.Paint(opts.LineColor, trace(cells)...)
	}

	first, last := cells[0], cells[len(cells)-1]
	if onOutline(first, outlines) {
		if r, ok := exitRune(direction(first, cells[1]), opts.Lines); ok {
			c.Put(first, r)
		}
	}
	if opts.Arrow {
		c.Put(last, arrowRune(cells[len(cells)-2], last, opts.Lines))
	}
	return c, grid
}

// rect returns the cell rectangle of b, at least 2x2.
func (g Grid) rect(b core.Box) (x, y, w, h int) {
	tl := g.Cell(core.Pt(b.Left, b.Top))
	br := g.Cell(core.Pt(b.Right, b.Bottom))
	return tl.X, tl.Y, max(br.X-tl.X+1, 2), max(br.Y-tl.Y+1, 2)
}

func drawLabel(c *ColoredMatrixCanvas, label string, x, y, w, h int) {
	inner, rows := w-2, h-2
	if label == "" || inner <= 0 || rows <= 0 {
		return
	}
	lines := WrapText(label, inner)
	if len(lines) > rows {
		lines = lines[:rows]
	}
	top := y + 1 + (rows-len(lines))/2
	for i, line := range lines {
		line = FitText(line, inner, "…")
		c.DrawText(x+1+CenterText(line, inner), top+i, line)
	}
}

func onOutline(p Cell, outlines [][4]int) bool {
	for _, o := range outlines {
		x, y, w, h := o[0], o[1], o[2], o[3]
		right, bottom := x+w-1, y+h-1
		inX := p.X >= x && p.X <= right
		inY := p.Y >= y && p.Y <= bottom
		if (inX && (p.Y == y || p.Y == bottom)) || (inY && (p.X == x || p.X == right)) {
			return true
		}
	}
	return false
}

func exitRune(dir byte, chars Charset) (rune, bool) {
	switch dir {
	case 'N':
		return chars.ExitUp, true
	case 'S':
		return chars.ExitDown, true
	case 'W':
		return chars.ExitLeft, true
	case 'E':
		return chars.ExitRight, true
	}
	return 0, false
}

// arrowRune points along the last step of the path. A diagonal step points
// along its dominant axis.
func arrowRune(prev, last Cell, chars Charset) rune {
	dx, dy := last.X-prev.X, last.Y-prev.Y
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return chars.ArrowRight
		}
		return chars.ArrowLeft
	}
	if dy > 0 {
		return chars.ArrowDown
	}
	return chars.ArrowUp
}

// trace lists every cell an orthogonal polyline passes through. Diagonal
// steps contribute only their endpoints.
func trace(cells []Cell) []Cell {
	out := []Cell{cells[0]}
	for i := 0; i+1 < len(cells); i++ {
		a, b := cells[i], cells[i+1]
		if a.X != b.X && a.Y != b.Y {
			out = append(out, b)
			continue
		}
		sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
		for p := a; p != b; {
			p = Cell{p.X + sx, p.Y + sy}
			out = append(out, p)
		}
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
