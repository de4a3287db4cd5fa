package canvas

import "strings"

// ANSI escape sequences.
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"
)

// ColorCode returns the ANSI code for a color name, or "" if unknown.
func ColorCode(name string) string {
	switch strings.ToLower(name) {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	default:
		return ""
	}
}

// ColoredMatrixCanvas is a MatrixCanvas that also remembers a color name
// per cell.
type ColoredMatrixCanvas struct {
	*MatrixCanvas
	colors [][]string
}

// NewColoredMatrixCanvas creates a blank colored canvas, or nil for a
// non-positive size.
func NewColoredMatrixCanvas(width, height int) *ColoredMatrixCanvas {
	m := NewMatrixCanvas(width, height)
	if m == nil {
		return nil
	}
	colors := make([][]string, height)
	for i := range colors {
		colors[i] = make([]string, width)
	}
	return &ColoredMatrixCanvas{MatrixCanvas: m, colors: colors}
}

// Paint sets the color of every listed cell that is inside the canvas.
func (c *ColoredMatrixCanvas) Paint(color string, cells ...Cell) {
	for _, p := range cells {
		if c.inBounds(p) {
			c.colors[p.Y][p.X] = color
		}
	}
}

// PaintRect colors the outline of the rectangle with its top-left cell at
// (x,y).
func (c *ColoredMatrixCanvas) PaintRect(color string, x, y, width, height int) {
	for i := x; i < x+width; i++ {
		c.Paint(color, Cell{i, y}, Cell{i, y + height - 1})
	}
	for j := y; j < y+height; j++ {
		c.Paint(color, Cell{x, j}, Cell{x + width - 1, j})
	}
}

// ColorAt returns the color name stored for p.
func (c *ColoredMatrixCanvas) ColorAt(p Cell) string {
	if !c.inBounds(p) {
		return ""
	}
	return c.colors[p.Y][p.X]
}

// ColoredString returns the canvas with ANSI color codes around colored
// runs.
func (c *ColoredMatrixCanvas) ColoredString() string {
	var sb strings.Builder
	for y, row := range c.matrix {
		current := ""
		for x, r := range row {
			if code := ColorCode(c.colors[y][x]); code != current {
				if current != "" {
					sb.WriteString(ColorReset)
				}
				sb.WriteString(code)
				current = code
			}
			if r != 0 {
				sb.WriteRune(r)
			}
		}
		if current != "" {
			sb.WriteString(ColorReset)
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
