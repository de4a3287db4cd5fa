package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// Arms of a line rune.
const (
	north uint8 = 1 << iota
	east
	south
	west
)

var arms = map[rune]uint8{
	'─': east | west, '-': east | west, '═': east | west,
	'│': north | south, '|': north | south, '║': north | south,
	'┌': east | south, '╭': east | south, '╔': east | south,
	'┐': west | south, '╮': west | south, '╗': west | south,
	'└': east | north, '╰': east | north, '╚': east | north,
	'┘': west | north, '╯': west | north, '╝': west | north,
	'├': north | south | east,
	'┤': north | south | west,
	'┬': east | west | south,
	'┴': east | west | north,
	'┼': north | east | south | west,
	'+': north | east | south | west,
}

// Arrowheads need a line behind them but are neutral to their other
// neighbours.
var arrowTails = map[rune]uint8{
	'▶': west, '>': west,
	'◀': east, '<': east,
	'▲': south, '^': south,
	'▼': north,
}

// DrawingValidator checks that every line rune in a text drawing joins up
// with its neighbours.
type DrawingValidator struct {
	// StrictASCII flags '+' joints whose arms lead nowhere. '+' doubles as
	// the ASCII box corner, so it is lenient by default.
	StrictASCII bool
}

// NewDrawingValidator creates a validator with default settings.
func NewDrawingValidator() *DrawingValidator {
	return &DrawingValidator{}
}

// DrawingIssue locates a broken joint in a drawing.
type DrawingIssue struct {
	X, Y    int
	Char    rune
	Message string
}

func (d DrawingIssue) String() string {
	return fmt.Sprintf("(%d,%d) '%c': %s", d.X, d.Y, d.Char, d.Message)
}

// Validate checks a rendered drawing.
func (v *DrawingValidator) Validate(drawing string) []DrawingIssue {
	lines := strings.Split(strings.TrimRight(drawing, "\n"), "\n")
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	at := func(x, y int) rune {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return ' '
		}
		return grid[y][x]
	}

	var issues []DrawingIssue
	for y, row := range grid {
		for x, r := range row {
			need, isLine := arms[r]
			if tail, ok := arrowTails[r]; ok {
				need, isLine = tail, true
			}
			if !isLine || (r == '+' && !v.StrictASCII) {
				continue
			}
			for _, d := range []struct {
				arm      uint8
				dx, dy   int
				opposite uint8
				name     string
			}{
				{north, 0, -1, south, "north"},
				{east, 1, 0, west, "east"},
				{south, 0, 1, north, "south"},
				{west, -1, 0, east, "west"},
			} {
				if need&d.arm == 0 {
					continue
				}
				n := at(x+d.dx, y+d.dy)
				if !joins(n, d.opposite) {
					issues = append(issues, DrawingIssue{
						X: x, Y: y, Char: r,
						Message: fmt.Sprintf("cannot connect to %q on the %s", n, d.name),
					})
				}
			}
		}
	}
	return issues
}

// joins reports whether r accepts a line arriving from direction arm.
// Blank cells, text and arrowheads are accepted.
func joins(r rune, arm uint8) bool {
	if r == ' ' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	if _, ok := arrowTails[r]; ok {
		return true
	}
	a, ok := arms[r]
	if !ok {
		return true
	}
	return a&arm != 0
}
