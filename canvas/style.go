package canvas

import "strings"

// BoxStyle holds the characters used to draw a box outline.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Charset holds the characters used to draw a connector.
type Charset struct {
	Horizontal rune
	Vertical   rune
	Diagonal   rune

	// Corners, named by the two directions they join.
	DownRight rune // ╭
	DownLeft  rune // ╮
	UpRight   rune // ╰
	UpLeft    rune // ╯

	// Junctions where a connector leaves a box outline.
	ExitUp, ExitDown, ExitLeft, ExitRight rune

	ArrowUp, ArrowDown, ArrowLeft, ArrowRight rune
}

var (
	SharpBox   = BoxStyle{'┌', '┐', '└', '┘', '─', '│'}
	RoundedBox = BoxStyle{'╭', '╮', '╰', '╯', '─', '│'}
	DoubleBox  = BoxStyle{'╔', '╗', '╚', '╝', '═', '║'}
	ASCIIBox   = BoxStyle{'+', '+', '+', '+', '-', '|'}
)

var (
	UnicodeLines = Charset{
		Horizontal: '─', Vertical: '│', Diagonal: '·',
		DownRight: '╭', DownLeft: '╮', UpRight: '╰', UpLeft: '╯',
		ExitUp: '┴', ExitDown: '┬', ExitLeft: '┤', ExitRight: '├',
		ArrowUp: '▲', ArrowDown: '▼', ArrowLeft: '◀', ArrowRight: '▶',
	}
	ASCIILines = Charset{
		Horizontal: '-', Vertical: '|', Diagonal: '*',
		DownRight: '+', DownLeft: '+', UpRight: '+', UpLeft: '+',
		ExitUp: '+', ExitDown: '+', ExitLeft: '+', ExitRight: '+',
		ArrowUp: '^', ArrowDown: 'v', ArrowLeft: '<', ArrowRight: '>',
	}
)

// BoxStyleByName returns the named box style: sharp, rounded, double or
// ascii.
func BoxStyleByName(name string) (BoxStyle, bool) {
	switch strings.ToLower(name) {
	case "", "sharp":
		return SharpBox, true
	case "rounded":
		return RoundedBox, true
	case "double":
		return DoubleBox, true
	case "ascii":
		return ASCIIBox, true
	default:
		return BoxStyle{}, false
	}
}
