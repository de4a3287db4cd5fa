package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FitText truncates text to maxWidth cells, ending with ellipsis when
// something was cut.
func FitText(text string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(text) <= maxWidth {
		return text
	}
	if StringWidth(ellipsis) >= maxWidth {
		return runewidth.Truncate(text, maxWidth, "")
	}
	return runewidth.Truncate(text, maxWidth, ellipsis)
}

// WrapText breaks text at word boundaries into lines of at most maxWidth
// cells. A word longer than maxWidth gets a line of its own.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	width := 0
	for _, word := range strings.Fields(text) {
		w := StringWidth(word)
		if width > 0 && width+1+w > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
		if width > 0 {
			line.WriteByte(' ')
			width++
		}
		line.WriteString(word)
		width += w
	}
	if width > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// CenterText returns the x offset that centers text in a span of width
// cells.
func CenterText(text string, width int) int {
	return max(0, (width-StringWidth(text))/2)
}
