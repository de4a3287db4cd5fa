package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"elbow/core"
)

// SVGExporter writes a scene as an SVG document in layout units.
type SVGExporter struct {
	// Padding is added around the scene bounds.
	Padding float64
	// FontSize is used for box labels.
	FontSize float64
}

// NewSVGExporter creates an SVG exporter.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{Padding: 10, FontSize: 12}
}

// Export writes the SVG document.
func (e *SVGExporter) Export(s *Scene) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	stroke, err := hexColor(s.Style.Stroke, "#000000")
	if err != nil {
		return nil, err
	}

	b := s.Bounds().Grow(e.Padding)
	dx, dy := -b.Left, -b.Top

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(b.Width()), num(b.Height()), num(b.Width()), num(b.Height()))
	if s.Title != "" {
		buf.WriteString("  <title>")
		xml.EscapeText(&buf, []byte(s.Title))
		buf.WriteString("</title>\n")
	}
	if s.Style.Arrow {
		fmt.Fprintf(&buf, `  <defs><marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="%s"/></marker></defs>`+"\n", stroke)
	}

	for _, n := range []Node{s.Origin, s.Destination} {
		if err := e.writeNode(&buf, n, dx, dy); err != nil {
			return nil, err
		}
	}

	attrs := []string{
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, stroke),
		fmt.Sprintf(`stroke-width="%s"`, num(s.Style.StrokeWidth)),
		`stroke-linejoin="round"`,
	}
	if s.Style.Dashed {
		attrs = append(attrs, `stroke-dasharray="6 4"`)
	}
	if s.Style.Arrow {
		attrs = append(attrs, `marker-end="url(#arrow)"`)
	}
	d := RoundedPathData(s.Result.Path.Offset(dx, dy), s.Style.CornerRadius)
	if s.Style.Shadow != "" {
		shadow, err := hexColor(s.Style.Shadow, "#808080")
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round" opacity="0.5" transform="translate(1 1)"/>`+"\n",
			d, shadow, num(s.Style.StrokeWidth))
	}
	fmt.Fprintf(&buf, `  <path d="%s" %s/>`+"\n", d, strings.Join(attrs, " "))
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (e *SVGExporter) writeNode(buf *bytes.Buffer, n Node, dx, dy float64) error {
	color, err := hexColor(n.Color, "#000000")
	if err != nil {
		return err
	}
	box := n.Box.Translate(core.Pt(dx, dy))
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`+"\n",
		num(box.Left), num(box.Top), num(box.Width()), num(box.Height()), color)
	if n.Label != "" {
		fmt.Fprintf(buf, `  <text x="%s" y="%s" font-family="monospace" font-size="%s" text-anchor="middle" dominant-baseline="middle">`,
			num(box.MidX()), num(box.MidY()), num(e.FontSize))
		xml.EscapeText(buf, []byte(n.Label))
		buf.WriteString("</text>\n")
	}
	return nil
}

// PathData formats a path as SVG path data: one move-to followed by
// absolute line-tos.
func PathData(p core.Path) string {
	var sb strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(num(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(num(pt.Y))
	}
	return sb.String()
}

// RoundedPathData is PathData with every elbow replaced by a quadratic
// curve of the given radius. A non-positive radius gives plain PathData.
func RoundedPathData(p core.Path, radius float64) string {
	turns := roundTurns(p, radius)
	if turns == nil {
		return PathData(p)
	}
	var sb strings.Builder
	pt := func(cmd string, q core.Point) {
		sb.WriteString(cmd)
		sb.WriteString(num(q.X))
		sb.WriteByte(' ')
		sb.WriteString(num(q.Y))
	}
	pt("M", p.Start())
	for _, t := range turns {
		pt(" L", t.In)
		pt(" Q", t.Ctrl)
		pt(" ", t.Out)
	}
	pt(" L", p.End())
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GetFileExtension returns the file extension for SVG.
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name.
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}
