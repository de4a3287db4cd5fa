package export

import (
	"fmt"
	"strings"

	"elbow/core"
)

// GraphvizExporter writes DOT with every position pinned, so that
// `neato -n2` draws the boxes and the routed connector exactly where they
// are instead of laying them out again.
type GraphvizExporter struct{}

// NewGraphvizExporter creates a Graphviz exporter.
func NewGraphvizExporter() *GraphvizExporter {
	return &GraphvizExporter{}
}

// Export writes the DOT graph. Graphviz measures in points with y growing
// upward, so y is flipped against the scene bounds.
func (e *GraphvizExporter) Export(s *Scene) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	stroke, err := hexColor(s.Style.Stroke, "#000000")
	if err != nil {
		return nil, err
	}

	b := s.Bounds()
	pos := func(p core.Point) string {
		return fmt.Sprintf("%s,%s", num(p.X-b.Left), num(b.Bottom-p.Y))
	}

	var sb strings.Builder
	sb.WriteString("// render with: neato -n2 -Tsvg\n")
	sb.WriteString("digraph elbow {\n")
	fmt.Fprintf(&sb, "  graph [bb=\"0,0,%s,%s\"", num(b.Width()), num(b.Height()))
	if s.Title != "" {
		fmt.Fprintf(&sb, ", label=\"%s\"", e.escapeLabel(s.Title))
	}
	sb.WriteString("];\n")
	sb.WriteString("  node [shape=box, fixedsize=true];\n\n")

	for _, n := range []struct {
		id   string
		node Node
	}{{"origin", s.Origin}, {"destination", s.Destination}} {
		attrs, err := e.getNodeAttributes(n.node)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "  %s [%s, pos=\"%s!\"];\n", n.id, attrs, pos(n.node.Box.Center()))
	}
	sb.WriteString("\n")

	pts := s.Result.Path.Points
	attrs := []string{fmt.Sprintf("color=\"%s\"", stroke), fmt.Sprintf("penwidth=%s", num(s.Style.StrokeWidth))}
	if s.Style.Dashed {
		attrs = append(attrs, "style=dashed")
	}
	var spline string
	switch {
	case s.Style.Arrow && len(pts) > 2:
		// The arrowhead covers the lead-in stub: the spline stops at its
		// start and "e," names the tip.
		spline = "e," + pos(pts[len(pts)-1]) + " " + e.bezier(pts[:len(pts)-1], pos)
	case s.Style.Arrow:
		spline = e.bezier(pts, pos)
	default:
		attrs = append(attrs, "arrowhead=none")
		spline = e.bezier(pts, pos)
	}
	attrs = append(attrs, fmt.Sprintf("pos=\"%s\"", spline))
	fmt.Fprintf(&sb, "  origin -> destination [%s];\n", strings.Join(attrs, ", "))
	sb.WriteString("}\n")
	return []byte(sb.String()), nil
}

// bezier writes a polyline as the cubic B-spline control list Graphviz
// expects: 3n+1 points, each straight piece a degenerate curve.
func (e *GraphvizExporter) bezier(pts []core.Point, pos func(core.Point) string) string {
	parts := []string{pos(pts[0])}
	for i := 1; i < len(pts); i++ {
		parts = append(parts, pos(pts[i-1]), pos(pts[i]), pos(pts[i]))
	}
	return strings.Join(parts, " ")
}

func (e *GraphvizExporter) getNodeAttributes(n Node) (string, error) {
	const pointsPerInch = 72.0
	attrs := []string{
		fmt.Sprintf("label=\"%s\"", e.escapeLabel(n.Label)),
		fmt.Sprintf("width=%s", num(n.Box.Width()/pointsPerInch)),
		fmt.Sprintf("height=%s", num(n.Box.Height()/pointsPerInch)),
	}
	if n.Color != "" {
		color, err := hexColor(n.Color, "")
		if err != nil {
			return "", err
		}
		attrs = append(attrs, fmt.Sprintf("color=\"%s\"", color))
	}
	return strings.Join(attrs, ", "), nil
}

// escapeLabel escapes quotes and backslashes.
func (e *GraphvizExporter) escapeLabel(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	return strings.ReplaceAll(label, `"`, `\"`)
}

// GetFileExtension returns the file extension for DOT.
func (e *GraphvizExporter) GetFileExtension() string {
	return ".dot"
}

// GetFormatName returns the format name.
func (e *GraphvizExporter) GetFormatName() string {
	return "Graphviz DOT"
}
