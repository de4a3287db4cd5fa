// Package export writes a routed connector scene to text, vector and
// raster formats.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"elbow/connections"
	"elbow/core"
)

// ErrEmptyPath is returned when a scene has no connector to draw.
var ErrEmptyPath = errors.New("scene has an empty connector path")

// Format names an output format.
type Format string

const (
	// FormatASCII draws the scene with box-drawing characters.
	FormatASCII Format = "ascii"
	// FormatJSON dumps the routing result.
	FormatJSON Format = "json"
	// FormatSVG writes an SVG document.
	FormatSVG Format = "svg"
	// FormatPNG rasterizes the scene.
	FormatPNG Format = "png"
	// FormatDOT writes Graphviz DOT with pinned positions for neato -n2.
	FormatDOT Format = "dot"
)

// Node is one of the two connected boxes.
type Node struct {
	Box   core.Box `json:"box"`
	Label string   `json:"label,omitempty"`
	Color string   `json:"color,omitempty"`
}

// Style holds presentation settings that do not affect routing.
type Style struct {
	// Stroke is a color name or #rrggbb.
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth"`
	Dashed      bool    `json:"dashed,omitempty"`
	Arrow       bool    `json:"arrow"`
	// BoxStyle selects the outline characters of text output.
	BoxStyle string `json:"boxStyle,omitempty"`
	// CornerRadius rounds the elbows of vector and raster output.
	CornerRadius float64 `json:"cornerRadius,omitempty"`
	// Shadow is the color of a drop shadow offset by one unit; empty means
	// no shadow.
	Shadow string `json:"shadow,omitempty"`
}

// DefaultStyle is a solid black connector with an arrowhead.
func DefaultStyle() Style {
	return Style{Stroke: "black", StrokeWidth: connections.DefaultStrokeWidth, Arrow: true, BoxStyle: "sharp"}
}

// Scene is a routed connector together with the boxes it joins.
type Scene struct {
	Title       string             `json:"title,omitempty"`
	Origin      Node               `json:"origin"`
	Destination Node               `json:"destination"`
	Result      connections.Result `json:"result"`
	Style       Style              `json:"style"`
}

// Bounds returns the area covered by both boxes and the connector frame.
func (s *Scene) Bounds() core.Box {
	b := s.Origin.Box.Union(s.Destination.Box)
	if !s.Result.Path.IsEmpty() {
		b = b.Union(s.Result.Path.Bounds())
	}
	return b
}

func (s *Scene) check() error {
	if s == nil {
		return fmt.Errorf("scene is nil")
	}
	if s.Result.Path.Len() < 2 {
		return ErrEmptyPath
	}
	return nil
}

// Exporter renders a scene.
type Exporter interface {
	// Export renders the scene in the target format.
	Export(s *Scene) ([]byte, error)
	// GetFileExtension returns the recommended file extension.
	GetFileExtension() string
	// GetFormatName returns a human-readable format name.
	GetFormatName() string
}

// NewExporter creates an exporter for format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatPNG:
		return NewPNGExporter(), nil
	case FormatDOT:
		return NewGraphvizExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a format name or alias to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "dot", "gv", "graphviz":
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// FormatForPath guesses the format from a file extension.
func FormatForPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

// GetAvailableFormats lists every supported format.
func GetAvailableFormats() []Format {
	return []Format{FormatASCII, FormatJSON, FormatSVG, FormatPNG, FormatDOT}
}

// GetFormatDescriptions returns a description per format.
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatASCII: "Box-drawing text for terminals",
		FormatJSON:  "Routing result with absolute and local path",
		FormatSVG:   "SVG document",
		FormatPNG:   "PNG image",
		FormatDOT:   "Graphviz DOT with pinned positions (neato -n2)",
	}
}
