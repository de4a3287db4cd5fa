package export

import (
	"fmt"

	"elbow/canvas"
)

// ASCIIExporter draws a scene with box-drawing characters.
type ASCIIExporter struct {
	// Color adds ANSI color codes.
	Color bool
	// Options controls cell size and padding. Box, Lines and Arrow are
	// taken from the scene style.
	Options canvas.Options
}

// NewASCIIExporter creates an exporter with the default cell size.
func NewASCIIExporter() *ASCIIExporter {
	return &ASCIIExporter{Options: canvas.DefaultOptions()}
}

// Export draws the scene.
func (e *ASCIIExporter) Export(s *Scene) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	c, err := e.Render(s)
	if err != nil {
		return nil, err
	}
	out := c.String()
	if e.Color {
		out = c.ColoredString()
	}
	return []byte(out + "\n"), nil
}

// Render rasterizes the scene onto a canvas.
func (e *ASCIIExporter) Render(s *Scene) (*canvas.ColoredMatrixCanvas, error) {
	opts := e.Options
	box, ok := canvas.BoxStyleByName(s.Style.BoxStyle)
	if !ok {
		return nil, fmt.Errorf("unknown box style %q", s.Style.BoxStyle)
	}
	opts.Box = box
	opts.Lines = canvas.UnicodeLines
	if box == canvas.ASCIIBox {
		opts.Lines = canvas.ASCIILines
	}
	opts.Arrow = s.Style.Arrow
	opts.LineColor = s.Style.Stroke
	if opts.LineColor == "black" {
		opts.LineColor = ""
	}

	shapes := []canvas.Shape{
		{Box: s.Origin.Box, Label: s.Origin.Label, Color: s.Origin.Color},
		{Box: s.Destination.Box, Label: s.Destination.Label, Color: s.Destination.Color},
	}
	c, _ := canvas.Render(shapes, s.Result.Path, opts)
	return c, nil
}

// GetFileExtension returns the recommended file extension.
func (e *ASCIIExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name.
func (e *ASCIIExporter) GetFormatName() string {
	return "ASCII/Unicode Art"
}
