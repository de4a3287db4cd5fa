package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"elbow/core"
)

// PNGExporter rasterizes a scene.
type PNGExporter struct {
	// Scale is the number of pixels per layout unit.
	Scale    float64
	Padding  float64
	FontSize float64
}

// NewPNGExporter creates a PNG exporter at one pixel per layout unit.
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{Scale: 1, Padding: 10, FontSize: 12}
}

// Export draws the scene and encodes it as PNG.
func (e *PNGExporter) Export(s *Scene) ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	stroke, err := hexColor(s.Style.Stroke, "#000000")
	if err != nil {
		return nil, err
	}

	scale := e.Scale
	if scale <= 0 {
		scale = 1
	}
	b := s.Bounds().Grow(e.Padding)
	width := int(math.Ceil(b.Width() * scale))
	height := int(math.Ceil(b.Height() * scale))
	toPx := func(p core.Point) (float64, float64) {
		return (p.X - b.Left) * scale, (p.Y - b.Top) * scale
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    e.FontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for _, n := range []Node{s.Origin, s.Destination} {
		color, err := hexColor(n.Color, "#000000")
		if err != nil {
			return nil, err
		}
		x, y := toPx(core.Pt(n.Box.Left, n.Box.Top))
		dc.SetHexColor(color)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, n.Box.Width()*scale, n.Box.Height()*scale)
		dc.Stroke()
		if n.Label != "" {
			cx, cy := toPx(n.Box.Center())
			dc.DrawStringAnchored(n.Label, cx, cy, 0.5, 0.5)
		}
	}

	pts := s.Result.Path.Points
	turns := roundTurns(s.Result.Path, s.Style.CornerRadius)
	dc.SetLineWidth(math.Max(s.Style.StrokeWidth*scale, 1))
	dc.SetLineJoin(gg.LineJoinRound)
	if s.Style.Shadow != "" {
		shadow, err := hexColor(s.Style.Shadow, "#808080")
		if err != nil {
			return nil, err
		}
		dc.SetHexColor(shadow)
		dc.Push()
		dc.Translate(scale, scale)
		tracePolyline(dc, s.Result.Path, turns, toPx)
		dc.Stroke()
		dc.Pop()
	}
	dc.SetHexColor(stroke)
	if s.Style.Dashed {
		dc.SetDash(6*scale, 4*scale)
	}
	tracePolyline(dc, s.Result.Path, turns, toPx)
	dc.Stroke()
	dc.SetDash()

	if s.Style.Arrow {
		fx, fy := toPx(pts[len(pts)-2])
		tx, ty := toPx(pts[len(pts)-1])
		drawArrowhead(dc, fx, fy, tx, ty, 4+2*s.Style.StrokeWidth*scale)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tracePolyline adds the connector to the current path, bending through
// the rounded turns when there are any.
func tracePolyline(dc *gg.Context, p core.Path, turns []turn, toPx func(core.Point) (float64, float64)) {
	dc.MoveTo(toPx(p.Start()))
	if turns == nil {
		for _, q := range p.Points[1:] {
			dc.LineTo(toPx(q))
		}
		return
	}
	for _, t := range turns {
		dc.LineTo(toPx(t.In))
		cx, cy := toPx(t.Ctrl)
		ox, oy := toPx(t.Out)
		dc.QuadraticTo(cx, cy, ox, oy)
	}
	dc.LineTo(toPx(p.End()))
}

// drawArrowhead fills a triangle whose tip is (tx,ty), pointing along the
// segment from (fx,fy).
func drawArrowhead(dc *gg.Context, fx, fy, tx, ty, size float64) {
	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return
	}
	dx, dy = dx/length, dy/length

	const spread = 0.5
	dc.MoveTo(tx, ty)
	dc.LineTo(tx-size*dx+size*dy*spread, ty-size*dy-size*dx*spread)
	dc.LineTo(tx-size*dx-size*dy*spread, ty-size*dy+size*dx*spread)
	dc.ClosePath()
	dc.Fill()
}

// GetFileExtension returns the file extension for PNG.
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name.
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}
