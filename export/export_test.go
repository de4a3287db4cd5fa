package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elbow/connections"
	"elbow/core"
	"elbow/export"
	"elbow/logging"
)

func sideBySide(t *testing.T) *export.Scene {
	t.Helper()
	origin := export.Node{Box: core.NewBox(0, 0, 100, 40), Label: "A"}
	destination := export.Node{Box: core.NewBox(200, 0, 100, 40), Label: "B"}
	router := connections.NewRouter(connections.WithLogger(logging.Discard()))
	return &export.Scene{
		Origin:      origin,
		Destination: destination,
		Result:      router.Route(origin.Box, destination.Box, core.RightToLeft),
		Style:       export.DefaultStyle(),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected export.Format
		wantErr  bool
	}{
		{"ascii", export.FormatASCII, false},
		{"TXT", export.FormatASCII, false},
		{"json", export.FormatJSON, false},
		{"svg", export.FormatSVG, false},
		{"png", export.FormatPNG, false},
		{"gv", export.FormatDOT, false},
		{"graphviz", export.FormatDOT, false},
		{"mermaid", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := export.ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewExporter(t *testing.T) {
	descriptions := export.GetFormatDescriptions()
	for _, format := range export.GetAvailableFormats() {
		t.Run(string(format), func(t *testing.T) {
			e, err := export.NewExporter(format)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(e.GetFileExtension(), "."))
			assert.NotEmpty(t, e.GetFormatName())
			assert.NotEmpty(t, descriptions[format])

			got, ok := export.FormatForPath("out" + e.GetFileExtension())
			assert.True(t, ok)
			assert.Equal(t, format, got)
		})
	}

	_, err := export.NewExporter("mermaid")
	assert.Error(t, err)

	_, ok := export.FormatForPath("noext")
	assert.False(t, ok)
}

func TestExportersRejectEmptyPath(t *testing.T) {
	s := sideBySide(t)
	s.Result.Path = core.Path{}
	for _, format := range export.GetAvailableFormats() {
		e, _ := export.NewExporter(format)
		_, err := e.Export(s)
		assert.True(t, errors.Is(err, export.ErrEmptyPath), "%s: %v", format, err)
	}
}

func TestExportersRejectUnknownColor(t *testing.T) {
	s := sideBySide(t)
	s.Style.Stroke = "ultraviolet"
	for _, format := range []export.Format{export.FormatSVG, export.FormatPNG, export.FormatDOT} {
		e, _ := export.NewExporter(format)
		_, err := e.Export(s)
		assert.Error(t, err, format)
	}
}

func TestASCIIExport(t *testing.T) {
	e := export.NewASCIIExporter()
	e.Options.Padding = 0

	s := sideBySide(t)
	s.Style.BoxStyle = "ascii"
	out, err := e.Export(s)
	require.NoError(t, err)

	want := "+---------+         +---------+\n" +
		"|    A    +--------->    B    |\n" +
		"+---------+         +---------+\n"
	assert.Equal(t, want, string(out))
}

func TestASCIIExportColor(t *testing.T) {
	e := export.NewASCIIExporter()
	e.Color = true

	s := sideBySide(t)
	s.Style.Stroke = "red"
	out, err := e.Export(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\033[31m")

	s.Style.BoxStyle = "wavy"
	_, err = e.Export(s)
	assert.Error(t, err)
}

func TestJSONExport(t *testing.T) {
	out, err := export.NewJSONExporter().Export(sideBySide(t))
	require.NoError(t, err)

	var doc struct {
		Result struct {
			Mode   string  `json:"mode"`
			Branch string  `json:"branch"`
			Margin float64 `json:"margin"`
		} `json:"result"`
		Local  []core.Point `json:"local"`
		Deltas []core.Point `json:"deltas"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "RIGHT_TO_LEFT", doc.Result.Mode)
	assert.Equal(t, "opposite/direct", doc.Result.Branch)
	assert.Equal(t, -21.0, doc.Result.Margin)
	require.NotEmpty(t, doc.Local)
	assert.Equal(t, core.Pt(121, 41), doc.Local[0])
	assert.Equal(t, []core.Point{core.Pt(20, 0), core.Pt(60, 0), core.Pt(20, 0)}, doc.Deltas)
}

func TestSVGExport(t *testing.T) {
	s := sideBySide(t)
	s.Title = "<A&B>"
	s.Style.Dashed = true

	out, err := export.NewSVGExporter().Export(s)
	require.NoError(t, err)
	svg := string(out)

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="320" height="60"`))
	assert.Contains(t, svg, `<path d="M110 30 L130 30 L190 30 L210 30"`)
	assert.Contains(t, svg, `marker-end="url(#arrow)"`)
	assert.Contains(t, svg, `stroke-dasharray`)
	assert.Contains(t, svg, "<title>&lt;A&amp;B&gt;</title>")
	assert.Contains(t, svg, `<rect x="10" y="10" width="100" height="40"`)
}

func TestPathData(t *testing.T) {
	p := core.Path{Points: []core.Point{core.Pt(0, 0), core.Pt(0, -20), core.Pt(12.5, -20)}}
	assert.Equal(t, "M0 0 L0 -20 L12.5 -20", export.PathData(p))
}

func TestRoundedPathData(t *testing.T) {
	p := core.Path{Points: []core.Point{core.Pt(0, 0), core.Pt(0, -20), core.Pt(30, -20), core.Pt(30, -10)}}

	// The second elbow is limited by the 10-unit final segment.
	assert.Equal(t, "M0 0 L0 -12 Q0 -20 8 -20 L25 -20 Q30 -20 30 -15 L30 -10", export.RoundedPathData(p, 8))
	assert.Equal(t, export.PathData(p), export.RoundedPathData(p, 0))
}

func TestSVGExportShadow(t *testing.T) {
	s := sideBySide(t)
	s.Style.Shadow = "gray"
	s.Style.CornerRadius = 4

	out, err := export.NewSVGExporter().Export(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `stroke="#7f7f7f"`)
	assert.Contains(t, string(out), `transform="translate(1 1)"`)

	s.Style.Shadow = "not-a-color"
	_, err = export.NewSVGExporter().Export(s)
	assert.Error(t, err)
}

func TestPNGExport(t *testing.T) {
	out, err := export.NewPNGExporter().Export(sideBySide(t))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	// The connector runs along y=20, which is pixel row 30 after padding.
	r, g, b, _ := img.At(160, 30).RGBA()
	assert.True(t, r < 0x8000 && g < 0x8000 && b < 0x8000, "connector pixel is not dark")
}

func TestPNGExportRoundedWithShadow(t *testing.T) {
	s := sideBySide(t)
	s.Style.CornerRadius = 6
	s.Style.Shadow = "#cccccc"

	out, err := export.NewPNGExporter().Export(s)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
}

func TestGraphvizExport(t *testing.T) {
	out, err := export.NewGraphvizExporter().Export(sideBySide(t))
	require.NoError(t, err)
	dot := string(out)

	assert.Contains(t, dot, "digraph elbow {")
	assert.Contains(t, dot, `bb="0,0,300,40"`)
	assert.Contains(t, dot, `origin [label="A"`)
	assert.Contains(t, dot, `pos="50,20!"`)
	assert.Contains(t, dot, `pos="e,200,20 100,20 100,20 120,20 120,20 120,20 180,20 180,20"`)

	s := sideBySide(t)
	s.Style.Arrow = false
	out, err = export.NewGraphvizExporter().Export(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "arrowhead=none")
}
