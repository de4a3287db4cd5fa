package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"elbow/config"
	"elbow/core"
	"elbow/export"
	"elbow/logging"
	"elbow/terminal"
	"elbow/validation"
)

// options are the parsed command line flags.
type options struct {
	scene       string
	mode        string
	origin      string
	destination string
	dent        float64
	stroke      string
	width       float64
	radius      float64
	boxStyle    string
	legacy      string
	format      string
	output      string
	interactive bool
	validate    bool
	color       bool
	noArrow     bool

	// set records which flags were given explicitly, so they can override a
	// scene file.
	set map[string]bool
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logging.Init(logging.FromEnv())
	defer logging.Close()

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{set: map[string]bool{}}

	fs.StringVar(&o.scene, "config", "", "Scene file (YAML)")
	fs.StringVar(&o.mode, "mode", core.TopToBottom.String(), "Routing mode, e.g. TOP_TO_BOTTOM, SHORTEST, DIRECT")
	fs.StringVar(&o.origin, "origin", "0,0,100,40", "Origin box as x,y,width,height")
	fs.StringVar(&o.destination, "dest", "200,120,100,40", "Destination box as x,y,width,height")
	fs.Float64Var(&o.dent, "dent", 20, "Stub length at both ends")
	fs.StringVar(&o.stroke, "stroke", "black", "Line color (name or #rrggbb)")
	fs.Float64Var(&o.width, "width", 2, "Line width")
	fs.Float64Var(&o.radius, "radius", 0, "Corner radius for svg and png output")
	fs.StringVar(&o.boxStyle, "box", "sharp", "Box style for text output: sharp, rounded, double, ascii")
	fs.StringVar(&o.legacy, "legacy", "", "Route with the two-value auto mode: side-to-side or top-to-bottom")
	fs.StringVar(&o.format, "format", "", "Export format: "+formatList()+" (default: from -o, else ascii)")
	fs.StringVar(&o.output, "o", "", "Output file (default: stdout)")
	fs.BoolVar(&o.interactive, "i", false, "Interactive preview")
	fs.BoolVar(&o.validate, "validate", false, "Validate the routed path and the text drawing")
	fs.BoolVar(&o.color, "color", false, "Colorize text output")
	fs.BoolVar(&o.noArrow, "no-arrow", false, "Omit the arrowhead")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: elbow [options]\n\n")
		fmt.Fprintf(out, "Routes an elbow connector between two boxes and prints or exports it.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  elbow -mode SHORTEST -origin 0,0,100,40 -dest 200,120,100,40\n")
		fmt.Fprintf(out, "  elbow -config scene.yaml -o scene.svg\n")
		fmt.Fprintf(out, "  elbow -config scene.yaml -i\n")
		fmt.Fprintf(out, "\nLogging is configured with ELBOW_LOG_LEVEL, ELBOW_LOG_FORMAT, ELBOW_LOG_FILE and ELBOW_LOG_SOURCE.\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func formatList() string {
	names := make([]string, 0, len(export.GetAvailableFormats()))
	for _, f := range export.GetAvailableFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// run routes the scene described by o and writes the result.
func run(o *options, stdout, stderr io.Writer) error {
	scene, err := buildScene(o)
	if err != nil {
		return err
	}
	logger := logging.WithComponent("cli")
	if scene.Logging != (logging.Options{}) {
		logging.Init(scene.Logging)
		logger = logging.WithComponent("cli")
	}

	if o.interactive {
		return terminal.Run(terminal.State{
			Origin:      export.Node{Box: scene.Origin.Box.Core(), Label: scene.Origin.Label, Color: scene.Origin.Color},
			Destination: export.Node{Box: scene.Destination.Box.Core(), Label: scene.Destination.Label, Color: scene.Destination.Color},
			Mode:        scene.RoutingMode(),
			Dent:        scene.Dent,
			Style:       export.Style{Stroke: scene.Style.Stroke, StrokeWidth: scene.Style.StrokeWidth, Arrow: scene.Style.Arrow, BoxStyle: scene.Style.BoxStyle},
		}, logging.Discard())
	}

	routed, err := scene.Build(logger)
	if err != nil {
		return err
	}
	logger.Debug("scene routed",
		slog.String("mode", routed.Result.Mode.String()),
		slog.String("branch", routed.Result.Branch),
		slog.String("frame", routed.Result.Frame.String()))

	format, err := outputFormat(o)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	if a, ok := exporter.(*export.ASCIIExporter); ok {
		a.Color = o.color
	}
	data, err := exporter.Export(routed)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", format, err)
	}

	if o.validate {
		if err := validate(scene, routed, stderr); err != nil {
			return err
		}
	}

	if o.output == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(o.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(stderr, "Successfully exported to %s\n", o.output)
	return nil
}

// buildScene loads the scene file, if any, and applies explicitly given
// flags on top of it. Without a scene file every flag applies.
func buildScene(o *options) (config.Scene, error) {
	s := config.Defaults()
	if o.scene != "" {
		var err error
		if s, err = config.Load(o.scene); err != nil {
			return s, err
		}
	}
	apply := func(name string) bool { return o.scene == "" || o.set[name] }

	if apply("mode") {
		s.Mode = o.mode
	}
	if apply("origin") {
		b, err := parseBox(o.origin)
		if err != nil {
			return s, fmt.Errorf("-origin: %w", err)
		}
		s.Origin.Box = b
		if s.Origin.Label == "" {
			s.Origin.Label = "origin"
		}
	}
	if apply("dest") {
		b, err := parseBox(o.destination)
		if err != nil {
			return s, fmt.Errorf("-dest: %w", err)
		}
		s.Destination.Box = b
		if s.Destination.Label == "" {
			s.Destination.Label = "destination"
		}
	}
	if apply("dent") {
		s.Dent = o.dent
	}
	if apply("stroke") {
		s.Style.Stroke = o.stroke
	}
	if apply("width") {
		s.Style.StrokeWidth = o.width
	}
	if apply("radius") {
		s.Style.CornerRadius = o.radius
	}
	if apply("box") {
		s.Style.BoxStyle = o.boxStyle
	}
	if apply("legacy") {
		s.Legacy = o.legacy
	}
	if o.noArrow {
		s.Style.Arrow = false
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// parseBox parses "x,y,width,height".
func parseBox(s string) (config.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return config.Box{}, fmt.Errorf("box %q: want x,y,width,height", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return config.Box{}, fmt.Errorf("box %q: %w", s, err)
		}
		v[i] = f
	}
	return config.Box{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func outputFormat(o *options) (export.Format, error) {
	if o.format != "" {
		return export.ParseFormat(o.format)
	}
	if f, ok := export.FormatForPath(o.output); ok {
		return f, nil
	}
	return export.FormatASCII, nil
}

// validate checks the routed path and its text drawing and reports every
// issue. Errors fail the run; warnings are only printed.
func validate(s config.Scene, routed *export.Scene, w io.Writer) error {
	var issues []validation.Issue
	if s.Legacy == "" {
		issues = validation.NewPathValidator(s.Dent).Validate(
			routed.Origin.Box, routed.Destination.Box, routed.Result.Mode, routed.Result.Path)
	}
	for _, issue := range issues {
		fmt.Fprintf(w, "path: %s\n", issue)
	}

	text, err := export.NewASCIIExporter().Export(routed)
	if err != nil {
		return err
	}
	drawingIssues := validation.NewDrawingValidator().Validate(string(text))
	for _, issue := range drawingIssues {
		fmt.Fprintf(w, "drawing: %s\n", issue)
	}

	if err := validation.Err(issues); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if len(drawingIssues) > 0 {
		return errors.New("validation failed: malformed drawing")
	}
	fmt.Fprintln(w, "Validation passed")
	return nil
}
