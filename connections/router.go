// Package connections computes orthogonal "elbow" connector paths between
// two boxes.
//
// Every directional mode is served by one of three routing families through
// a fixed table. A table entry pairs the family with the axis symmetry that
// turns the mode into the family's canonical orientation, where the origin
// always leaves through its TOP side:
//
//	same-side      TOP_TO_TOP
//	opposite-side  TOP_TO_BOTTOM
//	corner         TOP_TO_LEFT
//
// A routed path is built in five stages: the origin anchor, the lead-out
// stub, up to three routing segments, the lead-in stub and the destination
// anchor. Zero-length segments are never emitted.
//
// All coordinates are absolute layout coordinates. Result.Local converts a
// path into the local frame of a host that paints the connector inside its
// own bounding box.
package connections

import (
	"log/slog"

	"elbow/core"
	"elbow/logging"
)

// DefaultDentSize is the length of the stubs at both ends of a connector.
const DefaultDentSize = 20.0

// DefaultStrokeWidth is the line width assumed when sizing the connector frame.
const DefaultStrokeWidth = 2.0

// route is one entry of the dispatch table.
type route struct {
	kind   string
	family family
	frame  frame
}

var routes = [16]route{
	core.LeftToLeft:     {"same", sameSide, rotate90},
	core.LeftToTop:      {"corner", corner, transpose},
	core.LeftToRight:    {"opposite", oppositeSide, rotate90},
	core.LeftToBottom:   {"corner", corner, rotate90},
	core.TopToLeft:      {"corner", corner, identity},
	core.TopToTop:       {"same", sameSide, identity},
	core.TopToRight:     {"corner", corner, mirrorX},
	core.TopToBottom:    {"opposite", oppositeSide, identity},
	core.RightToLeft:    {"opposite", oppositeSide, rotate270},
	core.RightToTop:     {"corner", corner, rotate270},
	core.RightToRight:   {"same", sameSide, rotate270},
	core.RightToBottom:  {"corner", corner, antiDiag},
	core.BottomToLeft:   {"corner", corner, mirrorY},
	core.BottomToTop:    {"opposite", oppositeSide, rotate180},
	core.BottomToRight:  {"corner", corner, rotate180},
	core.BottomToBottom: {"same", sameSide, rotate180},
}

// Result is the outcome of one routing call.
type Result struct {
	// Requested is the mode the caller asked for.
	Requested core.Mode `json:"requested"`
	// Mode is the directional mode actually routed. It equals Requested
	// unless Requested is an auto mode.
	Mode core.Mode `json:"mode"`
	// Branch names the routing decision, e.g. "same/clear-origin".
	Branch string `json:"branch"`
	// Path is the connector in absolute layout coordinates.
	Path core.Path `json:"path"`
	// Frame is the bounding box a host should give the connector so the
	// stubs and the stroke are never clipped.
	Frame core.Box `json:"frame"`
	// Margin is the layout margin, applied on all four sides of the two
	// boxes' union, that produces Frame.
	Margin float64 `json:"margin"`
}

// Local returns the path expressed relative to the top-left of Frame.
func (r Result) Local() core.Path {
	return ToLocal(r.Path, r.Frame)
}

// Router routes connectors with a fixed dent size and stroke width.
// A Router holds no per-call state and is safe for concurrent use.
type Router struct {
	dentSize    float64
	strokeWidth float64
	logger      *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithDentSize sets the stub length. Negative values are treated as zero.
func WithDentSize(d float64) Option {
	return func(r *Router) {
		r.dentSize = d
	}
}

// WithStrokeWidth sets the stroke width used to size the connector frame.
func WithStrokeWidth(w float64) Option {
	return func(r *Router) {
		r.strokeWidth = w
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// NewRouter creates a router with the default dent size and stroke width.
func NewRouter(opts ...Option) *Router {
	r := &Router{
		dentSize:    DefaultDentSize,
		strokeWidth: DefaultStrokeWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.dentSize < 0 {
		r.dentSize = 0
	}
	if r.logger == nil {
		r.logger = logging.WithComponent("connections")
	}
	return r
}

// DentSize returns the configured stub length.
func (r *Router) DentSize() float64 {
	return r.dentSize
}

// StrokeWidth returns the configured stroke width.
func (r *Router) StrokeWidth() float64 {
	return r.strokeWidth
}

// Route connects origin to destination using mode. The caller's mode is
// never modified: auto modes resolve into Result.Mode for this call only.
func (r *Router) Route(origin, destination core.Box, mode core.Mode) Result {
	resolved := Resolve(origin, destination, mode)
	if !resolved.IsValid() {
		r.logger.Warn("unknown routing mode, using default",
			slog.Int("mode", int(mode)),
			slog.String("default", core.TopToBottom.String()))
		resolved = core.TopToBottom
	}

	var path core.Path
	var branch string
	if resolved == core.Direct {
		path, branch = routeDirect(origin, destination), "direct"
	} else {
		path, branch = routeDirectional(origin, destination, resolved, r.dentSize)
	}

	margin := Margin(r.dentSize, r.strokeWidth)
	res := Result{
		Requested: mode,
		Mode:      resolved,
		Branch:    branch,
		Path:      path,
		Frame:     ConnectorFrame(origin, destination, r.dentSize, r.strokeWidth),
		Margin:    margin,
	}

	r.logger.Debug("routed connector",
		slog.String("requested", mode.String()),
		slog.String("mode", resolved.String()),
		slog.String("branch", branch),
		slog.Int("points", path.Len()))
	return res
}

// Route is the pure routing function: it connects origin to destination
// with the given mode and dent size and returns the path in absolute
// coordinates. Auto modes are resolved locally; unknown modes fall back to
// TOP_TO_BOTTOM.
func Route(origin, destination core.Box, mode core.Mode, dentSize float64) core.Path {
	if dentSize < 0 {
		dentSize = 0
	}
	resolved := Resolve(origin, destination, mode)
	switch {
	case resolved == core.Direct:
		return routeDirect(origin, destination)
	case !resolved.IsDirectional():
		resolved = core.TopToBottom
	}
	path, _ := routeDirectional(origin, destination, resolved, dentSize)
	return path
}

// routeDirectional runs the five routing stages for a directional mode.
func routeDirectional(origin, destination core.Box, mode core.Mode, dent float64) (core.Path, string) {
	from, to, _ := mode.Sides()
	entry := routes[mode]
	f := entry.frame

	// Stage 1: anchors, taken in absolute coordinates so that mapping them
	// back through the frame reproduces them exactly.
	start := f.apply(origin.Anchor(from))
	end := f.apply(destination.Anchor(to))

	// Stages 2 and 4: the stubs. In the canonical frame the origin leaves
	// through TOP; the destination side depends on the family.
	p := plan{
		o:       f.project(origin),
		d:       f.project(destination),
		dent:    dent,
		leadOut: start.Add(core.Top.Normal().Scale(dent)),
		leadIn:  end.Add(f.side(to).Normal().Scale(dent)),
	}

	// Stage 3: the routing segments between the stubs.
	waypoints, branch := entry.family(p)

	var path core.Path
	path.MoveTo(f.invert(start))
	path.LineTo(f.invert(p.leadOut))
	for _, w := range waypoints {
		path.LineTo(f.invert(w))
	}
	path.LineTo(f.invert(p.leadIn))
	path.LineTo(f.invert(end))
	return path, branch
}
