package connections

import (
	"fmt"
	"log/slog"
	"strings"

	"elbow/core"
	"elbow/geometry"
)

// Preference selects which routing the legacy two-value auto mode tries
// first.
type Preference int

const (
	// PreferTopToBottom tries a vertical connection before a side-to-side one.
	PreferTopToBottom Preference = iota
	// PreferSideToSide tries a side-to-side connection before a vertical one.
	PreferSideToSide
)

// String returns the preference name.
func (p Preference) String() string {
	if p == PreferSideToSide {
		return "SIDE_TO_SIDE"
	}
	return "TOP_TO_BOTTOM"
}

// SideToSidePossible reports whether the boxes are strictly separated
// horizontally.
func SideToSidePossible(origin, destination core.Box) bool {
	return origin.Right < destination.Left || origin.Left > destination.Right
}

// TopToBottomPossible reports whether the boxes are strictly separated
// vertically.
func TopToBottomPossible(origin, destination core.Box) bool {
	return origin.Bottom < destination.Top || origin.Top > destination.Bottom
}

// RouteLegacy is the two-value auto mode: it connects facing sides of two
// separated boxes with a lead-out stub, a cross-axis jog and a straight run
// onto the destination edge. There is no lead-in stub. ok is false, and the
// path empty, when the boxes are not separated along either axis.
func RouteLegacy(origin, destination core.Box, pref Preference, dentSize float64) (path core.Path, ok bool) {
	path, _, ok = routeLegacy(origin, destination, pref, dentSize)
	return path, ok
}

func routeLegacy(origin, destination core.Box, pref Preference, dent float64) (core.Path, core.Mode, bool) {
	if dent < 0 {
		dent = 0
	}
	side := SideToSidePossible(origin, destination)
	vertical := TopToBottomPossible(origin, destination)

	switch {
	case pref == PreferSideToSide && side:
		path, mode := legacySideToSide(origin, destination, dent)
		return path, mode, true
	case vertical:
		path, mode := legacyTopToBottom(origin, destination, dent)
		return path, mode, true
	case side:
		path, mode := legacySideToSide(origin, destination, dent)
		return path, mode, true
	default:
		return core.Path{}, core.Direct, false
	}
}

// RouteLegacy runs the two-value auto mode with the router's dent size.
// Result.Mode names the pair of sides that was connected. ok is false when
// the boxes are not separated along either axis.
func (r *Router) RouteLegacy(origin, destination core.Box, pref Preference) (Result, bool) {
	path, mode, ok := routeLegacy(origin, destination, pref, r.dentSize)
	branch := "legacy/top-to-bottom"
	if from, _, _ := mode.Sides(); from == core.Left || from == core.Right {
		branch = "legacy/side-to-side"
	}
	res := Result{
		Requested: mode,
		Mode:      mode,
		Branch:    branch,
		Path:      path,
		Frame:     ConnectorFrame(origin, destination, r.dentSize, r.strokeWidth),
		Margin:    Margin(r.dentSize, r.strokeWidth),
	}
	if !ok {
		res.Branch = "legacy/none"
		r.logger.Warn("boxes overlap on both axes, no legacy route",
			slog.String("origin", origin.String()),
			slog.String("destination", destination.String()))
		return res, false
	}
	r.logger.Debug("routed legacy connector",
		slog.String("preference", pref.String()),
		slog.String("mode", mode.String()),
		slog.Int("points", path.Len()))
	return res, true
}

// ParsePreference converts "side-to-side" or "top-to-bottom" (in any case,
// with dashes, underscores or spaces) to a Preference.
func ParsePreference(s string) (Preference, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToUpper(strings.TrimSpace(s)))
	switch norm {
	case "TOP_TO_BOTTOM":
		return PreferTopToBottom, nil
	case "SIDE_TO_SIDE":
		return PreferSideToSide, nil
	default:
		return PreferTopToBottom, fmt.Errorf("unknown legacy preference %q", s)
	}
}

// legacySideToSide leaves through whichever vertical side faces the
// destination; on a tie the origin's left side wins.
func legacySideToSide(origin, destination core.Box, dent float64) (core.Path, core.Mode) {
	leftToRight := geometry.Abs(origin.Left - destination.Right)
	rightToLeft := geometry.Abs(origin.Right - destination.Left)

	from, to, stub := core.Left, core.Right, -dent
	if leftToRight > rightToLeft {
		from, to, stub = core.Right, core.Left, dent
	}

	start := origin.Anchor(from)
	end := destination.Anchor(to)

	var path core.Path
	path.MoveTo(start)
	path.LineTo(core.Pt(start.X+stub, start.Y))
	path.LineTo(core.Pt(start.X+stub, end.Y))
	path.LineTo(end)
	return path, core.ModeFor(from, to)
}

// legacyTopToBottom leaves through whichever horizontal side faces the
// destination; on a tie the origin's top side wins.
func legacyTopToBottom(origin, destination core.Box, dent float64) (core.Path, core.Mode) {
	topToBottom := geometry.Abs(origin.Top - destination.Bottom)
	bottomToTop := geometry.Abs(origin.Bottom - destination.Top)

	from, to, stub := core.Top, core.Bottom, -dent
	if topToBottom > bottomToTop {
		from, to, stub = core.Bottom, core.Top, dent
	}

	start := origin.Anchor(from)
	end := destination.Anchor(to)

	var path core.Path
	path.MoveTo(start)
	path.LineTo(core.Pt(start.X, start.Y+stub))
	path.LineTo(core.Pt(end.X, start.Y+stub))
	path.LineTo(end)
	return path, core.ModeFor(from, to)
}

// routeDirect is the legacy two-point mode: one straight segment between
// the origin corner nearest the destination's center and the destination
// corner nearest that origin corner. The segment may be diagonal.
func routeDirect(origin, destination core.Box) core.Path {
	from := nearestCorner(origin, destination.Center())
	to := nearestCorner(destination, from)

	var path core.Path
	path.MoveTo(from)
	path.LineTo(to)
	return path
}

// nearestCorner returns the corner of b closest to p; the first corner in
// clockwise order from the top-left wins ties.
func nearestCorner(b core.Box, p core.Point) core.Point {
	corners := b.Corners()
	best := corners[0]
	bestDistance := geometry.Distance(best.X, best.Y, p.X, p.Y)
	for _, c := range corners[1:] {
		if d := geometry.Distance(c.X, c.Y, p.X, p.Y); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}
