// Package validation checks routed connectors and their text drawings.
package validation

import (
	"errors"
	"fmt"

	"elbow/core"
)

// Severity grades an issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Issue is one failed check. Segment is the index of the offending
// segment, or -1 when the issue concerns the whole path.
type Issue struct {
	Rule     string
	Severity Severity
	Segment  int
	Message  string
}

func (i Issue) String() string {
	if i.Segment < 0 {
		return fmt.Sprintf("%s [%s]: %s", i.Severity, i.Rule, i.Message)
	}
	return fmt.Sprintf("%s [%s] segment %d: %s", i.Severity, i.Rule, i.Segment, i.Message)
}

// PathValidator checks the structural guarantees of a routed connector.
type PathValidator struct {
	dentSize   float64
	checkBoxes bool
	issues     []Issue
}

// NewPathValidator creates a validator for paths routed with dentSize.
func NewPathValidator(dentSize float64) *PathValidator {
	return &PathValidator{dentSize: max(dentSize, 0), checkBoxes: true}
}

// SetBoxCheck enables or disables the warning for routing segments that
// cross a box interior.
func (v *PathValidator) SetBoxCheck(enabled bool) {
	v.checkBoxes = enabled
}

// Validate checks path as the result of routing origin to destination with
// mode. Auto modes must be resolved first.
func (v *PathValidator) Validate(origin, destination core.Box, mode core.Mode, path core.Path) []Issue {
	v.issues = nil

	if path.Len() < 2 {
		v.add("empty", SeverityError, -1, "path has %d points", path.Len())
		return v.issues
	}
	for i, s := range path.Segments() {
		if s.IsZero() {
			v.add("zero-length", SeverityError, i, "segment at %v has no length", s.From)
		}
	}

	switch {
	case mode == core.Direct:
		v.validateDirect(origin, destination, path)
	case mode.IsDirectional():
		v.validateDirectional(origin, destination, mode, path)
	default:
		v.add("mode", SeverityError, -1, "mode %v is not a routable mode", mode)
	}
	return v.issues
}

func (v *PathValidator) validateDirectional(origin, destination core.Box, mode core.Mode, path core.Path) {
	from, to, _ := mode.Sides()
	segments := path.Segments()
	pts := path.Points
	n := len(pts)

	if len(segments) > 5 {
		v.add("segment-count", SeverityError, -1, "%d segments, at most 5 expected", len(segments))
	}
	for i, s := range segments {
		if !s.IsHorizontal() && !s.IsVertical() {
			v.add("orthogonal", SeverityError, i, "%v -> %v is diagonal", s.From, s.To)
		}
	}

	start, end := origin.Anchor(from), destination.Anchor(to)
	if pts[0] != start {
		v.add("start-anchor", SeverityError, -1, "starts at %v, want %v anchor %v", pts[0], from, start)
	}
	if pts[n-1] != end {
		v.add("end-anchor", SeverityError, -1, "ends at %v, want %v anchor %v", pts[n-1], to, end)
	}

	if v.dentSize > 0 && n >= 3 {
		if want := start.Add(from.Normal().Scale(v.dentSize)); pts[1] != want {
			v.add("lead-out", SeverityError, 0, "stub ends at %v, want %v", pts[1], want)
		}
		if want := end.Add(to.Normal().Scale(v.dentSize)); pts[n-2] != want {
			v.add("lead-in", SeverityError, len(segments)-1, "stub starts at %v, want %v", pts[n-2], want)
		}
	}

	if v.checkBoxes && !overlaps(origin, destination) && len(segments) > 2 {
		for i := 1; i < len(segments)-1; i++ {
			s := segments[i]
			if crosses(s, origin) || crosses(s, destination) {
				v.add("box-crossing", SeverityWarning, i, "%v -> %v crosses a box", s.From, s.To)
			}
		}
	}
}

func (v *PathValidator) validateDirect(origin, destination core.Box, path core.Path) {
	if path.Len() != 2 {
		v.add("segment-count", SeverityError, -1, "direct path has %d points, want 2", path.Len())
	}
	if !isCorner(origin, path.Start()) {
		v.add("start-anchor", SeverityError, -1, "%v is not an origin corner", path.Start())
	}
	if !isCorner(destination, path.End()) {
		v.add("end-anchor", SeverityError, -1, "%v is not a destination corner", path.End())
	}
}

func (v *PathValidator) add(rule string, sev Severity, segment int, format string, args ...any) {
	v.issues = append(v.issues, Issue{
		Rule:     rule,
		Severity: sev,
		Segment:  segment,
		Message:  fmt.Sprintf(format, args...),
	})
}

func isCorner(b core.Box, p core.Point) bool {
	for _, c := range b.Corners() {
		if c == p {
			return true
		}
	}
	return false
}

// crosses reports whether s passes through the interior of b. A degenerate
// box has no interior.
func crosses(s core.Segment, b core.Box) bool {
	return !b.IsDegenerate() && s.CrossesInterior(b)
}

// overlaps reports whether the interiors of a and b intersect.
func overlaps(a, b core.Box) bool {
	return a.Left < b.Right && b.Left < a.Right && a.Top < b.Bottom && b.Top < a.Bottom
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err joins the error-severity issues into one error, or returns nil.
func Err(issues []Issue) error {
	var errs []error
	for _, i := range issues {
		if i.Severity == SeverityError {
			errs = append(errs, errors.New(i.String()))
		}
	}
	return errors.Join(errs...)
}
