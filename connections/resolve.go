package connections

import (
	"elbow/core"
	"elbow/geometry"
)

// Resolve turns an auto mode into the directional mode it stands for with
// the current geometry. Directional and legacy modes are returned unchanged.
// The result is a local value; nothing is written back to the caller.
func Resolve(origin, destination core.Box, mode core.Mode) core.Mode {
	switch mode {
	case core.Vertical:
		return resolveVertical(origin, destination)
	case core.Horizontal:
		return resolveHorizontal(origin, destination)
	case core.Shortest:
		return resolveShortest(origin, destination)
	default:
		return mode
	}
}

// resolveVertical picks the origin side whose edge-to-edge distance is
// smaller; the sign of that distance then tells whether the boxes are
// separated (opposite sides) or overlapping (same side).
func resolveVertical(origin, destination core.Box) core.Mode {
	topToBottom := geometry.TopToBottom(origin, destination)
	bottomToTop := geometry.BottomToTop(origin, destination)

	if geometry.Abs(topToBottom) < geometry.Abs(bottomToTop) {
		if topToBottom <= 0 {
			return core.TopToBottom
		}
		return core.TopToTop
	}
	if bottomToTop >= 0 {
		return core.BottomToTop
	}
	return core.BottomToBottom
}

// resolveHorizontal is resolveVertical turned on its side.
func resolveHorizontal(origin, destination core.Box) core.Mode {
	leftToRight := geometry.LeftToRight(origin, destination)
	rightToLeft := geometry.RightToLeft(origin, destination)

	if geometry.Abs(leftToRight) < geometry.Abs(rightToLeft) {
		if leftToRight <= 0 {
			return core.LeftToRight
		}
		return core.LeftToLeft
	}
	if rightToLeft >= 0 {
		return core.RightToLeft
	}
	return core.RightToRight
}

// resolveShortest returns the directional mode whose anchors are closest.
// Only a strictly smaller distance replaces the current best, so ties go to
// the mode that comes first in enumeration order.
func resolveShortest(origin, destination core.Box) core.Mode {
	best := core.LeftToLeft
	bestDistance := -1.0
	for _, m := range core.DirectionalModes() {
		from, to, _ := m.Sides()
		d := geometry.AnchorDistance(origin, destination, from, to)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = m, d
		}
	}
	return best
}
