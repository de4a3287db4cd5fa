package connections

import (
	"elbow/core"
	"elbow/geometry"
)

// plan is one routing call seen through the frame of its table entry:
// the origin always leaves through its TOP side, so the lead-out stub points
// toward -Y.
type plan struct {
	o, d    rect
	dent    float64
	leadOut core.Point // end of the origin stub
	leadIn  core.Point // start of the destination stub
}

// family computes the waypoints between the two stubs. At most three
// segments join leadOut to leadIn, so a family returns at most two
// waypoints. The branch label names the decision that was taken.
type family func(p plan) (waypoints []core.Point, branch string)

// sameSide routes TOP_TO_TOP. Both stubs point up, so the connector has to
// climb over whichever box is in the way before dropping onto the other.
func sameSide(p plan) ([]core.Point, string) {
	x1, y1 := p.leadOut.X, p.leadOut.Y
	x4, y4 := p.leadIn.X, p.leadIn.Y

	topToTop := p.d.top - p.o.top
	midDistance := p.d.midX - p.o.midX

	if topToTop >= 0 {
		// Destination sits level with or below the origin: descending
		// next to the origin must clear it.
		reach := p.o.width()/2 + p.dent
		if geometry.Abs(midDistance) < reach {
			xj := p.o.midX + geometry.Sign(midDistance)*reach
			return []core.Point{{X: xj, Y: y1}, {X: xj, Y: y4}}, "same/clear-origin"
		}
		return []core.Point{{X: x4, Y: y1}}, "same/across-then-down"
	}

	// Destination is higher: the climb must clear the destination.
	reach := p.d.width()/2 + p.dent
	if geometry.Abs(midDistance) < reach {
		xj := p.d.midX - geometry.Sign(midDistance)*reach
		return []core.Point{{X: xj, Y: y1}, {X: xj, Y: y4}}, "same/clear-destination"
	}
	return []core.Point{{X: x1, Y: y4}}, "same/up-then-across"
}

// oppositeSide routes TOP_TO_BOTTOM: leave the origin upward and enter the
// destination from below.
func oppositeSide(p plan) ([]core.Point, string) {
	y1 := p.leadOut.Y
	x4, y4 := p.leadIn.X, p.leadIn.Y

	gap := (p.o.top - p.d.bottom) - 2*p.dent
	if gap >= 0 {
		// The jog vanishes when the midpoints line up.
		return []core.Point{{X: x4, Y: y1}}, "opposite/direct"
	}

	// The destination is not far enough above: fold back around the boxes
	// through a vertical channel on the destination's side.
	var xc float64
	branch := "opposite/fold-outside"
	if p.d.midX-p.o.midX >= 0 {
		if between := p.d.left - p.o.right; between >= 2*p.dent {
			xc = p.o.right + between/2
			branch = "opposite/fold-between"
		} else {
			xc = geometry.Max(p.o.right, p.d.right) + p.dent
		}
	} else {
		if between := p.o.left - p.d.right; between >= 2*p.dent {
			xc = p.d.right + between/2
			branch = "opposite/fold-between"
		} else {
			xc = geometry.Min(p.o.left, p.d.left) - p.dent
		}
	}
	return []core.Point{{X: xc, Y: y1}, {X: xc, Y: y4}}, branch
}

// corner routes TOP_TO_LEFT: leave the origin upward and enter the
// destination rightward through its left side. The plain L works when the
// destination's lead-in point is up and to the right; every other placement
// needs a detour around one of the boxes.
func corner(p plan) ([]core.Point, string) {
	x1, y1 := p.leadOut.X, p.leadOut.Y
	x4, y4 := p.leadIn.X, p.leadIn.Y

	midXToLeft := p.d.left - p.o.midX
	midYToTop := p.o.top - p.d.midY

	if midXToLeft >= p.dent {
		if midYToTop >= p.dent {
			return []core.Point{{X: x1, Y: y4}}, "corner/l-shape"
		}
		if p.d.left-p.o.right >= 2*p.dent {
			return []core.Point{{X: x4, Y: y1}}, "corner/across-then-down"
		}
		xl := geometry.Min(p.o.left, p.d.left) - p.dent
		return []core.Point{{X: xl, Y: y1}, {X: xl, Y: y4}}, "corner/around-origin"
	}

	if midYToTop >= p.dent {
		if between := p.o.top - p.d.bottom; between >= 2*p.dent {
			ym := p.d.bottom + between/2
			return []core.Point{{X: x1, Y: ym}, {X: x4, Y: ym}}, "corner/between"
		}
		if p.o.midX-p.d.right >= p.dent {
			yt := geometry.Min(p.d.top, p.o.top) - p.dent
			return []core.Point{{X: x1, Y: yt}, {X: x4, Y: yt}}, "corner/over-destination"
		}
		return []core.Point{{X: x4, Y: y1}}, "corner/overlap"
	}

	if p.d.left-p.o.left <= 0 {
		if p.d.top-p.o.top >= -p.dent {
			return []core.Point{{X: x4, Y: y1}}, "corner/across-then-down"
		}
		if p.o.midX-p.d.right >= p.dent {
			yt := geometry.Min(p.d.top, p.o.top) - p.dent
			return []core.Point{{X: x1, Y: yt}, {X: x4, Y: yt}}, "corner/over-destination"
		}
		return []core.Point{{X: x4, Y: y1}}, "corner/overlap"
	}

	xl := p.o.left - p.dent
	return []core.Point{{X: xl, Y: y1}, {X: xl, Y: y4}}, "corner/around-origin"
}
