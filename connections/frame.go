package connections

import (
	"elbow/core"
	"elbow/geometry"
)

// frame is one of the eight axis symmetries of the plane, written as the
// matrix [a b; c d]: x' = a*x + b*y, y' = c*x + d*y. Entries are 0 or ±1, so
// mapping a coordinate only negates or swaps it and stays exact in floating
// point.
type frame struct {
	a, b, c, d float64
}

var (
	identity  = frame{1, 0, 0, 1}
	rotate90  = frame{0, -1, 1, 0}
	rotate180 = frame{-1, 0, 0, -1}
	rotate270 = frame{0, 1, -1, 0}
	mirrorX   = frame{-1, 0, 0, 1}
	mirrorY   = frame{1, 0, 0, -1}
	transpose = frame{0, 1, 1, 0}
	antiDiag  = frame{0, -1, -1, 0}
)

// apply maps an absolute point into the canonical frame.
func (f frame) apply(p core.Point) core.Point {
	return core.Point{
		X: mul(f.a, p.X) + mul(f.b, p.Y),
		Y: mul(f.c, p.X) + mul(f.d, p.Y),
	}
}

// invert maps a canonical point back to absolute coordinates.
// Every frame is orthogonal, so the inverse is the transpose.
func (f frame) invert(p core.Point) core.Point {
	return core.Point{
		X: mul(f.a, p.X) + mul(f.c, p.Y),
		Y: mul(f.b, p.X) + mul(f.d, p.Y),
	}
}

// mul multiplies by a matrix entry without turning 0*x into a rounding
// source; 0 contributes nothing.
func mul(k, v float64) float64 {
	switch k {
	case 0:
		return 0
	case 1:
		return v
	default:
		return -v
	}
}

// side maps a box side into the canonical frame.
func (f frame) side(s core.Side) core.Side {
	n := f.apply(s.Normal())
	for _, cand := range core.Sides {
		if cand.Normal() == n {
			return cand
		}
	}
	return s
}

// rect is a box seen through a frame. The midpoints are mapped from the
// absolute midpoints instead of being recomputed, so canonical anchors map
// back onto the exact absolute anchors.
type rect struct {
	left, top, right, bottom float64
	midX, midY               float64
}

func (r rect) width() float64  { return r.right - r.left }
func (r rect) height() float64 { return r.bottom - r.top }

// project maps b into the canonical frame.
func (f frame) project(b core.Box) rect {
	p := f.apply(core.Point{X: b.Left, Y: b.Top})
	q := f.apply(core.Point{X: b.Right, Y: b.Bottom})
	m := f.apply(b.Center())
	return rect{
		left:   geometry.Min(p.X, q.X),
		top:    geometry.Min(p.Y, q.Y),
		right:  geometry.Max(p.X, q.X),
		bottom: geometry.Max(p.Y, q.Y),
		midX:   m.X,
		midY:   m.Y,
	}
}
