package core

import "math"

// Path is a polyline through layout space.
// Consecutive points never coincide: zero-length segments are dropped when
// the path is built, since corner-rounding renderers distort around them.
type Path struct {
	Points []Point `json:"points"`
}

// Segment is one straight piece of a path.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// MoveTo starts a new path at p, discarding any previous points.
func (p *Path) MoveTo(pt Point) {
	p.Points = append(p.Points[:0], pt)
}

// LineTo extends the path to pt. A segment that would have zero length is
// omitted entirely.
func (p *Path) LineTo(pt Point) {
	if len(p.Points) == 0 {
		p.Points = append(p.Points, pt)
		return
	}
	if p.Points[len(p.Points)-1] == pt {
		return
	}
	p.Points = append(p.Points, pt)
}

// RLineTo extends the path by a relative delta.
func (p *Path) RLineTo(dx, dy float64) {
	if len(p.Points) == 0 {
		p.Points = append(p.Points, Point{X: dx, Y: dy})
		return
	}
	p.LineTo(p.Points[len(p.Points)-1].Add(Point{X: dx, Y: dy}))
}

// Len returns the number of points in the path.
func (p Path) Len() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Start returns the first point, or the zero point for an empty path.
func (p Path) Start() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	return p.Points[0]
}

// End returns the last point, or the zero point for an empty path.
func (p Path) End() Point {
	if len(p.Points) == 0 {
		return Point{}
	}
	return p.Points[len(p.Points)-1]
}

// Segments returns the straight pieces of the path in order.
func (p Path) Segments() []Segment {
	if len(p.Points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		segs = append(segs, Segment{From: p.Points[i-1], To: p.Points[i]})
	}
	return segs
}

// Deltas returns the relative line-to offsets that follow the start point,
// the move + relative-line-to encoding of the path.
func (p Path) Deltas() []Point {
	if len(p.Points) < 2 {
		return nil
	}
	deltas := make([]Point, 0, len(p.Points)-1)
	for i := 1; i < len(p.Points); i++ {
		deltas = append(deltas, p.Points[i].Sub(p.Points[i-1]))
	}
	return deltas
}

// Offset returns a copy of the path translated by (dx, dy).
func (p Path) Offset(dx, dy float64) Path {
	out := p.Clone()
	for i, pt := range out.Points {
		out.Points[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	return Path{Points: append([]Point(nil), p.Points...)}
}

// Bounds returns the smallest box containing every point.
func (p Path) Bounds() Box {
	if len(p.Points) == 0 {
		return Box{}
	}
	b := Box{Left: p.Points[0].X, Top: p.Points[0].Y, Right: p.Points[0].X, Bottom: p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		b.Left = math.Min(b.Left, pt.X)
		b.Top = math.Min(b.Top, pt.Y)
		b.Right = math.Max(b.Right, pt.X)
		b.Bottom = math.Max(b.Bottom, pt.Y)
	}
	return b
}

// Length returns the total length of all segments.
func (p Path) Length() float64 {
	total := 0.0
	for _, s := range p.Segments() {
		total += s.Length()
	}
	return total
}

// IsOrthogonal reports whether every segment is horizontal or vertical.
func (p Path) IsOrthogonal() bool {
	for _, s := range p.Segments() {
		if !s.IsHorizontal() && !s.IsVertical() {
			return false
		}
	}
	return true
}

// Delta returns To - From.
func (s Segment) Delta() Point {
	return s.To.Sub(s.From)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	d := s.Delta()
	return math.Hypot(d.X, d.Y)
}

// IsHorizontal reports whether both ends share the same Y.
func (s Segment) IsHorizontal() bool {
	return s.From.Y == s.To.Y
}

// IsVertical reports whether both ends share the same X.
func (s Segment) IsVertical() bool {
	return s.From.X == s.To.X
}

// IsZero reports whether the segment has zero length.
func (s Segment) IsZero() bool {
	return s.From == s.To
}

// CrossesInterior reports whether an axis-aligned segment passes through the
// strict interior of b. Touching the border does not count.
func (s Segment) CrossesInterior(b Box) bool {
	switch {
	case s.IsHorizontal():
		if s.From.Y <= b.Top || s.From.Y >= b.Bottom {
			return false
		}
		lo, hi := math.Min(s.From.X, s.To.X), math.Max(s.From.X, s.To.X)
		return hi > b.Left && lo < b.Right
	case s.IsVertical():
		if s.From.X <= b.Left || s.From.X >= b.Right {
			return false
		}
		lo, hi := math.Min(s.From.Y, s.To.Y), math.Max(s.From.Y, s.To.Y)
		return hi > b.Top && lo < b.Bottom
	default:
		return b.ContainsStrict(s.From) || b.ContainsStrict(s.To)
	}
}
