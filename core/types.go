// Package core contains the fundamental types shared by the connector router,
// its renderers and its hosts.
package core

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in layout space.
// X increases rightward and Y increases downward.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// IsZero reports whether both coordinates are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Side identifies one of the four sides of a box.
type Side int

const (
	Left Side = iota
	Top
	Right
	Bottom
)

// Sides lists the four sides in enumeration order.
var Sides = [...]Side{Left, Top, Right, Bottom}

// String returns the upper-case name of the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "LEFT"
	case Top:
		return "TOP"
	case Right:
		return "RIGHT"
	case Bottom:
		return "BOTTOM"
	default:
		return "UNKNOWN"
	}
}

// Opposite returns the side facing s.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	default:
		return s
	}
}

// Normal returns the unit vector pointing out of the box through side s.
func (s Side) Normal() Point {
	switch s {
	case Left:
		return Point{X: -1}
	case Top:
		return Point{Y: -1}
	case Right:
		return Point{X: 1}
	case Bottom:
		return Point{Y: 1}
	default:
		return Point{}
	}
}

// IsVertical reports whether the side runs vertically (LEFT or RIGHT).
func (s Side) IsVertical() bool {
	return s == Left || s == Right
}

// Box is an axis-aligned rectangle in layout coordinates.
// Right >= Left and Bottom >= Top are expected but not enforced.
type Box struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, width, height float64) Box {
	return Box{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns Right - Left.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// MidX returns the horizontal midpoint.
func (b Box) MidX() float64 {
	return b.Left + b.Width()/2
}

// MidY returns the vertical midpoint.
func (b Box) MidY() float64 {
	return b.Top + b.Height()/2
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: b.MidX(), Y: b.MidY()}
}

// Anchor returns the attachment point at the middle of side s.
func (b Box) Anchor(s Side) Point {
	switch s {
	case Left:
		return Point{X: b.Left, Y: b.MidY()}
	case Top:
		return Point{X: b.MidX(), Y: b.Top}
	case Right:
		return Point{X: b.Right, Y: b.MidY()}
	case Bottom:
		return Point{X: b.MidX(), Y: b.Bottom}
	default:
		return b.Center()
	}
}

// Corners returns the four corners clockwise from the top-left.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{X: b.Left, Y: b.Top},
		{X: b.Right, Y: b.Top},
		{X: b.Right, Y: b.Bottom},
		{X: b.Left, Y: b.Bottom},
	}
}

// Contains reports whether p lies inside the box or on its border.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Top && p.Y <= b.Bottom
}

// ContainsStrict reports whether p lies strictly inside the box.
func (b Box) ContainsStrict(p Point) bool {
	return p.X > b.Left && p.X < b.Right &&
		p.Y > b.Top && p.Y < b.Bottom
}

// IsDegenerate reports whether the box has a non-positive width or height.
func (b Box) IsDegenerate() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Left:   math.Min(b.Left, o.Left),
		Top:    math.Min(b.Top, o.Top),
		Right:  math.Max(b.Right, o.Right),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

// Grow returns the box expanded by m on all four sides.
// A negative m shrinks it.
func (b Box) Grow(m float64) Box {
	return Box{Left: b.Left - m, Top: b.Top - m, Right: b.Right + m, Bottom: b.Bottom + m}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Point) Box {
	return Box{Left: b.Left + d.X, Top: b.Top + d.Y, Right: b.Right + d.X, Bottom: b.Bottom + d.Y}
}

// String returns the box as "[left,top right,bottom]".
func (b Box) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", b.Left, b.Top, b.Right, b.Bottom)
}
