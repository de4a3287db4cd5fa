package geometry

import "elbow/core"

// The pairwise distances below all read "origin edge to destination edge"
// and are signed: destination edge minus origin edge. They are recomputed on
// every call since the boxes may move between calls.

// TopToTop returns destination.Top - origin.Top.
func TopToTop(origin, destination core.Box) float64 {
	return destination.Top - origin.Top
}

// TopToBottom returns destination.Bottom - origin.Top.
// It is <= 0 when the destination lies entirely above the origin.
func TopToBottom(origin, destination core.Box) float64 {
	return destination.Bottom - origin.Top
}

// BottomToTop returns destination.Top - origin.Bottom.
// It is >= 0 when the destination lies entirely below the origin.
func BottomToTop(origin, destination core.Box) float64 {
	return destination.Top - origin.Bottom
}

// BottomToBottom returns destination.Bottom - origin.Bottom.
func BottomToBottom(origin, destination core.Box) float64 {
	return destination.Bottom - origin.Bottom
}

// LeftToLeft returns destination.Left - origin.Left.
func LeftToLeft(origin, destination core.Box) float64 {
	return destination.Left - origin.Left
}

// LeftToRight returns destination.Right - origin.Left.
// It is <= 0 when the destination lies entirely left of the origin.
func LeftToRight(origin, destination core.Box) float64 {
	return destination.Right - origin.Left
}

// RightToLeft returns destination.Left - origin.Right.
// It is >= 0 when the destination lies entirely right of the origin.
func RightToLeft(origin, destination core.Box) float64 {
	return destination.Left - origin.Right
}

// RightToRight returns destination.Right - origin.Right.
func RightToRight(origin, destination core.Box) float64 {
	return destination.Right - origin.Right
}

// HorizontalMid returns destination.MidX - origin.MidX.
func HorizontalMid(origin, destination core.Box) float64 {
	return destination.MidX() - origin.MidX()
}

// VerticalMid returns destination.MidY - origin.MidY.
func VerticalMid(origin, destination core.Box) float64 {
	return destination.MidY() - origin.MidY()
}

// AnchorDistance returns the Euclidean distance between the origin anchor on
// side from and the destination anchor on side to.
func AnchorDistance(origin, destination core.Box, from, to core.Side) float64 {
	a := origin.Anchor(from)
	b := destination.Anchor(to)
	return Distance(a.X, a.Y, b.X, b.Y)
}
