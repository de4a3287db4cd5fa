package connections

import "elbow/core"

// Margin is the layout margin a constraint-based host applies on every side
// of the connector's bounding box, relative to the two boxes it connects.
// It is negative: the connector extends past both boxes by the dent plus
// half the stroke so neither the stubs nor the stroke get clipped.
func Margin(dentSize, strokeWidth float64) float64 {
	return -dentSize - strokeWidth/2
}

// ConnectorFrame returns the bounding box a host should give the connector:
// the union of both boxes grown by the magnitude of Margin.
func ConnectorFrame(origin, destination core.Box, dentSize, strokeWidth float64) core.Box {
	return origin.Union(destination).Grow(-Margin(dentSize, strokeWidth))
}

// ToLocal translates an absolute path into the coordinate frame whose
// top-left corner is frame's.
func ToLocal(path core.Path, frame core.Box) core.Path {
	return path.Offset(-frame.Left, -frame.Top)
}
