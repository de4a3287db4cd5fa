package export

import (
	"math"

	"elbow/core"
)

// turn is one rounded elbow: the straight run stops at In, a quadratic
// curve controlled by the original vertex Ctrl ends at Out.
type turn struct {
	In, Ctrl, Out core.Point
}

// roundTurns returns one turn per interior vertex of p. The radius is
// clamped to half of each adjacent segment so neighbouring curves never
// overlap.
func roundTurns(p core.Path, radius float64) []turn {
	pts := p.Points
	if len(pts) < 3 || radius <= 0 {
		return nil
	}
	out := make([]turn, 0, len(pts)-2)
	for i := 1; i < len(pts)-1; i++ {
		prev, v, next := pts[i-1], pts[i], pts[i+1]
		in := v.Sub(prev)
		on := next.Sub(v)
		lin, lon := math.Hypot(in.X, in.Y), math.Hypot(on.X, on.Y)
		r := math.Min(radius, math.Min(lin/2, lon/2))
		if r <= 0 {
			out = append(out, turn{v, v, v})
			continue
		}
		out = append(out, turn{
			In:   v.Sub(in.Scale(r / lin)),
			Ctrl: v,
			Out:  v.Add(on.Scale(r / lon)),
		})
	}
	return out
}
