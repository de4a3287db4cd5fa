package connections

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"elbow/core"
)

// TestRoutingInvariants checks properties that hold for every box placement
// and every directional mode.
func TestRoutingInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	coord := gen.IntRange(-200, 200)
	size := gen.IntRange(0, 150)
	mode := gen.IntRange(0, 15)
	dent := gen.IntRange(1, 40)

	mk := func(x, y, w, h int) core.Box {
		return core.NewBox(float64(x), float64(y), float64(w), float64(h))
	}

	properties.Property("path runs anchor to anchor through both stubs", prop.ForAll(
		func(ox, oy, ow, oh, dx, dy, dw, dh, m, k int) bool {
			o, d := mk(ox, oy, ow, oh), mk(dx, dy, dw, dh)
			stub := float64(k)
			from, to, _ := core.Mode(m).Sides()

			p := Route(o, d, core.Mode(m), stub).Points
			n := len(p)
			if n < 3 || n > 6 {
				return false
			}
			return p[0] == o.Anchor(from) &&
				p[1] == o.Anchor(from).Add(from.Normal().Scale(stub)) &&
				p[n-2] == d.Anchor(to).Add(to.Normal().Scale(stub)) &&
				p[n-1] == d.Anchor(to)
		},
		coord, coord, size, size, coord, coord, size, size, mode, dent,
	))

	properties.Property("segments are axis-aligned and non-empty", prop.ForAll(
		func(ox, oy, ow, oh, dx, dy, dw, dh, m, k int) bool {
			path := Route(mk(ox, oy, ow, oh), mk(dx, dy, dw, dh), core.Mode(m), float64(k))
			if !path.IsOrthogonal() {
				return false
			}
			for _, s := range path.Segments() {
				if s.IsZero() {
					return false
				}
			}
			return true
		},
		coord, coord, size, size, coord, coord, size, size, mode, dent,
	))

	properties.Property("auto modes route like the mode they resolve to", prop.ForAll(
		func(ox, oy, ow, oh, dx, dy, dw, dh, a int) bool {
			o, d := mk(ox, oy, ow, oh), mk(dx, dy, dw, dh)
			auto := core.Vertical + core.Mode(a)
			resolved := Resolve(o, d, auto)
			if !resolved.IsDirectional() {
				return false
			}
			return samePoints(Route(o, d, auto, 20).Points, Route(o, d, resolved, 20).Points)
		},
		coord, coord, size, size, coord, coord, size, size, gen.IntRange(0, 2),
	))

	properties.Property("routing is deterministic", prop.ForAll(
		func(ox, oy, ow, oh, dx, dy, dw, dh, m int) bool {
			o, d := mk(ox, oy, ow, oh), mk(dx, dy, dw, dh)
			first := Route(o, d, core.Mode(m), 20)
			second := Route(o, d, core.Mode(m), 20)
			return samePoints(first.Points, second.Points)
		},
		coord, coord, size, size, coord, coord, size, size, gen.IntRange(0, 18),
	))

	properties.Property("path stays inside the connector frame", prop.ForAll(
		func(ox, oy, ow, oh, dx, dy, dw, dh, m int) bool {
			o, d := mk(ox, oy, ow, oh), mk(dx, dy, dw, dh)
			frame := ConnectorFrame(o, d, 20, 2)
			for _, p := range Route(o, d, core.Mode(m), 20).Points {
				if !frame.Contains(p) {
					return false
				}
			}
			return true
		},
		coord, coord, size, size, coord, coord, size, size, mode,
	))

	properties.Property("separated boxes are never crossed", prop.ForAll(
		func(ox, oy, ow, oh, dx, dy, dw, dh, m, k int) bool {
			o, d := mk(ox, oy, ow, oh), mk(dx, dy, dw, dh)
			stub := float64(k)
			if !separated(o, d, 2*stub) {
				return true
			}
			for _, s := range Route(o, d, core.Mode(m), stub).Segments() {
				if s.CrossesInterior(o) || s.CrossesInterior(d) {
					return false
				}
			}
			return true
		},
		coord, coord, size, size, coord, coord, size, size, mode, dent,
	))

	properties.TestingRun(t)
}

// separated reports whether a and b are more than gap apart on some axis.
func separated(a, b core.Box, gap float64) bool {
	return b.Left-a.Right > gap || a.Left-b.Right > gap ||
		b.Top-a.Bottom > gap || a.Top-b.Bottom > gap
}
