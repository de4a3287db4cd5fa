package connections

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"elbow/core"
)

func TestResolveVertical(t *testing.T) {
	tests := []struct {
		name string
		o, d core.Box
		want core.Mode
	}{
		{"destination below", box(0, 0, 100, 40), box(0, 100, 100, 140), core.BottomToTop},
		{"destination above", box(0, 100, 100, 140), box(0, 0, 100, 40), core.TopToBottom},
		{"overlap, destination lower", box(0, 0, 100, 100), box(0, 50, 100, 150), core.BottomToBottom},
		{"overlap, destination higher", box(0, 50, 100, 150), box(0, 0, 100, 100), core.TopToTop},
		{"touching below", box(0, 0, 100, 40), box(0, 40, 100, 80), core.BottomToTop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.o, tt.d, core.Vertical))
		})
	}
}

func TestResolveHorizontal(t *testing.T) {
	tests := []struct {
		name string
		o, d core.Box
		want core.Mode
	}{
		{"destination right", box(0, 0, 100, 40), box(200, 0, 300, 40), core.RightToLeft},
		{"destination left", box(200, 0, 300, 40), box(0, 0, 100, 40), core.LeftToRight},
		{"overlap, destination further right", box(0, 0, 100, 40), box(50, 0, 150, 40), core.RightToRight},
		{"overlap, destination further left", box(50, 0, 150, 40), box(0, 0, 100, 40), core.LeftToLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.o, tt.d, core.Horizontal))
		})
	}
}

func TestResolveShortest(t *testing.T) {
	// Facing sides of horizontally separated boxes.
	assert.Equal(t, core.RightToLeft, Resolve(box(0, 0, 100, 40), box(200, 0, 300, 40), core.Shortest))

	// RIGHT_TO_TOP and BOTTOM_TO_LEFT are both 150√2 apart; the earlier mode wins.
	assert.Equal(t, core.RightToTop, Resolve(box(0, 0, 100, 100), box(200, 200, 300, 300), core.Shortest))
}

func TestResolveLeavesOtherModesAlone(t *testing.T) {
	o, d := box(0, 0, 10, 10), box(20, 20, 30, 30)
	for _, m := range append(core.DirectionalModes(), core.Direct, core.Mode(99)) {
		assert.Equal(t, m, Resolve(o, d, m))
	}
}

func TestResolveAlwaysYieldsDirectional(t *testing.T) {
	o, d := box(0, 0, 100, 100), box(10, 10, 90, 90)
	for _, m := range []core.Mode{core.Vertical, core.Horizontal, core.Shortest} {
		assert.True(t, Resolve(o, d, m).IsDirectional(), "%v", m)
	}
}
