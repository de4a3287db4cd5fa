package geometry

import (
	"math"
	"testing"

	"elbow/core"
)

func TestPairwiseDistances(t *testing.T) {
	origin := core.Box{Left: 0, Top: 0, Right: 100, Bottom: 40}
	destination := core.Box{Left: 0, Top: 100, Right: 100, Bottom: 140}

	tests := []struct {
		name string
		fn   func(o, d core.Box) float64
		want float64
	}{
		{"TopToTop", TopToTop, 100},
		{"TopToBottom", TopToBottom, 140},
		{"BottomToTop", BottomToTop, 60},
		{"BottomToBottom", BottomToBottom, 100},
		{"LeftToLeft", LeftToLeft, 0},
		{"LeftToRight", LeftToRight, 100},
		{"RightToLeft", RightToLeft, -100},
		{"RightToRight", RightToRight, 0},
		{"HorizontalMid", HorizontalMid, 0},
		{"VerticalMid", VerticalMid, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(origin, destination); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDistancesAreAntisymmetric(t *testing.T) {
	a := core.NewBox(10, 20, 30, 40)
	b := core.NewBox(-50, 70, 20, 10)

	if TopToTop(a, b) != -TopToTop(b, a) {
		t.Error("TopToTop is not antisymmetric")
	}
	if TopToBottom(a, b) != -BottomToTop(b, a) {
		t.Error("TopToBottom(a,b) should equal -BottomToTop(b,a)")
	}
	if LeftToRight(a, b) != -RightToLeft(b, a) {
		t.Error("LeftToRight(a,b) should equal -RightToLeft(b,a)")
	}
}

func TestAnchorDistance(t *testing.T) {
	origin := core.NewBox(0, 0, 100, 100)
	destination := core.NewBox(200, 200, 100, 100)

	got := AnchorDistance(origin, destination, core.Right, core.Top)
	want := math.Hypot(150, 150)
	if got != want {
		t.Errorf("AnchorDistance = %v, want %v", got, want)
	}
}

func TestSignTreatsZeroAsPositive(t *testing.T) {
	if Sign(0) != 1 || Sign(-0.5) != -1 || Sign(3) != 1 {
		t.Error("Sign returned an unexpected value")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 || Abs(-4) != 4 {
		t.Error("Min/Max/Abs disagree")
	}
}
