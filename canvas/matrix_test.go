package canvas

import (
	"strings"
	"testing"
)

func TestMatrixCanvasCreation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"small", 10, 5},
		{"wide", 100, 3},
		{"tall", 3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewMatrixCanvas(tt.width, tt.height)
			w, h := c.Size()
			if w != tt.width || h != tt.height {
				t.Fatalf("Size() = (%d,%d), want (%d,%d)", w, h, tt.width, tt.height)
			}
			for y, row := range c.Matrix() {
				if string(row) != strings.Repeat(" ", tt.width) {
					t.Errorf("row %d not blank: %q", y, string(row))
				}
			}
		})
	}

	if NewMatrixCanvas(0, 5) != nil || NewMatrixCanvas(5, -1) != nil {
		t.Error("expected nil canvas for a non-positive size")
	}
}

func TestMatrixCanvasGetSet(t *testing.T) {
	c := NewMatrixCanvas(20, 10)

	tests := []struct {
		name  string
		cell  Cell
		valid bool
	}{
		{"origin", Cell{0, 0}, true},
		{"bottom right", Cell{19, 9}, true},
		{"past right", Cell{20, 5}, false},
		{"past bottom", Cell{10, 10}, false},
		{"negative", Cell{-1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Set(tt.cell, 'x')
			if tt.valid && err != nil {
				t.Fatalf("Set: %v", err)
			}
			if !tt.valid && err != ErrOutOfBounds {
				t.Fatalf("Set error = %v, want ErrOutOfBounds", err)
			}
			want := 'x'
			if !tt.valid {
				want = ' '
			}
			if got := c.Get(tt.cell); got != want {
				t.Errorf("Get = %q, want %q", got, want)
			}
		})
	}
}

func TestLinesMergeIntoJunctions(t *testing.T) {
	c := NewMatrixCanvas(5, 5)
	c.DrawHorizontalLine(0, 2, 4, '─')
	c.DrawVerticalLine(2, 0, 4, '│')

	if got := c.Get(Cell{2, 2}); got != '┼' {
		t.Errorf("crossing = %q, want ┼", got)
	}
	if got := c.Get(Cell{0, 2}); got != '─' {
		t.Errorf("line = %q, want ─", got)
	}
}

func TestDrawBox(t *testing.T) {
	c := NewMatrixCanvas(4, 3)
	if err := c.DrawBox(0, 0, 4, 3, SharpBox); err != nil {
		t.Fatal(err)
	}
	want := "┌──┐\n│  │\n└──┘"
	if got := c.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if err := c.DrawBox(0, 0, 1, 3, SharpBox); err != ErrInvalidSize {
		t.Errorf("DrawBox(1 wide) = %v, want ErrInvalidSize", err)
	}
}

func TestDrawPathCorners(t *testing.T) {
	c := NewMatrixCanvas(6, 4)
	c.DrawPath([]Cell{{0, 3}, {0, 0}, {5, 0}, {5, 3}, {5, 3}}, UnicodeLines)

	want := "╭────╮\n│    │\n│    │\n│    │"
	if got := c.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := NewMatrixCanvas(4, 4)
	c.DrawLine(Cell{0, 0}, Cell{3, 3}, '*')
	for i := 0; i < 4; i++ {
		if c.Get(Cell{i, i}) != '*' {
			t.Errorf("cell (%d,%d) not drawn", i, i)
		}
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	c := NewMatrixCanvas(6, 1)
	c.DrawText(0, 0, "日本語")
	if got := c.String(); got != "日本語" {
		t.Errorf("String() = %q", got)
	}

	c.Clear()
	c.DrawText(1, 0, "日本語")
	if got := c.String(); got != " 日本 " {
		t.Errorf("clipped String() = %q", got)
	}
}

func TestMergerKeepsArrows(t *testing.T) {
	m := NewCharacterMerger()
	if got := m.Merge('▶', '│'); got != '▶' {
		t.Errorf("arrow overwritten: %q", got)
	}
	if got := m.Merge('│', 'v'); got != 'v' {
		t.Errorf("arrow not drawn: %q", got)
	}
	if got := m.Merge('┌', '─'); got != '┬' {
		t.Errorf("corner+line = %q, want ┬", got)
	}
	if got := m.Merge('A', '─'); got != 'A' {
		t.Errorf("text overwritten: %q", got)
	}
}

func TestColoredString(t *testing.T) {
	c := NewColoredMatrixCanvas(3, 1)
	c.DrawText(0, 0, "abc")
	c.Paint("red", Cell{1, 0})

	want := "a" + ColorRed + "b" + ColorReset + "c"
	if got := c.ColoredString(); got != want {
		t.Errorf("ColoredString() = %q, want %q", got, want)
	}
	if c.String() != "abc" {
		t.Errorf("String() = %q", c.String())
	}
	if c.ColorAt(Cell{1, 0}) != "red" || c.ColorAt(Cell{9, 9}) != "" {
		t.Error("ColorAt mismatch")
	}
}
