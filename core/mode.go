package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown routing mode")

// Mode selects which side of the origin box connects to which side of the
// destination box. The sixteen directional modes are numbered
// originSide*4 + destinationSide, followed by the auto-resolving modes.
type Mode int

const (
	LeftToLeft Mode = iota
	LeftToTop
	LeftToRight
	LeftToBottom
	TopToLeft
	TopToTop
	TopToRight
	TopToBottom
	RightToLeft
	RightToTop
	RightToRight
	RightToBottom
	BottomToLeft
	BottomToTop
	BottomToRight
	BottomToBottom

	// Vertical resolves to TOP_TO_BOTTOM or BOTTOM_TO_TOP, falling back to
	// the matching same-side mode when the boxes overlap vertically.
	Vertical
	// Horizontal resolves to LEFT_TO_RIGHT or RIGHT_TO_LEFT, falling back
	// to the matching same-side mode when the boxes overlap horizontally.
	Horizontal
	// Shortest resolves to the directional mode with the closest anchors.
	Shortest

	// Direct is the legacy two-point mode: a straight, possibly diagonal,
	// line between the nearest corners of the two boxes.
	Direct
)

var modeNames = [...]string{
	"LEFT_TO_LEFT", "LEFT_TO_TOP", "LEFT_TO_RIGHT", "LEFT_TO_BOTTOM",
	"TOP_TO_LEFT", "TOP_TO_TOP", "TOP_TO_RIGHT", "TOP_TO_BOTTOM",
	"RIGHT_TO_LEFT", "RIGHT_TO_TOP", "RIGHT_TO_RIGHT", "RIGHT_TO_BOTTOM",
	"BOTTOM_TO_LEFT", "BOTTOM_TO_TOP", "BOTTOM_TO_RIGHT", "BOTTOM_TO_BOTTOM",
	"VERTICAL", "HORIZONTAL", "SHORTEST", "DIRECT",
}

// DirectionalModes lists the sixteen side-to-side modes in enumeration order.
func DirectionalModes() []Mode {
	modes := make([]Mode, 0, 16)
	for m := LeftToLeft; m <= BottomToBottom; m++ {
		modes = append(modes, m)
	}
	return modes
}

// AllModes lists every mode the router accepts, in enumeration order.
func AllModes() []Mode {
	modes := make([]Mode, 0, len(modeNames))
	for m := LeftToLeft; m <= Direct; m++ {
		modes = append(modes, m)
	}
	return modes
}

// ModeFor returns the directional mode joining the two sides.
func ModeFor(origin, destination Side) Mode {
	return Mode(int(origin)*4 + int(destination))
}

// Sides returns the origin and destination sides of a directional mode.
// ok is false for auto-resolving and legacy modes.
func (m Mode) Sides() (origin, destination Side, ok bool) {
	if !m.IsDirectional() {
		return 0, 0, false
	}
	return Side(int(m) / 4), Side(int(m) % 4), true
}

// IsDirectional reports whether m names a concrete pair of sides.
func (m Mode) IsDirectional() bool {
	return m >= LeftToLeft && m <= BottomToBottom
}

// IsAuto reports whether m is resolved per call from the box geometry.
func (m Mode) IsAuto() bool {
	return m == Vertical || m == Horizontal || m == Shortest
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m >= LeftToLeft && m <= Direct
}

// String returns the mode's upper-case name, e.g. "TOP_TO_BOTTOM".
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts mode names case-insensitively, with '_', '-' or ' ' as
// separators ("top-to-bottom", "TOP_TO_BOTTOM") as well as the numeric value.
func ParseMode(s string) (Mode, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for i, name := range modeNames {
		if name == norm {
			return Mode(i), nil
		}
	}
	if n, err := strconv.Atoi(norm); err == nil && Mode(n).IsValid() {
		return Mode(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Next returns the following mode in enumeration order, wrapping around.
func (m Mode) Next() Mode {
	if !m.IsValid() || m == Direct {
		return LeftToLeft
	}
	return m + 1
}

// Prev returns the preceding mode in enumeration order, wrapping around.
func (m Mode) Prev() Mode {
	if !m.IsValid() || m == LeftToLeft {
		return Direct
	}
	return m - 1
}
