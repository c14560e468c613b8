package interp

import (
	"fmt"
	"strings"
)

// Mode selects how bars between supporting points are filled.
type Mode int

const (
	ModeNone Mode = iota
	ModeLinear
	ModeCubicSpline
)

var modeNames = [...]string{
	ModeNone:        "none",
	ModeLinear:      "linear",
	ModeCubicSpline: "cubic-spline",
}

// String returns the canonical lower-case name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeNone && m <= ModeCubicSpline
}

// Next returns the following mode, wrapping after [ModeCubicSpline].
func (m Mode) Next() Mode {
	if !m.Valid() {
		return ModeNone
	}
	return (m + 1) % Mode(len(modeNames))
}

// ParseMode parses a mode name. Matching is case-insensitive and accepts
// "spline" and "cubicspline" as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return ModeNone, nil
	case "linear":
		return ModeLinear, nil
	case "cubic-spline", "cubicspline", "cubic_spline", "spline":
		return ModeCubicSpline, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
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
