package window

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 4-channel RGBA value.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" hex notation. The alpha
// channel defaults to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xff
	}

	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex renders the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
