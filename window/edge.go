package window

import (
	"fmt"
	"strings"

	"github.com/1broseidon/sill/platform"
)

// Edge is a combinable flag set identifying which side or corner of a
// window a resize gesture grabs. Of the possible combinations, only the
// four single edges and the four adjacent corner pairs translate to a
// native resize command; opposite pairs (top|bottom, left|right) have no
// meaning and map to no operation.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// edgeDirections is the total mapping from meaningful edge combinations to
// native resize directions. Absence means no-op.
var edgeDirections = map[Edge]platform.Direction{
	EdgeLeft:               platform.SizeLeft,
	EdgeRight:              platform.SizeRight,
	EdgeTop:                platform.SizeTop,
	EdgeTop | EdgeLeft:     platform.SizeTopLeft,
	EdgeTop | EdgeRight:    platform.SizeTopRight,
	EdgeBottom:             platform.SizeBottom,
	EdgeBottom | EdgeLeft:  platform.SizeBottomLeft,
	EdgeBottom | EdgeRight: platform.SizeBottomRight,
}

// direction returns the native resize direction for the edge combination,
// reporting false when the combination has no native translation.
func (e Edge) direction() (platform.Direction, bool) {
	dir, ok := edgeDirections[e]
	return dir, ok
}

// String renders the combination as e.g. "top-left".
func (e Edge) String() string {
	var parts []string
	if e&EdgeTop != 0 {
		parts = append(parts, "top")
	}
	if e&EdgeBottom != 0 {
		parts = append(parts, "bottom")
	}
	if e&EdgeLeft != 0 {
		parts = append(parts, "left")
	}
	if e&EdgeRight != 0 {
		parts = append(parts, "right")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "-")
}

// ParseEdge parses combinations like "top", "top-left" or "bottom-right".
func ParseEdge(s string) (Edge, error) {
	var e Edge
	for _, part := range strings.Split(strings.ToLower(strings.TrimSpace(s)), "-") {
		switch part {
		case "left":
			e |= EdgeLeft
		case "right":
			e |= EdgeRight
		case "top":
			e |= EdgeTop
		case "bottom":
			e |= EdgeBottom
		default:
			return 0, fmt.Errorf("invalid edge %q", s)
		}
	}
	if e == 0 {
		return 0, fmt.Errorf("invalid edge %q", s)
	}
	return e, nil
}
