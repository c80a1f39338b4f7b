package window

import (
	"testing"

	"github.com/1broseidon/sill/platform"
)

func TestEdgeDirectionMapping(t *testing.T) {
	cases := []struct {
		edge Edge
		want platform.Direction
	}{
		{EdgeLeft, platform.SizeLeft},
		{EdgeRight, platform.SizeRight},
		{EdgeTop, platform.SizeTop},
		{EdgeBottom, platform.SizeBottom},
		{EdgeTop | EdgeLeft, platform.SizeTopLeft},
		{EdgeTop | EdgeRight, platform.SizeTopRight},
		{EdgeBottom | EdgeLeft, platform.SizeBottomLeft},
		{EdgeBottom | EdgeRight, platform.SizeBottomRight},
	}

	for _, tc := range cases {
		dir, ok := tc.edge.direction()
		if !ok {
			t.Fatalf("edge %s: expected a native translation", tc.edge)
		}
		if dir != tc.want {
			t.Fatalf("edge %s: expected direction %d, got %d", tc.edge, tc.want, dir)
		}
	}
}

func TestOppositeEdgePairsHaveNoTranslation(t *testing.T) {
	for _, e := range []Edge{EdgeTop | EdgeBottom, EdgeLeft | EdgeRight} {
		if _, ok := e.direction(); ok {
			t.Fatalf("edge %s: opposite pair must not translate", e)
		}
	}
}

func TestParseEdge(t *testing.T) {
	cases := []struct {
		in   string
		want Edge
	}{
		{"top", EdgeTop},
		{"bottom", EdgeBottom},
		{"left", EdgeLeft},
		{"right", EdgeRight},
		{"top-left", EdgeTop | EdgeLeft},
		{"bottom-right", EdgeBottom | EdgeRight},
		{"Top-Right", EdgeTop | EdgeRight},
	}

	for _, tc := range cases {
		got, err := ParseEdge(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %s, got %s", tc.in, tc.want, got)
		}
	}

	for _, bad := range []string{"", "middle", "top-center"} {
		if _, err := ParseEdge(bad); err == nil {
			t.Fatalf("expected parse error for %q", bad)
		}
	}
}

func TestColorParseAndHex(t *testing.T) {
	c, err := ParseColor("#336699")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c != (Color{R: 0x33, G: 0x66, B: 0x99, A: 0xff}) {
		t.Fatalf("expected opaque #336699, got %+v", c)
	}

	c, err = ParseColor("10203040")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c != (Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Fatalf("expected #10203040, got %+v", c)
	}
	if got := c.Hex(); got != "#10203040" {
		t.Fatalf("expected hex #10203040, got %s", got)
	}

	for _, bad := range []string{"", "#12345", "#zzzzzz", "#123456789"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("expected parse error for %q", bad)
		}
	}
}
