package viz

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/san-kum/photonsphere/internal/spacetime"
)

// Grid palette: red near the horizon fading to blue far out.
var zoneColors = map[spacetime.Zone]color.NRGBA{
	spacetime.NearHorizon: {0xDD, 0x00, 0x00, 0xFF},
	spacetime.StrongWarp:  {0xFF, 0x66, 0x33, 0xFF},
	spacetime.MediumWarp:  {0xFF, 0xAA, 0x55, 0xFF},
	spacetime.Minimal:     {0x44, 0x88, 0xFF, 0xFF},
}

// RadialColor is the spoke color down the funnel.
var RadialColor = color.NRGBA{0xDD, 0x33, 0x33, 0xFF}

// HorizonColor fills the event-horizon sphere.
var HorizonColor = color.NRGBA{0x00, 0x00, 0x00, 0xFF}

// White is the frame background.
var White = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}

func ZoneColor(z spacetime.Zone) color.NRGBA {
	return zoneColors[z]
}

// ParseHexColor parses "#RRGGBB" into an opaque NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
