// Package renderers contains the Renderer implementations used to turn a maze
// into pixels, along with a few color helpers they share.
package renderers

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Returns the color between a and b, where t = 0 gives a and t = 1 gives b.
// t is clamped to [0, 1], and NaN is treated as 0.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if math.IsNaN(t) || (t < 0) {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// Parses a color written as "#rrggbb", "rrggbb" or "#rgb".
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("Invalid color %q: expected #rrggbb",
			s)
	}
	v, e := strconv.ParseUint(hex, 16, 32)
	if e != nil {
		return color.RGBA{}, fmt.Errorf("Invalid color %q: %w", s, e)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

// Formats the color as "#rrggbb", ignoring alpha.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
