package geonym

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gogpu/gg"
)

// Surface is a square drawing target addressed in logical coordinates.
// Implementations convert coordinates with a Mapper before drawing.
type Surface interface {
	// Clear wipes the surface to its background.
	Clear()

	// DrawCircle fills a circle of the given logical radius.
	// A border with zero alpha is not stroked.
	DrawCircle(center Coord, radius float64, fill, border gg.RGBA) error

	// DrawLine strokes a one pixel line between two logical points.
	DrawLine(from, to Coord, col gg.RGBA) error
}

// Colors shared by the spaces.
var (
	// NoBorder disables stroking in DrawCircle.
	NoBorder = gg.RGBA{}

	// Paper is the off-white fill of the placeholder spaces.
	Paper = gg.Hex("#F7F7F7")

	// Ink is opaque black.
	Ink = gg.Black
)

// MutedColor picks a random dark, desaturated color:
// a uniformly random hue at 50% saturation and 25% lightness.
func MutedColor(rng *rand.Rand) gg.RGBA {
	return gg.HSL(360*rng.Float64(), 0.5, 0.25)
}

var namedColors = map[string]gg.RGBA{
	"black":       gg.Black,
	"white":       gg.White,
	"transparent": gg.Transparent,
}

// ParseColor parses a color written as a hex string ("#F7F7F7", "fff") or one
// of the names black, white and transparent.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("parse color %q: unsupported format", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return gg.RGBA{}, fmt.Errorf("parse color %q: invalid hex digit %q", s, r)
		}
	}
	return gg.Hex(hex), nil
}

// Captioner is implemented by surfaces that can label themselves with the
// title of the space drawn on them.
type Captioner interface {
	Caption(title string) error
}
