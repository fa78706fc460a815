// Package palette holds the color handling that sits around a tiling: parsing
// the two color notations tiles are described with, blending between colors,
// and the creation hook that gives a fresh tiling its look.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/osuushi/trigrid/lattice"
	"github.com/pkg/errors"
)

// Color is an opaque 8 bit RGB color. It satisfies color.Color, so it can be
// stored on a tile and handed to any surface.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// The rgb(r,g,b) notation, which Parse reads back.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// The #rrggbb notation, which Parse also reads back.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend toward other. t is clamped to [0, 1]; 0 gives c and 1 gives other.
func (c Color) Interpolate(other Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	r, g, b := c.colorful().BlendRgb(other.colorful(), t).Clamped().RGB255()
	return Color{r, g, b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Convert any color to a palette Color, dropping alpha. Nil gives black.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	if pc, ok := c.(Color); ok {
		return pc
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Color{rgba.R, rgba.G, rgba.B}
}

// Parse reads "#RRGGBB" or "rgb(r,g,b)" with channels 0-255. Anything else is
// an error; there is no fallback color.
func Parse(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 || strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
			return Color{}, errors.Errorf("unrecognized color format: %q", s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, errors.Wrapf(err, "unrecognized color format: %q", s)
		}
		r, g, b := c.RGB255()
		return Color{r, g, b}, nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[len("rgb("):len(s)-1], ",")
		if len(parts) != 3 {
			return Color{}, errors.Errorf("unrecognized color format: %q", s)
		}
		var channels [3]uint8
		for i, part := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return Color{}, errors.Wrapf(err, "bad channel %q in color %q", part, s)
			}
			channels[i] = uint8(v)
		}
		return Color{channels[0], channels[1], channels[2]}, nil
	}
	return Color{}, errors.Errorf("unrecognized color format: %q", s)
}

// Like Parse, but panics. For colors that are constants in the source.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DistanceShade returns a creation hook that colors tiles orange, fading to
// black with distance from center, with a random blue-green tint mixed in.
// Tiles farther than half the shorter viewport side are fully faded.
//
// rng supplies the tint. Pass a seeded source for reproducible output.
func DistanceShade(center lattice.Point, width, height float64, rng *rand.Rand) func(*lattice.Triangle) {
	radius := math.Min(width, height) / 2
	return func(t *lattice.Triangle) {
		distance := t.Position.Sub(center)
		intensity := math.Min(1, math.Hypot(distance.X, distance.Y)/radius)
		intensity = 1 - intensity
		additional := rng.Float64() * 0.5

		t.Color = Color{
			R: channel(255 * intensity),
			G: channel(64*intensity + 192*additional),
			B: channel(255 * additional),
		}
	}
}

func channel(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, math.Round(v))))
}
