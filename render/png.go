// Package render paints tilings onto concrete surfaces: raster images through
// gg, SVG documents through svgo, and inline terminal previews of the former.
package render

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trigrid/lattice"
	"github.com/pkg/errors"
)

// Size of the image a tiling's viewport needs, in whole pixels.
func viewportSize(t *lattice.Tiling) (width, height int) {
	c := t.Config()
	return int(math.Ceil(c.ViewportWidth)), int(math.Ceil(c.ViewportHeight))
}

// NewContext creates a gg context the size of the viewport, fills it with
// background (if not nil) and paints every tile onto it. The context can be
// painted on further, e.g. to redraw hovered tiles.
func NewContext(t *lattice.Tiling, background color.Color) *gg.Context {
	width, height := viewportSize(t)
	c := gg.NewContext(width, height)
	if background != nil {
		c.SetColor(background)
		c.DrawRectangle(0, 0, float64(width), float64(height))
		c.Fill()
	}
	c.SetLineWidth(1)
	t.Draw(c)
	return c
}

func SavePNG(t *lattice.Tiling, path string, background color.Color) error {
	if err := NewContext(t, background).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %q", path)
	}
	return nil
}

func WritePNG(t *lattice.Tiling, w io.Writer, background color.Color) error {
	return errors.Wrap(NewContext(t, background).EncodePNG(w), "encoding png")
}

// Print a PNG file inline to the terminal. Only terminals that speak the iTerm
// image protocol will show anything.
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
