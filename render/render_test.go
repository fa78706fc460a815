package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/trigrid/lattice"
	"github.com/osuushi/trigrid/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each tile gets its own color, derived from its ID, so pixels can be traced
// back to tiles.
func testTiling(t *testing.T) *lattice.Tiling {
	tiling, err := lattice.New(lattice.Config{
		TileEdgeLength: 40,
		ViewportWidth:  160,
		ViewportHeight: 120,
		OnTriangleCreate: func(tri *lattice.Triangle) {
			tri.Color = palette.RGB(uint8(tri.ID), uint8(255-tri.ID), 200)
		},
	})
	require.NoError(t, err)
	require.Less(t, tiling.Len(), 256)
	return tiling
}

func TestNewContext(t *testing.T) {
	tiling := testTiling(t)
	c := NewContext(tiling, color.Black)
	assert.Equal(t, 160, c.Width())
	assert.Equal(t, 120, c.Height())

	img := c.Image()
	// The middle of every visible tile is painted in exactly that tile's color
	for _, tri := range tiling.Triangles() {
		centroid := tri.Centroid()
		x, y := int(math.Floor(centroid.X)), int(math.Floor(centroid.Y))
		if x < 0 || y < 0 || x >= 160 || y >= 120 {
			continue
		}
		expected := color.RGBAModel.Convert(tri.Color)
		assert.Equal(t, expected, color.RGBAModel.Convert(img.At(x, y)), "pixel %d,%d of %s", x, y, tri)
	}
}

func TestWritePNG(t *testing.T) {
	tiling := testTiling(t)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(tiling, &buf, nil))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	tiling := testTiling(t)
	path := filepath.Join(t.TempDir(), "tiling.png")
	require.NoError(t, SavePNG(tiling, path, color.Black))

	assert.Error(t, SavePNG(tiling, filepath.Join(t.TempDir(), "missing", "tiling.png"), nil))
}

func TestWriteSVG(t *testing.T) {
	tiling := testTiling(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(tiling, &buf, palette.RGB(0, 0, 0)))

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "160", root.Attributes["width"])
	assert.Equal(t, "120", root.Attributes["height"])

	rects := root.FindAll("rect")
	require.Len(t, rects, 1)
	assert.Contains(t, rects[0].Attributes["style"], "fill:#000000")

	paths := root.FindAll("path")
	require.Len(t, paths, tiling.Len())
	for i, tri := range tiling.Triangles() {
		path := paths[i]
		hex := palette.FromColor(tri.Color).Hex()
		assert.Equal(t, "fill:"+hex+";stroke:"+hex+";stroke-width:1", path.Attributes["style"])

		d := path.Attributes["d"]
		assert.True(t, strings.HasPrefix(d, "M"), "path %q", d)
		assert.True(t, strings.HasSuffix(d, "Z"), "path %q", d)
		assert.Equal(t, 2, strings.Count(d, "L"), "path %q", d)
	}
}

func TestSVGSurface_StrokeOnly(t *testing.T) {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(10, 10)
	s := NewSVGSurface(canvas)
	s.SetColor(color.White)
	s.MoveTo(1, 1)
	s.LineTo(9, 1)
	s.LineTo(5, 8.5)
	s.ClosePath()
	s.Stroke()
	canvas.End()

	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)
	paths := root.FindAll("path")
	require.Len(t, paths, 1)
	assert.Equal(t, "M1,1 L9,1 L5,8.5 Z", paths[0].Attributes["d"])
	assert.Equal(t, "fill:none;stroke:#ffffff;stroke-width:1", paths[0].Attributes["style"])
}
