package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/trigrid/lattice"
	"github.com/osuushi/trigrid/palette"
	"github.com/pkg/errors"
)

// SVGSurface collects the path calls of a lattice.Surface and writes each
// finished path as a <path> element.
type SVGSurface struct {
	canvas *svg.SVG
	color  color.Color
	d      strings.Builder
	filled bool
}

var _ lattice.Surface = (*SVGSurface)(nil)

func NewSVGSurface(canvas *svg.SVG) *SVGSurface {
	return &SVGSurface{canvas: canvas}
}

func (s *SVGSurface) SetColor(c color.Color) {
	s.color = c
}

func (s *SVGSurface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.d, "M%g,%g ", x, y)
}

func (s *SVGSurface) LineTo(x, y float64) {
	fmt.Fprintf(&s.d, "L%g,%g ", x, y)
}

func (s *SVGSurface) ClosePath() {
	s.d.WriteString("Z")
}

// Marks the pending path as filled. Nothing is written until Stroke.
func (s *SVGSurface) FillPreserve() {
	s.filled = true
}

// Writes the pending path and clears it, like gg's Stroke.
func (s *SVGSurface) Stroke() {
	paint := palette.FromColor(s.color).Hex()
	fill := "none"
	if s.filled {
		fill = paint
	}
	s.canvas.Path(strings.TrimSpace(s.d.String()), fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fill, paint))
	s.d.Reset()
	s.filled = false
}

// WriteSVG writes the whole tiling as an SVG document the size of the
// viewport, with an optional background rectangle.
func WriteSVG(t *lattice.Tiling, w io.Writer, background color.Color) error {
	buffered := bufio.NewWriter(w)
	width, height := viewportSize(t)

	canvas := svg.New(buffered)
	canvas.Start(width, height)
	if background != nil {
		canvas.Rect(0, 0, width, height, "fill:"+palette.FromColor(background).Hex())
	}
	t.Draw(NewSVGSurface(canvas))
	canvas.End()

	return errors.Wrap(buffered.Flush(), "writing svg")
}
