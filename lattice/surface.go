package lattice

import "image/color"

// Surface is anything that can paint paths. *gg.Context satisfies it as is.
type Surface interface {
	SetColor(c color.Color)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	FillPreserve()
	Stroke()
}

// Paint the tile as a closed path, filled and stroked in its color. Stroking
// with the fill color closes the hairline gaps antialiasing leaves between
// neighbors. Tiles without a color are skipped.
func (t *Triangle) Draw(s Surface) {
	if t.Color == nil {
		return
	}
	s.SetColor(t.Color)
	v := t.Vertices()
	s.MoveTo(v[0].X, v[0].Y)
	for _, p := range v[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.ClosePath()
	s.FillPreserve()
	s.Stroke()
}

// Paint every tile, in creation order.
func (t *Tiling) Draw(s Surface) {
	for _, triangle := range t.triangles {
		triangle.Draw(s)
	}
}
