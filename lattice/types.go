package lattice

import (
	"fmt"
	"image/color"
)

// Point is a plain value. Copying it is all the cloning it ever needs.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("{ x : %g, y : %g }", p.X, p.Y)
}

// Orientation tells which way a triangle's apex points. Screen coordinates are
// used throughout, so y grows downward and an Up triangle has its apex at the
// smallest y.
type Orientation int

const (
	Down Orientation = iota
	Up
)

func (o Orientation) Flip() Orientation {
	if o == Up {
		return Down
	}
	return Up
}

func (o Orientation) String() string {
	if o == Up {
		return "up"
	}
	return "down"
}

func orientationFor(up bool) Orientation {
	if up {
		return Up
	}
	return Down
}

// Triangle is a single tile. Points are relative to the center of the tile's
// bounding box, and Position places that center in tiling space (the same
// space as Config.Origin).
//
// The vertex order is always apex first, then the two base corners.
//
// Everything except Color is fixed once the tiling is built. Color is meant to
// be changed by whoever drives the tiling (the creation hook, hover effects,
// etc). There is no locking: the tiling is only ever touched from one
// goroutine, the one running the event loop.
type Triangle struct {
	Points   [3]Point
	Position Point
	Color    color.Color

	ID     int
	Column int
	Row    int
}

func newTriangle(orientation Orientation, edgeLength, height float64) *Triangle {
	halfEdge := edgeLength / 2
	halfHeight := height / 2
	t := &Triangle{}
	if orientation == Up {
		/*
			    0
			   / \
			  2---1
		*/
		t.Points = [3]Point{
			{0, -halfHeight},
			{halfEdge, halfHeight},
			{-halfEdge, halfHeight},
		}
	} else {
		/*
			  1---2
			   \ /
			    0
		*/
		t.Points = [3]Point{
			{0, halfHeight},
			{-halfEdge, -halfHeight},
			{halfEdge, -halfHeight},
		}
	}
	return t
}

func (t *Triangle) Orientation() Orientation {
	// The apex is above the base exactly when the triangle points up
	return orientationFor(t.Points[0].Y < t.Points[1].Y)
}

// Absolute vertices in tiling space.
func (t *Triangle) Vertices() [3]Point {
	return [3]Point{
		t.Position.Add(t.Points[0]),
		t.Position.Add(t.Points[1]),
		t.Position.Add(t.Points[2]),
	}
}

func (t *Triangle) Centroid() Point {
	v := t.Vertices()
	return Point{(v[0].X + v[1].X + v[2].X) / 3, (v[0].Y + v[1].Y + v[2].Y) / 3}
}

func (t *Triangle) Area() float64 {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]
	area := ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
	if area < 0 {
		return -area
	}
	return area
}

// ContainsPoint checks p against the triangle, where p is expressed relative
// to referenceOrigin rather than in tiling space. Boundary points are not
// contained.
func (t *Triangle) ContainsPoint(p Point, referenceOrigin Point) bool {
	offset := t.Position.Sub(referenceOrigin)
	a, b, c := offset.Add(t.Points[0]), offset.Add(t.Points[1]), offset.Add(t.Points[2])
	return PointIsInTriangle(p.X, p.Y, a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

// Same as ContainsPoint, but points on the boundary (within Tolerance) count as
// inside. Used to settle points that sit exactly on shared edges.
func (t *Triangle) touchesPoint(p Point, referenceOrigin Point) bool {
	offset := t.Position.Sub(referenceOrigin)
	a, b, c := offset.Add(t.Points[0]), offset.Add(t.Points[1]), offset.Add(t.Points[2])
	return pointIsOnOrInTriangle(p.X, p.Y, a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle #%d (%d,%d) %s at %s", t.ID, t.Column, t.Row, t.Orientation(), t.Position)
}
