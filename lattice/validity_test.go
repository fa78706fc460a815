package lattice

// This contains no actual tests. It is just a helper for checking that a
// tiling really tiles.

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The rules are:
// 1. No tile has zero area.
// 2. IDs are 0..n-1 in creation order and every tile is indexed at its own
//    (column, row).
// 3. Orientation flips between vertical and horizontal neighbors.
// 4. The sum of the tile areas equals the area of the rectangle spanned by the
//    tile strips (each row of n tiles is a strip n half-edges wide).
// 5. Sampled points inside the fully covered region are strictly inside
//    exactly one tile, and TriangleAt agrees on which.
func AssertValidTiling(t *testing.T, tiling *Tiling) {
	config := tiling.Config()
	halfEdge := config.TileEdgeLength / 2
	height := config.TileHeight

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	var area float64
	for i, tri := range tiling.Triangles() {
		require.Equal(t, i, tri.ID, "IDs follow creation order")
		require.Same(t, tri, tiling.Triangle(tri.Column, tri.Row), "tile %s is indexed", tri)
		require.Greater(t, tri.Area(), Tolerance, "tile %s is degenerate", tri)
		area += tri.Area()

		minX = math.Min(minX, tri.Position.X)
		minY = math.Min(minY, tri.Position.Y)
		maxX = math.Max(maxX, tri.Position.X)
		maxY = math.Max(maxY, tri.Position.Y)

		if below := tiling.Triangle(tri.Column, tri.Row+1); below != nil {
			require.NotEqual(t, tri.Orientation(), below.Orientation(), "%s and %s", tri, below)
		}
		if right := tiling.Triangle(tri.Column+1, tri.Row); right != nil {
			require.NotEqual(t, tri.Orientation(), right.Orientation(), "%s and %s", tri, right)
		}
	}

	rectangleArea := (maxX - minX + halfEdge) * (maxY - minY + height)
	require.InDelta(t, rectangleArea, area, Tolerance*rectangleArea, "tiles cover the strip rectangle exactly")

	// Between the outermost column centers, every row is solid. The offsets
	// keep samples off the (irrationally placed) edges.
	origin := tiling.Origin()
	step := math.Max(maxX-minX, maxY-minY) / 40
	for y := minY - height/2 + 0.0173; y < maxY+height/2; y += step {
		for x := minX + 0.0291; x < maxX; x += step {
			p := Point{x, y}
			var containing []*Triangle
			for _, tri := range tiling.Triangles() {
				if tri.ContainsPoint(p, Point{}) {
					containing = append(containing, tri)
				}
			}
			if !assert.Len(t, containing, 1, "point %s should be in exactly one tile", p) {
				continue
			}
			assert.Same(t, containing[0], tiling.TriangleAt(p.Sub(origin)), "lookup of %s", p)
		}
	}
}

func describeConfig(c Config) string {
	c = c.WithDefaults()
	return fmt.Sprintf("edge %g height %.2f viewport %gx%g origin %s up %v",
		c.TileEdgeLength, c.TileHeight, c.ViewportWidth, c.ViewportHeight, *c.Origin, c.FirstTriangleUp)
}
