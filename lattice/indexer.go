package lattice

import "math"

// Indexer converts origin-relative pixel coordinates into lattice indices.
//
// Rows are spaced by the tile height and bucketed around the row's center
// line, so a half height offset is added before flooring. Columns are spaced by
// half an edge length, because neighboring up and down tiles overlap in x by
// that much. Rounding to the nearest column center is only a first guess; the
// real tile may be one column to either side, which TriangleAt sorts out.
type Indexer struct {
	EdgeLength float64
	Height     float64
}

func (ix Indexer) RowIndex(y float64) int {
	return int(math.Floor((y + ix.Height/2) / ix.Height))
}

func (ix Indexer) ColumnIndex(x float64) int {
	return roundHalfUp(x / (ix.EdgeLength / 2))
}

// Both indices at once.
func (ix Indexer) Locate(p Point) (column, row int) {
	return ix.ColumnIndex(p.X), ix.RowIndex(p.Y)
}
