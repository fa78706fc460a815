package lattice

// TriangleAt finds the tile under p, where p is relative to the tiling's
// origin (which is what pointer sources hand us). Returns nil if p is outside
// everything that was built.
//
// The row is always exact. The column is a rounded guess and may be off by one
// either way, so the guessed tile and its two neighbors are all tested:
//
//  1. Strict containment, checking left, right, then middle.
//  2. If nothing strictly contains p, it sits on an edge or vertex. The middle
//     tile wins ties, then left, then right.
func (t *Tiling) TriangleAt(p Point) *Triangle {
	column, row := t.indexer.Locate(p)

	left := t.index.Get(column-1, row)
	middle := t.index.Get(column, row)
	right := t.index.Get(column+1, row)

	origin := *t.config.Origin
	for _, candidate := range [3]*Triangle{left, right, middle} {
		if candidate != nil && candidate.ContainsPoint(p, origin) {
			return candidate
		}
	}
	for _, candidate := range [3]*Triangle{middle, left, right} {
		if candidate != nil && candidate.touchesPoint(p, origin) {
			return candidate
		}
	}
	return nil
}

// Same as TriangleAt, but p is in tiling space (the space Config.Origin is
// given in).
func (t *Tiling) TriangleAtAbsolute(p Point) *Triangle {
	return t.TriangleAt(p.Sub(*t.config.Origin))
}
