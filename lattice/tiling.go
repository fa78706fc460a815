package lattice

// Tiling is a regular lattice of alternating up and down triangles covering a
// rectangular viewport. It is built once, eagerly, and never resized. To
// change the viewport, build a new one.
//
// Columns are half an edge length apart and rows are one tile height apart.
// Column 0, row 0 is the tile centered on the origin; indices go negative to
// the left of and above it. Orientation flips with every step in either
// direction, so tile (c, r) points the same way as tile (0, 0) exactly when
// c+r is even.
type Tiling struct {
	config    Config
	indexer   Indexer
	index     Index
	triangles []*Triangle
}

// New builds a tiling. Config zero values are replaced with defaults; an
// invalid config (non-positive sizes, non-finite origin) is an error.
func New(config Config) (result *Tiling, err error) {
	defer func() {
		recoveredErr := HandleBuildPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return build(config), nil
}

// Like New, but panics on an invalid config.
func MustBuild(config Config) *Tiling {
	t, err := New(config)
	if err != nil {
		panic(err)
	}
	return t
}

func build(config Config) *Tiling {
	config = config.WithDefaults()
	config.validate()

	t := &Tiling{
		config:  config,
		indexer: Indexer{EdgeLength: config.TileEdgeLength, Height: config.TileHeight},
		index:   make(Index),
	}

	halfEdge := config.TileEdgeLength / 2
	origin := *config.Origin

	// Columns from the origin rightward, with half a tile of overscan past the
	// right edge.
	orientation := orientationFor(config.FirstTriangleUp)
	for column := 0; ; column++ {
		x := origin.X + float64(column)*halfEdge
		if x >= config.ViewportWidth+halfEdge {
			break
		}
		t.buildColumn(column, x, orientation)
		orientation = orientation.Flip()
	}

	// Then leftward, down to half a tile past the left edge. The seed is the
	// opposite of column 0 so that column -1 continues the alternation.
	orientation = orientationFor(!config.FirstTriangleUp)
	for column := -1; ; column-- {
		x := origin.X + float64(column)*halfEdge
		if x < -halfEdge {
			break
		}
		t.buildColumn(column, x, orientation)
		orientation = orientation.Flip()
	}

	return t
}

// Build one column of tiles. The orientation is that of the tile at row 0, on
// the origin's horizontal.
func (t *Tiling) buildColumn(column int, x float64, orientation Orientation) {
	height := t.config.TileHeight
	originY := t.config.Origin.Y

	// Downward from the origin row, including a full row of overscan
	current := orientation
	for row := 0; ; row++ {
		y := originY + float64(row)*height
		if y > t.config.ViewportHeight+height {
			break
		}
		t.makeTriangle(column, row, Point{x, y}, current)
		current = current.Flip()
	}

	// Upward from the row above the origin
	current = orientation.Flip()
	for row := -1; ; row-- {
		y := originY + float64(row)*height
		if y < -height {
			break
		}
		t.makeTriangle(column, row, Point{x, y}, current)
		current = current.Flip()
	}
}

func (t *Tiling) makeTriangle(column, row int, position Point, orientation Orientation) {
	triangle := newTriangle(orientation, t.config.TileEdgeLength, t.config.TileHeight)
	triangle.Position = position
	triangle.Column = column
	triangle.Row = row
	triangle.ID = len(t.triangles)

	t.index.put(triangle)
	t.triangles = append(t.triangles, triangle)

	if t.config.OnTriangleCreate != nil {
		t.config.OnTriangleCreate(triangle)
	}
}

// The config the tiling was built with, defaults filled in.
func (t *Tiling) Config() Config {
	c := t.config
	origin := *c.Origin
	c.Origin = &origin
	return c
}

func (t *Tiling) Origin() Point {
	return *t.config.Origin
}

func (t *Tiling) TileHeight() float64 {
	return t.config.TileHeight
}

func (t *Tiling) Indexer() Indexer {
	return t.indexer
}

// Direct lattice lookup. Nil if nothing was built at those indices.
func (t *Tiling) Triangle(column, row int) *Triangle {
	return t.index.Get(column, row)
}

// All tiles in creation order, so the slice index is the tile ID. The slice is
// shared; do not modify it.
func (t *Tiling) Triangles() []*Triangle {
	return t.triangles
}

func (t *Tiling) Len() int {
	return len(t.triangles)
}

// Column and row index ranges that were built.
func (t *Tiling) Bounds() (minColumn, maxColumn, minRow, maxRow int) {
	return t.index.Bounds()
}
