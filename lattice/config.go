package lattice

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTileEdgeLength = 32
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// Config describes a tiling. The zero value of each field means "use the
// default", so Config{} builds the standard 800x600 tiling with 32px tiles
// centered in the viewport.
type Config struct {
	TileEdgeLength float64 `yaml:"tile_edge_length"`
	// Zero means the altitude of an equilateral triangle with TileEdgeLength
	// sides. Anything else gives isosceles tiles.
	TileHeight     float64 `yaml:"tile_height"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	// Nil means the center of the viewport
	Origin          *Point `yaml:"origin"`
	FirstTriangleUp bool   `yaml:"first_triangle_up"`

	// Called once per tile, in creation order, right after the tile is stored.
	// This is where tiles get their initial color.
	OnTriangleCreate func(*Triangle) `yaml:"-"`
}

// Returns a copy with all defaults filled in. The origin is copied so that the
// tiling never shares it with the caller.
func (c Config) WithDefaults() Config {
	if c.TileEdgeLength == 0 {
		c.TileEdgeLength = DefaultTileEdgeLength
	}
	if c.TileHeight == 0 {
		c.TileHeight = EquilateralHeight(c.TileEdgeLength)
	}
	if c.ViewportWidth == 0 {
		c.ViewportWidth = DefaultViewportWidth
	}
	if c.ViewportHeight == 0 {
		c.ViewportHeight = DefaultViewportHeight
	}
	if c.Origin == nil {
		c.Origin = &Point{c.ViewportWidth / 2, c.ViewportHeight / 2}
	} else {
		origin := *c.Origin
		c.Origin = &origin
	}
	return c
}

func EquilateralHeight(edgeLength float64) float64 {
	return math.Sqrt(edgeLength*edgeLength - (edgeLength/2)*(edgeLength/2))
}

// Panics (via fatalf) if the config cannot produce a proper tiling. Anything
// that gets past this produces only non-degenerate tiles.
func (c Config) validate() {
	switch {
	case !(c.TileEdgeLength > 0) || math.IsInf(c.TileEdgeLength, 0):
		fatalf("tile edge length must be positive, got %v", c.TileEdgeLength)
	case !(c.TileHeight > 0) || math.IsInf(c.TileHeight, 0):
		fatalf("tile height must be positive, got %v", c.TileHeight)
	case !(c.ViewportWidth > 0) || math.IsInf(c.ViewportWidth, 0):
		fatalf("viewport width must be positive, got %v", c.ViewportWidth)
	case !(c.ViewportHeight > 0) || math.IsInf(c.ViewportHeight, 0):
		fatalf("viewport height must be positive, got %v", c.ViewportHeight)
	case c.Origin != nil && (math.IsNaN(c.Origin.X) || math.IsNaN(c.Origin.Y) ||
		math.IsInf(c.Origin.X, 0) || math.IsInf(c.Origin.Y, 0)):
		fatalf("origin must be finite, got %v", *c.Origin)
	}
}

// LoadConfig reads a YAML config. Unknown keys are an error, since a typo
// would otherwise silently fall back to a default.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding tiling config")
	}
	return c, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "opening config %q", path)
	}
	defer f.Close()
	return LoadConfig(f)
}
