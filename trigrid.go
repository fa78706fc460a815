// A regular triangle lattice for pointer-driven 2D surfaces.
//
// This package tiles a rectangular viewport with alternating up and down
// triangles, finds the tile under any point in constant time, and turns a
// stream of pointer positions into enter, move and leave events per tile.
// Painting is left to whatever implements lattice.Surface (see the render
// package for PNG and SVG).
package trigrid

import "github.com/osuushi/trigrid/lattice"

type Point = lattice.Point
type Triangle = lattice.Triangle
type Config = lattice.Config
type Tiling = lattice.Tiling
type Dispatcher = lattice.Dispatcher
type Event = lattice.Event
type EventType = lattice.EventType
type Listener = lattice.Listener

const (
	Enter = lattice.Enter
	Move  = lattice.Move
	Leave = lattice.Leave
)

// Build a tiling. Zero config fields take their defaults: 32px equilateral
// tiles over an 800x600 viewport, centered, with the first tile pointing down.
func New(config Config) (*Tiling, error) {
	return lattice.New(config)
}

// Build a tiling along with a dispatcher for pointer events on it.
func NewInteractive(config Config) (*Tiling, *Dispatcher, error) {
	tiling, err := lattice.New(config)
	if err != nil {
		return nil, nil, err
	}
	return tiling, lattice.NewDispatcher(tiling), nil
}
