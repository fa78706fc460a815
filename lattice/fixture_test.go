package lattice

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// Pointer paths for tests are drawn as the first <polyline> of an SVG file,
// so they can be eyeballed in any viewer. This is not a real SVG parser; it
// reads the points attribute and nothing else. If anything is off, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Coordinates are in viewport pixels, the same space as Config.Origin.

//go:embed fixtures
var fixtures embed.FS

func LoadPathFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) == 0 {
		log.Fatalf("No polylines found in fixture %q", name)
	}
	if len(polylines) > 1 {
		log.Fatalf("More than one polyline found in fixture %q", name)
	}

	pointStrings := strings.Fields(polylines[0].Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// The tiling most tests use: 32px tiles at the top left corner of a 64x64
// viewport, first tile down.
func smallConfig() Config {
	return Config{
		TileEdgeLength:  32,
		ViewportWidth:   64,
		ViewportHeight:  64,
		Origin:          &Point{0, 0},
		FirstTriangleUp: false,
	}
}

// A tiling the pointer fixtures fit in.
func fixtureConfig() Config {
	return Config{
		TileEdgeLength: 24,
		ViewportWidth:  200,
		ViewportHeight: 160,
	}
}
