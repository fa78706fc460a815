package main

import (
	"bufio"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/trigrid/dbg"
	"github.com/osuushi/trigrid/lattice"
	"github.com/osuushi/trigrid/palette"
	"github.com/osuushi/trigrid/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Builds a tiling, replays a pointer path over it, logs the tile events and
// writes the result as PNG or SVG. Tiles the pointer passed over are painted
// in the highlight color.
//
// The pointer path is read as newline separated points in the form "x y", in
// viewport pixels. An empty line means the pointer left the surface.
var (
	app = kingpin.New("trigrid", "Render a triangle lattice and replay pointer paths over it.")

	configFile = app.Flag("config", "YAML tiling config.").ExistingFile()
	tileEdge   = app.Flag("tile-edge", "Tile edge length in pixels.").Float64()
	tileHeight = app.Flag("tile-height", "Tile height in pixels (default: equilateral).").Float64()
	width      = app.Flag("width", "Viewport width in pixels.").Float64()
	height     = app.Flag("height", "Viewport height in pixels.").Float64()
	origin     = app.Flag("origin", "Lattice origin as \"x,y\" (default: viewport center).").String()
	up         = app.Flag("up", "Make the tile at the origin point up.").Bool()

	pathFile  = app.Flag("path", "Pointer path file, or - for stdin.").String()
	out       = app.Flag("out", "Output file, .png or .svg.").Default("trigrid.png").String()
	seed      = app.Flag("seed", "Seed for the tile tint.").Default("1").Int64()
	highlight = app.Flag("highlight", "Color for tiles the pointer passed over.").Default("rgb(128,0,128)").String()
	fade      = app.Flag("fade", "How far highlighted tiles have faded back to their own color, 0 to 1.").Default("0").Float64()
	preview   = app.Flag("imgcat", "Print the PNG inline to the terminal.").Bool()
	noColor   = app.Flag("no-color", "Disable colored log output.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log.SetFlags(0)
	dbg.SetColors(!*noColor)

	if err := run(); err != nil {
		log.Fatalf("trigrid: %v", err)
	}
}

func run() error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	highlightColor, err := palette.Parse(*highlight)
	if err != nil {
		return err
	}

	// The hook needs the final origin and viewport, so resolve defaults first
	config = config.WithDefaults()
	rng := rand.New(rand.NewSource(*seed))
	config.OnTriangleCreate = palette.DistanceShade(*config.Origin, config.ViewportWidth, config.ViewportHeight, rng)

	tiling, err := lattice.New(config)
	if err != nil {
		return errors.Wrap(err, "building tiling")
	}
	log.Printf("built %d tiles", tiling.Len())

	if *pathFile != "" {
		visited, err := replay(tiling, *pathFile)
		if err != nil {
			return err
		}
		for _, t := range visited {
			t.Color = highlightColor.Interpolate(palette.FromColor(t.Color), *fade)
		}
	}

	return write(tiling, *out)
}

func loadConfig() (lattice.Config, error) {
	var config lattice.Config
	if *configFile != "" {
		var err error
		config, err = lattice.LoadConfigFile(*configFile)
		if err != nil {
			return config, err
		}
	}

	// Flags override the file. Zero means the flag was not given.
	if *tileEdge != 0 {
		config.TileEdgeLength = *tileEdge
	}
	if *tileHeight != 0 {
		config.TileHeight = *tileHeight
	}
	if *width != 0 {
		config.ViewportWidth = *width
	}
	if *height != 0 {
		config.ViewportHeight = *height
	}
	if *up {
		config.FirstTriangleUp = true
	}
	if *origin != "" {
		parts := strings.Split(*origin, ",")
		if len(parts) != 2 {
			return config, errors.Errorf("invalid origin %q, want \"x,y\"", *origin)
		}
		p, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return config, errors.Wrapf(err, "invalid origin %q", *origin)
		}
		config.Origin = &p
	}
	return config, nil
}

// Run the pointer path through a dispatcher, logging every event. Returns the
// tiles the pointer entered, in the order it first entered them.
func replay(tiling *lattice.Tiling, path string) ([]*lattice.Triangle, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening pointer path %q", path)
		}
		defer f.Close()
		in = f
	}

	var visited []*lattice.Triangle
	seen := map[int]bool{}

	dispatcher := lattice.NewDispatcher(tiling)
	logEvent := func(event lattice.Event) {
		log.Printf("%-9s %s at %s", event.Type, dbg.Describe(event.Triangle), event.Position)
	}
	dispatcher.AddListener(lattice.Enter, logEvent)
	dispatcher.AddListener(lattice.Move, logEvent)
	dispatcher.AddListener(lattice.Leave, logEvent)
	dispatcher.AddListener(lattice.Enter, func(event lattice.Event) {
		if !seen[event.Triangle.ID] {
			seen[event.Triangle.ID] = true
			visited = append(visited, event.Triangle)
		}
	})

	points, err := readPath(in)
	if err != nil {
		return nil, err
	}
	origin := tiling.Origin()
	var last lattice.Point
	for _, p := range points {
		// A nil entry is the pointer leaving the surface
		if p == nil {
			dispatcher.Out(last)
			continue
		}
		last = p.Sub(origin)
		dispatcher.Move(last)
	}
	dispatcher.Out(last)
	return visited, nil
}

func readPath(in io.Reader) ([]*lattice.Point, error) {
	var points []*lattice.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			// Collapse runs of blank lines into one exit
			if len(points) > 0 && points[len(points)-1] != nil {
				points = append(points, nil)
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want \"x y\", got %q", lineNumber, line)
		}
		p, err := parsePoint(fields[0], fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, &p)
	}
	return points, errors.Wrap(scanner.Err(), "reading pointer path")
}

func parsePoint(xs, ys string) (lattice.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return lattice.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return lattice.Point{}, err
	}
	return lattice.Point{X: x, Y: y}, nil
}

func write(tiling *lattice.Tiling, path string) error {
	background := palette.RGB(0, 0, 0)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating %q", path)
		}
		if err := render.WriteSVG(tiling, f, background); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "closing %q", path)
		}
		log.Printf("wrote %s", path)
		return nil

	case ".png":
		if err := render.SavePNG(tiling, path, background); err != nil {
			return err
		}
		if *preview {
			render.Preview(path, os.Stdout)
		}
		log.Printf("wrote %s", path)
		return nil
	}
	return errors.Errorf("unsupported output %q, want .png or .svg", path)
}
