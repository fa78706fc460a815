package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trigrid/lattice"
)

// Tile IDs are hard to tell apart in a long event log. This hands out a
// random readable name per ID, lazily, and remembers it for the life of the
// process. The memo is never pruned, which is fine for a debugging aid.

var (
	memo = make(map[int]string)
	au   = aurora.NewAurora(true)
)

func init() {
	// Names are handed out in order of demand, so they mean nothing across
	// runs. Making them nondeterministic keeps anyone from relying on them.
	petname.NonDeterministicMode()
}

// Turn terminal colors on or off for TriangleName.
func SetColors(enabled bool) {
	au = aurora.NewAurora(enabled)
}

func Name(id int) string {
	if r, ok := memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[id] = r
	return r
}

// The tile's readable name, tinted by orientation: cyan for up, magenta for
// down.
func TriangleName(t *lattice.Triangle) string {
	if t == nil {
		return "Ø"
	}
	name := Name(t.ID)
	if t.Orientation() == lattice.Up {
		return au.Cyan(name).String()
	}
	return au.Magenta(name).String()
}

// A one line description for logs: name, indices and orientation.
func Describe(t *lattice.Triangle) string {
	if t == nil {
		return TriangleName(t)
	}
	return fmt.Sprintf("%s #%d (%d,%d) %s", TriangleName(t), t.ID, t.Column, t.Row, t.Orientation())
}
