package lattice

type EventType string

// The event names listeners can register for.
const (
	Enter EventType = "mouseover"
	Move  EventType = "mousemove"
	Leave EventType = "mouseout"
)

type Event struct {
	Type     EventType
	Triangle *Triangle
	// Origin-relative pointer position that caused the event
	Position Point
}

type Listener func(Event)

// Dispatcher turns a stream of pointer positions into enter, move and leave
// events on tiles. It remembers the tile the pointer was last over and diffs
// against it on every move.
//
// Like the tiling itself, a Dispatcher belongs to whatever loop delivers the
// pointer events and is not safe for concurrent use.
type Dispatcher struct {
	tiling    *Tiling
	listeners map[EventType][]Listener
	active    *Triangle
}

func NewDispatcher(tiling *Tiling) *Dispatcher {
	return &Dispatcher{
		tiling: tiling,
		listeners: map[EventType][]Listener{
			Enter: nil,
			Move:  nil,
			Leave: nil,
		},
	}
}

// Register a listener. Listeners for the same event run in registration
// order. Returns false, and registers nothing, for an unknown event name or a
// nil listener.
func (d *Dispatcher) AddListener(eventType EventType, listener Listener) bool {
	listeners, ok := d.listeners[eventType]
	if !ok || listener == nil {
		return false
	}
	d.listeners[eventType] = append(listeners, listener)
	return true
}

// Handle the pointer moving to p (origin-relative). Returns the tile now under
// the pointer, which may be nil.
func (d *Dispatcher) Move(p Point) *Triangle {
	current := d.tiling.TriangleAt(p)
	previous := d.active
	d.active = current

	switch {
	case previous != nil && current != nil && previous.ID == current.ID:
		d.fire(Move, current, p)
	case previous != nil && current != nil:
		d.fire(Leave, previous, p)
		d.fire(Enter, current, p)
	case current != nil:
		d.fire(Enter, current, p)
	case previous != nil:
		d.fire(Leave, previous, p)
	}
	return current
}

// Handle the pointer leaving the surface altogether. The last known position
// is reported with the leave event, if there is one.
func (d *Dispatcher) Out(p Point) {
	if d.active == nil {
		return
	}
	previous := d.active
	d.active = nil
	d.fire(Leave, previous, p)
}

// The tile the pointer is currently over, or nil.
func (d *Dispatcher) Active() *Triangle {
	return d.active
}

func (d *Dispatcher) fire(eventType EventType, triangle *Triangle, p Point) {
	event := Event{Type: eventType, Triangle: triangle, Position: p}
	for _, listener := range d.listeners[eventType] {
		listener(event)
	}
}
