package retained

import (
	"sync"
	"time"
)

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota + 1
	EventPointerMove
	EventPointerUp
	EventPointerCancel
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "down"
	case EventPointerMove:
		return "move"
	case EventPointerUp:
		return "up"
	case EventPointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseEventType maps the names used by String back to event types.
// Returns false for unknown names.
func ParseEventType(name string) (EventType, bool) {
	switch name {
	case "down":
		return EventPointerDown, true
	case "move":
		return EventPointerMove, true
	case "up":
		return EventPointerUp, true
	case "cancel":
		return EventPointerCancel, true
	default:
		return 0, false
	}
}

// EventPhase indicates which pass of dispatch an event is in.
type EventPhase uint8

const (
	// PhaseIntercept runs on the container before normal delivery.
	// Descendants still see the down event, but lose the session as soon
	// as the container claims it.
	PhaseIntercept EventPhase = iota

	// PhaseTarget delivers the event to whoever owns the gesture.
	PhaseTarget
)

// ============================================================================
// Pointer Event
// ============================================================================

// PointerEvent is a single pointer sample from the host.
type PointerEvent struct {
	Type EventType

	// Container coordinates
	X, Y float32

	// Coordinates relative to the receiving panel's visible top-left
	LocalX, LocalY float32

	Time  time.Time
	Phase EventPhase
}

// NewPointerEvent creates a pointer event. Uses object pool since moves
// arrive at input rate.
func NewPointerEvent(eventType EventType, x, y float32, at time.Time) *PointerEvent {
	e := pointerEventPool.Get().(*PointerEvent)
	e.Type = eventType
	e.X = x
	e.Y = y
	e.LocalX = x
	e.LocalY = y
	e.Time = at
	e.Phase = PhaseTarget
	return e
}

// Release returns the event to the pool. Call when done processing.
func (e *PointerEvent) Release() {
	pointerEventPool.Put(e)
}

var pointerEventPool = sync.Pool{
	New: func() any {
		return &PointerEvent{}
	},
}

// ============================================================================
// Responder Interface
// ============================================================================

// Responder is implemented by panel content that wants pointer input of
// its own, such as a vertically scrolling list inside the main panel.
type Responder interface {
	// HandlePointer processes an event. Return true to consume it; a
	// consumed down makes the responder the gesture owner until the
	// container intercepts.
	HandlePointer(e *PointerEvent) bool
}

// ResponderFunc adapts a function to the Responder interface.
type ResponderFunc func(e *PointerEvent) bool

// HandlePointer calls f(e).
func (f ResponderFunc) HandlePointer(e *PointerEvent) bool { return f(e) }
