// Package slidemenu is a sliding drawer: a hidden menu panel on the left
// revealed by dragging the content panel horizontally, settling to fully
// open or fully closed with a timed transition.
//
// The implementation lives in the retained package; this package
// re-exports the pieces a host needs.
package slidemenu

import "github.com/agiangrant/slidemenu/retained"

// Drawer is the two-panel state machine.
// This is a re-export of retained.Drawer for consumer convenience.
type Drawer = retained.Drawer

// Panel is one of the drawer's two slots.
type Panel = retained.Panel

// State is the settled logical state of a drawer.
type State = retained.State

// Option configures a Drawer.
type Option = retained.Option

// Responder receives pointer events delivered to a panel.
type Responder = retained.Responder

// PointerEvent is a host pointer event.
type PointerEvent = retained.PointerEvent

// EventDispatcher routes host pointer events to a drawer and its panels.
type EventDispatcher = retained.EventDispatcher

// FrameLoop drives drawer transitions from the host's frame clock.
type FrameLoop = retained.FrameLoop

const (
	// StateMain - content visible, menu hidden.
	StateMain = retained.StateMain
	// StateMenu - menu revealed.
	StateMenu = retained.StateMenu
)

// ErrMissingPanel is returned by New when either panel is nil.
var ErrMissingPanel = retained.ErrMissingPanel

// New creates a drawer over menu and content and wires it to a frame loop
// and an event dispatcher. The host feeds pointer events to the
// dispatcher, calls Measure and Layout when its container changes, and
// calls loop.Frame whenever loop.Pending reports true.
func New(menu, content *Panel, opts ...Option) (*Drawer, *EventDispatcher, *FrameLoop, error) {
	d, err := retained.NewDrawer(menu, content, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return d, retained.NewEventDispatcher(d), retained.NewFrameLoop(d), nil
}

// NewPanel creates a panel. A declared width <= 0 matches the container.
func NewPanel(declaredWidth int, responder Responder) *Panel {
	return retained.NewPanel(declaredWidth, responder)
}
