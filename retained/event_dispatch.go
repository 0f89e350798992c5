package retained

import "time"

// ============================================================================
// Event Dispatcher
// ============================================================================

// gestureOwner records who receives the rest of the current gesture.
type gestureOwner uint8

const (
	ownerNone gestureOwner = iota
	ownerPanel
	ownerDrawer
)

// EventDispatcher routes host pointer events to a drawer and its panels.
// Every event first passes through the drawer's interception check; a
// panel that consumed the down keeps receiving the gesture until the
// drawer claims it, at which point the panel gets a cancel.
type EventDispatcher struct {
	drawer *Drawer

	owner  gestureOwner
	target *Panel // Panel owning the gesture when owner == ownerPanel
}

// NewEventDispatcher creates a dispatcher for the given drawer.
func NewEventDispatcher(d *Drawer) *EventDispatcher {
	return &EventDispatcher{drawer: d}
}

// HitTest returns the panel drawn at (x, y), or nil. The content is
// drawn over the menu.
func (d *EventDispatcher) HitTest(x, y float32) *Panel {
	for _, p := range []*Panel{d.drawer.Content(), d.drawer.Menu()} {
		if d.drawer.VisibleFrame(p).Contains(x, y) {
			return p
		}
	}
	return nil
}

// DispatchDown handles pointer press. Returns true if a redraw is needed.
func (d *EventDispatcher) DispatchDown(x, y float32, at time.Time) bool {
	d.drawer.InterceptDown(x, y)

	if p := d.HitTest(x, y); p != nil && p.Responder != nil {
		if d.deliver(p, EventPointerDown, x, y, at) {
			d.owner = ownerPanel
			d.target = p
			return true
		}
	}

	d.owner = ownerDrawer
	d.target = nil
	d.drawer.HandleDown(x)
	return true
}

// DispatchMove handles pointer movement. Returns true if a redraw is
// needed.
func (d *EventDispatcher) DispatchMove(x, y float32, at time.Time) bool {
	switch d.owner {
	case ownerPanel:
		if d.drawer.InterceptMove(x, y) {
			d.deliverPhase(d.target, EventPointerCancel, PhaseIntercept, x, y, at)
			d.owner = ownerDrawer
			d.target = nil
			return true
		}
		return d.deliver(d.target, EventPointerMove, x, y, at)
	case ownerDrawer:
		return d.drawer.HandleMove(x)
	default:
		return false
	}
}

// DispatchUp handles pointer release. Returns true if a redraw is needed.
func (d *EventDispatcher) DispatchUp(x, y float32, at time.Time) bool {
	return d.finish(EventPointerUp, x, y, at)
}

// DispatchCancel handles a gesture aborted by the host.
func (d *EventDispatcher) DispatchCancel(x, y float32, at time.Time) bool {
	return d.finish(EventPointerCancel, x, y, at)
}

// Dispatch routes an event by type.
func (d *EventDispatcher) Dispatch(e *PointerEvent) bool {
	switch e.Type {
	case EventPointerDown:
		return d.DispatchDown(e.X, e.Y, e.Time)
	case EventPointerMove:
		return d.DispatchMove(e.X, e.Y, e.Time)
	case EventPointerUp:
		return d.DispatchUp(e.X, e.Y, e.Time)
	case EventPointerCancel:
		return d.DispatchCancel(e.X, e.Y, e.Time)
	default:
		return false
	}
}

// OwnedByDrawer reports whether the drawer owns the current gesture.
func (d *EventDispatcher) OwnedByDrawer() bool {
	return d.owner == ownerDrawer
}

func (d *EventDispatcher) finish(eventType EventType, x, y float32, at time.Time) bool {
	owner, target := d.owner, d.target
	d.owner = ownerNone
	d.target = nil

	switch owner {
	case ownerPanel:
		d.drawer.EndIntercept()
		return d.deliver(target, eventType, x, y, at)
	case ownerDrawer:
		if eventType == EventPointerCancel {
			d.drawer.HandleCancel()
		} else {
			d.drawer.HandleUp()
		}
		return true
	default:
		return false
	}
}

// deliver sends one event to a panel's responder in panel-local
// coordinates.
func (d *EventDispatcher) deliver(p *Panel, eventType EventType, x, y float32, at time.Time) bool {
	return d.deliverPhase(p, eventType, PhaseTarget, x, y, at)
}

// deliverPhase is deliver with an explicit phase. Cancels synthesized by
// the intercept pass carry PhaseIntercept.
func (d *EventDispatcher) deliverPhase(p *Panel, eventType EventType, phase EventPhase, x, y float32, at time.Time) bool {
	if p == nil || p.Responder == nil {
		return false
	}

	frame := d.drawer.VisibleFrame(p)
	e := NewPointerEvent(eventType, x, y, at)
	e.LocalX = x - float32(frame.Left)
	e.LocalY = y - float32(frame.Top)
	e.Phase = phase
	handled := p.Responder.HandlePointer(e)
	e.Release()
	return handled
}
