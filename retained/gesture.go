package retained

import "math"

// DefaultTouchSlop is the horizontal distance a pointer must travel before
// the drawer claims the gesture.
const DefaultTouchSlop float32 = 5

// DragSession holds the state of one pointer interaction. It is created on
// pointer down and discarded on up or cancel; nothing carries over to the
// next gesture.
type DragSession struct {
	DownX, DownY float32

	// LastX is the anchor for the next incremental move delta.
	LastX float32

	// Locked is set once the drawer owns the gesture. It never clears
	// within a session.
	Locked bool
}

// GestureTracker decides whether a gesture belongs to the drawer
// (horizontal intent) or to descendant content (vertical intent).
type GestureTracker struct {
	TouchSlop float32
}

// InterceptStart opens a session at the down point.
func (g GestureTracker) InterceptStart(x, y float32) *DragSession {
	return &DragSession{DownX: x, DownY: y, LastX: x}
}

// InterceptMove reports whether the session should be intercepted at
// (x, y). Horizontal travel must be strictly greater than vertical travel
// and strictly greater than the slop. A locked session stays intercepted.
func (g GestureTracker) InterceptMove(s *DragSession, x, y float32) bool {
	if s == nil {
		return false
	}
	if s.Locked {
		return true
	}

	xOffset := math.Abs(float64(x - s.DownX))
	yOffset := math.Abs(float64(y - s.DownY))
	if xOffset > yOffset && xOffset > float64(g.TouchSlop) {
		s.Locked = true
		return true
	}
	return false
}
