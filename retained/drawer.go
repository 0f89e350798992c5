package retained

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrMissingPanel is returned when a drawer is built without both panels.
var ErrMissingPanel = errors.New("drawer requires a menu panel and a content panel")

// State is the settled logical state of the drawer.
type State uint8

const (
	// StateMain - content visible, menu hidden.
	StateMain State = iota
	// StateMenu - menu revealed.
	StateMenu
)

func (s State) String() string {
	if s == StateMenu {
		return "menu"
	}
	return "main"
}

// ParseState parses "main" or "menu".
func ParseState(name string) (State, error) {
	switch name {
	case "main", "":
		return StateMain, nil
	case "menu":
		return StateMenu, nil
	default:
		return StateMain, fmt.Errorf("unknown drawer state %q", name)
	}
}

// Invalidator schedules a redraw. The host answers by calling
// Drawer.ComputeScroll on its next frame.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to the Invalidator interface.
type InvalidatorFunc func()

// Invalidate calls f().
func (f InvalidatorFunc) Invalidate() { f() }

// Option configures a Drawer.
type Option func(*Drawer)

// WithTouchSlop sets the horizontal distance required before intercepting.
func WithTouchSlop(slop float32) Option {
	return func(d *Drawer) { d.tracker.TouchSlop = slop }
}

// WithDurationPerPixel sets the transition time per pixel of travel.
func WithDurationPerPixel(perPixel time.Duration) Option {
	return func(d *Drawer) { d.perPixel = perPixel }
}

// WithEasing sets the transition interpolation.
func WithEasing(easing EasingFunc) Option {
	return func(d *Drawer) { d.scroller.SetEasing(easing) }
}

// WithClock sets the time source used to start transitions.
func WithClock(now func() time.Time) Option {
	return func(d *Drawer) { d.now = now }
}

// WithInvalidator sets the host's redraw hook.
func WithInvalidator(inv Invalidator) Option {
	return func(d *Drawer) { d.invalidator = inv }
}

// WithLogger sets the logger for state commits and transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Drawer) { d.logger = logger }
}

// WithInitialState sets the state the drawer settles in after the first
// Measure.
func WithInitialState(s State) Option {
	return func(d *Drawer) { d.state = s }
}

// WithStateListener registers fn to be called each time the drawer
// commits to a state.
func WithStateListener(fn func(State)) Option {
	return func(d *Drawer) { d.onState = fn }
}

// Drawer is the two-panel state machine: a hidden menu on the left
// revealed by dragging the content horizontally.
//
// All methods must be called from the host's single UI goroutine.
type Drawer struct {
	menu    *Panel
	content *Panel

	state  State
	offset int // [-menu width, 0]; 0 is closed

	container Rect

	session  *DragSession
	tracker  GestureTracker
	scroller *Scroller
	perPixel time.Duration

	now         func() time.Time
	invalidator Invalidator
	logger      *slog.Logger
	onState     func(State)
}

// NewDrawer creates a drawer over the two panels.
func NewDrawer(menu, content *Panel, opts ...Option) (*Drawer, error) {
	if menu == nil || content == nil {
		return nil, ErrMissingPanel
	}

	d := &Drawer{
		menu:     menu,
		content:  content,
		tracker:  GestureTracker{TouchSlop: DefaultTouchSlop},
		scroller: NewScroller(nil),
		perPixel: DefaultDurationPerPixel,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// SetInvalidator sets the host's redraw hook.
func (d *Drawer) SetInvalidator(inv Invalidator) {
	d.invalidator = inv
}

// CurrentState returns the last committed state. During a drag or a
// transition this can differ from what the offset suggests.
func (d *Drawer) CurrentState() State { return d.state }

// ScrollOffset returns the live horizontal offset.
func (d *Drawer) ScrollOffset() int { return d.offset }

// MenuWidth returns the measured menu width, which is the drawer's travel.
func (d *Drawer) MenuWidth() int { return d.menu.measured.Width }

// IsAnimating reports whether a transition is in flight.
func (d *Drawer) IsAnimating() bool { return !d.scroller.IsFinished() }

// IsDragging reports whether a pointer session is open.
func (d *Drawer) IsDragging() bool { return d.session != nil }

// TransitionDuration returns the duration of the current or last transition.
func (d *Drawer) TransitionDuration() time.Duration { return d.scroller.Duration() }

// ============================================================================
// Interception
// ============================================================================

// InterceptDown opens a new session at (x, y). Any previous session is
// discarded.
func (d *Drawer) InterceptDown(x, y float32) {
	d.session = d.tracker.InterceptStart(x, y)
}

// InterceptMove reports whether the drawer claims the gesture at (x, y).
// The first true result halts any transition so the pointer takes over
// from the current offset.
func (d *Drawer) InterceptMove(x, y float32) bool {
	if d.session == nil {
		return false
	}
	wasLocked := d.session.Locked
	if !d.tracker.InterceptMove(d.session, x, y) {
		return false
	}
	if !wasLocked {
		d.scroller.ForceFinished()
		d.logger.Debug("drawer intercepted gesture", "x", x, "y", y, "offset", d.offset)
	}
	return true
}

// EndIntercept discards the session without settling. Used when a
// descendant kept the gesture to the end.
func (d *Drawer) EndIntercept() {
	d.session = nil
}

// ============================================================================
// Touch Handling
// ============================================================================

// HandleDown starts (or adopts) the session with the drawer as owner.
func (d *Drawer) HandleDown(x float32) {
	if d.session == nil {
		d.session = &DragSession{DownX: x}
	}
	d.session.LastX = x
	d.session.Locked = true
	d.scroller.ForceFinished()
}

// HandleMove applies the incremental drag to x, clamped to the menu
// bounds. Each delta is relative to the previous move, not the down point.
// Returns true if the offset changed.
func (d *Drawer) HandleMove(x float32) bool {
	if d.session == nil {
		return false
	}

	delta := int(d.session.LastX - x)
	d.session.LastX = x

	before := d.offset
	d.setOffset(d.offset + delta)
	return d.offset != before
}

// HandleUp ends the session and settles to the nearest state. Offsets
// past the menu midpoint open the menu; the midpoint itself closes.
func (d *Drawer) HandleUp() {
	d.session = nil

	leftCenter := int(-float64(d.MenuWidth()) / 2.0)
	if d.offset < leftCenter {
		d.commit(StateMenu)
	} else {
		d.commit(StateMain)
	}
	d.updateCurrentContent()
}

// HandleCancel ends the session the same way as HandleUp.
func (d *Drawer) HandleCancel() {
	d.HandleUp()
}

// ============================================================================
// Programmatic API
// ============================================================================

// Open transitions to the menu state.
func (d *Drawer) Open() {
	d.commit(StateMenu)
	d.updateCurrentContent()
}

// Close transitions to the main state.
func (d *Drawer) Close() {
	d.commit(StateMain)
	d.updateCurrentContent()
}

// Toggle opens a closed drawer and closes an open one, judged by the
// committed state.
func (d *Drawer) Toggle() {
	if d.state == StateMain {
		d.Open()
	} else {
		d.Close()
	}
}

// ============================================================================
// Animation
// ============================================================================

// ComputeScroll advances an in-flight transition to now and applies the
// offset. It requests another frame while the transition is unfinished
// and returns true in that case. Calls with nothing in flight are no-ops.
func (d *Drawer) ComputeScroll(now time.Time) bool {
	if d.scroller.IsFinished() {
		return false
	}

	offset, done := d.scroller.Step(now)
	d.setOffset(offset)
	if done {
		d.logger.Debug("drawer transition finished", "offset", d.offset, "state", d.state)
		return false
	}
	d.invalidate()
	return true
}

// updateCurrentContent starts the transition toward the committed state
// from wherever the offset is now, replacing any transition in flight.
func (d *Drawer) updateCurrentContent() {
	start := d.offset
	target := 0
	if d.state == StateMenu {
		target = -d.MenuWidth()
	}

	dx := target - start
	duration := TransitionDuration(dx, d.perPixel)
	d.scroller.StartScroll(d.now(), start, dx, duration)
	d.logger.Debug("drawer transition started",
		"from", start, "to", target, "duration", duration)

	if d.scroller.IsFinished() {
		d.setOffset(d.scroller.FinalOffset())
		return
	}
	d.invalidate()
}

func (d *Drawer) commit(s State) {
	prev := d.state
	d.state = s
	d.logger.Debug("drawer state committed", "from", prev, "to", s)
	if d.onState != nil {
		d.onState(s)
	}
}

// setOffset is the single mutation point for the offset.
func (d *Drawer) setOffset(offset int) {
	d.offset = clamp(offset, -d.MenuWidth(), 0)
}

func (d *Drawer) invalidate() {
	if d.invalidator != nil {
		d.invalidator.Invalidate()
	}
}
