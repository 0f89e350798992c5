package retained

import "time"

// DefaultFrameInterval is the frame spacing used when the host has no
// display clock of its own.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameLoop turns redraw requests into per-frame ComputeScroll calls.
// The host owns the scheduling primitive (a tick message, a timer, a
// virtual clock) and calls Frame whenever Pending is true.
type FrameLoop struct {
	drawer  *Drawer
	pending bool
	frames  uint64
}

// NewFrameLoop creates a loop and installs it as the drawer's invalidator.
func NewFrameLoop(d *Drawer) *FrameLoop {
	l := &FrameLoop{drawer: d}
	d.SetInvalidator(l)
	return l
}

// Invalidate marks a frame as pending.
func (l *FrameLoop) Invalidate() {
	l.pending = true
}

// Pending reports whether the host should schedule a frame.
func (l *FrameLoop) Pending() bool {
	return l.pending
}

// Frames returns how many frames have run.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}

// Frame runs one animation step at now. Returns true if another frame is
// needed.
func (l *FrameLoop) Frame(now time.Time) bool {
	if !l.pending {
		return false
	}
	l.pending = false
	l.frames++
	l.drawer.ComputeScroll(now)
	return l.pending
}

// Settle runs frames at a fixed interval starting at start until nothing
// is pending or maxFrames have run (maxFrames <= 0 means no limit).
// onFrame, if set, is called after each frame. Returns the time of the
// last frame.
func (l *FrameLoop) Settle(start time.Time, interval time.Duration, maxFrames int, onFrame func(now time.Time)) time.Time {
	now := start
	for n := 0; l.pending && (maxFrames <= 0 || n < maxFrames); n++ {
		now = now.Add(interval)
		l.Frame(now)
		if onFrame != nil {
			onFrame(now)
		}
	}
	return now
}
