package retained

import "time"

// ============================================================================
// Scroll Simulator
// ============================================================================

// DefaultDurationPerPixel is the transition time spent per pixel of travel.
const DefaultDurationPerPixel = 2 * time.Millisecond

// TransitionDuration returns how long a transition over dx pixels runs.
// Duration scales linearly with distance; zero distance is zero duration.
func TransitionDuration(dx int, perPixel time.Duration) time.Duration {
	if dx < 0 {
		dx = -dx
	}
	return time.Duration(dx) * perPixel
}

// Scroller produces the intermediate offsets of a time-based transition.
// It holds no timer of its own: the host calls Step once per frame with
// the frame time.
//
// The zero value is not usable; create one with NewScroller.
type Scroller struct {
	easing EasingFunc

	start   int
	delta   int
	final   int
	current int

	startTime time.Time
	duration  time.Duration
	finished  bool
}

// NewScroller creates an idle scroller. A nil easing uses EaseViscousFluid.
func NewScroller(easing EasingFunc) *Scroller {
	if easing == nil {
		easing = EaseViscousFluid
	}
	return &Scroller{easing: easing, finished: true}
}

// SetEasing replaces the interpolation used by subsequent steps.
func (s *Scroller) SetEasing(easing EasingFunc) {
	if easing == nil {
		easing = EaseViscousFluid
	}
	s.easing = easing
}

// StartScroll begins a transition from start by dx over duration.
// Any transition in flight is replaced. A zero duration finishes at once
// at start+dx.
func (s *Scroller) StartScroll(now time.Time, start, dx int, duration time.Duration) {
	s.start = start
	s.delta = dx
	s.final = start + dx
	s.current = start
	s.startTime = now
	s.duration = duration
	s.finished = false

	if duration <= 0 {
		s.current = s.final
		s.finished = true
	}
}

// Step advances the transition to now and returns the offset to apply.
// done is true once elapsed time has reached the duration, at which point
// offset is exactly the final offset. Steps after completion return the
// last offset and done.
func (s *Scroller) Step(now time.Time) (offset int, done bool) {
	if s.finished {
		return s.current, true
	}

	elapsed := now.Sub(s.startTime)
	if elapsed >= s.duration {
		s.current = s.final
		s.finished = true
		return s.current, true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	t := float64(elapsed) / float64(s.duration)
	p := s.easing(t)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	// Truncation rounds toward the start, so the final offset is only
	// reported on completion.
	s.current = s.start + int(float64(s.delta)*p)
	return s.current, false
}

// ForceFinished stops the transition where it currently is.
func (s *Scroller) ForceFinished() {
	s.finished = true
}

// IsFinished reports whether no transition is in flight.
func (s *Scroller) IsFinished() bool {
	return s.finished
}

// CurrentOffset returns the offset produced by the most recent step.
func (s *Scroller) CurrentOffset() int {
	return s.current
}

// FinalOffset returns where the current (or last) transition ends.
func (s *Scroller) FinalOffset() int {
	return s.final
}

// Duration returns the total duration of the current (or last) transition.
func (s *Scroller) Duration() time.Duration {
	return s.duration
}
