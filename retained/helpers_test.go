package retained

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

type testRig struct {
	drawer *Drawer
	loop   *FrameLoop
	clock  *fakeClock
}

// newTestRig builds a measured and laid out drawer in a 480x800 container.
func newTestRig(t *testing.T, menuWidth int, content Responder, opts ...Option) *testRig {
	t.Helper()

	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	d, err := NewDrawer(NewPanel(menuWidth, nil), NewPanel(0, content), opts...)
	require.NoError(t, err)

	loop := NewFrameLoop(d)
	d.Measure(480, 800)
	d.Layout(0, 0, 480, 800)
	return &testRig{drawer: d, loop: loop, clock: clock}
}

// frame advances the clock by one frame and runs it.
func (r *testRig) frame() bool {
	return r.loop.Frame(r.clock.Advance(DefaultFrameInterval))
}

// settle runs frames until the loop goes idle, returning each offset.
func (r *testRig) settle(t *testing.T) []int {
	t.Helper()
	var offsets []int
	for i := 0; r.loop.Pending(); i++ {
		require.Less(t, i, 1000, "animation never finished")
		r.frame()
		offsets = append(offsets, r.drawer.ScrollOffset())
	}
	return offsets
}

// dragTo performs down at fromX, one move to toX.
func (r *testRig) dragTo(fromX, toX float32) {
	r.drawer.HandleDown(fromX)
	r.drawer.HandleMove(toX)
}
