package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGestureTrackerInterceptMove(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		want   bool
	}{
		{"horizontal dominant", 10, 2, true},
		{"horizontal leftward", -10, 2, true},
		{"below slop", 4, 1, false},
		{"exactly slop", 5, 0, false},
		{"vertical dominant", 3, 6, false},
		{"equal displacement", 8, 8, false},
		{"no movement", 0, 0, false},
	}

	g := GestureTracker{TouchSlop: DefaultTouchSlop}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := g.InterceptStart(100, 200)
			assert.Equal(t, tt.want, g.InterceptMove(s, 100+tt.dx, 200+tt.dy))
			assert.Equal(t, tt.want, s.Locked)
		})
	}
}

func TestGestureTrackerDecisionIsFinal(t *testing.T) {
	g := GestureTracker{TouchSlop: DefaultTouchSlop}
	s := g.InterceptStart(0, 0)

	assert.True(t, g.InterceptMove(s, 20, 0))
	// Back at the origin, then vertical: still the drawer's gesture.
	assert.True(t, g.InterceptMove(s, 0, 0))
	assert.True(t, g.InterceptMove(s, 0, 50))
}

func TestGestureTrackerMeasuresFromDownPoint(t *testing.T) {
	g := GestureTracker{TouchSlop: DefaultTouchSlop}
	s := g.InterceptStart(50, 50)

	// Small steps that only exceed the slop cumulatively.
	assert.False(t, g.InterceptMove(s, 53, 50))
	assert.False(t, g.InterceptMove(s, 55, 50))
	assert.True(t, g.InterceptMove(s, 56, 50))
}

func TestGestureTrackerCustomSlop(t *testing.T) {
	g := GestureTracker{TouchSlop: 0}
	s := g.InterceptStart(0, 0)
	assert.True(t, g.InterceptMove(s, 1, 0))

	assert.False(t, g.InterceptMove(nil, 100, 0))
}

func TestInterceptStartSeedsAnchor(t *testing.T) {
	s := GestureTracker{}.InterceptStart(12, 34)
	assert.Equal(t, float32(12), s.DownX)
	assert.Equal(t, float32(34), s.DownY)
	assert.Equal(t, float32(12), s.LastX)
	assert.False(t, s.Locked)
}
