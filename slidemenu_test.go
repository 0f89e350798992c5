package slidemenu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, _, _, err := New(nil, NewPanel(0, nil))
	assert.ErrorIs(t, err, ErrMissingPanel)

	d, dispatcher, loop, err := New(NewPanel(200, nil), NewPanel(0, nil))
	require.NoError(t, err)
	d.Measure(400, 600)
	d.Layout(0, 0, 400, 600)

	start := time.Now()
	dispatcher.DispatchDown(10, 10, start)
	dispatcher.DispatchMove(150, 12, start)
	dispatcher.DispatchUp(150, 12, start)
	assert.Equal(t, StateMenu, d.CurrentState())
	require.True(t, loop.Pending())

	loop.Settle(start, 16*time.Millisecond, 0, nil)
	assert.Equal(t, -200, d.ScrollOffset())
}
