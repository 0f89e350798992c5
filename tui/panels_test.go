package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/slidemenu/retained"
)

func pointer(t retained.EventType, y float32) *retained.PointerEvent {
	e := retained.NewPointerEvent(t, 0, y, time.Time{})
	e.LocalY = y
	return e
}

func TestMenuListTap(t *testing.T) {
	var picked []int
	l := &MenuList{Items: []string{"a", "b", "c"}, OnSelect: func(i int) { picked = append(picked, i) }}

	assert.True(t, l.HandlePointer(pointer(retained.EventPointerDown, 3)))
	assert.True(t, l.HandlePointer(pointer(retained.EventPointerUp, 3)))
	assert.Equal(t, []int{1}, picked)
	assert.Equal(t, 1, l.Selected)

	// Press and release on different rows is not a tap.
	l.HandlePointer(pointer(retained.EventPointerDown, 2))
	l.HandlePointer(pointer(retained.EventPointerUp, 4))
	assert.Equal(t, []int{1}, picked)

	// Header rows and rows past the list select nothing.
	l.HandlePointer(pointer(retained.EventPointerDown, 0))
	l.HandlePointer(pointer(retained.EventPointerUp, 0))
	l.HandlePointer(pointer(retained.EventPointerDown, 9))
	l.HandlePointer(pointer(retained.EventPointerUp, 9))
	assert.Equal(t, []int{1}, picked)

	// A cancelled press never selects.
	l.HandlePointer(pointer(retained.EventPointerDown, 4))
	l.HandlePointer(pointer(retained.EventPointerCancel, 4))
	l.HandlePointer(pointer(retained.EventPointerUp, 4))
	assert.Equal(t, []int{1}, picked)
}

func TestContentListScroll(t *testing.T) {
	c := &ContentList{}
	for i := range 10 {
		c.Lines = append(c.Lines, fmt.Sprintf("line %d", i))
	}
	c.SetVisibleRows(4)

	assert.Equal(t, []string{"line 0", "line 1", "line 2", "line 3"}, c.VisibleLines())

	c.ScrollBy(3)
	assert.Equal(t, 3, c.Top())

	c.ScrollBy(100)
	assert.Equal(t, 6, c.Top())
	assert.Equal(t, []string{"line 6", "line 7", "line 8", "line 9"}, c.VisibleLines())

	c.ScrollBy(-100)
	assert.Equal(t, 0, c.Top())

	// Growing the viewport past the list pins to the top.
	c.ScrollBy(6)
	c.SetVisibleRows(20)
	assert.Equal(t, 0, c.Top())
	assert.Len(t, c.VisibleLines(), 10)
}

func TestContentListDrag(t *testing.T) {
	c := &ContentList{}
	for i := range 50 {
		c.Lines = append(c.Lines, fmt.Sprintf("line %d", i))
	}
	c.SetVisibleRows(10)

	// Moves before a down are declined.
	assert.False(t, c.HandlePointer(pointer(retained.EventPointerMove, 5)))

	c.HandlePointer(pointer(retained.EventPointerDown, 20))
	c.HandlePointer(pointer(retained.EventPointerMove, 12))
	assert.Equal(t, 8, c.Top())
	c.HandlePointer(pointer(retained.EventPointerMove, 15))
	assert.Equal(t, 5, c.Top())
	c.HandlePointer(pointer(retained.EventPointerCancel, 15))

	assert.False(t, c.HandlePointer(pointer(retained.EventPointerMove, 0)))
	assert.Equal(t, 5, c.Top())
}
