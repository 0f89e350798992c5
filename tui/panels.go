package tui

import "github.com/agiangrant/slidemenu/retained"

// menuHeaderRows is the number of rows above the first menu item.
const menuHeaderRows = 2

// MenuList is the drawer's left panel: a title and a list of items. A tap
// (press and release on the same row) selects an item.
type MenuList struct {
	Title    string
	Items    []string
	Selected int

	// OnSelect is called with the index of a tapped item.
	OnSelect func(index int)

	pressed  bool
	pressRow int
}

// HandlePointer implements retained.Responder.
func (l *MenuList) HandlePointer(e *retained.PointerEvent) bool {
	switch e.Type {
	case retained.EventPointerDown:
		l.pressed = true
		l.pressRow = l.rowAt(e.LocalY)
	case retained.EventPointerUp:
		if l.pressed {
			row := l.rowAt(e.LocalY)
			if row == l.pressRow && row >= 0 && row < len(l.Items) {
				l.Selected = row
				if l.OnSelect != nil {
					l.OnSelect(row)
				}
			}
		}
		l.pressed = false
	case retained.EventPointerCancel:
		l.pressed = false
	}
	return true
}

func (l *MenuList) rowAt(localY float32) int {
	return int(localY) - menuHeaderRows
}

// ContentList is the main panel: a vertically scrolling list of lines.
// Vertical drags scroll it; horizontal drags are taken by the drawer.
type ContentList struct {
	Title string
	Lines []string

	top      int
	visible  int
	dragging bool
	lastY    float32
}

// HandlePointer implements retained.Responder.
func (c *ContentList) HandlePointer(e *retained.PointerEvent) bool {
	switch e.Type {
	case retained.EventPointerDown:
		c.dragging = true
		c.lastY = e.Y
	case retained.EventPointerMove:
		if !c.dragging {
			return false
		}
		if delta := int(c.lastY - e.Y); delta != 0 {
			c.ScrollBy(delta)
			c.lastY = e.Y
		}
	case retained.EventPointerUp, retained.EventPointerCancel:
		c.dragging = false
	}
	return true
}

// SetVisibleRows sets how many lines fit in the panel.
func (c *ContentList) SetVisibleRows(n int) {
	c.visible = n
	c.ScrollBy(0)
}

// ScrollBy moves the first visible line by n, clamped to the list.
func (c *ContentList) ScrollBy(n int) {
	maxTop := len(c.Lines) - c.visible
	if maxTop < 0 {
		maxTop = 0
	}
	c.top += n
	if c.top > maxTop {
		c.top = maxTop
	}
	if c.top < 0 {
		c.top = 0
	}
}

// Top returns the index of the first visible line.
func (c *ContentList) Top() int { return c.top }

// VisibleLines returns the lines currently in view.
func (c *ContentList) VisibleLines() []string {
	end := c.top + c.visible
	if end > len(c.Lines) {
		end = len(c.Lines)
	}
	if c.top >= end {
		return nil
	}
	return c.Lines[c.top:end]
}
