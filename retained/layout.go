package retained

// ============================================================================
// Geometry
// ============================================================================

// Size is a measured width and height.
type Size struct {
	Width, Height int
}

// Rect is an edge-based box: Left and Top inclusive, Right and Bottom
// exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Contains checks if a point is within the rect.
func (r Rect) Contains(x, y float32) bool {
	return x >= float32(r.Left) && x < float32(r.Right) &&
		y >= float32(r.Top) && y < float32(r.Bottom)
}

// Offset returns the rect shifted horizontally by dx.
func (r Rect) Offset(dx int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top, Right: r.Right + dx, Bottom: r.Bottom}
}

// ============================================================================
// Panels
// ============================================================================

// Panel is one of the drawer's two child slots.
type Panel struct {
	// DeclaredWidth is the width the panel asks for. Zero or negative
	// matches the container width.
	DeclaredWidth int

	// Responder receives pointer events that land on the panel. Optional.
	Responder Responder

	measured Size
	frame    Rect
}

// NewPanel creates a panel with the given declared width.
func NewPanel(declaredWidth int, responder Responder) *Panel {
	return &Panel{DeclaredWidth: declaredWidth, Responder: responder}
}

// Measured returns the size assigned by the last Measure.
func (p *Panel) Measured() Size { return p.measured }

// Frame returns the position assigned by the last Layout, in container
// coordinates before the scroll offset is applied.
func (p *Panel) Frame() Rect { return p.frame }

// ============================================================================
// Layout Adapter
// ============================================================================

// Measure sizes both children for a container of the given size. The menu
// keeps its declared width at the container height; the content fills the
// container.
func (d *Drawer) Measure(containerWidth, containerHeight int) {
	menuWidth := d.menu.DeclaredWidth
	if menuWidth <= 0 {
		menuWidth = containerWidth
	}
	d.menu.measured = Size{Width: menuWidth, Height: containerHeight}
	d.content.measured = Size{Width: containerWidth, Height: containerHeight}

	// A settled open drawer follows its new width; anything else is
	// clamped into the new bounds.
	if d.state == StateMenu && d.scroller.IsFinished() && d.session == nil {
		d.setOffset(-menuWidth)
	} else {
		d.setOffset(d.offset)
	}
}

// Layout positions both children. The menu sits immediately left of the
// visible origin; the content fills the container. The scroll offset is
// applied at render time, not here.
func (d *Drawer) Layout(left, top, right, bottom int) {
	d.container = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
	d.menu.frame = Rect{Left: -d.menu.measured.Width, Top: top, Right: 0, Bottom: bottom}
	d.content.frame = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Container returns the bounds from the last Layout.
func (d *Drawer) Container() Rect { return d.container }

// Menu returns the left panel.
func (d *Drawer) Menu() *Panel { return d.menu }

// Content returns the main panel.
func (d *Drawer) Content() *Panel { return d.content }

// VisibleFrame returns where p is drawn with the live scroll offset
// applied. A negative offset shifts everything right.
func (d *Drawer) VisibleFrame(p *Panel) Rect {
	return p.frame.Offset(-d.offset)
}
