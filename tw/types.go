package tw

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Style holds the utility properties a terminal panel can express.
// Nil fields are unset and do not override when merged.
type Style struct {
	// Colors (RGBA)
	TextColor       *uint32
	BackgroundColor *uint32

	// Spacing, in cells
	PaddingTop    *int
	PaddingRight  *int
	PaddingBottom *int
	PaddingLeft   *int

	// Typography
	Bold      *bool
	Italic    *bool
	Underline *bool
}

// ComputedStyles groups the styles of a class string by variant.
type ComputedStyles struct {
	Base Style
	Dark Style // dark: variant, layered over Base on dark terminals
}

// Resolve returns the effective style for the terminal background.
func (cs ComputedStyles) Resolve(darkMode bool) Style {
	s := cs.Base
	if darkMode {
		s.Merge(cs.Dark)
	}
	return s
}

// Merge copies every set field of p into s.
func (s *Style) Merge(p Style) {
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.PaddingTop != nil {
		s.PaddingTop = p.PaddingTop
	}
	if p.PaddingRight != nil {
		s.PaddingRight = p.PaddingRight
	}
	if p.PaddingBottom != nil {
		s.PaddingBottom = p.PaddingBottom
	}
	if p.PaddingLeft != nil {
		s.PaddingLeft = p.PaddingLeft
	}
	if p.Bold != nil {
		s.Bold = p.Bold
	}
	if p.Italic != nil {
		s.Italic = p.Italic
	}
	if p.Underline != nil {
		s.Underline = p.Underline
	}
}

// Lipgloss converts the style for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.TextColor != nil {
		ls = ls.Foreground(lipgloss.Color(HexColor(*s.TextColor)))
	}
	if s.BackgroundColor != nil {
		ls = ls.Background(lipgloss.Color(HexColor(*s.BackgroundColor)))
	}
	if s.PaddingTop != nil {
		ls = ls.PaddingTop(*s.PaddingTop)
	}
	if s.PaddingRight != nil {
		ls = ls.PaddingRight(*s.PaddingRight)
	}
	if s.PaddingBottom != nil {
		ls = ls.PaddingBottom(*s.PaddingBottom)
	}
	if s.PaddingLeft != nil {
		ls = ls.PaddingLeft(*s.PaddingLeft)
	}
	if s.Bold != nil {
		ls = ls.Bold(*s.Bold)
	}
	if s.Italic != nil {
		ls = ls.Italic(*s.Italic)
	}
	if s.Underline != nil {
		ls = ls.Underline(*s.Underline)
	}
	return ls
}

// HexColor formats an RGBA color as #rrggbb, dropping alpha.
func HexColor(c uint32) string {
	return fmt.Sprintf("#%02x%02x%02x", (c>>24)&0xFF, (c>>16)&0xFF, (c>>8)&0xFF)
}
