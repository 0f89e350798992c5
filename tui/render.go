package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// contentHeaderRows is the number of rows above the first content line.
const contentHeaderRows = 2

var statusStyle = lipgloss.NewStyle().Faint(true)

// View implements tea.Model. The menu and content are rendered side by
// side and the window is cut at the live scroll offset, so the offset
// shifts the whole container rather than either panel.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	h := m.drawer.Content().Measured().Height
	menuWidth := m.drawer.MenuWidth()

	menu := m.renderMenu(menuWidth, h)
	content := m.renderContent(m.width, h)
	canvas := lipgloss.JoinHorizontal(lipgloss.Top, menu, content)

	start := menuWidth + m.drawer.ScrollOffset()
	lines := strings.Split(canvas, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, start, start+m.width)
	}

	return strings.Join(lines, "\n") + "\n" + m.renderStatus()
}

func (m *Model) renderMenu(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.menu.Title))
	b.WriteString("\n")
	for i, item := range m.menu.Items {
		b.WriteString("\n")
		if i == m.menu.Selected {
			b.WriteString("> " + item)
		} else {
			b.WriteString("  " + item)
		}
	}
	return block(m.menuStyle, b.String(), width, height)
}

func (m *Model) renderContent(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.content.Title))
	b.WriteString("\n")
	for _, line := range m.content.VisibleLines() {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return block(m.contentStyle, b.String(), width, height)
}

func (m *Model) renderStatus() string {
	status := fmt.Sprintf(" %s  offset %d  [space] toggle  [j/k] scroll  [q] quit",
		m.drawer.CurrentState(), m.drawer.ScrollOffset())
	if m.status != "" {
		status += "  " + m.status
	}
	return statusStyle.Render(ansi.Truncate(status, m.width, ""))
}

// block renders text in a box of exactly width x height cells.
func block(style lipgloss.Style, text string, width, height int) string {
	lines := strings.Split(text, "\n")
	inner := width - style.GetHorizontalFrameSize()
	if inner < 0 {
		inner = 0
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner, "")
	}
	return style.
		Width(width).MaxWidth(width).
		Height(height).MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
