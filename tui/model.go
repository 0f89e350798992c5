package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/slidemenu/retained"
	"github.com/agiangrant/slidemenu/tw"
)

// Options configures the terminal drawer. One terminal cell is one unit
// of drawer geometry.
type Options struct {
	MenuWidth       int
	TouchSlop       float32
	DurationPerUnit time.Duration
	Easing          string
	FrameInterval   time.Duration
	InitialState    retained.State

	MenuTitle      string
	MenuItems      []string
	MenuClasses    string
	ContentClasses string
	ContentLines   int

	DarkMode bool

	// Clock overrides time.Now for transition start times.
	Clock func() time.Time
}

// DefaultOptions returns options tuned for terminal cells.
func DefaultOptions() Options {
	return Options{
		MenuWidth:       28,
		TouchSlop:       2,
		DurationPerUnit: 10 * time.Millisecond,
		Easing:          "viscous",
		FrameInterval:   retained.DefaultFrameInterval,
		InitialState:    retained.StateMain,
		MenuTitle:       "Menu",
		MenuItems:       []string{"Inbox", "Starred", "Sent", "Drafts", "Archive", "Settings"},
		MenuClasses:     "bg-slate-800 text-slate-100 px-1 dark:bg-slate-900",
		ContentClasses:  "bg-white text-gray-800 px-1 dark:bg-gray-800 dark:text-gray-100",
		ContentLines:    100,
		DarkMode:        true,
	}
}

// FrameMsg is sent when an animation frame is due.
type FrameMsg time.Time

// ConfigMsg replaces the running options, typically after the config
// file changed on disk. A non-nil Err reports a reload that failed before
// producing options; the running drawer is kept.
type ConfigMsg struct {
	Options Options
	Err     error
}

// Model is a bubbletea model hosting one drawer.
type Model struct {
	opts   Options
	logger *slog.Logger

	drawer     *retained.Drawer
	loop       *retained.FrameLoop
	dispatcher *retained.EventDispatcher

	menu    *MenuList
	content *ContentList

	menuStyle    lipgloss.Style
	contentStyle lipgloss.Style

	width, height int
	ticking       bool
	dragging      bool
	status        string
}

// New creates the model. A nil logger discards.
func New(opts Options, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		logger:  logger,
		menu:    &MenuList{},
		content: &ContentList{},
	}
	if err := m.apply(opts); err != nil {
		return nil, err
	}
	return m, nil
}

// Drawer exposes the hosted drawer.
func (m *Model) Drawer() *retained.Drawer { return m.drawer }

// Content exposes the main panel list.
func (m *Model) Content() *ContentList { return m.content }

// Menu exposes the menu list.
func (m *Model) Menu() *MenuList { return m.menu }

// Status returns the status line message.
func (m *Model) Status() string { return m.status }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.scheduleFrame()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.scheduleFrame()

	case FrameMsg:
		m.ticking = false
		m.loop.Frame(time.Time(msg))
		return m, m.scheduleFrame()

	case ConfigMsg:
		err := msg.Err
		if err == nil {
			err = m.apply(msg.Options)
		}
		if err != nil {
			m.logger.Warn("config rejected", "err", err)
			m.status = fmt.Sprintf("config rejected: %v", err)
			return m, nil
		}
		m.logger.Info("config applied", "menu_width", msg.Options.MenuWidth)
		m.status = "config reloaded"
		m.relayout()
		return m, m.scheduleFrame()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case " ", "tab":
		m.drawer.Toggle()
	case "o", "right":
		m.drawer.Open()
	case "c", "left", "esc":
		m.drawer.Close()
	case "j", "down":
		m.content.ScrollBy(1)
	case "k", "up":
		m.content.ScrollBy(-1)
	case "pgdown":
		m.content.ScrollBy(m.content.visible)
	case "pgup":
		m.content.ScrollBy(-m.content.visible)
	}
	return m.scheduleFrame()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := float32(msg.X), float32(msg.Y)
	now := m.now()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.dragging = true
			m.dispatcher.DispatchDown(x, y, now)
		case tea.MouseButtonWheelDown:
			m.content.ScrollBy(1)
		case tea.MouseButtonWheelUp:
			m.content.ScrollBy(-1)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.dispatcher.DispatchMove(x, y, now)
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.dispatcher.DispatchUp(x, y, now)
		}
	}
}

// scheduleFrame starts the tick chain if the drawer asked for a frame and
// no tick is outstanding.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.ticking || !m.loop.Pending() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// apply (re)builds the drawer from opts, keeping the committed state.
func (m *Model) apply(opts Options) error {
	easing := retained.EasingByName(opts.Easing)
	if easing == nil {
		return fmt.Errorf("unknown easing %q", opts.Easing)
	}
	if opts.MenuWidth <= 0 {
		return fmt.Errorf("menu width must be positive, got %d", opts.MenuWidth)
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = retained.DefaultFrameInterval
	}

	state := opts.InitialState
	if m.drawer != nil {
		state = m.drawer.CurrentState()
	}

	m.menu.Title = opts.MenuTitle
	m.menu.Items = opts.MenuItems
	if m.menu.Selected >= len(opts.MenuItems) {
		m.menu.Selected = 0
	}
	m.menu.OnSelect = m.selectItem
	m.content.Lines = contentLines(m.selectedTitle(opts.MenuItems), opts.ContentLines)
	m.content.Title = m.selectedTitle(opts.MenuItems)

	drawerOpts := []retained.Option{
		retained.WithTouchSlop(opts.TouchSlop),
		retained.WithDurationPerPixel(opts.DurationPerUnit),
		retained.WithEasing(easing),
		retained.WithInitialState(state),
		retained.WithLogger(m.logger),
		retained.WithStateListener(m.stateCommitted),
	}
	if opts.Clock != nil {
		drawerOpts = append(drawerOpts, retained.WithClock(opts.Clock))
	}

	drawer, err := retained.NewDrawer(
		retained.NewPanel(opts.MenuWidth, m.menu),
		retained.NewPanel(0, m.content),
		drawerOpts...,
	)
	if err != nil {
		return fmt.Errorf("build drawer: %w", err)
	}

	m.opts = opts
	m.drawer = drawer
	m.loop = retained.NewFrameLoop(drawer)
	m.dispatcher = retained.NewEventDispatcher(drawer)
	m.ticking = false
	m.dragging = false
	m.menuStyle = tw.ParseClasses(opts.MenuClasses).Resolve(opts.DarkMode).Lipgloss()
	m.contentStyle = tw.ParseClasses(opts.ContentClasses).Resolve(opts.DarkMode).Lipgloss()
	return nil
}

// relayout measures and lays out the drawer for the current window.
// The last row is the status bar.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	m.drawer.Measure(m.width, h)
	m.drawer.Layout(0, 0, m.width, h)
	m.content.SetVisibleRows(h - contentHeaderRows)
}

func (m *Model) selectItem(index int) {
	title := m.selectedTitle(m.menu.Items)
	m.logger.Debug("menu item selected", "index", index, "title", title)
	m.content.Title = title
	m.content.Lines = contentLines(title, m.opts.ContentLines)
	m.content.ScrollBy(-m.content.Top())
	m.drawer.Close()
}

func (m *Model) stateCommitted(s retained.State) {
	if s == retained.StateMenu {
		m.status = "menu opened"
	} else {
		m.status = "menu closed"
	}
}

func (m *Model) selectedTitle(items []string) string {
	if m.menu.Selected < len(items) {
		return items[m.menu.Selected]
	}
	return "Content"
}

func (m *Model) now() time.Time {
	if m.opts.Clock != nil {
		return m.opts.Clock()
	}
	return time.Now()
}

func contentLines(title string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s item %d", title, i+1)
	}
	return lines
}
