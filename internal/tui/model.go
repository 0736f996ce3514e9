package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/domain"
)

// windowState is the local presentation state of a mounted window.
// It is dropped when the window's task stops being open.
type windowState struct {
	cursor    int // Active explorer row
	maximized bool
}

// Model is the main bubbletea model for the desktop.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config
	err       error

	// State
	windows map[domain.TaskID]*windowState

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	now    time.Time

	// Numeric state (smaller types last)
	focus         Focus
	prevFocus     Focus // Restored when the start menu closes
	iconCursor    int   // Selected desktop icon, -1 when none
	taskbarCursor int   // 0 is the start button, i+1 is task i
	width         int
	height        int
	fullscreen    bool
	showHelp      bool
}

// New creates a new desktop Model with the given container.
func New(c *app.Container) *Model {
	m := &Model{
		container:  c,
		config:     c.AppConfig,
		windows:    make(map[domain.TaskID]*windowState),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(c.AppConfig.Desktop.Accent),
		help:       help.New(),
		now:        c.Clock.Now(),
		focus:      FocusDesktop,
		iconCursor: -1,
	}
	c.Tasks.Subscribe(m.syncWindows)
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(domain.AppName),
		m.tick(),
	)
}

// tick schedules the next clock refresh.
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return MsgTick{Now: m.container.Clock.Now()}
	})
}

// Fullscreen reports whether the alternate screen is active.
func (m *Model) Fullscreen() bool {
	return m.fullscreen
}

// Focus returns the zone receiving key input.
func (m *Model) Focus() Focus {
	return m.focus
}

// window returns the presentation state of a window, mounting it on first use.
func (m *Model) window(id domain.TaskID) *windowState {
	ws, ok := m.windows[id]
	if !ok {
		ws = &windowState{}
		m.windows[id] = ws
	}
	return ws
}

// syncWindows unmounts windows whose task is no longer open and moves
// focus off a window zone that has nothing left to show.
func (m *Model) syncWindows(s domain.State) {
	for id := range m.windows {
		if !s.IsOpen(id) {
			delete(m.windows, id)
		}
	}
	if _, ok := s.Foreground(); !ok && m.focus == FocusWindow {
		m.focus = FocusDesktop
	}
	if m.taskbarCursor > len(s.Tasks) {
		m.taskbarCursor = len(s.Tasks)
	}
}
