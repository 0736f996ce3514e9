package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTick:
		m.now = msg.Now
		return m, m.tick()

	case MsgOpened:
		m.err = nil
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg routes keys: global bindings first, then the focused zone.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Fullscreen):
		return m, m.toggleFullscreen()
	case key.Matches(msg, m.keys.Start):
		m.toggleStartMenu()
		return m, nil
	case key.Matches(msg, m.keys.Cycle):
		return m, m.cycleWindow(false)
	case key.Matches(msg, m.keys.CycleBack):
		return m, m.cycleWindow(true)
	case key.Matches(msg, m.keys.Tab):
		m.nextFocus()
		return m, nil
	}

	switch m.focus {
	case FocusDesktop:
		return m.handleDesktopKey(msg)
	case FocusTaskbar:
		return m.handleTaskbarKey(msg)
	case FocusWindow:
		return m.handleWindowKey(msg)
	case FocusStartMenu:
		return m.handleStartMenuKey(msg)
	}
	return m, nil
}

// nextFocus moves to the next zone: desktop, taskbar, then the
// foreground window when one is shown.
func (m *Model) nextFocus() {
	switch m.focus {
	case FocusDesktop:
		m.focus = FocusTaskbar
	case FocusTaskbar:
		if _, ok := m.container.Tasks.State().Foreground(); ok {
			m.focus = FocusWindow
		} else {
			m.focus = FocusDesktop
		}
	case FocusWindow, FocusStartMenu:
		m.focus = FocusDesktop
	}
}

// toggleStartMenu opens or closes the start menu.
func (m *Model) toggleStartMenu() {
	if m.focus == FocusStartMenu {
		m.focus = m.prevFocus
		return
	}
	m.prevFocus = m.focus
	m.focus = FocusStartMenu
}

// toggleFullscreen flips the alternate screen.
func (m *Model) toggleFullscreen() tea.Cmd {
	m.fullscreen = !m.fullscreen
	if m.fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

// cycleWindow focuses the next open window.
func (m *Model) cycleWindow(reverse bool) tea.Cmd {
	out, err := m.container.CycleWindowUseCase().Execute(context.Background(), usecase.CycleWindowInput{Reverse: reverse})
	if err != nil {
		m.err = err
		return nil
	}
	if out.Active != "" {
		m.focus = FocusWindow
	}
	return nil
}

// launch runs a desktop icon. Links are opened off the update loop;
// window and full screen icons take effect immediately.
func (m *Model) launch(a domain.App) tea.Cmd {
	uc := m.container.LaunchAppUseCase()
	if a.Kind == domain.AppLink {
		return func() tea.Msg {
			out, err := uc.Execute(context.Background(), usecase.LaunchAppInput{App: a})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgOpened{URL: out.OpenedURL}
		}
	}

	out, err := uc.Execute(context.Background(), usecase.LaunchAppInput{App: a})
	if err != nil {
		m.err = err
		return nil
	}
	if out.ToggleFullscreen {
		return m.toggleFullscreen()
	}
	if out.Task != nil {
		m.focus = FocusWindow
	}
	return nil
}
