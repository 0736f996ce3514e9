package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the desktop: icons and the open windows with the foreground
// one last, then the start menu, the error line, the taskbar and the key help.
// A maximized foreground window covers everything above the taskbar.
func (m *Model) View() string {
	state := m.container.Tasks.State()

	var body string
	fg, hasWindow := state.Foreground()
	switch {
	case hasWindow && m.window(fg.ID).maximized:
		body = m.viewWindow(state, fg.ID)
	case hasWindow:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewDesktop(), "  ", m.viewWindows(state, fg))
	default:
		body = m.viewDesktop()
	}

	var footer []string
	if m.focus == FocusStartMenu {
		footer = append(footer, m.viewStartMenu())
	}
	if m.err != nil {
		footer = append(footer, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	}
	footer = append(footer,
		m.viewTaskbar(state),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
	bottom := lipgloss.JoinVertical(lipgloss.Left, footer...)

	// Push the taskbar to the bottom of the screen.
	if bodyHeight := m.height - lipgloss.Height(bottom); bodyHeight > lipgloss.Height(body) {
		body = lipgloss.NewStyle().Height(bodyHeight).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, bottom)
}
