package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const powerLabel = "⏻ Power"

// handleStartMenuKey handles the power button and closing the menu.
func (m *Model) handleStartMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = m.prevFocus
	case key.Matches(msg, m.keys.Enter):
		return m, tea.Quit
	}
	return m, nil
}

// viewStartMenu renders the owner name and the power button.
func (m *Model) viewStartMenu() string {
	return m.styles.StartMenu.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.StartMenuOwner.Render("👤 "+m.config.Desktop.Owner),
		"",
		m.styles.StartMenuPower.Render(powerLabel),
	))
}
