package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// iconCellWidth is the width of one desktop icon cell.
const iconCellWidth = 16

// handleDesktopKey moves the icon selection and launches icons.
func (m *Model) handleDesktopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveIcon(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveIcon(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveIcon(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveIcon(1, 0)
	case key.Matches(msg, m.keys.Escape):
		m.iconCursor = -1
	case key.Matches(msg, m.keys.Enter):
		if m.iconCursor < 0 || m.iconCursor >= len(m.config.Apps) {
			return m, nil
		}
		a := m.config.Apps[m.iconCursor]
		m.iconCursor = -1
		return m, m.launch(a)
	}
	return m, nil
}

// moveIcon moves the selection within the grid. The first move selects
// the first icon; moves off the grid are ignored.
func (m *Model) moveIcon(dx, dy int) {
	n := len(m.config.Apps)
	if n == 0 {
		return
	}
	if m.iconCursor < 0 {
		m.iconCursor = 0
		return
	}
	cols := m.columns()
	next := m.iconCursor + dx + dy*cols
	if next < 0 || next >= n {
		return
	}
	if dx != 0 && next/cols != m.iconCursor/cols {
		return
	}
	m.iconCursor = next
}

func (m *Model) columns() int {
	if m.config.Desktop.Columns < 1 {
		return 1
	}
	return m.config.Desktop.Columns
}

// viewDesktop renders the icon grid.
func (m *Model) viewDesktop() string {
	cols := m.columns()
	var rows []string
	var row []string
	for i, a := range m.config.Apps {
		style := m.styles.Icon
		if i == m.iconCursor {
			style = m.styles.IconSelected
		}
		label := fitWidth(a.Label(m.fullscreen), iconCellWidth-2)
		row = append(row, style.Render(Icon(a.Icon(m.fullscreen))+"\n"+label))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
