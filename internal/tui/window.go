package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/usecase"
)

// Window geometry.
const (
	windowWidth      = 72 // Inner width of a restored window
	cellWidthPx      = 14 // Pixels per terminal column for initial coordinates
	cellHeightPx     = 35 // Pixels per terminal row for initial coordinates
	dateColumnWidth  = 20
	typeColumnWidth  = 14
	explorerDateTime = "01/02/2006 03:04 PM"
	emptyFolderText  = "This folder is empty."
)

// cellOffset converts initial coordinates to a column and row offset.
func cellOffset(c domain.Coordinates) (col, row int) {
	return c.X / cellWidthPx, c.Y / cellHeightPx
}

// foreground returns the window drawn on top, if any.
func (m *Model) foreground() (domain.Task, bool) {
	return m.container.Tasks.State().Foreground()
}

// handleWindowKey handles the foreground window's intents.
func (m *Model) handleWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := m.foreground()
	if !ok {
		m.focus = FocusDesktop
		return m, nil
	}
	ws := m.window(task.ID)
	entries := m.config.Window(task.ID).Entries

	switch {
	case key.Matches(msg, m.keys.Up):
		if ws.cursor > 0 {
			ws.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if ws.cursor < len(entries)-1 {
			ws.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if ws.cursor < len(entries) {
			return m, m.openEntry(task.ID, entries[ws.cursor])
		}
	case key.Matches(msg, m.keys.Minimize):
		m.container.Tasks.MinimizeTask(task.ID)
	case key.Matches(msg, m.keys.Maximize):
		ws.maximized = !ws.maximized
	case key.Matches(msg, m.keys.Close):
		m.container.Tasks.CloseTask(task.ID)
	case key.Matches(msg, m.keys.Escape):
		m.focus = FocusDesktop
	}
	return m, nil
}

// openEntry activates an explorer row off the update loop.
func (m *Model) openEntry(id domain.TaskID, entry domain.ExplorerEntry) tea.Cmd {
	uc := m.container.OpenEntryUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.OpenEntryInput{Entry: entry, TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgOpened{URL: out.OpenedURL}
	}
}

// viewWindow renders the task's window, or nothing when the task is not open.
func (m *Model) viewWindow(state domain.State, id domain.TaskID) string {
	task, ok := state.Task(id)
	if !ok || !task.IsOpen() {
		return ""
	}
	ws := m.window(id)

	width := windowWidth
	if ws.maximized && m.width-2 > width {
		width = m.width - 2
	}

	style := m.styles.Window
	if m.focus == FocusWindow {
		style = m.styles.WindowFocused
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTitleBar(task, ws, width),
		m.viewExplorer(id, ws, width),
	)
	box := style.Width(width).Render(body)
	if ws.maximized {
		return box
	}

	col, row := cellOffset(task.InitialCoordinates)
	return lipgloss.NewStyle().MarginLeft(col).MarginTop(row).Render(box)
}

// viewWindows renders every open window in sequence order. Windows behind
// the foreground one collapse to their title bar.
func (m *Model) viewWindows(state domain.State, fg domain.Task) string {
	var parts []string
	for _, t := range state.OpenTasks() {
		if t.ID != fg.ID {
			parts = append(parts, m.viewCollapsedWindow(t))
		}
	}
	parts = append(parts, m.viewWindow(state, fg.ID))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewCollapsedWindow renders a background window as its title bar.
func (m *Model) viewCollapsedWindow(task domain.Task) string {
	box := m.styles.Window.Width(windowWidth).Render(m.viewTitleBar(task, m.window(task.ID), windowWidth))
	col, _ := cellOffset(task.InitialCoordinates)
	return lipgloss.NewStyle().MarginLeft(col).Render(box)
}

// viewTitleBar renders the icon, name and window controls.
func (m *Model) viewTitleBar(task domain.Task, ws *windowState, width int) string {
	controls := "─  □  ✕"
	if ws.maximized {
		controls = "─  ❐  ✕"
	}
	title := fitWidth(Icon(task.Thumbnail)+" "+task.DisplayName, width-runewidth.StringWidth(controls)-2)
	gap := width - runewidth.StringWidth(title) - runewidth.StringWidth(controls)
	if gap < 1 {
		gap = 1
	}
	return m.styles.WindowTitle.Render(title) + strings.Repeat(" ", gap) + m.styles.WindowControls.Render(controls)
}

// viewExplorer renders the file explorer table.
func (m *Model) viewExplorer(id domain.TaskID, ws *windowState, width int) string {
	entries := m.config.Window(id).Entries
	nameWidth := width - dateColumnWidth - typeColumnWidth
	if nameWidth < 8 {
		nameWidth = 8
	}

	lines := []string{
		m.styles.ExplorerHeader.Render(
			cell("Name", nameWidth) + cell("Date modified", dateColumnWidth) + cell("Type", typeColumnWidth)),
	}
	if len(entries) == 0 {
		lines = append(lines, m.styles.ExplorerEmpty.Render(emptyFolderText))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	modified := m.now.Format(explorerDateTime)
	for i, e := range entries {
		style := m.styles.ExplorerRow
		if i == ws.cursor {
			style = m.styles.ExplorerActive
		}
		lines = append(lines, style.Render(
			cell(e.Name, nameWidth)+cell(modified, dateColumnWidth)+cell(e.Type.Display(), typeColumnWidth)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// cell truncates s to width display columns and pads it with spaces.
// One column is kept free as the gap to the next cell.
func cell(s string, width int) string {
	return runewidth.FillRight(fitWidth(s, width-1), width)
}

// fitWidth shortens s with an ellipsis when it is wider than width.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
