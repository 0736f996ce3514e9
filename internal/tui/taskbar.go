package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/usecase"
)

// Taskbar text.
const (
	startLabel      = "⊞ Start"
	searchLabel     = "🔍 Type here to search"
	trayIcons       = "📶 🔊 🔋"
	taskLabelWidth  = 16
	openIndicator   = "▔▔▔"
	clockTimeLayout = "3:04 PM"
	clockDateLayout = "1/2/2006"
)

// handleTaskbarKey moves between the start button and task icons.
func (m *Model) handleTaskbarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.container.Tasks.Tasks()
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.taskbarCursor > 0 {
			m.taskbarCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.taskbarCursor < len(tasks) {
			m.taskbarCursor++
		}
	case key.Matches(msg, m.keys.Escape):
		m.focus = FocusDesktop
	case key.Matches(msg, m.keys.Enter):
		if m.taskbarCursor == 0 {
			m.toggleStartMenu()
			return m, nil
		}
		if i := m.taskbarCursor - 1; i < len(tasks) {
			m.clickTask(tasks[i].ID)
		}
	}
	return m, nil
}

// clickTask toggles a task from its taskbar icon.
func (m *Model) clickTask(id domain.TaskID) {
	_, err := m.container.ClickTaskbarUseCase().Execute(context.Background(), usecase.ClickTaskbarInput{TaskID: id})
	if err != nil {
		m.err = err
	}
}

// viewTaskbar renders the start button, search box, task icons, tray and clock.
func (m *Model) viewTaskbar(state domain.State) string {
	startStyle := m.styles.StartButton
	if m.focus == FocusStartMenu || (m.focus == FocusTaskbar && m.taskbarCursor == 0) {
		startStyle = m.styles.StartButtonActive
	}

	left := []string{
		startStyle.Render(startLabel),
		m.styles.Search.Render(searchLabel),
	}
	for i, t := range state.Tasks {
		left = append(left, m.viewTaskItem(t, m.focus == FocusTaskbar && m.taskbarCursor == i+1))
	}
	leftBlock := lipgloss.JoinHorizontal(lipgloss.Top, left...)

	clock := lipgloss.JoinVertical(lipgloss.Right,
		m.now.Format(clockTimeLayout),
		m.now.Format(clockDateLayout),
	)
	rightBlock := lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Tray.Render(trayIcons), clock)

	gap := m.width - lipgloss.Width(leftBlock) - lipgloss.Width(rightBlock)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Taskbar.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, leftBlock, strings.Repeat(" ", gap), rightBlock),
	)
}

// viewTaskItem renders one task icon with its open indicator below.
func (m *Model) viewTaskItem(t domain.Task, selected bool) string {
	style := m.styles.TaskItem
	if selected {
		style = m.styles.TaskItemSelected
	}
	label := fitWidth(Icon(t.Thumbnail)+" "+t.DisplayName, taskLabelWidth)
	indicator := ""
	if t.IsOpen() {
		indicator = openIndicator
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		m.styles.TaskIndicator.Render(indicator),
	)
}
