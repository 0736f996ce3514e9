package tui

import (
	"strings"
	"testing"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_ViewOpenTask(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)

	view := m.View()
	assert.Contains(t, view, "My Portfolio")
	assert.Contains(t, view, "Date modified")
	assert.Contains(t, view, "UCEE MFB")
	assert.Contains(t, view, "InflowBit (Formerly InflowChange)")
	assert.Contains(t, view, "03/07/2025 03:04 PM")
	assert.Contains(t, view, "External Link")
	assert.Contains(t, view, "─  □  ✕")
}

func TestWindow_BackgroundWindowsCollapse(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)
	launchApp(t, m, 1) // resume is the foreground window

	view := m.View()
	assert.Equal(t, 2, strings.Count(view, "─  □  ✕"), "both windows are drawn")
	assert.Contains(t, view, emptyFolderText)
	assert.NotContains(t, view, "UCEE MFB", "the background explorer shows only its title bar")

	press(t, m, "]") // cycle back to portfolio
	view = m.View()
	assert.Equal(t, 2, strings.Count(view, "─  □  ✕"))
	assert.Contains(t, view, "UCEE MFB")
	assert.NotContains(t, view, emptyFolderText)
}

func TestWindow_MinimizedWindowIsNotDrawn(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)
	launchApp(t, m, 1)
	m.focus = FocusWindow
	press(t, m, "-") // minimize resume

	assert.Equal(t, 1, strings.Count(m.View(), "─  □  ✕"))
}

func TestWindow_EmptyFolder(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 1) // My Resume has no entries

	assert.Contains(t, m.View(), emptyFolderText)
}

func TestWindow_RendersNothingWhenNotOpen(t *testing.T) {
	m, _ := newTestModel(t)
	state := m.container.Tasks.State()
	assert.Empty(t, m.viewWindow(state, domain.TaskPortfolio), "absent task")

	launchApp(t, m, 0)
	press(t, m, "-")

	state = m.container.Tasks.State()
	assert.Empty(t, m.viewWindow(state, domain.TaskPortfolio), "minimized task")
	assert.NotContains(t, m.View(), "UCEE MFB")
}

func TestWindow_Minimize(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)

	press(t, m, "-")

	task, ok := m.container.Tasks.GetTask(domain.TaskPortfolio)
	require.True(t, ok)
	assert.Equal(t, domain.TaskMinimized, task.State)
	assert.Equal(t, FocusDesktop, m.Focus(), "nothing left to focus")
}

func TestWindow_MinimizeBackgroundWindowFocusesIt(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)
	launchApp(t, m, 1)
	press(t, m, "-") // minimize resume, portfolio becomes foreground

	fg, ok := m.foreground()
	require.True(t, ok)
	assert.Equal(t, domain.TaskPortfolio, fg.ID)
	m.focus = FocusWindow

	press(t, m, "-")

	task, _ := m.container.Tasks.GetTask(domain.TaskPortfolio)
	assert.Equal(t, domain.TaskOpen, task.State, "first minimize focuses")
	assert.Equal(t, domain.TaskPortfolio, m.container.Tasks.ActiveTask())

	press(t, m, "-")
	task, _ = m.container.Tasks.GetTask(domain.TaskPortfolio)
	assert.Equal(t, domain.TaskMinimized, task.State)
}

func TestWindow_Close(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)

	press(t, m, "x")

	_, ok := m.container.Tasks.GetTask(domain.TaskPortfolio)
	assert.False(t, ok)
	assert.Equal(t, domain.TaskPortfolio, m.container.Tasks.ActiveTask(), "active task dangles")
	assert.Equal(t, FocusDesktop, m.Focus())
}

func TestWindow_MaximizeIsResetWhenNotOpen(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)

	press(t, m, "m")
	assert.True(t, m.window(domain.TaskPortfolio).maximized)
	assert.Contains(t, m.View(), "─  ❐  ✕")

	press(t, m, "-")
	m.clickTask(domain.TaskPortfolio) // reopen from the taskbar

	assert.False(t, m.window(domain.TaskPortfolio).maximized)
}

func TestWindow_MaximizeToggles(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0)

	press(t, m, "+")
	assert.True(t, m.window(domain.TaskPortfolio).maximized)
	press(t, m, "+")
	assert.False(t, m.window(domain.TaskPortfolio).maximized)
}

func TestWindow_RowsClamped(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 0) // 4 entries
	ws := m.window(domain.TaskPortfolio)

	press(t, m, "up")
	assert.Equal(t, 0, ws.cursor)

	press(t, m, "down", "down", "down", "down", "down")
	assert.Equal(t, 3, ws.cursor)

	press(t, m, "up")
	assert.Equal(t, 2, ws.cursor)
}

func TestWindow_EnterOpensRow(t *testing.T) {
	m, opener := newTestModel(t)
	launchApp(t, m, 0)

	cmd := press(t, m, "down", "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, MsgOpened{URL: "https://app.chaindustry.io"}, cmd())
	assert.Equal(t, []string{"https://app.chaindustry.io"}, opener.Opened)
}

func TestWindow_EnterOnEmptyFolder(t *testing.T) {
	m, _ := newTestModel(t)
	launchApp(t, m, 1)

	assert.Nil(t, press(t, m, "enter"))
}

func TestWindow_OffsetFromCoordinates(t *testing.T) {
	tests := []struct {
		coords  domain.Coordinates
		wantCol int
		wantRow int
	}{
		{domain.Coordinates{X: 0, Y: 0}, 0, 0},
		{domain.Coordinates{X: 70, Y: 70}, 5, 2},
		{domain.Coordinates{X: 140, Y: 140}, 10, 4},
	}
	for _, tt := range tests {
		col, row := cellOffset(tt.coords)
		assert.Equal(t, tt.wantCol, col)
		assert.Equal(t, tt.wantRow, row)
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, "Name      ", cell("Name", 10))
	assert.Equal(t, "Chaindus… ", cell("Chaindustry", 10))
	assert.Equal(t, "Exactly9 ", cell("Exactly9", 9))
	assert.Equal(t, "External Link ", cell("External Link", typeColumnWidth))
	assert.Equal(t, "03/07/2025 03:04 PM ", cell("03/07/2025 03:04 PM", dateColumnWidth))
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		width int
	}{
		{"shorter", "Name", "Name", 10},
		{"exact fit", "Full Screen", "Full Screen", 11},
		{"one over", "Full Screens", "Full Scree…", 11},
		{"wide runes", "📁 My Portfolio", "📁 My Portfolio", 15},
		{"wide runes over", "📁 My Portfolio", "📁 My Portf…", 12},
		{"zero width", "Name", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitWidth(tt.in, tt.width))
		})
	}
}
