package tui

import (
	"testing"

	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialState(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, FocusDesktop, m.Focus())
	assert.Equal(t, -1, m.iconCursor)
	assert.False(t, m.Fullscreen())
	assert.Equal(t, testNow, m.now)
}

func TestDesktop_Navigation(t *testing.T) {
	m, _ := newTestModel(t) // 7 icons, 2 columns

	press(t, m, "down")
	assert.Equal(t, 0, m.iconCursor, "first move selects the first icon")

	press(t, m, "right")
	assert.Equal(t, 1, m.iconCursor)

	press(t, m, "right")
	assert.Equal(t, 1, m.iconCursor, "cannot move past the row end")

	press(t, m, "down", "down")
	assert.Equal(t, 5, m.iconCursor)

	press(t, m, "down")
	assert.Equal(t, 5, m.iconCursor, "no icon below")

	press(t, m, "left", "down")
	assert.Equal(t, 6, m.iconCursor)

	press(t, m, "esc")
	assert.Equal(t, -1, m.iconCursor)
}

func TestDesktop_LaunchWindowClearsSelection(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := launchApp(t, m, 0)
	assert.Nil(t, cmd)

	assert.Equal(t, -1, m.iconCursor)
	assert.Equal(t, FocusWindow, m.Focus())
	task, ok := m.container.Tasks.GetTask(domain.TaskPortfolio)
	require.True(t, ok)
	assert.Equal(t, domain.TaskOpen, task.State)
	assert.Equal(t, domain.TaskPortfolio, m.container.Tasks.ActiveTask())
}

func TestDesktop_LaunchLinkOpensOffLoop(t *testing.T) {
	m, opener := newTestModel(t)

	cmd := launchApp(t, m, 2) // Github
	require.NotNil(t, cmd)
	assert.Empty(t, opener.Opened, "opening happens in the command")

	msg := cmd()
	assert.Equal(t, MsgOpened{URL: "https://github.com"}, msg)
	assert.Equal(t, []string{"https://github.com"}, opener.Opened)
	assert.Empty(t, m.container.Tasks.Tasks())
}

func TestDesktop_LaunchEmptyLinkDoesNothing(t *testing.T) {
	m, opener := newTestModel(t)

	cmd := launchApp(t, m, 5) // Facebook
	require.NotNil(t, cmd)
	assert.Equal(t, MsgOpened{}, cmd())
	assert.Empty(t, opener.Opened)
}

func TestDesktop_LaunchFullscreenToggles(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := launchApp(t, m, 6)
	assert.NotNil(t, cmd)
	assert.True(t, m.Fullscreen())

	cmd = press(t, m, "f11")
	assert.NotNil(t, cmd)
	assert.False(t, m.Fullscreen())
}

func TestDesktop_ViewShowsIcons(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.viewDesktop()
	assert.Contains(t, view, "My Portfolio")
	assert.Contains(t, view, "Github")
	assert.Contains(t, view, "📁")
	assert.Contains(t, view, "Toggle Full S…")

	m.fullscreen = true
	assert.Contains(t, m.viewDesktop(), "Exit Full Scr…")
}
