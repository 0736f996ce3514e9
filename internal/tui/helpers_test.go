package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/testutil"
)

// testNow is 3:04 PM on March 7th 2025.
var testNow = time.Date(2025, 3, 7, 15, 4, 0, 0, time.UTC)

func newTestModel(t *testing.T) (*Model, *testutil.MockOpener) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	opener := &testutil.MockOpener{}
	c := app.NewWithDeps(app.Paths{}, nil, &testutil.MockClock{NowTime: testNow}, opener, nil)
	return New(c), opener
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "f11":
		return tea.KeyMsg{Type: tea.KeyF11}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to the model and returns the last command.
func press(t *testing.T, m *Model, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = m.Update(keyMsg(k))
		_, ok := model.(*Model)
		if !ok {
			t.Fatalf("Update should return *Model")
		}
	}
	return cmd
}

// launchApp selects the icon at index i on the desktop and presses enter.
func launchApp(t *testing.T, m *Model, i int) tea.Cmd {
	t.Helper()
	m.focus = FocusDesktop
	m.iconCursor = i
	return press(t, m, "enter")
}
