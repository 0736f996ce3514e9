package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/tui"
)

// errNoContainer is returned when a command needs the loaded configuration.
var errNoContainer = errors.New("configuration not loaded; run 'deskfolio config show' for details")

// newTUICommand creates the tui command for opening the desktop.
// It does the same as running `deskfolio` without arguments.
func newTUICommand(c *app.Container, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the desktop",
		Long:  `Open the interactive terminal desktop.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if c != nil {
				c.StartSession(version)
			}
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the desktop until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errNoContainer
	}
	p := tea.NewProgram(tui.New(c))
	_, err := p.Run()
	return err
}
