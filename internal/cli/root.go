// Package cli provides the command-line interface for deskfolio.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/runoshun/deskfolio/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupDesktop = "desktop"
	groupSetup   = "setup"
)

// launchTUIFunc is a function variable for launching the desktop, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for deskfolio.
// It receives the container for dependency injection and version for display.
// A nil container means the configuration could not be loaded; only
// commands that do not need it will work.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   "deskfolio",
		Short: "A desktop-styled portfolio in your terminal",
		Long: `deskfolio renders a personal portfolio as a small desktop: a taskbar,
desktop icons, a start menu and file explorer windows listing projects.

Run without arguments to open the desktop.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if c != nil {
				c.StartSession(version)
			}
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")

	root.AddGroup(
		&cobra.Group{ID: groupDesktop, Title: "Desktop Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	tuiCmd := newTUICommand(c, version)
	tuiCmd.GroupID = groupDesktop

	appsCmd := newAppsCommand(c)
	appsCmd.GroupID = groupDesktop

	replayCmd := newReplayCommand(c)
	replayCmd.GroupID = groupDesktop

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		tuiCmd,
		appsCmd,
		replayCmd,
		configCmd,
	)

	return root
}
