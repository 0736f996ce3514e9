package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/usecase"
	"github.com/spf13/cobra"
)

// newAppsCommand creates the apps command.
func newAppsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "List desktop icons",
		Long: `List the configured desktop icons in grid order.

Window icons show the window they open, link icons their URL.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return errNoContainer
			}
			out, err := c.ListAppsUseCase().Execute(cmd.Context(), usecase.ListAppsInput{})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tKIND\tTARGET")
			for _, a := range out.Apps {
				target := a.Target
				if target == "" {
					target = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", a.App.Name, a.App.Kind, target)
			}
			return w.Flush()
		},
	}
}
