package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/domain"
	"github.com/runoshun/deskfolio/internal/usecase"
	"github.com/spf13/cobra"
)

// Replay output formats.
const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// recordOnlyOpener accepts every URL without opening it.
type recordOnlyOpener struct{}

func (recordOnlyOpener) Open(context.Context, string) error { return nil }

// newReplayCommand creates the replay command.
func newReplayCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
		Open   bool
	}

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a script of desktop actions without a terminal",
		Long: `Run a YAML script of desktop actions and print the resulting state.

Use "-" to read the script from stdin. Links launched by the script are
only recorded unless --open is given.

Script format:
  steps:
    - action: launch
      app: My Portfolio
    - action: minimize
      task: portfolio
    - action: click-taskbar
      task: portfolio

Actions: register, close, minimize, set-active, click-taskbar, launch`,
		Example: `  # Print the final state as a table
  deskfolio replay session.yaml

  # Print the final state as YAML
  deskfolio replay session.yaml -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c == nil {
				return errNoContainer
			}
			if opts.Output != outputTable && opts.Output != outputYAML {
				return fmt.Errorf("invalid output format %q (use %s or %s)", opts.Output, outputTable, outputYAML)
			}

			content, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			if !opts.Open {
				c.Opener = recordOnlyOpener{}
			}
			out, err := c.ReplayUseCase().Execute(cmd.Context(), usecase.ReplayInput{Content: content})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Output == outputYAML {
				data, err := domain.MarshalStateYAML(out.State)
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			}
			return printReplayTable(w, out)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", outputTable, "Output format: table or yaml")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open launched links in the browser")

	return cmd
}

func readScript(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return content, nil
}

func printReplayTable(out io.Writer, res *usecase.ReplayOutput) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATE\tPOSITION\tACTIVE")
	for _, t := range res.State.Tasks {
		active := ""
		if t.ID == res.State.ActiveTask {
			active = "*"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d,%d\t%s\n",
			t.ID, t.DisplayName, t.State, t.InitialCoordinates.X, t.InitialCoordinates.Y, active)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if res.State.ActiveTask != "" {
		if _, ok := res.State.Active(); !ok {
			_, _ = fmt.Fprintf(out, "\nActive: %s (closed)\n", res.State.ActiveTask)
		}
	}
	for _, url := range res.Opened {
		_, _ = fmt.Fprintf(out, "Opened: %s\n", url)
	}
	_, _ = fmt.Fprintf(out, "\n%d steps\n", res.Steps)
	return nil
}
