package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/infra/config"
	"github.com/runoshun/deskfolio/internal/testutil"
	"github.com/spf13/cobra"
)

// newTestContainer builds a container rooted in temporary directories.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockOpener) {
	t.Helper()
	dir := t.TempDir()
	globalDir := filepath.Join(t.TempDir(), "deskfolio")

	opener := &testutil.MockOpener{}
	c := app.NewWithDeps(app.Paths{Dir: dir}, nil, &testutil.MockClock{}, opener, nil)
	c.ConfigLoader = config.NewLoaderWithGlobalDir(dir, globalDir)
	c.ConfigManager = config.NewManagerWithGlobalDir(dir, globalDir)
	return c, opener
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
