package executor

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/runoshun/deskfolio/internal/domain"
)

// Ensure Opener implements domain.URLOpener interface.
var _ domain.URLOpener = (*Opener)(nil)

// Opener opens URLs with the platform's browser launcher.
type Opener struct {
	run     RunFunc
	goos    string
	browser string // $BROWSER override
}

// NewOpener creates an Opener for the current platform.
func NewOpener() *Opener {
	return &Opener{
		run:     NewClient().Execute,
		goos:    runtime.GOOS,
		browser: os.Getenv("BROWSER"),
	}
}

// NewOpenerWithRunner creates an Opener with a custom platform and runner.
// This is useful for testing.
func NewOpenerWithRunner(goos, browser string, run RunFunc) *Opener {
	return &Opener{run: run, goos: goos, browser: browser}
}

// OpenCommand returns the command that opens url on the given platform.
// A non-empty browser takes precedence over the platform default.
func OpenCommand(goos, browser, url string) (Command, error) {
	if url == "" {
		return Command{}, domain.ErrEmptyURL
	}
	if browser != "" {
		return Command{Program: browser, Args: []string{url}}, nil
	}
	switch goos {
	case "darwin":
		return Command{Program: "open", Args: []string{url}}, nil
	case "windows":
		return Command{Program: "rundll32", Args: []string{"url.dll,FileProtocolHandler", url}}, nil
	default:
		return Command{Program: "xdg-open", Args: []string{url}}, nil
	}
}

// Open launches the browser for url.
func (o *Opener) Open(ctx context.Context, url string) error {
	cmd, err := OpenCommand(o.goos, o.browser, url)
	if err != nil {
		return err
	}
	out, err := o.run(ctx, cmd)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", cmd.Program, err, msg)
		}
		return fmt.Errorf("%s: %w", cmd.Program, err)
	}
	return nil
}
