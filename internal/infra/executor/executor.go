// Package executor runs external programs, such as the browser launcher
// used to open links.
package executor

import (
	"context"
	"os/exec"
)

// Command is a program invocation.
type Command struct {
	Program string
	Args    []string
}

// RunFunc runs a command and returns its combined output.
type RunFunc func(ctx context.Context, cmd Command) ([]byte, error)

// Client executes commands on the host.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Execute runs the command and returns its combined output.
func (c *Client) Execute(ctx context.Context, cmd Command) ([]byte, error) {
	// #nosec G204 - cmd.Program is chosen by OpenCommand, the URL is passed as a single argument
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	return execCmd.CombinedOutput()
}
