// Package main is the entry point for the deskfolio CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/deskfolio/internal/app"
	"github.com/runoshun/deskfolio/internal/cli"
	"github.com/runoshun/deskfolio/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Allow help, version and the config template with a broken config file
		if errors.Is(err, domain.ErrInvalidConfig) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where the configuration could not be loaded.
func runWithoutContainer(configErr error) error {
	if canRunWithoutConfig(os.Args[1:]) {
		return cli.NewRootCommand(nil, version).Execute()
	}
	return configErr
}

func canRunWithoutConfig(args []string) bool {
	if len(args) == 0 {
		return false
	}
	if args[0] == "help" {
		return true
	}
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
