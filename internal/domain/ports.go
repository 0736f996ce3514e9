package domain

import (
	"context"
	"time"
)

// TaskStore owns the desktop state and applies actions to it.
type TaskStore interface {
	// Dispatch applies an action and returns the resulting state.
	Dispatch(action Action) State

	// State returns a snapshot of the current state.
	State() State

	// Subscribe registers a listener called with the new state after
	// every dispatch.
	Subscribe(fn func(State))
}

// URLOpener opens external links.
type URLOpener interface {
	// Open opens the URL in the user's browser.
	Open(ctx context.Context, url string) error
}

// Logger writes diagnostic entries. An empty task id logs at desktop scope.
type Logger interface {
	Debug(task TaskID, category, msg string)
	Info(task TaskID, category, msg string)
	Warn(task TaskID, category, msg string)
	Error(task TaskID, category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(TaskID, string, string) {}
func (NopLogger) Info(TaskID, string, string)  {}
func (NopLogger) Warn(TaskID, string, string)  {}
func (NopLogger) Error(TaskID, string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadLocal returns only the local configuration.
	LoadLocal() (*Config, error)
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GlobalConfigInfo() ConfigInfo
	LocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default template to the global path.
	InitGlobalConfig() error

	// InitLocalConfig writes the default template to the local path.
	InitLocalConfig() error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
