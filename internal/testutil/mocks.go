// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/runoshun/deskfolio/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// LogEntry is a captured log call.
type LogEntry struct {
	Level    string
	Task     domain.TaskID
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level string, task domain.TaskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Task: task, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(task domain.TaskID, category, msg string) {
	m.record("DEBUG", task, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(task domain.TaskID, category, msg string) {
	m.record("INFO", task, category, msg)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(task domain.TaskID, category, msg string) {
	m.record("WARN", task, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(task domain.TaskID, category, msg string) {
	m.record("ERROR", task, category, msg)
}

// Messages returns the entries of a level formatted as "<scope> <category>: <msg>".
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, domain.LogScope(e.Task)+" "+e.Category+": "+e.Msg)
		}
	}
	return out
}

// MockOpener is a test double for domain.URLOpener.
type MockOpener struct {
	OpenErr error
	Opened  []string
}

// Open records the URL.
func (m *MockOpener) Open(_ context.Context, url string) error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.Opened = append(m.Opened, url)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or the defaults when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// LoadLocal behaves like Load.
func (m *MockConfigLoader) LoadLocal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Global     domain.ConfigInfo
	Local      domain.ConfigInfo
	InitGlobal bool
	InitLocal  bool
}

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// LocalConfigInfo returns the configured local info.
func (m *MockConfigManager) LocalConfigInfo() domain.ConfigInfo {
	return m.Local
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitGlobal = true
	return nil
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitLocal = true
	return nil
}
