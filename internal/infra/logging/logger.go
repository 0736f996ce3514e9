// Package logging provides file-based logging for deskfolio.
// Entries go to a single log file (<state dir>/logs/deskfolio.log) and are
// scoped to a task window or to the desktop.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/deskfolio/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes formatted entries to the deskfolio log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	clock    domain.Clock
	file     *os.File
	stateDir string
	session  string
	mu       sync.Mutex
	level    slog.Level
}

// New creates a new Logger that writes under the state directory.
// If stateDir is empty, logging is disabled.
// Every logger gets a fresh session id.
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{
		clock:    domain.RealClock{},
		stateDir: stateDir,
		session:  uuid.NewString(),
		level:    level,
	}
}

// WithClock replaces the clock used for timestamps.
func (l *Logger) WithClock(clock domain.Clock) *Logger {
	l.clock = clock
	return l
}

// SessionID returns the id of this desktop session.
func (l *Logger) SessionID() string {
	return l.session
}

// Start writes the session marker.
func (l *Logger) Start(version string) {
	l.log(slog.LevelInfo, "", "session", fmt.Sprintf("started %s (version %s)", l.session, version))
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	path := domain.LogPath(l.stateDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [task-portfolio] [window] message
func formatLog(t time.Time, level slog.Level, task domain.TaskID, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		domain.LogScope(task),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, task domain.TaskID, category, msg string) {
	if l.stateDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.ensureFile()
	if err != nil {
		return
	}
	_, _ = io.WriteString(f, formatLog(l.clock.Now(), level, task, category, msg))
}

// Info logs an info message.
func (l *Logger) Info(task domain.TaskID, category, msg string) {
	l.log(slog.LevelInfo, task, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(task domain.TaskID, category, msg string) {
	l.log(slog.LevelDebug, task, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(task domain.TaskID, category, msg string) {
	l.log(slog.LevelWarn, task, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(task domain.TaskID, category, msg string) {
	l.log(slog.LevelError, task, category, msg)
}
