package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/deskfolio/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	dir           string // Directory holding the local .deskfolio.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/deskfolio)
}

// NewManager creates a new Manager.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:           dir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(dir, globalConfDir string) *Manager {
	return &Manager{
		dir:           dir,
		globalConfDir: globalConfDir,
	}
}

// LocalConfigInfo returns information about the local config file.
func (m *Manager) LocalConfigInfo() domain.ConfigInfo {
	if m.dir == "" {
		return domain.ConfigInfo{}
	}
	return m.configInfo(domain.LocalConfigPath(m.dir))
}

// GlobalConfigInfo returns information about the global config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.configInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// configInfo reads a config file and returns its info.
func (m *Manager) configInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig creates a local config file with the default template.
func (m *Manager) InitLocalConfig() error {
	if m.dir == "" {
		return errors.New("working directory not available")
	}
	return m.initConfig(domain.LocalConfigPath(m.dir))
}

// InitGlobalConfig creates a global config file with the default template.
func (m *Manager) InitGlobalConfig() error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0700); err != nil {
		return err
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// initConfig writes the default template unless the file exists.
func (m *Manager) initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0600)
}
