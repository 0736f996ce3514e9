// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/deskfolio/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dir           string // Directory holding the local .deskfolio.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/deskfolio)
}

// NewLoader creates a new Loader.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:           dir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dir, globalConfDir string) *Loader {
	return &Loader{
		dir:           dir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (defaults + global + local).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.dir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.LocalConfigPath(l.dir))
}

// loadFile loads a configuration from a file.
// Values are decoded into the typed config; unknown keys are reported as
// warnings instead of errors.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Warnings = collectWarnings(raw)
	return &cfg, nil
}

var (
	desktopKeys = []string{"owner", "accent", "columns"}
	logKeys     = []string{"level"}
	appKeys     = []string{"name", "thumbnail", "kind", "task", "url"}
	windowKeys  = []string{"display_name", "thumbnail", "entries"}
	entryKeys   = []string{"name", "type", "path"}
)

// collectWarnings walks the raw document and reports keys the config does not know.
func collectWarnings(raw map[string]any) []string {
	var warnings []string
	unknown := func(where string, m map[string]any, known []string) {
		for k := range m {
			if !contains(known, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in %s: %s", where, k))
			}
		}
	}

	for section, value := range raw {
		switch section {
		case "desktop":
			if m, ok := value.(map[string]any); ok {
				unknown("[desktop]", m, desktopKeys)
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				unknown("[log]", m, logKeys)
			}
		case "apps":
			for _, item := range tables(value) {
				unknown("[[apps]]", item, appKeys)
			}
		case "windows":
			m, ok := value.(map[string]any)
			if !ok {
				continue
			}
			for id, w := range m {
				wm, ok := w.(map[string]any)
				if !ok {
					warnings = append(warnings, fmt.Sprintf("unknown key in [windows]: %s", id))
					continue
				}
				unknown(fmt.Sprintf("[windows.%s]", id), wm, windowKeys)
				for _, e := range tables(wm["entries"]) {
					unknown(fmt.Sprintf("[[windows.%s.entries]]", id), e, entryKeys)
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	return warnings
}

// tables returns the tables of an array-of-tables value.
func tables(v any) []map[string]any {
	var out []map[string]any
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
	case []map[string]any:
		out = items
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// mergeConfigs merges two configs, with override taking precedence.
// Scalars override when set, a non-empty app list replaces the base list,
// and windows merge per task id.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Desktop:  base.Desktop,
		Log:      base.Log,
		Apps:     base.Apps,
		Windows:  make(map[string]domain.WindowConfig, len(base.Windows)),
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	for id, w := range base.Windows {
		result.Windows[id] = w
	}

	if override.Desktop.Owner != "" {
		result.Desktop.Owner = override.Desktop.Owner
	}
	if override.Desktop.Accent != "" {
		result.Desktop.Accent = override.Desktop.Accent
	}
	if override.Desktop.Columns != 0 {
		result.Desktop.Columns = override.Desktop.Columns
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if len(override.Apps) > 0 {
		result.Apps = override.Apps
	}

	for id, ow := range override.Windows {
		w := result.Windows[id]
		if ow.DisplayName != "" {
			w.DisplayName = ow.DisplayName
		}
		if ow.Thumbnail != "" {
			w.Thumbnail = ow.Thumbnail
		}
		if ow.Entries != nil {
			w.Entries = ow.Entries
		}
		result.Windows[id] = w
	}

	return result
}
