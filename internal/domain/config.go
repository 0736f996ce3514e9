package domain

import (
	_ "embed"
	"fmt"
	"sort"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigTemplate returns the default configuration file content.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Windows  map[string]WindowConfig `toml:"windows"` // Keyed by task id
	Warnings []string                `toml:"-"`
	Apps     []App                   `toml:"apps"`
	Desktop  DesktopConfig           `toml:"desktop"`
	Log      LogConfig               `toml:"log"`
}

// DesktopConfig holds settings from the [desktop] section.
type DesktopConfig struct {
	Owner   string `toml:"owner"`   // Name shown in the start menu
	Accent  string `toml:"accent"`  // Accent colour (hex)
	Columns int    `toml:"columns"` // Desktop icon grid columns
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Defaults.
const (
	DefaultOwner   = "Guest"
	DefaultAccent  = "#3B82F6"
	DefaultColumns = 2
	DefaultLevel   = "info"
)

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Desktop: DesktopConfig{
			Owner:   DefaultOwner,
			Accent:  DefaultAccent,
			Columns: DefaultColumns,
		},
		Log: LogConfig{Level: DefaultLevel},
		Apps: []App{
			{Name: "My Portfolio", Thumbnail: "portfolio.png", Kind: AppWindow, Task: TaskPortfolio},
			{Name: "My Resume", Thumbnail: "resume.png", Kind: AppWindow, Task: TaskResume},
			{Name: "Github", Thumbnail: "github.webp", Kind: AppLink, URL: "https://github.com"},
			{Name: "LinkedIn", Thumbnail: "linkedin.webp", Kind: AppLink, URL: "https://www.linkedin.com"},
			{Name: "X", Thumbnail: "x.png", Kind: AppLink, URL: "https://x.com"},
			{Name: "Facebook", Thumbnail: "facebook.png", Kind: AppLink},
			{Name: "Full Screen", Thumbnail: "fullscreen.png", Kind: AppFullscreen},
		},
		Windows: map[string]WindowConfig{
			string(TaskPortfolio): {
				DisplayName: "My Portfolio",
				Thumbnail:   "portfolio.png",
				Entries: []ExplorerEntry{
					{Name: "UCEE MFB", Type: EntryLink, Path: "https://app.getucee.com"},
					{Name: "Chaindustry", Type: EntryLink, Path: "https://app.chaindustry.io"},
					{Name: "InflowBit (Formerly InflowChange)", Type: EntryLink, Path: "https://inflowbit.com"},
					{Name: "Cloudax", Type: EntryLink, Path: "https://www.cloudax.io"},
				},
			},
			string(TaskResume): {
				DisplayName: "My Resume",
				Thumbnail:   "resume.png",
			},
		},
	}
}

// Window returns the window configuration for a task. Unconfigured
// windows fall back to the task id as display name.
func (c *Config) Window(id TaskID) WindowConfig {
	if w, ok := c.Windows[string(id)]; ok {
		return w
	}
	return WindowConfig{DisplayName: string(id)}
}

// WindowSpec returns the registration payload for a task id.
func (c *Config) WindowSpec(id TaskID) TaskSpec {
	return c.Window(id).Spec(id)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Desktop.Columns < 1 {
		return fmt.Errorf("%w: desktop.columns must be at least 1", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Apps))
	for _, a := range c.Apps {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate app %q", ErrInvalidConfig, a.Name)
		}
		seen[a.Name] = true
	}
	ids := make([]string, 0, len(c.Windows))
	for id := range c.Windows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := c.Windows[id].Validate(id); err != nil {
			return err
		}
	}
	return nil
}
