package domain

import "fmt"

// AppKind selects what a desktop icon does when launched.
type AppKind string

const (
	AppWindow     AppKind = "window"     // Registers a task
	AppLink       AppKind = "link"       // Opens an external URL
	AppFullscreen AppKind = "fullscreen" // Toggles full screen
)

// IsValid returns true if the kind is known.
func (k AppKind) IsValid() bool {
	switch k {
	case AppWindow, AppLink, AppFullscreen:
		return true
	}
	return false
}

// App is a desktop icon.
type App struct {
	Name      string  `toml:"name"`
	Thumbnail string  `toml:"thumbnail"`
	Kind      AppKind `toml:"kind"`
	Task      TaskID  `toml:"task,omitempty"` // Window kind only
	URL       string  `toml:"url,omitempty"`  // Link kind only; empty does nothing
}

// Label returns the text under the icon. Full screen icons flip their
// label with the current mode.
func (a App) Label(fullscreen bool) string {
	if a.Kind != AppFullscreen {
		return a.Name
	}
	if fullscreen {
		return "Exit Full Screen"
	}
	return "Toggle Full Screen"
}

// Icon returns the thumbnail for the current mode.
func (a App) Icon(fullscreen bool) string {
	if a.Kind == AppFullscreen && fullscreen {
		return "exit-fullscreen.png"
	}
	return a.Thumbnail
}

// Validate checks that the app is well formed.
func (a App) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: app name cannot be empty", ErrInvalidConfig)
	}
	if !a.Kind.IsValid() {
		return fmt.Errorf("%w: app %q has unknown kind %q", ErrInvalidConfig, a.Name, a.Kind)
	}
	if a.Kind == AppWindow && !a.Task.IsValid() {
		return fmt.Errorf("%w: app %q: %w %q", ErrInvalidConfig, a.Name, ErrUnknownTaskID, a.Task)
	}
	return nil
}

// FindApp returns the app with the given name.
func FindApp(apps []App, name string) (App, error) {
	for _, a := range apps {
		if a.Name == name {
			return a, nil
		}
	}
	return App{}, fmt.Errorf("%w: %s", ErrUnknownApp, name)
}
