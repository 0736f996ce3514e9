// Package tui provides the terminal desktop for deskfolio.
package tui

// Focus is the desktop zone receiving key input.
type Focus int

const (
	FocusDesktop   Focus = iota // Desktop icon grid
	FocusTaskbar                // Start button and task icons
	FocusWindow                 // Foreground window rows
	FocusStartMenu              // Start menu popup
)

// String returns the string representation of the focus zone.
func (f Focus) String() string {
	switch f {
	case FocusDesktop:
		return "desktop"
	case FocusTaskbar:
		return "taskbar"
	case FocusWindow:
		return "window"
	case FocusStartMenu:
		return "start_menu"
	default:
		return "unknown"
	}
}
