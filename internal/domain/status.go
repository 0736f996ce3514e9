package domain

// TaskState represents the visibility state of a task.
// There is no closed state: closing a task removes it.
type TaskState string

const (
	TaskOpen      TaskState = "open"      // Window is shown
	TaskMinimized TaskState = "minimized" // Window is hidden, icon stays on the taskbar
)

// IsValid returns true if the state is a known value.
func (s TaskState) IsValid() bool {
	return s == TaskOpen || s == TaskMinimized
}

// Display returns a human-readable representation of the state.
func (s TaskState) Display() string {
	switch s {
	case TaskOpen:
		return "Open"
	case TaskMinimized:
		return "Minimized"
	default:
		return string(s)
	}
}
