// Package domain contains core business entities and interfaces.
package domain

// TaskID identifies a window that can be opened on the desktop.
// The set of ids is closed; see KnownTaskIDs.
type TaskID string

// Known window identifiers.
const (
	TaskPortfolio TaskID = "portfolio"
	TaskResume    TaskID = "resume"
)

// KnownTaskIDs returns all valid task identifiers in display order.
func KnownTaskIDs() []TaskID {
	return []TaskID{TaskPortfolio, TaskResume}
}

// IsValid returns true if the id belongs to the known set.
func (id TaskID) IsValid() bool {
	switch id {
	case TaskPortfolio, TaskResume:
		return true
	}
	return false
}

// CascadeOffset is the distance between the initial coordinates of
// consecutively created windows, on both axes.
const CascadeOffset = 70

// Coordinates is a window position offset.
type Coordinates struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Cascade returns the coordinates of a window opened after c.
func (c Coordinates) Cascade() Coordinates {
	return Coordinates{X: c.X + CascadeOffset, Y: c.Y + CascadeOffset}
}

// Task represents one open or minimized window.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID                 TaskID      `json:"id" yaml:"id"`
	DisplayName        string      `json:"displayName" yaml:"displayName"`
	Thumbnail          string      `json:"thumbnail" yaml:"thumbnail"`
	State              TaskState   `json:"state" yaml:"state"`
	InitialCoordinates Coordinates `json:"initialCoordinates" yaml:"initialCoordinates"`
}

// IsOpen returns true if the window is visible.
func (t Task) IsOpen() bool {
	return t.State == TaskOpen
}

// TaskSpec is the payload used to register a task.
type TaskSpec struct {
	ID          TaskID
	Thumbnail   string
	DisplayName string
}

// Spec returns the registration payload that recreates this task.
func (t Task) Spec() TaskSpec {
	return TaskSpec{ID: t.ID, Thumbnail: t.Thumbnail, DisplayName: t.DisplayName}
}
