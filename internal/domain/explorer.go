package domain

import "fmt"

// EntryType is the kind of row shown in a file explorer window.
type EntryType string

const (
	EntryFolder EntryType = "folder"
	EntryLink   EntryType = "link"
)

// Display returns the text shown in the Type column.
func (t EntryType) Display() string {
	switch t {
	case EntryFolder:
		return "File Folder"
	case EntryLink:
		return "External Link"
	default:
		return ""
	}
}

// ExplorerEntry is one row of a file explorer window.
type ExplorerEntry struct {
	Name string    `toml:"name"`
	Type EntryType `toml:"type"`
	Path string    `toml:"path,omitempty"`
}

// WindowConfig describes the content of a window.
type WindowConfig struct {
	DisplayName string          `toml:"display_name"`
	Thumbnail   string          `toml:"thumbnail"`
	Entries     []ExplorerEntry `toml:"entries,omitempty"`
}

// Spec returns the registration payload for the window.
func (w WindowConfig) Spec(id TaskID) TaskSpec {
	return TaskSpec{ID: id, Thumbnail: w.Thumbnail, DisplayName: w.DisplayName}
}

// Validate checks the window entries.
func (w WindowConfig) Validate(id string) error {
	if !TaskID(id).IsValid() {
		return fmt.Errorf("%w: [windows.%s]: %w", ErrInvalidConfig, id, ErrUnknownTaskID)
	}
	for i, e := range w.Entries {
		if e.Name == "" {
			return fmt.Errorf("%w: [windows.%s] entry %d has no name", ErrInvalidConfig, id, i+1)
		}
		if e.Type != EntryFolder && e.Type != EntryLink {
			return fmt.Errorf("%w: [windows.%s] entry %q has unknown type %q", ErrInvalidConfig, id, e.Name, e.Type)
		}
	}
	return nil
}
