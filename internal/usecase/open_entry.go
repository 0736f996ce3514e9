package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/deskfolio/internal/domain"
)

// OpenEntryInput contains the parameters for opening an explorer row.
type OpenEntryInput struct {
	Entry  domain.ExplorerEntry
	TaskID domain.TaskID // Window the row belongs to
}

// OpenEntryOutput contains the result of opening an explorer row.
type OpenEntryOutput struct {
	OpenedURL string // Empty when nothing was opened
}

// OpenEntry is the use case run when a file explorer row is activated.
type OpenEntry struct {
	opener domain.URLOpener
	logger domain.Logger
}

// NewOpenEntry creates a new OpenEntry use case.
func NewOpenEntry(opener domain.URLOpener, logger domain.Logger) *OpenEntry {
	return &OpenEntry{opener: opener, logger: logger}
}

// Execute opens link rows in the browser. Folder rows and links without a
// path are only logged.
func (uc *OpenEntry) Execute(ctx context.Context, in OpenEntryInput) (*OpenEntryOutput, error) {
	if in.Entry.Type != domain.EntryLink || in.Entry.Path == "" {
		uc.logger.Debug(in.TaskID, "explorer", "activated "+in.Entry.Name)
		return &OpenEntryOutput{}, nil
	}

	if err := openURL(ctx, uc.opener, in.Entry.Path); err != nil {
		uc.logger.Warn(in.TaskID, "explorer", fmt.Sprintf("%s: %v", in.Entry.Name, err))
		return nil, fmt.Errorf("open %s: %w", in.Entry.Name, err)
	}
	uc.logger.Info(in.TaskID, "explorer", "opened "+in.Entry.Path)
	return &OpenEntryOutput{OpenedURL: in.Entry.Path}, nil
}
