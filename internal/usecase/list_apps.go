package usecase

import (
	"context"

	"github.com/runoshun/deskfolio/internal/domain"
)

// ListAppsInput contains the parameters for listing desktop icons.
type ListAppsInput struct{}

// AppSummary describes a desktop icon for listing.
type AppSummary struct {
	App    domain.App
	Target string // Window display name or URL
}

// ListAppsOutput contains the desktop icons in grid order.
type ListAppsOutput struct {
	Apps []AppSummary
}

// ListApps is the use case for listing configured desktop icons.
type ListApps struct {
	config *domain.Config
}

// NewListApps creates a new ListApps use case.
func NewListApps(config *domain.Config) *ListApps {
	return &ListApps{config: config}
}

// Execute returns the configured apps with their targets resolved.
func (uc *ListApps) Execute(_ context.Context, _ ListAppsInput) (*ListAppsOutput, error) {
	out := &ListAppsOutput{Apps: make([]AppSummary, 0, len(uc.config.Apps))}
	for _, a := range uc.config.Apps {
		var target string
		switch a.Kind {
		case domain.AppWindow:
			target = uc.config.Window(a.Task).DisplayName
		case domain.AppLink:
			target = a.URL
		case domain.AppFullscreen:
			target = "full screen"
		}
		out.Apps = append(out.Apps, AppSummary{App: a, Target: target})
	}
	return out, nil
}
