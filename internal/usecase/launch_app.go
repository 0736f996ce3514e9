package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/deskfolio/internal/domain"
)

// LaunchAppInput contains the parameters for launching a desktop icon.
type LaunchAppInput struct {
	App domain.App
}

// LaunchAppOutput contains the result of launching a desktop icon.
// Fields are ordered to minimize memory padding.
type LaunchAppOutput struct {
	Task             *domain.Task // Registered task (window apps)
	OpenedURL        string       // Opened URL (link apps)
	ToggleFullscreen bool         // The caller should flip full screen mode
}

// LaunchApp is the use case run when a desktop icon is activated.
type LaunchApp struct {
	tasks  *TaskAPI
	config *domain.Config
	opener domain.URLOpener
	logger domain.Logger
}

// NewLaunchApp creates a new LaunchApp use case.
func NewLaunchApp(tasks *TaskAPI, config *domain.Config, opener domain.URLOpener, logger domain.Logger) *LaunchApp {
	return &LaunchApp{
		tasks:  tasks,
		config: config,
		opener: opener,
		logger: logger,
	}
}

// Execute performs the icon's action.
// Window apps register their task, link apps open their URL (an empty URL
// does nothing), full screen apps ask the caller to toggle the mode.
func (uc *LaunchApp) Execute(ctx context.Context, in LaunchAppInput) (*LaunchAppOutput, error) {
	switch in.App.Kind {
	case domain.AppWindow:
		if !in.App.Task.IsValid() {
			return nil, fmt.Errorf("launch %s: %w %q", in.App.Name, domain.ErrUnknownTaskID, in.App.Task)
		}
		uc.tasks.RegisterTask(uc.config.WindowSpec(in.App.Task))
		task, _ := uc.tasks.GetTask(in.App.Task)
		return &LaunchAppOutput{Task: &task}, nil

	case domain.AppLink:
		if in.App.URL == "" {
			return &LaunchAppOutput{}, nil
		}
		if err := openURL(ctx, uc.opener, in.App.URL); err != nil {
			uc.logger.Warn("", "launch", fmt.Sprintf("%s: %v", in.App.Name, err))
			return nil, fmt.Errorf("launch %s: %w", in.App.Name, err)
		}
		uc.logger.Info("", "launch", fmt.Sprintf("launched %s: %s", in.App.Name, in.App.URL))
		return &LaunchAppOutput{OpenedURL: in.App.URL}, nil

	case domain.AppFullscreen:
		return &LaunchAppOutput{ToggleFullscreen: true}, nil
	}
	return nil, fmt.Errorf("launch %s: %w", in.App.Name, domain.ErrUnknownApp)
}

// openURL opens the URL with the given opener.
func openURL(ctx context.Context, opener domain.URLOpener, url string) error {
	if opener == nil {
		return domain.ErrNoOpener
	}
	return opener.Open(ctx, url)
}
