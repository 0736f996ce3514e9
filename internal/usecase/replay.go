package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/deskfolio/internal/domain"
)

// ReplayInput contains the parameters for replaying a script.
type ReplayInput struct {
	Content []byte // YAML script
}

// ReplayOutput contains the result of a replay.
type ReplayOutput struct {
	Opened []string     // URLs opened by launch steps
	State  domain.State // Final desktop state
	Steps  int          // Number of steps executed
}

// Replay drives the task API from a script of user intents.
type Replay struct {
	tasks  *TaskAPI
	launch *LaunchApp
	click  *ClickTaskbar
	config *domain.Config
	logger domain.Logger
}

// NewReplay creates a new Replay use case.
func NewReplay(tasks *TaskAPI, launch *LaunchApp, click *ClickTaskbar, config *domain.Config, logger domain.Logger) *Replay {
	return &Replay{
		tasks:  tasks,
		launch: launch,
		click:  click,
		config: config,
		logger: logger,
	}
}

// Execute parses the script and runs every step in order.
// The script is validated up front; no step runs if any step is invalid.
func (uc *Replay) Execute(ctx context.Context, in ReplayInput) (*ReplayOutput, error) {
	script, err := domain.ParseScript(in.Content)
	if err != nil {
		return nil, err
	}

	apps, err := uc.resolveApps(script.Steps)
	if err != nil {
		return nil, err
	}

	out := &ReplayOutput{}
	for i, step := range script.Steps {
		opened, err := uc.runStep(ctx, step, apps[i])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		if opened != "" {
			out.Opened = append(out.Opened, opened)
		}
		out.Steps++
	}
	uc.logger.Info("", "replay", fmt.Sprintf("replayed %d steps", out.Steps))

	out.State = uc.tasks.State()
	return out, nil
}

// resolveApps looks up the app of every launch step, indexed by step.
func (uc *Replay) resolveApps(steps []domain.ScriptStep) ([]domain.App, error) {
	apps := make([]domain.App, len(steps))
	for i, step := range steps {
		if step.Action != domain.StepLaunch {
			continue
		}
		app, err := domain.FindApp(uc.config.Apps, step.App)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		apps[i] = app
	}
	return apps, nil
}

// runStep executes one step and returns the URL it opened, if any.
// app is the resolved app of a launch step.
func (uc *Replay) runStep(ctx context.Context, step domain.ScriptStep, app domain.App) (string, error) {
	switch step.Action {
	case domain.KindRegister:
		spec := uc.config.WindowSpec(step.Task)
		if step.DisplayName != "" {
			spec.DisplayName = step.DisplayName
		}
		if step.Thumbnail != "" {
			spec.Thumbnail = step.Thumbnail
		}
		uc.tasks.RegisterTask(spec)
	case domain.KindClose:
		uc.tasks.CloseTask(step.Task)
	case domain.KindMinimize:
		uc.tasks.MinimizeTask(step.Task)
	case domain.KindSetActive:
		uc.tasks.SetActive(step.Task)
	case domain.StepClickTaskbar:
		if _, err := uc.click.Execute(ctx, ClickTaskbarInput{TaskID: step.Task}); err != nil {
			return "", err
		}
	case domain.StepLaunch:
		out, err := uc.launch.Execute(ctx, LaunchAppInput{App: app})
		if err != nil {
			return "", err
		}
		return out.OpenedURL, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", domain.ErrInvalidScript, step.Action)
	}
	return "", nil
}
