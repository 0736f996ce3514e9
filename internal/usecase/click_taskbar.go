package usecase

import (
	"context"

	"github.com/runoshun/deskfolio/internal/domain"
)

// ClickTaskbarInput contains the parameters for clicking a taskbar icon.
type ClickTaskbarInput struct {
	TaskID domain.TaskID
}

// ClickTaskbarOutput contains the result of clicking a taskbar icon.
type ClickTaskbarOutput struct {
	Task   *domain.Task // Task after the click (nil if it was not on the taskbar)
	Action string       // Dispatched action kind, empty when nothing happened
}

// ClickTaskbar is the use case for clicking a task's taskbar icon.
type ClickTaskbar struct {
	tasks *TaskAPI
}

// NewClickTaskbar creates a new ClickTaskbar use case.
func NewClickTaskbar(tasks *TaskAPI) *ClickTaskbar {
	return &ClickTaskbar{tasks: tasks}
}

// Execute minimizes an open task (which focuses it instead when it is not
// the active one) and reopens a minimized task.
func (uc *ClickTaskbar) Execute(_ context.Context, in ClickTaskbarInput) (*ClickTaskbarOutput, error) {
	task, ok := uc.tasks.GetTask(in.TaskID)
	if !ok {
		return &ClickTaskbarOutput{}, nil
	}

	var kind string
	if task.IsOpen() {
		uc.tasks.MinimizeTask(task.ID)
		kind = domain.KindMinimize
	} else {
		uc.tasks.RegisterTask(task.Spec())
		kind = domain.KindRegister
	}

	task, _ = uc.tasks.GetTask(in.TaskID)
	return &ClickTaskbarOutput{Task: &task, Action: kind}, nil
}
