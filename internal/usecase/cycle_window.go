package usecase

import (
	"context"

	"github.com/runoshun/deskfolio/internal/domain"
)

// CycleWindowInput contains the parameters for cycling window focus.
type CycleWindowInput struct {
	Reverse bool // Cycle towards the start of the sequence
}

// CycleWindowOutput contains the result of cycling window focus.
type CycleWindowOutput struct {
	Active domain.TaskID // New active task, empty if no window is open
}

// CycleWindow moves focus to the next open window.
type CycleWindow struct {
	tasks *TaskAPI
}

// NewCycleWindow creates a new CycleWindow use case.
func NewCycleWindow(tasks *TaskAPI) *CycleWindow {
	return &CycleWindow{tasks: tasks}
}

// Execute activates the open window after the foreground one, wrapping
// around. With a single open window it is re-activated.
func (uc *CycleWindow) Execute(_ context.Context, in CycleWindowInput) (*CycleWindowOutput, error) {
	state := uc.tasks.State()
	open := state.OpenTasks()
	if len(open) == 0 {
		return &CycleWindowOutput{}, nil
	}

	current := -1
	if fg, ok := state.Foreground(); ok {
		for i, t := range open {
			if t.ID == fg.ID {
				current = i
				break
			}
		}
	}

	step := 1
	if in.Reverse {
		step = -1
	}
	next := (current + step + len(open)) % len(open)
	if current < 0 {
		next = 0
		if in.Reverse {
			next = len(open) - 1
		}
	}

	uc.tasks.SetActive(open[next].ID)
	return &CycleWindowOutput{Active: open[next].ID}, nil
}
