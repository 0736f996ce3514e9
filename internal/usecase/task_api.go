// Package usecase contains application use cases.
package usecase

import (
	"github.com/runoshun/deskfolio/internal/domain"
)

// TaskAPI is the query/command facade over the task store used by every
// launcher surface and window. Mutations are synchronous: a read after a
// call observes its effect.
type TaskAPI struct {
	store domain.TaskStore
}

// NewTaskAPI creates a new TaskAPI.
func NewTaskAPI(store domain.TaskStore) *TaskAPI {
	return &TaskAPI{store: store}
}

// GetTask returns the task with the given id, if present.
func (a *TaskAPI) GetTask(id domain.TaskID) (domain.Task, bool) {
	return a.store.State().Task(id)
}

// RegisterTask opens the task, creating it on first use.
func (a *TaskAPI) RegisterTask(spec domain.TaskSpec) {
	a.store.Dispatch(domain.RegisterAction{Spec: spec})
}

// CloseTask removes the task. The active task is left as is.
func (a *TaskAPI) CloseTask(id domain.TaskID) {
	a.store.Dispatch(domain.CloseAction{ID: id})
}

// MinimizeTask minimizes the task when it is active, otherwise focuses it.
func (a *TaskAPI) MinimizeTask(id domain.TaskID) {
	a.store.Dispatch(domain.MinimizeAction{ID: id})
}

// SetActive marks the task as active.
func (a *TaskAPI) SetActive(id domain.TaskID) {
	a.store.Dispatch(domain.SetActiveAction{ID: id})
}

// Tasks returns the live task sequence.
func (a *TaskAPI) Tasks() []domain.Task {
	return a.store.State().Tasks
}

// ActiveTask returns the active task id, which may be empty or dangling.
func (a *TaskAPI) ActiveTask() domain.TaskID {
	return a.store.State().ActiveTask
}

// State returns a snapshot of the whole desktop state.
func (a *TaskAPI) State() domain.State {
	return a.store.State()
}

// Subscribe registers fn to be called with the new state after every mutation.
func (a *TaskAPI) Subscribe(fn func(domain.State)) {
	a.store.Subscribe(fn)
}
