package domain

// State is the snapshot owned by the task store.
type State struct {
	Tasks      []Task `json:"tasks" yaml:"tasks"`           // Insertion ordered, unique by ID
	ActiveTask TaskID `json:"activeTask" yaml:"activeTask"` // May be empty or dangle after close
}

// Task returns the task with the given id.
func (s State) Task(id TaskID) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.Tasks[i], true
	}
	return Task{}, false
}

// Active returns the active task. A dangling ActiveTask resolves to
// no task.
func (s State) Active() (Task, bool) {
	if s.ActiveTask == "" {
		return Task{}, false
	}
	return s.Task(s.ActiveTask)
}

// IsOpen reports whether the task exists and is open.
func (s State) IsOpen(id TaskID) bool {
	t, ok := s.Task(id)
	return ok && t.IsOpen()
}

// OpenTasks returns the open tasks in sequence order.
func (s State) OpenTasks() []Task {
	var open []Task
	for _, t := range s.Tasks {
		if t.IsOpen() {
			open = append(open, t)
		}
	}
	return open
}

// Foreground returns the window drawn on top: the active task when it
// resolves to an open task, otherwise the last open task.
func (s State) Foreground() (Task, bool) {
	if t, ok := s.Active(); ok && t.IsOpen() {
		return t, true
	}
	open := s.OpenTasks()
	if len(open) == 0 {
		return Task{}, false
	}
	return open[len(open)-1], true
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	return State{Tasks: tasks, ActiveTask: s.ActiveTask}
}

func (s State) index(id TaskID) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
