package domain

// Reduce applies an action to a state and returns the new state.
// It never modifies its input and is defined for every input: actions
// referring to absent tasks are no-ops.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case RegisterAction:
		return reduceRegister(s, a.Spec)
	case CloseAction:
		return reduceClose(s, a.ID)
	case MinimizeAction:
		return reduceMinimize(s, a.ID)
	case SetActiveAction:
		next := s.Clone()
		next.ActiveTask = a.ID
		return next
	}
	return s
}

func reduceRegister(s State, spec TaskSpec) State {
	next := s.Clone()
	next.ActiveTask = spec.ID

	// Reopen in place; coordinates and labels stay as created.
	if i := next.index(spec.ID); i >= 0 {
		next.Tasks[i].State = TaskOpen
		return next
	}

	coords := Coordinates{}
	if n := len(next.Tasks); n > 0 {
		coords = next.Tasks[n-1].InitialCoordinates.Cascade()
	}
	next.Tasks = append(next.Tasks, Task{
		ID:                 spec.ID,
		DisplayName:        spec.DisplayName,
		Thumbnail:          spec.Thumbnail,
		State:              TaskOpen,
		InitialCoordinates: coords,
	})
	return next
}

// reduceClose leaves ActiveTask untouched even when it names the closed task.
func reduceClose(s State, id TaskID) State {
	next := State{ActiveTask: s.ActiveTask, Tasks: make([]Task, 0, len(s.Tasks))}
	for _, t := range s.Tasks {
		if t.ID != id {
			next.Tasks = append(next.Tasks, t)
		}
	}
	return next
}

// reduceMinimize doubles as "bring to front": only the active task is
// minimized, any other id becomes active.
func reduceMinimize(s State, id TaskID) State {
	next := s.Clone()
	if id != s.ActiveTask {
		next.ActiveTask = id
		return next
	}
	if i := next.index(id); i >= 0 {
		next.Tasks[i].State = TaskMinimized
	}
	return next
}
