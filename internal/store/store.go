// Package store owns the desktop task state.
// It applies actions with domain.Reduce and notifies subscribers after
// every dispatch.
package store

import (
	"fmt"
	"sync"

	"github.com/runoshun/deskfolio/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Listener is called with the new state after each dispatch.
type Listener = func(domain.State)

// Store holds the single shared desktop state.
// Fields are ordered to minimize memory padding.
type Store struct {
	logger    domain.Logger
	listeners []Listener
	state     domain.State
	mu        sync.Mutex
}

// New creates an empty store. A nil logger disables logging.
func New(logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{logger: logger}
}

// NewWithState creates a store seeded with an existing state.
func NewWithState(logger domain.Logger, s domain.State) *Store {
	st := New(logger)
	st.state = s.Clone()
	return st
}

// Dispatch applies the action and returns the resulting state.
func (s *Store) Dispatch(action domain.Action) domain.State {
	s.mu.Lock()
	prev := s.state
	next := domain.Reduce(prev, action)
	s.state = next
	listeners := s.listeners
	s.mu.Unlock()

	s.logTransition(action, prev, next)

	for _, l := range listeners {
		l(next.Clone())
	}
	return next.Clone()
}

// State returns a snapshot of the current state.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a listener called after every dispatch.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// logTransition writes the action at debug level and lifecycle changes
// at info level.
func (s *Store) logTransition(action domain.Action, prev, next domain.State) {
	id := action.Target()
	s.logger.Debug(id, "store", fmt.Sprintf("dispatch %s", action.Kind()))

	before, existed := prev.Task(id)
	after, exists := next.Task(id)
	switch {
	case !existed && exists:
		s.logger.Info(id, "window", fmt.Sprintf("opened at %d,%d", after.InitialCoordinates.X, after.InitialCoordinates.Y))
	case existed && !exists:
		s.logger.Info(id, "window", "closed")
	case existed && before.State != after.State:
		s.logger.Info(id, "window", string(after.State))
	}
	if prev.ActiveTask != next.ActiveTask {
		s.logger.Debug(next.ActiveTask, "focus", fmt.Sprintf("active task %q -> %q", prev.ActiveTask, next.ActiveTask))
	}
}
