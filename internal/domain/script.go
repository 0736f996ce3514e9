package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Script step kinds beyond the four store actions.
const (
	StepClickTaskbar = "click-taskbar"
	StepLaunch       = "launch"
)

// ScriptStep is one user intent in a replay script.
// Task is used by store actions and taskbar clicks, App by launches.
type ScriptStep struct {
	Action      string `yaml:"action"`
	Task        TaskID `yaml:"task,omitempty"`
	App         string `yaml:"app,omitempty"`
	DisplayName string `yaml:"display_name,omitempty"` // Register only; overrides the window config
	Thumbnail   string `yaml:"thumbnail,omitempty"`    // Register only; overrides the window config
}

// Script is a sequence of steps replayed against a fresh desktop.
type Script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ParseScript parses a YAML replay script.
//
// Format:
//
//	steps:
//	  - action: register
//	    task: portfolio
//	  - action: minimize
//	    task: portfolio
//	  - action: launch
//	    app: My Resume
func ParseScript(content []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty script", ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Validate checks that the step names a known action and its target.
func (s ScriptStep) Validate() error {
	switch s.Action {
	case KindRegister, KindClose, KindMinimize, KindSetActive, StepClickTaskbar:
		if !s.Task.IsValid() {
			return fmt.Errorf("%w: %s: %w %q", ErrInvalidScript, s.Action, ErrUnknownTaskID, s.Task)
		}
	case StepLaunch:
		if s.App == "" {
			return fmt.Errorf("%w: launch requires an app name", ErrInvalidScript)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidScript, s.Action)
	}
	return nil
}

// MarshalStateYAML renders a state snapshot as YAML.
func MarshalStateYAML(s State) ([]byte, error) {
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	return yaml.Marshal(s)
}
