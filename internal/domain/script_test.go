package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	content := `
steps:
  - action: register
    task: portfolio
  - action: register
    task: resume
    display_name: CV
  - action: minimize
    task: resume
  - action: set-active
    task: portfolio
  - action: click-taskbar
    task: resume
  - action: close
    task: resume
  - action: launch
    app: Github
`
	s, err := ParseScript([]byte(content))
	require.NoError(t, err)
	require.Len(t, s.Steps, 7)
	assert.Equal(t, ScriptStep{Action: KindRegister, Task: TaskPortfolio}, s.Steps[0])
	assert.Equal(t, "CV", s.Steps[1].DisplayName)
	assert.Equal(t, StepLaunch, s.Steps[6].Action)
	assert.Equal(t, "Github", s.Steps[6].App)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "empty script"},
		{"malformed", "steps: [", ""},
		{"unknown field", "steps:\n  - action: close\n    task: resume\n    window: 1\n", "window"},
		{"unknown action", "steps:\n  - action: maximize\n    task: resume\n", "step 1"},
		{"unknown task", "steps:\n  - action: close\n    task: github\n", "unknown task id"},
		{"launch without app", "steps:\n  - action: register\n    task: resume\n  - action: launch\n", "step 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidScript)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}
}

func TestMarshalStateYAML(t *testing.T) {
	out, err := MarshalStateYAML(State{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "tasks: []")

	s := reduceAll(State{}, RegisterAction{Spec: portfolioSpec}, RegisterAction{Spec: resumeSpec})
	out, err = MarshalStateYAML(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "activeTask: resume")
	assert.Contains(t, string(out), "state: open")
	assert.Contains(t, string(out), "x: 70")
}
