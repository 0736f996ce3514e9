package domain

// Action is a command processed by Reduce.
// All action types implement this sealed interface.
//
//sumtype:decl
type Action interface {
	// Kind returns the action name used in logs and replay scripts.
	Kind() string
	// Target returns the task the action refers to.
	Target() TaskID
	sealed()
}

// Action kinds.
const (
	KindRegister  = "register"
	KindClose     = "close"
	KindMinimize  = "minimize"
	KindSetActive = "set-active"
)

// RegisterAction opens a task, creating it if needed.
type RegisterAction struct {
	Spec TaskSpec
}

func (RegisterAction) Kind() string     { return KindRegister }
func (a RegisterAction) Target() TaskID { return a.Spec.ID }
func (RegisterAction) sealed()          {}

// CloseAction removes a task.
type CloseAction struct {
	ID TaskID
}

func (CloseAction) Kind() string     { return KindClose }
func (a CloseAction) Target() TaskID { return a.ID }
func (CloseAction) sealed()          {}

// MinimizeAction minimizes the active task or focuses another one.
type MinimizeAction struct {
	ID TaskID
}

func (MinimizeAction) Kind() string     { return KindMinimize }
func (a MinimizeAction) Target() TaskID { return a.ID }
func (MinimizeAction) sealed()          {}

// SetActiveAction sets the active task.
type SetActiveAction struct {
	ID TaskID
}

func (SetActiveAction) Kind() string     { return KindSetActive }
func (a SetActiveAction) Target() TaskID { return a.ID }
func (SetActiveAction) sealed()          {}
