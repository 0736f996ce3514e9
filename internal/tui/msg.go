package tui

import "time"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick is sent every second to refresh the taskbar clock.
type MsgTick struct {
	Now time.Time
}

func (MsgTick) sealed() {}

// MsgOpened is sent when an external link was handed to the browser.
type MsgOpened struct {
	URL string // Empty when the link had no target
}

func (MsgOpened) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError clears the error line.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
