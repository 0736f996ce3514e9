package domain

import "errors"

// Domain errors.
// The task store itself never fails; these cover configuration, replay
// scripts and external launches.
var (
	ErrUnknownTaskID = errors.New("unknown task id")
	ErrUnknownApp    = errors.New("unknown app")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConfigExists  = errors.New("config file already exists")
	ErrInvalidScript = errors.New("invalid replay script")
	ErrNoOpener      = errors.New("no URL opener available")
	ErrEmptyURL      = errors.New("url cannot be empty")
)
