package domain

import "errors"

var (
	// ErrNoResource is returned when the invocation carries no path.
	ErrNoResource = errors.New("select a file or folder to run a command on")
	// ErrResourceInaccessible is returned when the path cannot be stat'ed.
	ErrResourceInaccessible = errors.New("cannot access resource")
	// ErrCommandNotEligible is returned when a preselected key does not apply to the resource.
	ErrCommandNotEligible = errors.New("command does not apply to this resource")
	// ErrNotInteractive is returned when a picker is needed but stdin is not a terminal.
	ErrNotInteractive = errors.New("interactive selection requires a terminal; pass --command")
)
