package domain

import "errors"

var (
	// ErrExecutionBlocked means the command is dangerous and will not run
	// under any circumstances.
	ErrExecutionBlocked = errors.New("command execution blocked")

	// ErrConfirmationRequired means the command needs confirm=true to run.
	ErrConfirmationRequired = errors.New("command requires confirmation")
)
