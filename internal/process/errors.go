package process

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandNotFound indicates the program could not be located on PATH.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCanceled indicates the run was interrupted while the command was running.
	ErrCanceled = errors.New("command canceled")
)

// ExitError reports a command that ran and exited with a non-zero status.
type ExitError struct {
	Command  Command
	ExitCode int
	// Stderr is the tail of the command's standard error, if captured.
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("the execution of the command %s failed with status %d", e.Command, e.ExitCode)
}
