package shell

import (
	"errors"
	"os/exec"

	"github.com/abiosoft/readline"
)

var (
	// ErrInvalidArgument is returned when a line can't be turned into an
	// argument vector.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a command name isn't in any search
	// directory.
	ErrNotFound = exec.ErrNotFound

	// ErrIOFailed is returned when the prompt can't be shown or a line can't
	// be read.
	ErrIOFailed = errors.New("terminal I/O failed")

	// ErrSpawnFailed is returned when no process could be created.
	ErrSpawnFailed = errors.New("could not create process")

	// ErrExecFailed is carried by the ExitStatus of a child that couldn't load
	// its program.
	ErrExecFailed = errors.New("could not execute program")

	// ErrWaitFailed is returned when a child couldn't be reaped.
	ErrWaitFailed = errors.New("could not wait for process")

	// ErrCommandFailed is returned by builtins that ran but didn't succeed.
	ErrCommandFailed = errors.New("command failed")

	// ErrUnsupportedOperation is returned by builtins called with arguments
	// they don't accept.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInterrupt is returned by a LineReader when the user interrupts the
	// line being edited.
	ErrInterrupt = readline.ErrInterrupt
)

// IsFatal reports whether err should end the session.
func IsFatal(err error) bool {
	return errors.Is(err, ErrIOFailed) || errors.Is(err, ErrSpawnFailed)
}
