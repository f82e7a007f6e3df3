//go:build unix

package shell

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// isSpawnError reports whether the process creation primitive failed, as
// opposed to the child failing to load its program.
func isSpawnError(err error) bool {
	return errors.Is(err, unix.EAGAIN) ||
		errors.Is(err, unix.ENOMEM) ||
		errors.Is(err, unix.ENOSYS)
}

func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
