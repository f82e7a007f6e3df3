//go:build !unix

package shell

import "os"

func isSpawnError(err error) bool {
	return false
}

func exitCode(state *os.ProcessState) int {
	return state.ExitCode()
}
