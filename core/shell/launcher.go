package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/josephlewis42/minish/core/vos"
)

// ProcAttr holds the attributes a child process is started with.
type ProcAttr struct {
	// Dir is the working directory of the child, if empty the child uses the
	// working directory of the shell process.
	Dir string
	// Env is the environment of the child. A nil Env is treated as empty,
	// children never inherit the environment of the shell process.
	Env []string
	// Files holds the standard streams of the child.
	Files vos.VIO
}

// Launcher starts child processes.
type Launcher interface {
	// Start creates exactly one child running the program at path with argv.
	// The error wraps ErrSpawnFailed if no process could be created. Programs
	// that can't be loaded still produce a Process, the failure is reported by
	// its ExitStatus.
	Start(path string, argv []string, attr *ProcAttr) (Process, error)
}

// Process is a started child. Wait must be called exactly once.
type Process interface {
	Wait() (*ExitStatus, error)
}

// ExitStatus is the outcome of a reaped child.
type ExitStatus struct {
	// Code is the exit code, 128+N for children killed by signal N.
	Code int
	// Err wraps ErrExecFailed if the program couldn't be executed.
	Err error
}

// Success reports whether the child ran and exited with code zero.
func (es *ExitStatus) Success() bool {
	return es.Err == nil && es.Code == 0
}

// ExecLauncher starts host processes with os/exec.
type ExecLauncher struct{}

var _ Launcher = ExecLauncher{}

// Start implements Launcher.Start.
func (ExecLauncher) Start(path string, argv []string, attr *ProcAttr) (Process, error) {
	if attr == nil {
		attr = &ProcAttr{}
	}

	env := attr.Env
	if env == nil {
		env = []string{}
	}

	cmd := &exec.Cmd{
		Path: path,
		Args: argv,
		Env:  env,
		Dir:  attr.Dir,
	}
	if attr.Files != nil {
		cmd.Stdin = attr.Files.Stdin()
		cmd.Stdout = attr.Files.Stdout()
		cmd.Stderr = attr.Files.Stderr()
	}

	if err := cmd.Start(); err != nil {
		if isSpawnError(err) {
			return nil, fmt.Errorf("%w: %w", ErrSpawnFailed, err)
		}
		return &failedProcess{status: execFailure(err)}, nil
	}

	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() (*ExitStatus, error) {
	err := p.cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return &ExitStatus{Code: exitCode(p.cmd.ProcessState)}, nil
	case errors.As(err, &exitErr):
		return &ExitStatus{Code: exitCode(exitErr.ProcessState)}, nil
	default:
		return nil, fmt.Errorf("%w: %w", ErrWaitFailed, err)
	}
}

// failedProcess is a child that never ran its program.
type failedProcess struct {
	status *ExitStatus
}

func (p *failedProcess) Wait() (*ExitStatus, error) {
	return p.status, nil
}

// execFailure converts a start error into the status a shell reports for it:
// 127 if the program doesn't exist and 126 otherwise.
func execFailure(err error) *ExitStatus {
	cause := err
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		cause = pathErr.Err
	}

	code := 126
	if errors.Is(cause, fs.ErrNotExist) {
		code = 127
	}

	return &ExitStatus{
		Code: code,
		Err:  fmt.Errorf("%w: %w", ErrExecFailed, cause),
	}
}
