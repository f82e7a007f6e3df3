package shell

import (
	"errors"
	"fmt"
)

// Command is a line resolved to the thing that runs it, either a
// *BuiltinCommand or an *ExternalCommand.
type Command interface {
	// Args returns the argument vector the command runs with.
	Args() []string

	// Run executes the command in the shell.
	Run(s *Shell) error
}

// BuiltinCommand runs a builtin in the shell process.
type BuiltinCommand struct {
	Argv    []string
	Builtin Builtin
}

var _ Command = (*BuiltinCommand)(nil)

func (c *BuiltinCommand) Args() []string {
	return c.Argv
}

// Run implements Command.Run.
func (c *BuiltinCommand) Run(s *Shell) error {
	err := c.Builtin.Main(s, c.Argv)
	s.log.Builtin(c.Argv, err)
	return err
}

// ExternalCommand runs a program as a child process.
type ExternalCommand struct {
	// Path is the program to execute.
	Path string
	// Argv is passed to the program, Argv[0] is Path.
	Argv []string
}

var _ Command = (*ExternalCommand)(nil)

func (c *ExternalCommand) Args() []string {
	return c.Argv
}

// Run implements Command.Run. The child is started in the working directory
// of the shell with an empty environment and the standard streams of the
// shell, and is always waited for before Run returns.
func (c *ExternalCommand) Run(s *Shell) error {
	// Children fall back to the process working directory if it's unknown.
	workDir, _ := s.VirtualOS.Getwd()

	s.log.RunCommand(c.Argv, c.Path)
	proc, err := s.launcher.Start(c.Path, c.Argv, &ProcAttr{
		Dir:   workDir,
		Env:   []string{},
		Files: s.VirtualOS,
	})
	if err != nil {
		if !errors.Is(err, ErrSpawnFailed) {
			err = fmt.Errorf("%w: %w", ErrSpawnFailed, err)
		}
		s.log.SpawnFailed(c.Argv, err)
		s.Errorf("%s: %v", ProgramName, err)
		return err
	}

	status, err := proc.Wait()
	if err != nil {
		if !errors.Is(err, ErrWaitFailed) {
			err = fmt.Errorf("%w: %w", ErrWaitFailed, err)
		}
		s.log.WaitFailed(c.Argv, err)
		s.Errorf("%s: %v", ProgramName, err)
		return err
	}

	if status.Err != nil {
		s.log.ExecFailed(c.Argv, c.Path, status.Err)
		s.Errorf("%s: %v", c.Argv[0], status.Err)
		return status.Err
	}

	s.log.CommandExit(c.Argv, status.Code)
	return nil
}
