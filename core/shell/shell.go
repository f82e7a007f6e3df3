package shell

import (
	"io"
	"strings"

	"github.com/josephlewis42/minish/core/logger"
	"github.com/josephlewis42/minish/core/vos"
)

const (
	// ProgramName prefixes reports that aren't about a specific command.
	ProgramName = "minish"

	// DefaultPrompt is shown when no prompt is configured.
	DefaultPrompt = "> "

	EnvHome = "HOME"
	EnvPath = "PATH"
)

// Config holds the optional collaborators of a Shell, zero values are
// replaced by defaults.
type Config struct {
	// Prompt is displayed before each line, defaults to DefaultPrompt.
	Prompt string
	// Reader defaults to a PlainReader on the standard streams.
	Reader LineReader
	// Launcher defaults to ExecLauncher.
	Launcher Launcher
	// Logger defaults to discarding events.
	Logger *logger.SessionLogger
	// Builtins defaults to DefaultBuiltins.
	Builtins BuiltinTable
	// Color enables colored error reports.
	Color bool
}

// Shell reads command lines and runs them one at a time.
type Shell struct {
	VirtualOS vos.VOS

	prompt   string
	reader   LineReader
	launcher Launcher
	log      *logger.SessionLogger
	builtins BuiltinTable
	resolver *Resolver
	printer  *Printer
}

// NewShell creates a shell on virtualOS. The search path is read from PATH
// once and doesn't change for the life of the shell.
func NewShell(virtualOS vos.VOS, cfg Config) *Shell {
	s := &Shell{
		VirtualOS: virtualOS,
		prompt:    cfg.Prompt,
		reader:    cfg.Reader,
		launcher:  cfg.Launcher,
		log:       cfg.Logger,
		builtins:  cfg.Builtins,
		resolver:  NewResolver(virtualOS, SplitSearchPath(virtualOS.Getenv(EnvPath))),
		printer:   NewPrinter(virtualOS.Stderr(), cfg.Color),
	}

	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.reader == nil {
		s.reader = NewPlainReader(virtualOS.Stdin(), virtualOS.Stdout())
	}
	if s.launcher == nil {
		s.launcher = ExecLauncher{}
	}
	if s.log == nil {
		s.log = logger.NewNop().NewSession()
	}
	if s.builtins == nil {
		s.builtins = DefaultBuiltins()
	}

	return s
}

// SearchPath returns the directories commands are resolved in.
func (s *Shell) SearchPath() []string {
	return s.resolver.SearchPath()
}

// Builtins returns the builtins of the shell.
func (s *Shell) Builtins() BuiltinTable {
	return s.builtins
}

// Errorf reports an error on the standard error of the shell.
func (s *Shell) Errorf(format string, a ...interface{}) {
	s.printer.Errorf(format, a...)
}

// Run prompts for and runs lines until the input ends or a fatal error
// occurs, returning the exit status of the session.
func (s *Shell) Run() int {
	workDir, _ := s.VirtualOS.Getwd()
	s.log.SessionStart(workDir, s.resolver.SearchPath())

	status := s.loop()
	s.log.SessionEnd(status)
	return status
}

func (s *Shell) loop() int {
	for {
		if err := s.reader.SetPrompt(s.prompt); err != nil {
			s.log.ReadFailed(err)
			s.Errorf("%s: %v", ProgramName, err)
			return 1
		}

		line, err := s.reader.Readline()
		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == ErrInterrupt:
			continue // Interrupt clears the line.

		case err != nil:
			s.log.ReadFailed(err)
			s.Errorf("%s: %v", ProgramName, err)
			return 1
		}

		if err := s.RunLine(line); IsFatal(err) {
			return 1
		}
	}
}

// RunLine tokenizes, resolves and runs a single line. Failures are reported
// to the user before they're returned, IsFatal tells whether the session can
// continue.
func (s *Shell) RunLine(line string) error {
	argv, err := Tokenize(line)
	if err != nil {
		s.log.InvalidInput(err)
		s.Errorf("%s: %v", ProgramName, err)
		return err
	}

	if len(argv) == 0 {
		return nil
	}

	cmd, err := s.Resolve(argv)
	if err != nil {
		s.log.UnknownCommand(argv)
		s.Errorf("%s: command not found", argv[0])
		return err
	}

	return cmd.Run(s)
}

// Resolve decides what runs argv. Builtins take precedence, then names
// containing a slash are used as paths verbatim, then the search path is
// consulted. Resolved external commands get the resolved path as argv[0].
func (s *Shell) Resolve(argv []string) (Command, error) {
	if len(argv) == 0 {
		return nil, ErrInvalidArgument
	}

	name := argv[0]
	if builtin, ok := s.builtins.Lookup(name); ok {
		return &BuiltinCommand{Argv: argv, Builtin: builtin}, nil
	}

	if strings.Contains(name, "/") {
		return &ExternalCommand{Path: name, Argv: argv}, nil
	}

	path, err := s.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	resolved := append([]string{path}, argv[1:]...)
	return &ExternalCommand{Path: path, Argv: resolved}, nil
}
