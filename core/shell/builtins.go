package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

// Builtin is a command run inside the shell process.
type Builtin interface {
	Main(s *Shell, argv []string) error
}

// BuiltinFunc adapts a function to a Builtin.
type BuiltinFunc func(s *Shell, argv []string) error

// Main implements Builtin.Main.
func (f BuiltinFunc) Main(s *Shell, argv []string) error {
	return f(s, argv)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinTable maps command names to the builtins that implement them.
type BuiltinTable map[string]Builtin

// DefaultBuiltins returns the builtins every shell has.
func DefaultBuiltins() BuiltinTable {
	return BuiltinTable{
		"cd": BuiltinFunc(Cd),
	}
}

// Lookup returns the builtin registered under name.
func (bt BuiltinTable) Lookup(name string) (Builtin, bool) {
	builtin, ok := bt[name]
	return builtin, ok
}

// Names returns the registered names in sorted order.
func (bt BuiltinTable) Names() []string {
	var out []string
	for name := range bt {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Cd is the cd shell builtin.
func Cd(s *Shell, argv []string) error {
	var target string
	switch len(argv) {
	case 1:
		target = s.VirtualOS.Getenv(EnvHome)
		if target == "" {
			s.Errorf("%s: HOME not set", argv[0])
			return fmt.Errorf("%w: HOME not set", ErrCommandFailed)
		}
	case 2:
		target = argv[1]
	default:
		s.Errorf("%s: too many arguments", argv[0])
		return fmt.Errorf("%w: too many arguments", ErrUnsupportedOperation)
	}

	if err := s.VirtualOS.Chdir(target); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			s.Errorf("%s: %s: %v", argv[0], pathErr.Path, pathErr.Err)
		} else {
			s.Errorf("%s: %v", argv[0], err)
		}
		return fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}

	return nil
}
