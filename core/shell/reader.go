package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/minish/core/vos"
)

// LineReader is the terminal the shell prompts on and reads lines from.
type LineReader interface {
	// SetPrompt displays prompt before the next line is read.
	SetPrompt(prompt string) error

	// Readline reads one line without its terminator. It returns io.EOF at the
	// end of input and ErrInterrupt if the user interrupted editing.
	Readline() (string, error)
}

// PlainReader reads lines from a stream that isn't a terminal.
//
// Input is consumed a byte at a time so bytes after the line stay unread for
// the children the shell starts.
type PlainReader struct {
	in     io.Reader
	prompt io.Writer
	buf    [1]byte
}

var _ LineReader = (*PlainReader)(nil)

// NewPlainReader reads lines from in and writes prompts to prompt.
func NewPlainReader(in io.Reader, prompt io.Writer) *PlainReader {
	return &PlainReader{in: in, prompt: prompt}
}

// SetPrompt implements LineReader.SetPrompt.
func (r *PlainReader) SetPrompt(prompt string) error {
	if _, err := io.WriteString(r.prompt, prompt); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailed, err)
	}
	return nil
}

// Readline implements LineReader.Readline. A final line without a newline is
// returned before io.EOF.
func (r *PlainReader) Readline() (string, error) {
	var line []byte
	for {
		n, err := r.in.Read(r.buf[:])
		if n > 0 {
			if r.buf[0] == '\n' {
				return strings.TrimSuffix(string(line), "\r"), nil
			}
			line = append(line, r.buf[0])
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			if len(line) > 0 {
				return string(line), nil
			}
			return "", io.EOF
		default:
			return "", fmt.Errorf("%w: %w", ErrIOFailed, err)
		}
	}
}

// ReadlineReader is an interactive line editor with history.
type ReadlineReader struct {
	instance *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)

// NewReadlineReader creates a line editor on streams. History is persisted to historyFile unless it's empty.
func NewReadlineReader(streams vos.VIO, historyFile string) (*ReadlineReader, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(streams.Stdin()),
		Stdout:      streams.Stdout(),
		Stderr:      streams.Stderr(),
		HistoryFile: historyFile,

		FuncIsTerminal: func() bool {
			return true
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineReader{instance: instance}, nil
}

// SetPrompt implements LineReader.SetPrompt. The prompt is drawn by Readline
// so this never fails.
func (r *ReadlineReader) SetPrompt(prompt string) error {
	r.instance.SetPrompt(prompt)
	return nil
}

// Readline implements LineReader.Readline.
func (r *ReadlineReader) Readline() (string, error) {
	line, err := r.instance.Readline()
	switch {
	case err == nil, err == io.EOF, err == readline.ErrInterrupt:
		return line, err
	default:
		return "", fmt.Errorf("%w: %w", ErrIOFailed, err)
	}
}

// Close restores the terminal and stops the editor.
func (r *ReadlineReader) Close() error {
	return r.instance.Close()
}
