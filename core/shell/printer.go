package shell

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ShouldColor decides whether to color output for a color mode.
func ShouldColor(mode string, isTerminal bool) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTerminal
	}
}

// Printer writes error reports, one per line.
type Printer struct {
	w     io.Writer
	color *color.Color
}

// NewPrinter creates a Printer on w that colors reports bold red if useColor
// is set.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{w: w}
	if useColor {
		p.color = color.New(color.FgRed, color.Bold)
		p.color.EnableColor()
	}
	return p
}

// Errorf formats and writes a report, write errors are ignored.
func (p *Printer) Errorf(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if p.color != nil {
		msg = p.color.Sprint(msg)
	}
	fmt.Fprintln(p.w, msg)
}
