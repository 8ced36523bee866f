// Package display renders removal results for the user. Successes go to
// standard output, failures to standard error; both are colorized when the
// stream is a terminal.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Console reports per-target outcomes: green success lines on the out
// stream, red error lines on the err stream.
type Console struct {
	out      io.Writer
	err      io.Writer
	colorOut bool
	colorErr bool
	success  *color.Color
	failure  *color.Color
}

// New creates a Console writing to the given streams. Color is enabled per
// stream when it is a terminal; process streams additionally get wrapped so
// that Windows consoles accept escape sequences, a step that harmlessly
// no-ops everywhere else.
func New(out, errOut io.Writer) *Console {
	return &Console{
		out:      enableEscapes(out),
		err:      enableEscapes(errOut),
		colorOut: isTerminal(out),
		colorErr: isTerminal(errOut),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
}

// NewConsole creates a Console bound to the process standard streams.
func NewConsole() *Console {
	return New(os.Stdout, os.Stderr)
}

// Removed reports a successfully deleted target.
func (c *Console) Removed(path string) {
	msg := fmt.Sprintf("removed '%s'", path)
	if c.colorOut {
		c.success.Fprintln(c.out, msg)
		return
	}
	fmt.Fprintln(c.out, msg)
}

// CannotRemove reports a target that could not be deleted, with the reason
// phrased the way rm traditionally does ("Is a directory", "No such file or
// directory", or the underlying system message).
func (c *Console) CannotRemove(path, reason string) {
	msg := fmt.Sprintf("rm: cannot remove '%s': %s", path, reason)
	if c.colorErr {
		c.failure.Fprintln(c.err, msg)
		return
	}
	fmt.Fprintln(c.err, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// enableEscapes returns a writer whose escape sequences render correctly on
// the host console. Only real files need wrapping; buffers pass through.
func enableEscapes(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}
