package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
)

// ErrorWriter prints a *cmderr.CommandError as a single colorized line,
// the kind tinting the message the way a severity-aware console writer
// tints violations. The builder methods follow the familiar
// WithWriter/WithVerbose/WithNoColor chain shape.
type ErrorWriter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

// NewErrorWriter returns an ErrorWriter writing to stderr by default.
func NewErrorWriter() *ErrorWriter {
	return &ErrorWriter{writer: os.Stderr}
}

// WithWriter sets a custom writer.
func (e *ErrorWriter) WithWriter(w io.Writer) *ErrorWriter {
	e.writer = w
	return e
}

// WithVerbose includes the error's captured stack, when present.
func (e *ErrorWriter) WithVerbose(v bool) *ErrorWriter {
	e.verbose = v
	return e
}

// WithNoColor disables ANSI coloring.
func (e *ErrorWriter) WithNoColor(v bool) *ErrorWriter {
	e.noColor = v
	if v {
		color.NoColor = true
	}
	return e
}

// Write renders err: a *cmderr.CommandError is tinted by its Kind's
// severity; any other error is printed plain in red.
func (e *ErrorWriter) Write(err error) {
	ce, ok := err.(*cmderr.CommandError)
	if !ok {
		color.New(color.FgRed).Fprintln(e.writer, err.Error())
		return
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	switch ce.Kind {
	case cmderr.KindApplicationError, cmderr.KindUnhandled:
		red.Fprintln(e.writer, ce.Error())
	default:
		yellow.Fprintln(e.writer, ce.Error())
	}

	if e.verbose && ce.Stack != "" {
		fmt.Fprintln(e.writer, ce.Stack)
	}
}
