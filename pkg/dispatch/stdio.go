// Package dispatch resolves a token vector against a bind.Registry and
// invokes the matching command through the registered filter chain. It
// is single-threaded and cooperative (§5): one Dispatch call runs to
// completion — including every filter and the terminal command — before
// the next begins.
package dispatch

import "github.com/aiseeq/cmdsh/pkg/stdio"

// StdIO is the stream record threaded through Dispatch, a pipeline stage
// or a REPL iteration. It is a plain alias of stdio.StdIO so pkg/bind
// (which pkg/dispatch depends on) can reference the same type in its
// Interpreter interface without importing pkg/dispatch back.
type StdIO = stdio.StdIO

// DefaultStdIO wraps the process's own stdin/stdout/stderr.
func DefaultStdIO() StdIO { return stdio.Default() }
