// Package bind is the reflection binder: it turns a handler instance's
// exported fields and methods into Options, Commands and Filters, the
// entities the dispatcher resolves and invokes. Go's reflect package can
// enumerate a method's parameter types at runtime but not their names, so
// argument metadata (name, aliases, default, …) is supplied explicitly at
// registration time via ArgSpec rather than mined from the method
// signature alone — the registration-builder approach the Design Notes
// call out as the language-appropriate substitute for the original
// source's parameter attributes.
package bind

import (
	"context"

	"github.com/aiseeq/cmdsh/pkg/stdio"
)

// Interpreter is the handler-visible face of the dispatcher: one of two
// parameter types (alongside stdio.StdIO) a command method may declare to
// receive ambient services instead of a bound argument, and the type a
// filter's first parameter always declares.
type Interpreter interface {
	// Dispatch parses, resolves and invokes tokens against the
	// interpreter's registry, returning a process-style exit code.
	Dispatch(ctx context.Context, io stdio.StdIO, tokens []string) int
	// ExitCode returns the exit code of the most recently completed
	// Dispatch call.
	ExitCode() int
	// Registry exposes the bound Options/Commands/Filters, e.g. for a
	// help command to enumerate.
	Registry() *Registry
	// AddFilter appends a filter to the end of the interpreter's chain.
	AddFilter(f Filter)
}

// Chain is the filter's view of "the rest of the pipeline": calling Next
// with a (possibly rewritten) token vector runs the next filter, or the
// resolved command itself once the chain is exhausted.
type Chain interface {
	Next(tokens []string) error
}

// FilterFunc is the adapted, directly callable form of a filter method.
type FilterFunc func(interp Interpreter, chain Chain, tokens []string) error
