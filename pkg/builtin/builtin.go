// Package builtin implements the interpreter's always-available commands
// (§6): help, get, set, echo, more, find, prompt and exit/quit. Each is a method
// on Handler, registered like any user handler via
// bind.Registry.AddHandler, and is individually suppressible by a host
// that simply never registers it.
package builtin

import (
	"github.com/aiseeq/cmdsh/pkg/bind"
)

// crlf is the line terminator every built-in writes. The interpreter's
// line-oriented output (help listings, echo, find, pagination) is always
// CRLF-terminated regardless of host OS, matching the concrete scenarios
// in §8.
const crlf = "\r\n"

// Handler bundles the built-in commands described in §6.
type Handler struct {
	// Height is the console window height: `more` emits Height-1 lines
	// before each pagination prompt.
	Height int `cmdsh:"-"`
	// ReadNextChar reads a single keystroke to advance past a `-- More --`
	// prompt. Left nil by default; a REPL host wires it to its console.
	// When nil, `more` fails with KindConsoleIOUnavailable.
	ReadNextChar func() (rune, error) `cmdsh:"-"`

	// ExitRequested and RequestedExitCode record an Exit/Quit invocation;
	// a REPL host checks ExitRequested after every Dispatch call and
	// breaks its loop, using RequestedExitCode in preference to the
	// dispatcher's own exit code.
	ExitRequested     bool `cmdsh:"-"`
	RequestedExitCode int  `cmdsh:"-"`

	// PromptRef points at the host loop's live prompt string; a REPL host
	// wires it to the same storage it reads before every prompt write, so
	// a `prompt` invocation takes effect on the very next read. Left nil
	// by default; `prompt` fails with KindConsoleIOUnavailable outside an
	// interactive loop.
	PromptRef *string `cmdsh:"-"`
}

// NewHandler returns a Handler with the default pagination height.
func NewHandler() *Handler {
	return &Handler{Height: 24}
}

// RegOptions returns the ArgSpec/CommandMeta registrations Handler's
// command methods need, since Go's reflect cannot recover their
// parameter names. A host registers the built-ins with:
//
//	reg.AddHandler(builtin.NewHandler(), builtin.RegOptions()...)
func RegOptions() []bind.RegOption {
	return []bind.RegOption{
		bind.WithArgs("Help", bind.ArgSpec{}, bind.ArgSpec{},
			bind.ArgSpec{Name: "name", HasDefault: true, Default: ""},
		),
		bind.WithArgs("Get", bind.ArgSpec{}, bind.ArgSpec{},
			bind.ArgSpec{Name: "option"},
		),
		bind.WithArgs("Set", bind.ArgSpec{}, bind.ArgSpec{},
			bind.ArgSpec{Name: "option"},
			bind.ArgSpec{Name: "value"},
			bind.ArgSpec{Name: "readInput", HasDefault: true, Default: false},
		),
		bind.WithArgs("Echo", bind.ArgSpec{}, bind.ArgSpec{},
			bind.ArgSpec{Name: "tokens", CapturesAll: true},
		),
		bind.WithArgs("More", bind.ArgSpec{}, bind.ArgSpec{}),
		bind.WithArgs("Find", bind.ArgSpec{}, bind.ArgSpec{},
			bind.ArgSpec{Name: "pattern"},
			bind.ArgSpec{Name: "invert", Aliases: []string{"V"}, HasDefault: true, Default: false},
			bind.ArgSpec{Name: "insensitive", Aliases: []string{"I"}, HasDefault: true, Default: false},
			bind.ArgSpec{Name: "f", HasDefault: true, Default: ""},
		),
		bind.WithArgs("Prompt", bind.ArgSpec{},
			bind.ArgSpec{Name: "text", HasDefault: true, Default: ""},
		),
		bind.WithArgs("Exit", bind.ArgSpec{Name: "code", HasDefault: true, Default: 0}),
		bind.WithCommandMeta("Exit", bind.CommandMeta{Aliases: []string{"quit"}}),
	}
}
