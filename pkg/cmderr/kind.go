// Package cmderr defines the error taxonomy shared by every subsystem of
// the interpreter: tokenizer, binder, coercion, dispatcher and REPL all
// report failures as a *CommandError carrying one of the Kind values below.
package cmderr

import "strings"

// Kind classifies why a command failed, per the interpreter's error table.
type Kind int

const (
	// KindInvalidInput is raised when tokenizing receives no input or an
	// unterminated quoted run.
	KindInvalidInput Kind = iota
	// KindUnknownCommand is raised when the first token names no
	// registered command or alias.
	KindUnknownCommand
	// KindMissingRequiredArgument is raised when a required argument has
	// no bound value and no default.
	KindMissingRequiredArgument
	// KindInvalidArgumentValue is raised when a bound value cannot be
	// coerced to its formal parameter's type.
	KindInvalidArgumentValue
	// KindUnknownOption is raised when macro expansion references an
	// option that is not registered.
	KindUnknownOption
	// KindApplicationError is raised when a handler explicitly signals an
	// application-level failure (message only, no stack).
	KindApplicationError
	// KindUnhandled wraps any other error surfacing from a handler or
	// filter.
	KindUnhandled
	// KindConsoleIOUnavailable is raised when a built-in needs console
	// services (e.g. a next-key reader for pagination) that were never
	// configured.
	KindConsoleIOUnavailable
)

var kindNames = [...]string{
	"invalid-input",
	"unknown-command",
	"missing-required-argument",
	"invalid-argument-value",
	"unknown-option",
	"application-error",
	"unhandled",
	"console-io-unavailable",
}

// String renders the kind using its canonical kebab-case name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kebab-case kind name back to a Kind, matching
// case-insensitively. It reports ok=false for unrecognized names.
func ParseKind(name string) (k Kind, ok bool) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), true
		}
	}
	return 0, false
}

// ExitCode returns the process-visible exit code for this kind of
// failure. Zero is reserved for success and is never returned here.
func (k Kind) ExitCode() int {
	switch k {
	case KindInvalidInput:
		return 2
	case KindUnknownCommand:
		return 3
	case KindMissingRequiredArgument, KindInvalidArgumentValue:
		return 4
	case KindUnknownOption:
		return 5
	case KindApplicationError:
		return 6
	case KindConsoleIOUnavailable:
		return 7
	default:
		return 1
	}
}
