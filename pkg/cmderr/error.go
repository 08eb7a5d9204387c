package cmderr

import (
	"encoding/gob"
	"fmt"
)

func init() {
	gob.Register(&CommandError{})
}

// CommandError is the interpreter's own exception type. It carries enough
// structure for the dispatcher and REPL to render a one-line message
// without re-parsing free text, and it round-trips under encoding/gob so a
// host that shuttles it across a boundary (e.g. a test harness) preserves
// the message.
type CommandError struct {
	Kind    Kind   // what went wrong
	Message string // human-readable summary
	Param   string // formal parameter name, when applicable
	Literal string // offending literal, when applicable (KindInvalidArgumentValue)
	Stack   string // captured stack trace, only populated in verbose mode
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}

// New builds a CommandError of the given kind with a preformatted message.
func New(kind Kind, format string, args ...any) *CommandError {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// MissingRequiredArgument builds the canonical §7 message naming the
// parameter that had no value.
func MissingRequiredArgument(param string) *CommandError {
	return &CommandError{
		Kind:    KindMissingRequiredArgument,
		Message: fmt.Sprintf("The value for %s is required.", param),
		Param:   param,
	}
}

// InvalidArgumentValue builds the canonical §7 message naming both the
// parameter and the literal that failed to coerce.
func InvalidArgumentValue(param, literal string, cause error) *CommandError {
	msg := fmt.Sprintf("The value %q is not valid for %s.", literal, param)
	if cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, cause)
	}
	return &CommandError{
		Kind:    KindInvalidArgumentValue,
		Message: msg,
		Param:   param,
		Literal: literal,
	}
}

// UnknownCommand builds the canonical §7 message for an unresolved command
// name.
func UnknownCommand(name string) *CommandError {
	return &CommandError{
		Kind:    KindUnknownCommand,
		Message: fmt.Sprintf("Invalid command: %s", name),
		Param:   name,
	}
}

// UnknownOption builds the canonical §4.7 macro-expansion error message.
func UnknownOption(name string) *CommandError {
	return &CommandError{
		Kind:    KindUnknownOption,
		Message: fmt.Sprintf("unknown option specified: %s", name),
		Param:   name,
	}
}

// Unhandled wraps an arbitrary error raised by a handler or filter. When
// verbose is set the original error's type name is preserved in Message
// and a stack is attached by the caller.
func Unhandled(err error, verbose bool, stack string) *CommandError {
	ce := &CommandError{
		Kind:    KindUnhandled,
		Message: fmt.Sprintf("%T: %s", err, err.Error()),
	}
	if verbose {
		ce.Stack = stack
	} else {
		ce.Message = err.Error()
	}
	return ce
}

// Application wraps an application-level failure: message only, no type
// name or stack is ever surfaced for this kind.
func Application(message string) *CommandError {
	return &CommandError{Kind: KindApplicationError, Message: message}
}
