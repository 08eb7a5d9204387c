package repl

import "github.com/aiseeq/cmdsh/pkg/pipeline"

// Config controls a Loop's prompt, built-in registration and the
// pipeline filter-precedence passed to pipeline.SplitStages (§4.8).
type Config struct {
	// Prompt is macro-expanded before every read.
	Prompt string
	// Precedence is forwarded to pipeline.SplitStages for every
	// dispatched line.
	Precedence string
	// DefaultBuiltins registers help/get/set/echo/more/find alongside
	// exit/quit, which is registered unconditionally regardless of this
	// flag (§4.8).
	DefaultBuiltins bool
}

// DefaultConfig returns the conventional "> " prompt, default pipeline
// precedence, and built-ins enabled.
func DefaultConfig() Config {
	return Config{
		Prompt:          "> ",
		Precedence:      pipeline.DefaultPrecedence,
		DefaultBuiltins: true,
	}
}
