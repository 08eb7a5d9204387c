package dispatch

import "github.com/aiseeq/cmdsh/pkg/token"

// Config holds the dispatcher's tokenizer configuration and verbosity
// switch. A zero Config is not usable directly — build one via
// DefaultConfig.
type Config struct {
	TokenizerConfig token.TokenizerConfig
	// Verbose, when set, prefixes an unhandled error's message with its Go
	// type name and, for a panic recovered from a filter or command, also
	// reports the stack trace captured at recovery (§7).
	Verbose bool
}

// DefaultConfig returns the configuration used when a host supplies none.
func DefaultConfig() Config {
	return Config{TokenizerConfig: token.DefaultTokenizerConfig()}
}
