// Package token implements the tokenizer and keyed ArgumentList view that
// sit underneath every other subsystem: Parse/Join turn raw command lines
// into token vectors and back, and BuildArgumentList turns a token vector
// into the name/value bindings the dispatcher and coercion layers consume.
package token

import (
	"strings"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
)

// DefaultPrefixChars are the prefix characters recognized when no
// TokenizerConfig override is supplied.
const DefaultPrefixChars = "/-"

// DefaultDelimiterChars are the name/value delimiter characters recognized
// when no TokenizerConfig override is supplied.
const DefaultDelimiterChars = "=:"

// Comparer reports whether two names should be treated as equal for
// lookup purposes (option/argument names, Remove matching, …).
type Comparer func(a, b string) bool

// TokenizerConfig holds the process-wide tokenizer knobs described in §5:
// prefix characters, name/value delimiter characters and the default name
// comparer. It is deliberately a value the host constructs and threads
// through calls (per the Design Notes' recommendation) rather than a
// package-level global, though DefaultTokenizerConfig gives a ready
// zero-configuration instance.
type TokenizerConfig struct {
	PrefixChars    string
	DelimiterChars string
	Comparer       Comparer
}

// DefaultTokenizerConfig returns the configuration used when a host does
// not override prefix/delimiter/comparer behavior.
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		PrefixChars:    DefaultPrefixChars,
		DelimiterChars: DefaultDelimiterChars,
		Comparer:       strings.EqualFold,
	}
}

// WithPrefixChars returns a copy of cfg with its prefix-char set replaced.
// It fails if chars is empty, per the §4.1 non-empty invariant.
func (cfg TokenizerConfig) WithPrefixChars(chars string) (TokenizerConfig, error) {
	if chars == "" {
		return cfg, cmderr.New(cmderr.KindInvalidInput, "prefix characters must not be empty")
	}
	cfg.PrefixChars = chars
	return cfg, nil
}

// WithDelimiterChars returns a copy of cfg with its delimiter-char set
// replaced. It fails if chars is empty, per the §4.1 non-empty invariant.
func (cfg TokenizerConfig) WithDelimiterChars(chars string) (TokenizerConfig, error) {
	if chars == "" {
		return cfg, cmderr.New(cmderr.KindInvalidInput, "delimiter characters must not be empty")
	}
	cfg.DelimiterChars = chars
	return cfg, nil
}

// hasPrefix reports whether r is one of cfg's configured prefix characters.
func (cfg TokenizerConfig) hasPrefix(r byte) bool {
	return strings.IndexByte(cfg.PrefixChars, r) >= 0
}

func (cfg TokenizerConfig) comparer() Comparer {
	if cfg.Comparer != nil {
		return cfg.Comparer
	}
	return strings.EqualFold
}
