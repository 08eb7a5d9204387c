// Package cmdconfig is the interpreter's own YAML configuration layer:
// tokenizer knobs and interpreter-wide defaults, loadable from a single
// project config file and mergeable over a set of defaults.
package cmdconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aiseeq/cmdsh/pkg/dispatch"
	"github.com/aiseeq/cmdsh/pkg/pipeline"
	"github.com/aiseeq/cmdsh/pkg/repl"
	"github.com/aiseeq/cmdsh/pkg/token"
)

// ConfigFileNames are the file names FindConfig looks for, dotfile first.
var ConfigFileNames = []string{".cmdshrc.yaml", "cmdsh.yaml"}

// TokenizerConfig is the YAML-serializable form of token.TokenizerConfig.
// Comparer can't round-trip through YAML as a func value, so it is
// represented as CaseSensitive and translated by ToTokenizerConfig.
type TokenizerConfig struct {
	PrefixChars    string `yaml:"prefix_chars,omitempty"`
	DelimiterChars string `yaml:"delimiter_chars,omitempty"`
	CaseSensitive  bool   `yaml:"case_sensitive"`
}

// ToTokenizerConfig builds the live token.TokenizerConfig this config
// describes, falling back to token's own defaults for empty fields.
func (c TokenizerConfig) ToTokenizerConfig() token.TokenizerConfig {
	cmp := strings.EqualFold
	if c.CaseSensitive {
		cmp = func(a, b string) bool { return a == b }
	}
	return token.TokenizerConfig{
		PrefixChars:    orDefault(c.PrefixChars, token.DefaultPrefixChars),
		DelimiterChars: orDefault(c.DelimiterChars, token.DefaultDelimiterChars),
		Comparer:       cmp,
	}
}

// InterpreterConfig is the YAML-serializable form of the interpreter-wide
// defaults §4.8 and §5 describe: which built-ins to register, the
// pipeline filter-precedence string, the REPL prompt, and verbosity.
//
// DefaultBuiltins and Verbose are *bool rather than bool so a project
// config that omits them can be merged over defaults without a silently
// absent "verbose: false"/"default_builtins: false" clobbering the base
// value with the YAML zero value — nil means "not set by this config".
type InterpreterConfig struct {
	DefaultBuiltins *bool  `yaml:"default_builtins,omitempty"`
	Verbose         *bool  `yaml:"verbose,omitempty"`
	Precedence      string `yaml:"precedence,omitempty"`
	Prompt          string `yaml:"prompt,omitempty"`
}

// Config is the root document a .cmdshrc.yaml file describes.
type Config struct {
	Version     int               `yaml:"version"`
	Tokenizer   TokenizerConfig   `yaml:"tokenizer"`
	Interpreter InterpreterConfig `yaml:"interpreter"`
}

// DefaultConfig returns the configuration used when a host supplies none.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Tokenizer: TokenizerConfig{
			PrefixChars:    token.DefaultPrefixChars,
			DelimiterChars: token.DefaultDelimiterChars,
		},
		Interpreter: InterpreterConfig{
			DefaultBuiltins: BoolPtr(true),
			Precedence:      pipeline.DefaultPrecedence,
			Prompt:          "> ",
		},
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// FindConfig searches startDir and its parents for one of ConfigFileNames,
// returning "" with no error if none is found.
func FindConfig(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadConfigWithDefaults finds and loads a project config starting at
// projectRoot, merging it over DefaultConfig; it returns the defaults
// unchanged if no project config file is found.
func LoadConfigWithDefaults(projectRoot string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := FindConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	override, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return MergeConfigs(cfg, override), nil
}

// MergeConfigs merges two configs, with override taking precedence for
// every field it sets.
func MergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != 0 {
		result.Version = override.Version
	}
	if override.Tokenizer.PrefixChars != "" {
		result.Tokenizer.PrefixChars = override.Tokenizer.PrefixChars
	}
	if override.Tokenizer.DelimiterChars != "" {
		result.Tokenizer.DelimiterChars = override.Tokenizer.DelimiterChars
	}
	result.Tokenizer.CaseSensitive = override.Tokenizer.CaseSensitive

	if override.Interpreter.DefaultBuiltins != nil {
		result.Interpreter.DefaultBuiltins = override.Interpreter.DefaultBuiltins
	}
	if override.Interpreter.Verbose != nil {
		result.Interpreter.Verbose = override.Interpreter.Verbose
	}
	if override.Interpreter.Precedence != "" {
		result.Interpreter.Precedence = override.Interpreter.Precedence
	}
	if override.Interpreter.Prompt != "" {
		result.Interpreter.Prompt = override.Interpreter.Prompt
	}

	return &result
}

// DispatchConfig builds the dispatch.Config this configuration describes.
func (c *Config) DispatchConfig() dispatch.Config {
	return dispatch.Config{
		TokenizerConfig: c.Tokenizer.ToTokenizerConfig(),
		Verbose:         boolOrDefault(c.Interpreter.Verbose, false),
	}
}

// ReplConfig builds the repl.Config this configuration describes.
func (c *Config) ReplConfig() repl.Config {
	return repl.Config{
		Prompt:          c.Interpreter.Prompt,
		Precedence:      c.Interpreter.Precedence,
		DefaultBuiltins: boolOrDefault(c.Interpreter.DefaultBuiltins, true),
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// BoolPtr returns a pointer to b, for constructing an InterpreterConfig
// field that must distinguish "explicitly set" from "absent".
func BoolPtr(b bool) *bool { return &b }
