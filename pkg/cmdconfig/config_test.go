package cmdconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsUsable(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "/-", cfg.Tokenizer.PrefixChars)
	assert.Equal(t, "=:", cfg.Tokenizer.DelimiterChars)
	require.NotNil(t, cfg.Interpreter.DefaultBuiltins)
	assert.True(t, *cfg.Interpreter.DefaultBuiltins)
	assert.Equal(t, "> ", cfg.Interpreter.Prompt)
}

func TestToTokenizerConfigDefaultsToCaseInsensitive(t *testing.T) {
	cfg := TokenizerConfig{PrefixChars: "/-", DelimiterChars: "=:"}
	tok := cfg.ToTokenizerConfig()
	assert.True(t, tok.Comparer("Find", "find"))
}

func TestToTokenizerConfigCaseSensitiveDisablesFolding(t *testing.T) {
	cfg := TokenizerConfig{PrefixChars: "/-", DelimiterChars: "=:", CaseSensitive: true}
	tok := cfg.ToTokenizerConfig()
	assert.False(t, tok.Comparer("Find", "find"))
	assert.True(t, tok.Comparer("Find", "Find"))
}

func TestToTokenizerConfigFillsEmptyFieldsWithDefaults(t *testing.T) {
	tok := TokenizerConfig{}.ToTokenizerConfig()
	assert.Equal(t, "/-", tok.PrefixChars)
	assert.Equal(t, "=:", tok.DelimiterChars)
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmdsh.yaml")
	contents := "version: 2\n" +
		"tokenizer:\n" +
		"  prefix_chars: \"-\"\n" +
		"  case_sensitive: true\n" +
		"interpreter:\n" +
		"  default_builtins: false\n" +
		"  verbose: true\n" +
		"  precedence: \"|<>\"\n" +
		"  prompt: \"cmdsh> \"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, "-", cfg.Tokenizer.PrefixChars)
	assert.True(t, cfg.Tokenizer.CaseSensitive)
	require.NotNil(t, cfg.Interpreter.DefaultBuiltins)
	assert.False(t, *cfg.Interpreter.DefaultBuiltins)
	require.NotNil(t, cfg.Interpreter.Verbose)
	assert.True(t, *cfg.Interpreter.Verbose)
	assert.Equal(t, "|<>", cfg.Interpreter.Precedence)
	assert.Equal(t, "cmdsh> ", cfg.Interpreter.Prompt)
}

func TestLoadConfigMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFindConfigWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "cmdsh.yaml"), []byte("version: 1\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cmdsh.yaml"), path)
}

func TestFindConfigPrefersDotfile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "cmdsh.yaml"), []byte("version: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".cmdshrc.yaml"), []byte("version: 2\n"), 0o644))

	path, err := FindConfig(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".cmdshrc.yaml"), path)
}

func TestFindConfigReturnsEmptyWhenNotFound(t *testing.T) {
	path, err := FindConfig(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadConfigWithDefaultsMergesOverProjectConfig(t *testing.T) {
	root := t.TempDir()
	contents := "interpreter:\n  prompt: \"custom> \"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "cmdsh.yaml"), []byte(contents), 0o644))

	cfg, err := LoadConfigWithDefaults(root)
	require.NoError(t, err)
	assert.Equal(t, "custom> ", cfg.Interpreter.Prompt)
	assert.Equal(t, "/-", cfg.Tokenizer.PrefixChars)
}

func TestLoadConfigWithDefaultsFallsBackWhenNoFileFound(t *testing.T) {
	cfg, err := LoadConfigWithDefaults(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMergeConfigsOverrideWins(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Interpreter: InterpreterConfig{Prompt: "x> ", Precedence: "|<>"},
	}

	merged := MergeConfigs(base, override)
	assert.Equal(t, "x> ", merged.Interpreter.Prompt)
	assert.Equal(t, "|<>", merged.Interpreter.Precedence)
	assert.Equal(t, "/-", merged.Tokenizer.PrefixChars)
	require.NotNil(t, merged.Interpreter.DefaultBuiltins)
	assert.True(t, *merged.Interpreter.DefaultBuiltins, "an override that never sets default_builtins must not clobber the base value")
}

func TestMergeConfigsOverrideExplicitFalseWins(t *testing.T) {
	base := DefaultConfig()
	override := &Config{Interpreter: InterpreterConfig{DefaultBuiltins: BoolPtr(false)}}

	merged := MergeConfigs(base, override)
	require.NotNil(t, merged.Interpreter.DefaultBuiltins)
	assert.False(t, *merged.Interpreter.DefaultBuiltins)
}

func TestMergeConfigsLeavesBaseUntouched(t *testing.T) {
	base := DefaultConfig()
	override := &Config{Interpreter: InterpreterConfig{Prompt: "x> "}}

	MergeConfigs(base, override)
	assert.Equal(t, "> ", base.Interpreter.Prompt)
}

func TestDispatchConfigAndReplConfigDeriveFromOneConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interpreter.Verbose = BoolPtr(true)

	dc := cfg.DispatchConfig()
	assert.True(t, dc.Verbose)
	assert.Equal(t, "/-", dc.TokenizerConfig.PrefixChars)

	rc := cfg.ReplConfig()
	assert.Equal(t, "> ", rc.Prompt)
	assert.True(t, rc.DefaultBuiltins)
}
