package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiseeq/cmdsh/pkg/builtin"
	"github.com/aiseeq/cmdsh/pkg/dispatch"
	"github.com/aiseeq/cmdsh/pkg/macro"
	"github.com/aiseeq/cmdsh/pkg/pipeline"
	"github.com/aiseeq/cmdsh/pkg/stdio"
	"github.com/aiseeq/cmdsh/pkg/token"
)

func newScenarioDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	d := dispatch.New(dispatch.DefaultConfig())
	require.NoError(t, d.Registry().AddHandler(&demoCommands{}, demoRegOptions()...))
	require.NoError(t, d.Registry().AddHandler(builtin.NewHandler(), builtin.RegOptions()...))
	return d
}

func dispatchLine(t *testing.T, d *dispatch.Dispatcher, line string, streams stdio.StdIO) int {
	t.Helper()
	tokens, err := token.Parse(line)
	require.NoError(t, err)
	stages, err := pipeline.SplitStages(tokens, pipeline.DefaultPrecedence)
	require.NoError(t, err)
	return pipeline.Run(context.Background(), d, streams, stages)
}

func TestScenarioMacroExpandsSetOptionIntoEcho(t *testing.T) {
	d := newScenarioDispatcher(t)
	var out bytes.Buffer

	code := dispatchLine(t, d, `set SomeData "TEST Data"`, stdio.StdIO{In: strings.NewReader(""), Out: &out})
	require.Equal(t, 0, code)

	expanded, err := macro.Expand("ECHO $(SOMEDATA)", d.Registry(), token.Join)
	require.NoError(t, err)

	out.Reset()
	code = dispatchLine(t, d, expanded, stdio.StdIO{In: strings.NewReader(""), Out: &out})
	assert.Equal(t, 0, code)
	assert.Equal(t, "\"TEST Data\"\r\n", out.String())
}

func TestScenarioNineStagePipelineFiltersCountOutput(t *testing.T) {
	d := newScenarioDispatcher(t)
	var out bytes.Buffer

	line := `Count 220 |FIND "1" |FIND "0" | FIND /V "3" | FIND /V "4" | FIND /V "5" | FIND /V "6" | FIND /V "7" | FIND /V "8" | FIND /V "9"`
	code := dispatchLine(t, d, line, stdio.StdIO{In: strings.NewReader(""), Out: &out})

	assert.Equal(t, 0, code)
	assert.Equal(t, "10\r\n100\r\n101\r\n102\r\n110\r\n120\r\n201\r\n210\r\n", out.String())
}

func TestScenarioRedirectThenReread(t *testing.T) {
	d := newScenarioDispatcher(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")
	out2Path := filepath.Join(dir, "out2.txt")

	var errw bytes.Buffer
	code := dispatchLine(t, d, "Count 100 > "+outPath, stdio.StdIO{In: strings.NewReader(""), Err: &errw})
	require.Equal(t, 0, code)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 100, strings.Count(string(data), "\r\n"))

	code = dispatchLine(t, d, `Find "1" -f:`+outPath+` |Find "0" > `+out2Path, stdio.StdIO{In: strings.NewReader(""), Err: &errw})
	require.Equal(t, 0, code)

	data2, err := os.ReadFile(out2Path)
	require.NoError(t, err)
	assert.Equal(t, "10\r\n100\r\n", string(data2))
}

func TestScenarioFilterPrecedenceTogglesGrouping(t *testing.T) {
	d := newScenarioDispatcher(t)
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")

	var lines strings.Builder
	for n := 1; n <= 100; n++ {
		fmt.Fprintf(&lines, "%d\r\n", n)
	}
	require.NoError(t, os.WriteFile(inPath, []byte(lines.String()), 0o644))

	tokens, err := token.Parse(`Find "1" |Find "0" <` + inPath + ` >` + outPath)
	require.NoError(t, err)

	// Both '<' and '>' land in the command's last stage once "Find "0""
	// has been split off by '|'; the toggled-precedence grouping must
	// still recognize both, not just whichever sits in the stage its
	// own endpoint name naively implies.
	for _, precedence := range []string{pipeline.DefaultPrecedence, "|<>"} {
		stages, err := pipeline.SplitStages(tokens, precedence)
		require.NoError(t, err)
		require.Len(t, stages.Tokens, 2)
		assert.Equal(t, inPath, stages.StdinPath, "precedence %q", precedence)
		assert.Equal(t, outPath, stages.StdoutPath, "precedence %q", precedence)

		var errw bytes.Buffer
		code := pipeline.Run(context.Background(), d, stdio.StdIO{Err: &errw}, stages)
		require.Equal(t, 0, code, errw.String())

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "10\r\n100\r\n", string(data), "precedence %q", precedence)
	}
}

func TestScenarioMorePaginatesAtWindowBoundary(t *testing.T) {
	d := newScenarioDispatcher(t)
	handler := builtin.NewHandler()
	handler.Height = 10
	var keystrokes int
	handler.ReadNextChar = func() (rune, error) {
		keystrokes++
		return '\n', nil
	}
	require.NoError(t, d.Registry().AddHandler(handler, builtin.RegOptions()...))

	var out bytes.Buffer
	code := dispatchLine(t, d, "Count 15 | MORE", stdio.StdIO{In: strings.NewReader(""), Out: &out})
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, keystrokes)

	for n := 1; n <= 15; n++ {
		assert.Contains(t, out.String(), strconv.Itoa(n)+"\r\n")
	}
}
