package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/builtin"
	"github.com/aiseeq/cmdsh/pkg/dispatch"
	"github.com/aiseeq/cmdsh/pkg/token"
)

type countHandler struct{}

func (countHandler) Count(io dispatch.StdIO, number int) error {
	for i := 1; i <= number; i++ {
		if _, err := io.Out.Write([]byte{byte('0' + i%10)}); err != nil {
			return err
		}
		if _, err := io.Out.Write([]byte("\r\n")); err != nil {
			return err
		}
	}
	return nil
}

func newTestInterpreter(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	d := dispatch.New(dispatch.DefaultConfig())
	require.NoError(t, d.Registry().AddHandler(countHandler{}, bind.WithArgs("Count", bind.ArgSpec{}, bind.ArgSpec{Name: "number"})))
	require.NoError(t, d.Registry().AddHandler(builtin.NewHandler(), builtin.RegOptions()...))
	return d
}

func mustParse(t *testing.T, line string) []string {
	t.Helper()
	toks, err := token.Parse(line)
	require.NoError(t, err)
	return toks
}

func TestSplitStagesOnPipe(t *testing.T) {
	stages, err := SplitStages(mustParse(t, `Count 3 |Find "1"`), DefaultPrecedence)
	require.NoError(t, err)
	require.Len(t, stages.Tokens, 2)
	assert.Equal(t, []string{"Count", "3"}, stages.Tokens[0])
	assert.Equal(t, []string{"Find", "1"}, stages.Tokens[1])
}

func TestSplitStagesLiteralPipeInsideQuotedTokenUntouched(t *testing.T) {
	stages, err := SplitStages(mustParse(t, `Find "a|b"`), DefaultPrecedence)
	require.NoError(t, err)
	require.Len(t, stages.Tokens, 1)
	assert.Equal(t, []string{"Find", "a|b"}, stages.Tokens[0])
}

func TestSplitStagesRedirectFirstRecognizesEndpoints(t *testing.T) {
	stages, err := SplitStages(mustParse(t, `Find "1" -f:out.txt |Find "0" > out2.txt`), DefaultPrecedence)
	require.NoError(t, err)
	require.Len(t, stages.Tokens, 2)
	assert.Equal(t, "out2.txt", stages.StdoutPath)
	assert.Equal(t, "", stages.StdinPath)
}

func TestSplitStagesPipeFirstRecognizesBothEndpointsInTheSameEdgeStage(t *testing.T) {
	stages, err := SplitStages(mustParse(t, `Find "1" |Find "0" <in.txt >out.txt`), "|<>")
	require.NoError(t, err)
	require.Len(t, stages.Tokens, 2)
	assert.Equal(t, "in.txt", stages.StdinPath, "'<' lands in the last stage alongside '>' and must still be recognized")
	assert.Equal(t, "out.txt", stages.StdoutPath)
	assert.Equal(t, []string{"Find", "0"}, stages.Tokens[1])
}

func TestSplitStagesPipeFirstRecognizesRedirectsSplitAcrossEdgeStages(t *testing.T) {
	stages, err := SplitStages(mustParse(t, `Find "1" <in.txt |Find "0" >out.txt`), "|<>")
	require.NoError(t, err)
	require.Len(t, stages.Tokens, 2)
	assert.Equal(t, "in.txt", stages.StdinPath)
	assert.Equal(t, "out.txt", stages.StdoutPath)
	assert.Equal(t, []string{"Find", "1"}, stages.Tokens[0])
	assert.Equal(t, []string{"Find", "0"}, stages.Tokens[1])
}

func TestRunChainsStageBuffers(t *testing.T) {
	interp := newTestInterpreter(t)
	stages, err := SplitStages(mustParse(t, `Count 12 |find "0"`), DefaultPrecedence)
	require.NoError(t, err)

	var out, errBuf bytes.Buffer
	code := Run(context.Background(), interp, dispatch.StdIO{Out: &out, Err: &errBuf}, stages)
	require.Equal(t, 0, code, errBuf.String())
	assert.Equal(t, "0\r\n", out.String())
}

func TestRunAppliesOutputRedirection(t *testing.T) {
	interp := newTestInterpreter(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")

	stages, err := SplitStages(mustParse(t, `Count 3`), DefaultPrecedence)
	require.NoError(t, err)
	stages.StdoutPath = outPath

	var errBuf bytes.Buffer
	code := Run(context.Background(), interp, dispatch.StdIO{Out: &bytes.Buffer{}, Err: &errBuf}, stages)
	require.Equal(t, 0, code, errBuf.String())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "1\r\n2\r\n3\r\n", string(content))
}

func TestRunAppliesInputRedirection(t *testing.T) {
	interp := newTestInterpreter(t)
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("Apple\r\nBanana\r\n"), 0o644))

	stages, err := SplitStages(mustParse(t, `find "a" /I`), DefaultPrecedence)
	require.NoError(t, err)
	stages.StdinPath = inPath

	var out, errBuf bytes.Buffer
	code := Run(context.Background(), interp, dispatch.StdIO{Out: &out, Err: &errBuf}, stages)
	require.Equal(t, 0, code, errBuf.String())
	assert.Equal(t, "Apple\r\nBanana\r\n", out.String())
}

func TestRunStopsAtFirstNonZeroExitCode(t *testing.T) {
	interp := newTestInterpreter(t)
	stages, err := SplitStages(mustParse(t, `unknownCmd |Count 3`), DefaultPrecedence)
	require.NoError(t, err)

	var out, errBuf bytes.Buffer
	code := Run(context.Background(), interp, dispatch.StdIO{Out: &out, Err: &errBuf}, stages)
	assert.NotEqual(t, 0, code)
	assert.Empty(t, out.String())
}
