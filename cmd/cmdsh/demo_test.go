package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/dispatch"
	"github.com/aiseeq/cmdsh/pkg/render"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

func newDemoDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	d := dispatch.New(dispatch.DefaultConfig())
	require.NoError(t, d.Registry().AddHandler(&demoCommands{}, demoRegOptions()...))
	return d
}

func TestCountAscending(t *testing.T) {
	d := newDemoDispatcher(t)
	var out bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out}, []string{"Count", "2"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\r\n2\r\n", out.String())
}

func TestCountBackwards(t *testing.T) {
	d := newDemoDispatcher(t)
	var out bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out}, []string{"Count", "/backwards", "2"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "2\r\n1\r\n", out.String())
}

func TestCountWithAccumulatedTValues(t *testing.T) {
	d := newDemoDispatcher(t)
	var out bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out}, []string{"Count", "2", "/t:a", "/t:b"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "1 a\r\n2 b\r\n", out.String())
}

func TestCountMissingNumberFails(t *testing.T) {
	d := newDemoDispatcher(t)
	var out, errw bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out, Err: &errw}, []string{"Count"})
	assert.NotEqual(t, 0, code)
	assert.Contains(t, errw.String(), "The value for number is required.")
}

func TestForXtoYbyZPrintsSequence(t *testing.T) {
	d := newDemoDispatcher(t)
	var out bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out}, []string{"ForXtoYbyZ", "0", "6", "2"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "0\r\n2\r\n4\r\n6\r\n", out.String())
}

func TestBlowUpReportsApplicationError(t *testing.T) {
	d := newDemoDispatcher(t)
	var out, errw bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out, Err: &errw}, []string{"BlowUp"})
	assert.Equal(t, cmderr.KindApplicationError.ExitCode(), code)
	assert.Contains(t, errw.String(), "the demo handler blew up on purpose")
}

func TestHiddenIsInvocableButOmittedFromListings(t *testing.T) {
	d := newDemoDispatcher(t)
	var out bytes.Buffer
	code := d.Dispatch(nil, stdio.StdIO{Out: &out}, []string{"Hidden"})
	assert.Equal(t, 0, code)

	assert.NotContains(t, render.TextHelp(d.Registry(), ""), "Hidden")
}

func TestRegistrationReportsExpectedCounts(t *testing.T) {
	d := newDemoDispatcher(t)
	assert.Len(t, d.Registry().Options(), 2)
	assert.Len(t, d.Registry().Commands(), 4)
}
