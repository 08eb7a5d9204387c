package cmderr

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k        Kind
		expected string
	}{
		{KindInvalidInput, "invalid-input"},
		{KindUnknownCommand, "unknown-command"},
		{KindMissingRequiredArgument, "missing-required-argument"},
		{KindInvalidArgumentValue, "invalid-argument-value"},
		{KindUnknownOption, "unknown-option"},
		{KindApplicationError, "application-error"},
		{KindUnhandled, "unhandled"},
		{KindConsoleIOUnavailable, "console-io-unavailable"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.k.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("Unknown-Command")
	require.True(t, ok)
	assert.Equal(t, KindUnknownCommand, k)

	_, ok = ParseKind("not-a-kind")
	assert.False(t, ok)
}

func TestCommandErrorGobRoundTrip(t *testing.T) {
	orig := MissingRequiredArgument("number")

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(orig))

	var decoded CommandError
	require.NoError(t, gob.NewDecoder(&buf).Decode(&decoded))

	assert.Equal(t, orig.Message, decoded.Message)
	assert.Equal(t, orig.Kind, decoded.Kind)
	assert.Equal(t, orig.Param, decoded.Param)
}

func TestInvalidArgumentValueMessage(t *testing.T) {
	err := InvalidArgumentValue("count", "abc", assert.AnError)
	assert.Equal(t, KindInvalidArgumentValue, err.Kind)
	assert.Contains(t, err.Error(), "abc")
	assert.Contains(t, err.Error(), "count")
}
