package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuitVariants(t *testing.T) {
	for _, input := range []string{"quit", "exit", "q", "QUIT", "Exit", "  q  ", "\tQuIt\n"} {
		cmd, ok := Parse(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, KindQuit, cmd.Kind, "input %q", input)
	}
}

func TestParseHelp(t *testing.T) {
	cmd, ok := Parse(" HELP ")
	require.True(t, ok)
	assert.Equal(t, KindHelp, cmd.Kind)
}

func TestParseEmptyIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", "\n"} {
		_, ok := Parse(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestParseToken(t *testing.T) {
	cmd, ok := Parse("token eyJhbGciOiJIUzI1NiJ9.abc")
	require.True(t, ok)
	assert.Equal(t, KindSetToken, cmd.Kind)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.abc", cmd.Token)
}

func TestParseTokenKeepsCase(t *testing.T) {
	cmd, ok := Parse("TOKEN MixedCaseValue")
	require.True(t, ok)
	assert.Equal(t, KindSetToken, cmd.Kind)
	assert.Equal(t, "MixedCaseValue", cmd.Token)
}

func TestParseTokenMissingValue(t *testing.T) {
	for _, input := range []string{"token", "token   ", "TOKEN"} {
		cmd, ok := Parse(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, KindUnrecognized, cmd.Kind, "input %q", input)
		assert.Contains(t, cmd.Reason, "missing token value", "input %q", input)
	}
}

func TestParseKeywordWithMultibyteCase(t *testing.T) {
	// U+212A (kelvin sign) lowercases to a plain ascii k, shrinking the
	// keyword by two bytes; the captured value must stay untouched.
	cmd, ok := Parse("TO\u212aEN SecretValue")
	require.True(t, ok)
	assert.Equal(t, KindSetToken, cmd.Kind)
	assert.Equal(t, "SecretValue", cmd.Token)
}

func TestParseLeverage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		assetID  int
		leverage int
	}{
		{name: "btc", input: "leverage 0 20", assetID: 0, leverage: 20},
		{name: "eth", input: "leverage 1 5", assetID: 1, leverage: 5},
		{name: "negative", input: "leverage -1 -3", assetID: -1, leverage: -3},
		{name: "extra whitespace", input: "  leverage   2    10  ", assetID: 2, leverage: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Parse(tt.input)
			require.True(t, ok)
			require.Equal(t, KindLeverage, cmd.Kind)
			assert.Equal(t, tt.assetID, cmd.AssetID)
			assert.Equal(t, tt.leverage, cmd.Leverage)
		})
	}
}

func TestParseLeverageMalformed(t *testing.T) {
	for _, input := range []string{
		"leverage ",
		"leverage 0",
		"leverage 0 20 30",
		"leverage btc 20",
		"leverage 0 max",
		"leverage 1.5 20",
	} {
		cmd, ok := Parse(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, KindUnrecognized, cmd.Kind, "input %q", input)
		assert.NotEmpty(t, cmd.Reason, "input %q", input)
	}
}

func TestParseFreeFormPrompt(t *testing.T) {
	cmd, ok := Parse("Set BTC leverage to 25x")
	require.True(t, ok)
	assert.Equal(t, KindPrompt, cmd.Kind)
	assert.Equal(t, "Set BTC leverage to 25x", cmd.Prompt)
}

func TestParsePromptResemblingKeyword(t *testing.T) {
	// keyword without the trailing space separator is not a command
	cmd, ok := Parse("tokenize my portfolio")
	require.True(t, ok)
	assert.Equal(t, KindPrompt, cmd.Kind)

	cmd, ok = Parse("leverageX")
	require.True(t, ok)
	assert.Equal(t, KindPrompt, cmd.Kind)
}
