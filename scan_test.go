package pamargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekwizely/pam-args/internal/testargs"
)

func mustConfig(t *testing.T, b *ParserConfigBuilder) *ParserConfig {
	t.Helper()
	cfg, err := b.Build()
	require.NoError(t, err)
	return cfg
}

func TestScan(t *testing.T) {
	cfg := mustConfig(t, NewParserConfig())

	result, err := cfg.Scan([]string{"debug", "user=alice", "[host=example.com,port=22]", "mode="})
	require.NoError(t, err)

	wantTokens := []string{"debug", "user=alice", "host=example.com", "port=22", "mode="}
	if diff := cmp.Diff(wantTokens, result.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, result.Expanded)

	wantDetections := []FormatDetection{
		{Format: FormatKeyOnly, Key: "debug", Value: None[string]()},
		{Format: FormatKeyValue, Key: "user", Value: Some("alice")},
		{Format: FormatKeyValue, Key: "host", Value: Some("example.com")},
		{Format: FormatKeyValue, Key: "port", Value: Some("22")},
		{Format: FormatKeyEquals, Key: "mode", Value: Some("")},
	}
	assert.Equal(t, wantDetections, result.Detections)
}

func TestScanEmptyArgs(t *testing.T) {
	cfg := mustConfig(t, NewParserConfig())

	result, err := cfg.Scan(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Tokens)
	assert.Empty(t, result.Detections)
	assert.False(t, result.Expanded)
}

func TestScanPropagatesTokenizerErrors(t *testing.T) {
	cfg := mustConfig(t, NewParserConfig())

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unclosed bracket", []string{"[a,b"}, ErrUnclosedDelimiter},
		{"unclosed quote", []string{"['a]"}, ErrUnclosedDelimiter},
		{"nested brackets", []string{"[a,[b]]"}, ErrNestedBrackets},
		{"trailing escape", []string{`[a\]`}, ErrTrailingEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfg.Scan(tt.args)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScanQuotedValues(t *testing.T) {
	cfg := mustConfig(t, NewParserConfig())

	result, err := cfg.Scan([]string{"[name='Doe, John',x]"})
	require.NoError(t, err)

	require.Len(t, result.Detections, 2)
	d := result.Detections[0]
	assert.Equal(t, FormatKeyValue, d.Format)
	assert.Equal(t, "name", d.Key)
	assert.Equal(t, Some("'Doe, John'"), d.Value) // quotes retained by the scan
}

func TestScanCustomDelimiters(t *testing.T) {
	cfg := mustConfig(t, NewParserConfig().
		BracketChars('(', ')').
		Delimiter(';'))

	result, err := cfg.Scan([]string{"(a=1;b=2)"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "b=2"}, result.Tokens)
}

func TestScanBuiltArgs(t *testing.T) {
	args := testargs.NewBuilder(testargs.Config{UseBrackets: true, UseQuotes: true, QuoteChar: '\''}).
		AddFlags("debug", "use_first_pass").
		AddKeyValue("user", "alice").
		AddKeyValue("realname", "Alice Smith").
		Build()

	cfg := mustConfig(t, NewParserConfig())
	result, err := cfg.Scan(args)
	require.NoError(t, err)

	wantTokens := []string{"debug", "use_first_pass", "user=alice", "realname='Alice Smith'"}
	if diff := cmp.Diff(wantTokens, result.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, result.Expanded)

	require.Len(t, result.Detections, 4)
	assert.Equal(t, FormatKeyOnly, result.Detections[0].Format)
	assert.Equal(t, FormatKeyValue, result.Detections[2].Format)
}
