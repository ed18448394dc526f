package pamargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserConfigDefaults(t *testing.T) {
	cfg, err := NewParserConfig().Build()
	require.NoError(t, err)

	assert.True(t, cfg.CaseSensitive())
	assert.True(t, cfg.CaseSensitiveValues())
	assert.False(t, cfg.CollectNonArgText())
	assert.False(t, cfg.MultiKeyValue())
	assert.Equal(t, []AllowedKeyValueFormats{FormatKeyValue}, cfg.MultiKeyValueFormats())
	assert.True(t, cfg.TrimValues())
	assert.NotNil(t, cfg.Logger())

	d := cfg.Delimiters()
	assert.Equal(t, '\\', d.Escape)
	assert.Equal(t, '[', d.OpenBracket)
	assert.Equal(t, ']', d.CloseBracket)
	assert.Equal(t, ',', d.Delimiter)
}

func TestParserConfigBuilderOptions(t *testing.T) {
	cfg, err := NewParserConfig().
		CaseSensitive(false).
		CaseSensitiveValues(false).
		CollectNonArgText(true).
		EnableMultiKeyValue(FormatKeyValue, FormatKeyEquals).
		TrimValues(false).
		Build()
	require.NoError(t, err)

	assert.False(t, cfg.CaseSensitive())
	assert.False(t, cfg.CaseSensitiveValues())
	assert.True(t, cfg.CollectNonArgText())
	assert.True(t, cfg.MultiKeyValue())
	assert.Equal(t, []AllowedKeyValueFormats{FormatKeyValue, FormatKeyEquals}, cfg.MultiKeyValueFormats())
	assert.False(t, cfg.TrimValues())
}

func TestParserConfigCustomDelimiters(t *testing.T) {
	cfg, err := NewParserConfig().
		EscapeChar('^').
		QuoteChars('`', '~').
		BracketChars('(', ')').
		Delimiter(';').
		Build()
	require.NoError(t, err)

	d := cfg.Delimiters()
	assert.Equal(t, '^', d.Escape)
	assert.Equal(t, '`', d.SingleQuote)
	assert.Equal(t, '~', d.DoubleQuote)
	assert.Equal(t, '(', d.OpenBracket)
	assert.Equal(t, ')', d.CloseBracket)
	assert.Equal(t, ';', d.Delimiter)
}

func TestParserConfigRejectsDuplicateDelimiters(t *testing.T) {
	_, err := NewParserConfig().
		Delimiter('\\'). // collides with the escape character
		Build()
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "INVALID_INPUT", ErrorCode(err))
}

func TestEnableMultiKeyValueKeepsDefaultFormats(t *testing.T) {
	cfg, err := NewParserConfig().EnableMultiKeyValue().Build()
	require.NoError(t, err)

	assert.True(t, cfg.MultiKeyValue())
	assert.Equal(t, []AllowedKeyValueFormats{FormatKeyValue}, cfg.MultiKeyValueFormats())
}
