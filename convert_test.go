package pamargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString(t *testing.T) {
	got, err := Convert("hello", nil, String)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestConvertTrimsByDefault(t *testing.T) {
	got, err := Convert("  hello  ", nil, String)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestConvertTrimDisabled(t *testing.T) {
	cfg := DefaultConverterConfig()
	cfg.TrimWhitespace = false

	got, err := Convert("  hello  ", cfg, String)
	require.NoError(t, err)
	assert.Equal(t, "  hello  ", got)
}

func TestConvertInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{"-7", -7},
		{"0", 0},
		{" 123 ", 123}, // trimmed before conversion
	}
	for _, tt := range tests {
		got, err := Convert(tt.input, nil, Int)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	for _, bad := range []string{"", "abc", "1.5", "0x10"} {
		_, err := Convert(bad, nil, Int)
		assert.ErrorIs(t, err, ErrInvalidIntValue, "input %q", bad)
	}
}

func TestConvertBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "yes", "Yes", "1", "on", "ON"} {
		got, err := Convert(s, nil, Bool)
		require.NoError(t, err, "input %q", s)
		assert.True(t, got, "input %q", s)
	}
	for _, s := range []string{"false", "FALSE", "no", "No", "0", "off", "OFF"} {
		got, err := Convert(s, nil, Bool)
		require.NoError(t, err, "input %q", s)
		assert.False(t, got, "input %q", s)
	}
	for _, bad := range []string{"", "2", "truthy", "enabled"} {
		_, err := Convert(bad, nil, Bool)
		assert.ErrorIs(t, err, ErrInvalidBoolValue, "input %q", bad)
	}
}

func TestConvertChar(t *testing.T) {
	got, err := Convert("x", nil, Char)
	require.NoError(t, err)
	assert.Equal(t, 'x', got)

	got, err = Convert("é", nil, Char)
	require.NoError(t, err)
	assert.Equal(t, 'é', got)

	for _, bad := range []string{"", "ab", "  "} {
		_, err := Convert(bad, nil, Char)
		assert.ErrorIs(t, err, ErrInvalidCharValue, "input %q", bad)
	}
}

func TestOptional(t *testing.T) {
	some := Some(42)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	none := None[int]()
	_, ok = none.Get()
	assert.False(t, ok)
}

func TestOptionalOf(t *testing.T) {
	conv := OptionalOf(Int)

	t.Run("value present", func(t *testing.T) {
		got, err := Convert("42", nil, conv)
		require.NoError(t, err)
		assert.Equal(t, Some(42), got)
	})
	t.Run("empty is absent", func(t *testing.T) {
		got, err := Convert("", nil, conv)
		require.NoError(t, err)
		assert.False(t, got.Present)
	})
	t.Run("whitespace trims to absent", func(t *testing.T) {
		got, err := Convert("   ", nil, conv)
		require.NoError(t, err)
		assert.False(t, got.Present)
	})
	t.Run("none literals are absent", func(t *testing.T) {
		for _, s := range []string{"none", "NONE", "null", "Null"} {
			got, err := Convert(s, nil, conv)
			require.NoError(t, err, "input %q", s)
			assert.False(t, got.Present, "input %q", s)
		}
	})
	t.Run("inner error propagates", func(t *testing.T) {
		_, err := Convert("abc", nil, conv)
		assert.ErrorIs(t, err, ErrInvalidIntValue)
	})
}

func TestOptionalOfPolicyFlags(t *testing.T) {
	conv := OptionalOf(Int)

	t.Run("handle empty off, recognize none off", func(t *testing.T) {
		cfg := &ConverterConfig{TrimWhitespace: true}
		_, err := Convert("", cfg, conv)
		assert.ErrorIs(t, err, ErrInvalidIntValue)
	})
	t.Run("recognize none alone still absorbs empty", func(t *testing.T) {
		cfg := &ConverterConfig{TrimWhitespace: true, RecognizeNone: true}
		got, err := Convert("", cfg, conv)
		require.NoError(t, err)
		assert.False(t, got.Present)
	})
	t.Run("handle empty alone passes none to inner", func(t *testing.T) {
		cfg := &ConverterConfig{TrimWhitespace: true, HandleEmpty: true}
		_, err := Convert("none", cfg, conv)
		assert.ErrorIs(t, err, ErrInvalidIntValue)
	})
}

func TestTypeConverter(t *testing.T) {
	fn := TypeConverter(Int)
	got, err := fn("42", DefaultConverterConfig())
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestUnescapeValue(t *testing.T) {
	got, err := Unescape(`a\,b`)
	require.NoError(t, err)
	assert.Equal(t, "a,b", got)

	_, err = Unescape(`a\`)
	assert.ErrorIs(t, err, ErrTrailingEscape)
}
