package pamargs

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tekwizely/pam-args/internal/errs"
	"github.com/tekwizely/pam-args/internal/util"
)

// ConverterConfig selects which normalization passes run before a raw value
// reaches its type converter. All passes are enabled by default.
//
type ConverterConfig struct {
	// TrimWhitespace trims surrounding whitespace before any other check.
	TrimWhitespace bool
	// HandleEmpty lets optional converters treat "" as an absent value.
	HandleEmpty bool
	// RecognizeNone lets optional converters treat none/null literals as absent.
	RecognizeNone bool
}

// DefaultConverterConfig returns a config with every pass enabled.
//
func DefaultConverterConfig() *ConverterConfig {
	return &ConverterConfig{
		TrimWhitespace: true,
		HandleEmpty:    true,
		RecognizeNone:  true,
	}
}

// Literal tables for boolean and none recognition. Matched case-insensitively.
//
var (
	trueValues  = []string{"true", "yes", "1", "on"}
	falseValues = []string{"false", "no", "0", "off"}
	noneValues  = []string{"none", "null", ""}
)

func inLiterals(s string, literals []string) bool {
	for _, lit := range literals {
		if strings.EqualFold(s, lit) {
			return true
		}
	}
	return false
}

// ConvertFunc converts a raw string value into a typed value. The config is
// never nil by the time a ConvertFunc runs; Convert fills in defaults.
//
type ConvertFunc[T any] func(raw string, cfg *ConverterConfig) (T, error)

// Convert is the entry point of the conversion chain. A nil cfg selects
// DefaultConverterConfig. Whitespace trimming happens here, once, before the
// converter runs, so inner converters always see the trimmed value.
//
func Convert[T any](raw string, cfg *ConverterConfig, fn ConvertFunc[T]) (T, error) {
	if cfg == nil {
		cfg = DefaultConverterConfig()
	}
	if cfg.TrimWhitespace {
		raw = strings.TrimSpace(raw)
	}
	return fn(raw, cfg)
}

// String passes the value through unchanged.
//
func String(raw string, _ *ConverterConfig) (string, error) {
	return raw, nil
}

// Int parses the value as a base-10 integer.
//
func Int(raw string, _ *ConverterConfig) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidIntValue, raw)
	}
	return n, nil
}

// Bool parses the value against the boolean literal tables
// (true/yes/1/on and false/no/0/off, case-insensitive).
//
func Bool(raw string, _ *ConverterConfig) (bool, error) {
	switch {
	case inLiterals(raw, trueValues):
		return true, nil
	case inLiterals(raw, falseValues):
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", errs.ErrInvalidBoolValue, raw)
}

// Char parses the value as exactly one character.
//
func Char(raw string, _ *ConverterConfig) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCharValue, raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

// Optional is a value that may be absent. Absent is distinct from present
// with a zero value: key= yields a present empty string, while key=none
// (or a key never supplied) yields an absent one.
//
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional.
//
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// None returns an absent Optional.
//
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
//
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OptionalOf wraps a converter so that empty and none-literal values become
// absent rather than conversion errors. Which literals count as absent is
// controlled by the config's HandleEmpty and RecognizeNone flags.
//
func OptionalOf[T any](inner ConvertFunc[T]) ConvertFunc[Optional[T]] {
	return func(raw string, cfg *ConverterConfig) (Optional[T], error) {
		if cfg.HandleEmpty && raw == "" {
			return None[T](), nil
		}
		if cfg.RecognizeNone && inLiterals(raw, noneValues) {
			return None[T](), nil
		}
		v, err := inner(raw, cfg)
		if err != nil {
			return None[T](), err
		}
		return Some(v), nil
	}
}

// ConvertValueFunc is the untyped converter shape stored on a KeyValue
// binding, where the target type is not known at the call site.
//
type ConvertValueFunc func(raw string, cfg *ConverterConfig) (any, error)

// TypeConverter adapts a typed converter into a ConvertValueFunc.
//
func TypeConverter[T any](fn ConvertFunc[T]) ConvertValueFunc {
	return func(raw string, cfg *ConverterConfig) (any, error) {
		return fn(raw, cfg)
	}
}

// Unescape resolves backslash escape sequences in a raw token value.
// Quoting and escaping are preserved by the tokenizer, so callers that
// want resolved text apply this after tokenization.
//
func Unescape(s string) (string, error) {
	return util.Unescape(s, util.DefaultTextOptions())
}
