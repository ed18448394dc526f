package util

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tekwizely/pam-args/internal/errs"
)

// TextOptions configures the escape/quote-aware string helpers.
//
type TextOptions struct {
	CaseSensitive bool
	Escape        rune
	SingleQuote   rune
	DoubleQuote   rune
}

// DefaultTextOptions returns the standard escape and quote characters.
//
func DefaultTextOptions() TextOptions {
	return TextOptions{
		CaseSensitive: true,
		Escape:        '\\',
		SingleQuote:   '\'',
		DoubleQuote:   '"',
	}
}

// Normalize lowercases s when case-insensitive mode is selected.
//
func Normalize(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// Equal compares two strings with optional case sensitivity.
//
func Equal(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// Unescape resolves backslash escape sequences against the fixed vocabulary:
// \n \t \r \\ \' \" \, \[ \] . Any other escaped character is an error, as is
// a trailing escape character with nothing following it.
//
func Unescape(s string, opts TextOptions) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, c := range s {
		if inEscape {
			switch c {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			case '\\', '\'', '"', ',', '[', ']':
				b.WriteRune(c)
			default:
				return "", fmt.Errorf("%w: \\%c", errs.ErrInvalidEscape, c)
			}
			inEscape = false
			continue
		}
		if c == opts.Escape {
			inEscape = true
			continue
		}
		b.WriteRune(c)
	}
	if inEscape {
		return "", fmt.Errorf("%w: %q", errs.ErrTrailingEscape, s)
	}
	return b.String(), nil
}

// Escape prefixes the escape character and every rune in escapeSet with the
// configured escape character.
//
func Escape(s string, escapeSet []rune, opts TextOptions) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, c := range s {
		if c == opts.Escape || containsRune(escapeSet, c) {
			b.WriteRune(opts.Escape)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// SmartTrim trims surrounding whitespace; for a fully-quoted string the
// quotes are kept and the content inside them is trimmed instead. The
// conversion chain trims plainly at its entry; this is the quote-aware
// variant for callers cleaning up values that keep their quotes.
//
func SmartTrim(s string, opts TextOptions) string {
	if utf8.RuneCountInString(s) < 2 {
		return strings.TrimSpace(s)
	}
	first, firstLen := utf8.DecodeRuneInString(s)
	last, lastLen := utf8.DecodeLastRuneInString(s)

	var quote rune
	switch {
	case first == opts.SingleQuote && last == opts.SingleQuote:
		quote = opts.SingleQuote
	case first == opts.DoubleQuote && last == opts.DoubleQuote:
		quote = opts.DoubleQuote
	default:
		return strings.TrimSpace(s)
	}
	inner := strings.TrimSpace(s[firstLen : len(s)-lastLen])
	return string(quote) + inner + string(quote)
}

// SmartSplit splits s on delim, ignoring delimiters inside quotes or behind
// the escape character. Quotes and escapes are retained in the parts. This
// is the scalar splitting primitive for values that are already a single
// token; the tokenizer carries its own lexer-driven scan for bracket
// interiors.
//
func SmartSplit(s string, delim rune, opts TextOptions) ([]string, error) {
	var (
		parts         []string
		current       strings.Builder
		inSingleQuote bool
		inDoubleQuote bool
		inEscape      bool
	)
	for _, c := range s {
		switch {
		case inEscape:
			current.WriteRune(c)
			inEscape = false
		case c == opts.Escape:
			current.WriteRune(c)
			inEscape = true
		case c == opts.SingleQuote && !inDoubleQuote:
			current.WriteRune(c)
			inSingleQuote = !inSingleQuote
		case c == opts.DoubleQuote && !inSingleQuote:
			current.WriteRune(c)
			inDoubleQuote = !inDoubleQuote
		case c == delim && !inSingleQuote && !inDoubleQuote:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	parts = append(parts, current.String())

	switch {
	case inSingleQuote:
		return nil, fmt.Errorf("%w: unclosed single quote in %q", errs.ErrUnclosedDelimiter, s)
	case inDoubleQuote:
		return nil, fmt.Errorf("%w: unclosed double quote in %q", errs.ErrUnclosedDelimiter, s)
	case inEscape:
		return nil, fmt.Errorf("%w: %q", errs.ErrTrailingEscape, s)
	}
	return parts, nil
}

// IsValidKeyName reports whether key matches [A-Za-z_][A-Za-z0-9_]* .
//
func IsValidKeyName(key string) bool {
	if key == "" {
		return false
	}
	for i, c := range key {
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// containsRune
//
func containsRune(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
