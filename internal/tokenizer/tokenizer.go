// Package tokenizer converts raw argument strings into logical tokens,
// expanding bracket-delimited comma lists into their elements while
// respecting quoting and escaping.
//
// The bracket-interior scan is a small state machine:
//
//   - Normal: outside any quote, the delimiter splits elements
//   - InSingleQuote / InDoubleQuote: the delimiter has no structural meaning
//   - EscapeSequence: the next character is kept verbatim
//
// Escapes are recognized structurally but never resolved here; quotes and
// escape characters are retained in the emitted tokens. Resolution happens
// downstream (util.Unescape), and trimming happens later still, in the
// conversion chain.
package tokenizer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tekwizely/pam-args/internal/errs"
)

// levelTrace sits below slog.LevelDebug, mirroring the trace/debug split.
//
const levelTrace = slog.LevelDebug - 4

// Config holds the delimiter characters that parameterize the scanner.
// Immutable once constructed.
//
type Config struct {
	Escape       rune
	SingleQuote  rune
	DoubleQuote  rune
	OpenBracket  rune
	CloseBracket rune
	Delimiter    rune
}

// DefaultConfig returns the standard delimiter characters.
//
func DefaultConfig() Config {
	return Config{
		Escape:       '\\',
		SingleQuote:  '\'',
		DoubleQuote:  '"',
		OpenBracket:  '[',
		CloseBracket: ']',
		Delimiter:    ',',
	}
}

// Validate rejects configurations whose six characters are not pairwise
// distinct. A shared character (say, escape == delimiter) would make the
// scanner ambiguous.
//
func (c Config) Validate() error {
	fields := []struct {
		name string
		r    rune
	}{
		{"escape", c.Escape},
		{"single quote", c.SingleQuote},
		{"double quote", c.DoubleQuote},
		{"open bracket", c.OpenBracket},
		{"close bracket", c.CloseBracket},
		{"delimiter", c.Delimiter},
	}
	seen := make(map[rune]string, len(fields))
	for _, f := range fields {
		if prev, ok := seen[f.r]; ok {
			return fmt.Errorf("%w: %s and %s share the same character %q", errs.ErrInvalidInput, prev, f.name, f.r)
		}
		seen[f.r] = f.name
	}
	return nil
}

// Result is the outcome of tokenizing one or more arguments.
//
type Result struct {
	Tokens   []string
	Expanded bool // whether any bracket expansion occurred
}

// Tokenizer splits raw arguments into logical tokens.
//
type Tokenizer struct {
	cfg Config
	log *slog.Logger
}

// New creates a tokenizer for the given configuration. A nil logger
// discards all output.
//
func New(cfg Config, log *slog.Logger) *Tokenizer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Tokenizer{cfg: cfg, log: log}
}

// Tokenize processes a single pre-split argument. Input that does not start
// with the open bracket passes through unmodified as one token. Bracketed
// input must end with the close bracket and is split on the delimiter.
//
func (t *Tokenizer) Tokenize(arg string) (Result, error) {
	t.log.Log(context.Background(), levelTrace, "tokenizing argument", "arg", arg)

	if !strings.HasPrefix(arg, string(t.cfg.OpenBracket)) {
		return Result{Tokens: []string{arg}}, nil
	}
	if !strings.HasSuffix(arg, string(t.cfg.CloseBracket)) {
		return Result{}, fmt.Errorf("%w: unclosed bracket in %q", errs.ErrUnclosedDelimiter, arg)
	}

	t.log.Debug("expanding bracketed argument", "arg", arg)
	interior := arg[len(string(t.cfg.OpenBracket)) : len(arg)-len(string(t.cfg.CloseBracket))]
	tokens, err := t.splitInterior(interior)
	if err != nil {
		return Result{}, err
	}
	return Result{Tokens: tokens, Expanded: true}, nil
}

// TokenizeAll processes arguments in order and concatenates their tokens,
// stopping at the first argument that fails.
//
func (t *Tokenizer) TokenizeAll(args []string) (Result, error) {
	var out Result
	for _, arg := range args {
		r, err := t.Tokenize(arg)
		if err != nil {
			return Result{}, err
		}
		out.Tokens = append(out.Tokens, r.Tokens...)
		out.Expanded = out.Expanded || r.Expanded
	}
	t.log.Log(context.Background(), levelTrace, "tokenization complete", "tokens", len(out.Tokens))
	return out, nil
}
