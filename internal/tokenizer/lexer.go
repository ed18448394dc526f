package tokenizer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tekwizely/go-parsing/lexer"

	"github.com/tekwizely/pam-args/internal/errs"
)

// tokenElement is the only token type the interior scan emits.
//
const tokenElement = lexer.TStart

// lexFn is a state function bound to a lexContext.
//
type lexFn func(*lexContext, *lexer.Lexer) lexFn

// lexContext carries the scan state across lexer state functions.
//
type lexContext struct {
	cfg   Config
	fn    lexFn
	err   error
	input string
}

// lex is the go-parsing entry point. It dispatches to the current state
// function, stopping permanently once an error is recorded or the state
// functions run out.
//
func (ctx *lexContext) lex(l *lexer.Lexer) lexer.Fn {
	if ctx.err != nil || ctx.fn == nil {
		return nil
	}
	ctx.fn = ctx.fn(ctx, l)
	return ctx.lex
}

// splitInterior scans the text between brackets, splitting it on the
// delimiter while honoring quotes and escapes.
//
// Two rules live here rather than in the state function, because the lexer
// driver only invokes state functions while input remains: an empty
// interior is one empty token, and an interior whose raw text ends with
// the delimiter character owes a trailing empty token. The raw-text rule
// means even an escaped trailing delimiter produces the extra token.
//
func (t *Tokenizer) splitInterior(interior string) ([]string, error) {
	if interior == "" {
		return []string{""}, nil
	}

	ctx := &lexContext{cfg: t.cfg, fn: lexElement, input: interior}
	nexter := lexer.LexString(interior, ctx.lex)

	var tokens []string
	for {
		tok, err := nexter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if tok.Type() == tokenElement {
			tokens = append(tokens, tok.Value())
		}
	}
	if ctx.err != nil {
		return nil, ctx.err
	}
	if strings.HasSuffix(interior, string(t.cfg.Delimiter)) {
		tokens = append(tokens, "")
	}
	return tokens, nil
}

// lexElement scans the whole interior in one pass. Structural delimiters
// split elements, quoted runs are consumed inline so the final emit always
// happens in this invocation, and escapes keep the following character
// verbatim. The final element is emitted only when non-empty; the trailing
// empty after a delimiter is splitInterior's raw-text rule.
//
func lexElement(ctx *lexContext, l *lexer.Lexer) lexFn {
	cfg := ctx.cfg
	for l.CanPeek(1) {
		switch l.Peek(1) {
		case cfg.Escape:
			l.Next()
			if !l.CanPeek(1) {
				ctx.err = fmt.Errorf("%w: %q", errs.ErrTrailingEscape, ctx.input)
				return nil
			}
			l.Next()
		case cfg.SingleQuote:
			l.Next()
			if !scanQuoted(ctx, l, cfg.SingleQuote, "single") {
				return nil
			}
		case cfg.DoubleQuote:
			l.Next()
			if !scanQuoted(ctx, l, cfg.DoubleQuote, "double") {
				return nil
			}
		case cfg.OpenBracket:
			ctx.err = fmt.Errorf("%w: %q", errs.ErrNestedBrackets, ctx.input)
			return nil
		case cfg.Delimiter:
			l.EmitToken(tokenElement)
			l.Next()
			l.Clear()
		default:
			l.Next()
		}
	}
	if l.PeekToken() != "" {
		l.EmitToken(tokenElement)
	}
	return nil
}

// scanQuoted consumes up to and including the closing quote, reporting
// false when the input ends first.
//
func scanQuoted(ctx *lexContext, l *lexer.Lexer, quote rune, kind string) bool {
	for l.CanPeek(1) {
		switch l.Peek(1) {
		case ctx.cfg.Escape:
			l.Next()
			if !l.CanPeek(1) {
				ctx.err = fmt.Errorf("%w: %q", errs.ErrTrailingEscape, ctx.input)
				return false
			}
			l.Next()
		case quote:
			l.Next()
			return true
		default:
			l.Next()
		}
	}
	ctx.err = fmt.Errorf("%w: unclosed %s quote in %q", errs.ErrUnclosedDelimiter, kind, ctx.input)
	return false
}
