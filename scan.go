package pamargs

import (
	"io"

	"github.com/tekwizely/go-parsing/lexer/token"
	"github.com/tekwizely/go-parsing/parser"

	"github.com/tekwizely/pam-args/internal/tokenizer"
)

// ScanResult is the outcome of the lexical stages: the expanded tokens and
// the format detection for each, in order.
//
type ScanResult struct {
	Tokens     []string
	Expanded   bool
	Detections []FormatDetection
}

// tokenString is the token type carried through the detection parse. The
// stream holds one token kind, so any value serves.
//
const tokenString token.Type = 0

// elemToken adapts a tokenized string element to the token interface.
//
type elemToken struct {
	value string
	index int
}

func (t *elemToken) Type() token.Type { return tokenString }
func (t *elemToken) Value() string    { return t.value }
func (t *elemToken) Line() int        { return 1 }
func (t *elemToken) Column() int      { return t.index + 1 }

// elemNexter feeds tokenized elements into the parser.
//
type elemNexter struct {
	tokens []string
	next   int
}

func (n *elemNexter) Next() (token.Token, error) {
	if n.next >= len(n.tokens) {
		return nil, io.EOF
	}
	t := &elemToken{value: n.tokens[n.next], index: n.next}
	n.next++
	return t, nil
}

// detectTokens classifies each token through the parser stage, emitting one
// FormatDetection per token.
//
func detectTokens(tokens []string) ([]FormatDetection, error) {
	detections := make([]FormatDetection, 0, len(tokens))
	items := parser.Parse(&elemNexter{tokens: tokens}, detectToken)
	for {
		item, err := items.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		detections = append(detections, item.(FormatDetection))
	}
	return detections, nil
}

// detectToken is the parser state function: classify one token, emit the
// detection, repeat until the stream ends.
//
func detectToken(p *parser.Parser) parser.Fn {
	if !p.CanPeek(1) {
		return nil
	}
	t := p.Next()
	p.Emit(DetectFormat(t.Value()))
	return detectToken
}

// Scan tokenizes the raw argument list and classifies each resulting token.
// Tokenization failures abort the scan; classification itself cannot fail,
// as every token matches exactly one format.
//
func (c *ParserConfig) Scan(args []string) (*ScanResult, error) {
	t := tokenizer.New(c.delims, c.logger)
	r, err := t.TokenizeAll(args)
	if err != nil {
		return nil, err
	}
	detections, err := detectTokens(r.Tokens)
	if err != nil {
		return nil, err
	}
	return &ScanResult{
		Tokens:     r.Tokens,
		Expanded:   r.Expanded,
		Detections: detections,
	}, nil
}
