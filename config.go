package pamargs

import (
	"io"
	"log/slog"

	"github.com/tekwizely/pam-args/internal/tokenizer"
)

// ParserConfig holds the settled options for a scan. Construct one through
// NewParserConfig, which validates the delimiter characters.
//
type ParserConfig struct {
	caseSensitive        bool
	caseSensitiveValues  bool
	collectNonArgText    bool
	multiKeyValue        bool
	multiKeyValueFormats []AllowedKeyValueFormats
	delims               tokenizer.Config
	trimValues           bool
	logger               *slog.Logger
}

// CaseSensitive reports whether key names compare case-sensitively.
//
func (c *ParserConfig) CaseSensitive() bool { return c.caseSensitive }

// CaseSensitiveValues reports whether values compare case-sensitively.
//
func (c *ParserConfig) CaseSensitiveValues() bool { return c.caseSensitiveValues }

// CollectNonArgText reports whether unrecognized text is collected rather
// than rejected.
//
func (c *ParserConfig) CollectNonArgText() bool { return c.collectNonArgText }

// MultiKeyValue reports whether undeclared key-value pairs are accepted.
//
func (c *ParserConfig) MultiKeyValue() bool { return c.multiKeyValue }

// MultiKeyValueFormats returns the formats accepted for undeclared pairs.
//
func (c *ParserConfig) MultiKeyValueFormats() []AllowedKeyValueFormats {
	return c.multiKeyValueFormats
}

// Delimiters returns the tokenizer character configuration.
//
func (c *ParserConfig) Delimiters() tokenizer.Config { return c.delims }

// TrimValues reports whether values are whitespace-trimmed.
//
func (c *ParserConfig) TrimValues() bool { return c.trimValues }

// Logger returns the configured logger.
//
func (c *ParserConfig) Logger() *slog.Logger { return c.logger }

// ParserConfigBuilder accumulates options for a ParserConfig.
//
type ParserConfigBuilder struct {
	cfg ParserConfig
}

// NewParserConfig starts a builder with the default options: case-sensitive
// keys and values, no non-arg text collection, no multi key-value, standard
// delimiter characters, value trimming on, and a discarding logger.
//
func NewParserConfig() *ParserConfigBuilder {
	return &ParserConfigBuilder{
		cfg: ParserConfig{
			caseSensitive:        true,
			caseSensitiveValues:  true,
			multiKeyValueFormats: []AllowedKeyValueFormats{FormatKeyValue},
			delims:               tokenizer.DefaultConfig(),
			trimValues:           true,
		},
	}
}

// CaseSensitive sets key name case sensitivity.
//
func (b *ParserConfigBuilder) CaseSensitive(v bool) *ParserConfigBuilder {
	b.cfg.caseSensitive = v
	return b
}

// CaseSensitiveValues sets value case sensitivity.
//
func (b *ParserConfigBuilder) CaseSensitiveValues(v bool) *ParserConfigBuilder {
	b.cfg.caseSensitiveValues = v
	return b
}

// CollectNonArgText enables collecting unrecognized text.
//
func (b *ParserConfigBuilder) CollectNonArgText(v bool) *ParserConfigBuilder {
	b.cfg.collectNonArgText = v
	return b
}

// EnableMultiKeyValue accepts undeclared key-value pairs in the given
// formats. With no formats the default (FormatKeyValue) is kept.
//
func (b *ParserConfigBuilder) EnableMultiKeyValue(formats ...AllowedKeyValueFormats) *ParserConfigBuilder {
	b.cfg.multiKeyValue = true
	if len(formats) > 0 {
		b.cfg.multiKeyValueFormats = formats
	}
	return b
}

// EscapeChar overrides the escape character.
//
func (b *ParserConfigBuilder) EscapeChar(r rune) *ParserConfigBuilder {
	b.cfg.delims.Escape = r
	return b
}

// QuoteChars overrides the single and double quote characters.
//
func (b *ParserConfigBuilder) QuoteChars(single, double rune) *ParserConfigBuilder {
	b.cfg.delims.SingleQuote = single
	b.cfg.delims.DoubleQuote = double
	return b
}

// BracketChars overrides the open and close bracket characters.
//
func (b *ParserConfigBuilder) BracketChars(open, close rune) *ParserConfigBuilder {
	b.cfg.delims.OpenBracket = open
	b.cfg.delims.CloseBracket = close
	return b
}

// Delimiter overrides the element delimiter character.
//
func (b *ParserConfigBuilder) Delimiter(r rune) *ParserConfigBuilder {
	b.cfg.delims.Delimiter = r
	return b
}

// TrimValues sets whether values are whitespace-trimmed.
//
func (b *ParserConfigBuilder) TrimValues(v bool) *ParserConfigBuilder {
	b.cfg.trimValues = v
	return b
}

// Logger sets the logger used during scans.
//
func (b *ParserConfigBuilder) Logger(log *slog.Logger) *ParserConfigBuilder {
	b.cfg.logger = log
	return b
}

// Build validates the options and returns the settled config. The six
// delimiter characters must be pairwise distinct.
//
func (b *ParserConfigBuilder) Build() (*ParserConfig, error) {
	if err := b.cfg.delims.Validate(); err != nil {
		return nil, err
	}
	cfg := b.cfg
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &cfg, nil
}
