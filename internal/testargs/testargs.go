// Package testargs builds synthetic argument lists for tests and demos:
// flags, key-value pairs, bracket grouping, quoting and optional shuffling.
package testargs

import (
	"math/rand"
	"strings"
)

// Config controls how the builder renders its arguments.
//
type Config struct {
	UseBrackets       bool
	UseQuotes         bool
	QuoteChar         rune
	IncludeNonArgText bool
	RandomizeOrder    bool
}

// DefaultConfig renders plain, unquoted, ungrouped arguments in insertion
// order.
//
func DefaultConfig() Config {
	return Config{QuoteChar: '\''}
}

// Builder accumulates arguments and renders them per its Config.
//
type Builder struct {
	cfg        Config
	flags      []string
	pairs      [][2]string
	nonArgText []string
}

// NewBuilder
//
func NewBuilder(cfg Config) *Builder {
	if cfg.QuoteChar == 0 {
		cfg.QuoteChar = '\''
	}
	return &Builder{cfg: cfg}
}

// AddFlag appends one flag name.
//
func (b *Builder) AddFlag(name string) *Builder {
	b.flags = append(b.flags, name)
	return b
}

// AddFlags appends several flag names.
//
func (b *Builder) AddFlags(names ...string) *Builder {
	b.flags = append(b.flags, names...)
	return b
}

// AddKeyValue appends one key-value pair.
//
func (b *Builder) AddKeyValue(key, value string) *Builder {
	b.pairs = append(b.pairs, [2]string{key, value})
	return b
}

// AddKeyValues appends pairs from a map-like flat list: k1, v1, k2, v2, ...
// A trailing unpaired key is ignored.
//
func (b *Builder) AddKeyValues(kvs ...string) *Builder {
	for i := 0; i+1 < len(kvs); i += 2 {
		b.pairs = append(b.pairs, [2]string{kvs[i], kvs[i+1]})
	}
	return b
}

// AddNonArgText appends free-form text that matches no declared argument.
//
func (b *Builder) AddNonArgText(text string) *Builder {
	b.nonArgText = append(b.nonArgText, text)
	return b
}

// Build renders the argument list. Values containing spaces are quoted when
// UseQuotes is set. With UseBrackets, the key-value pairs collapse into one
// bracket-grouped argument.
//
func (b *Builder) Build() []string {
	var args []string
	args = append(args, b.flags...)

	rendered := make([]string, 0, len(b.pairs))
	for _, kv := range b.pairs {
		rendered = append(rendered, kv[0]+"="+b.quote(kv[1]))
	}
	if b.cfg.UseBrackets && len(rendered) > 0 {
		args = append(args, "["+strings.Join(rendered, ",")+"]")
	} else {
		args = append(args, rendered...)
	}
	if b.cfg.IncludeNonArgText {
		args = append(args, b.nonArgText...)
	}
	if b.cfg.RandomizeOrder {
		rand.Shuffle(len(args), func(i, j int) {
			args[i], args[j] = args[j], args[i]
		})
	}
	return args
}

// quote wraps v in the configured quote character when quoting is enabled
// and the value contains whitespace.
//
func (b *Builder) quote(v string) string {
	if !b.cfg.UseQuotes || !strings.ContainsAny(v, " \t") {
		return v
	}
	q := string(b.cfg.QuoteChar)
	return q + v + q
}
