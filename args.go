package pamargs

import (
	"strings"

	"github.com/tekwizely/pam-args/internal/util"
)

// AllowedKeyValueFormats enumerates the shapes a key-value token may take.
//
type AllowedKeyValueFormats int

const (
	// FormatKeyValue matches key=value with a non-empty value.
	FormatKeyValue AllowedKeyValueFormats = iota
	// FormatKeyOnly matches a bare key with no equals sign.
	FormatKeyOnly
	// FormatKeyEquals matches key= with an empty value.
	FormatKeyEquals
	// FormatKeyAll is a wildcard compatible with every format.
	FormatKeyAll
)

// String
//
func (f AllowedKeyValueFormats) String() string {
	switch f {
	case FormatKeyValue:
		return "KeyValue"
	case FormatKeyOnly:
		return "KeyOnly"
	case FormatKeyEquals:
		return "KeyEquals"
	case FormatKeyAll:
		return "KeyAll"
	}
	return "Unknown"
}

// AllFormats returns every concrete format (the wildcard excluded).
//
func AllFormats() []AllowedKeyValueFormats {
	return []AllowedKeyValueFormats{FormatKeyValue, FormatKeyOnly, FormatKeyEquals}
}

// IsCompatibleWith reports whether two formats match, treating FormatKeyAll
// as a wildcard on either side.
//
func (f AllowedKeyValueFormats) IsCompatibleWith(other AllowedKeyValueFormats) bool {
	return f == other || f == FormatKeyAll || other == FormatKeyAll
}

// IsCompatibleWithAny reports whether f matches at least one of the given
// formats.
//
func (f AllowedKeyValueFormats) IsCompatibleWithAny(formats []AllowedKeyValueFormats) bool {
	for _, o := range formats {
		if f.IsCompatibleWith(o) {
			return true
		}
	}
	return false
}

// IsValidKeyName reports whether name is usable as an argument key:
// a letter or underscore followed by letters, digits or underscores.
//
func IsValidKeyName(name string) bool {
	return util.IsValidKeyName(name)
}

// Flag declares a presence-only argument. Flags have a name, optional
// dependency and exclusion lists, and may be marked required.
//
type Flag struct {
	name        string
	description string
	required    bool
	dependsOn   []string
	excludes    []string
}

// NewFlag creates a flag with the given name and description.
//
func NewFlag(name, description string) *Flag {
	return &Flag{name: name, description: description}
}

// Required marks the flag as mandatory.
//
func (f *Flag) Required() *Flag {
	f.required = true
	return f
}

// DependsOn adds arguments that must be present alongside this flag.
//
func (f *Flag) DependsOn(names ...string) *Flag {
	f.dependsOn = append(f.dependsOn, names...)
	return f
}

// Excludes adds arguments that must not appear alongside this flag.
//
func (f *Flag) Excludes(names ...string) *Flag {
	f.excludes = append(f.excludes, names...)
	return f
}

// Name
//
func (f *Flag) Name() string { return f.name }

// Description
//
func (f *Flag) Description() string { return f.description }

// IsRequired
//
func (f *Flag) IsRequired() bool { return f.required }

// Dependencies
//
func (f *Flag) Dependencies() []string { return f.dependsOn }

// Exclusions
//
func (f *Flag) Exclusions() []string { return f.excludes }

// KeyValue declares a key-value argument: a key name, the formats it
// accepts, an optional allowed-value list, and an optional type converter.
//
type KeyValue struct {
	name        string
	description string
	required    bool
	dependsOn   []string
	excludes    []string
	formats     []AllowedKeyValueFormats
	values      []string
	converter   ConvertValueFunc
}

// NewKeyValue creates a key-value argument accepting the key=value format.
//
func NewKeyValue(name, description string) *KeyValue {
	return &KeyValue{
		name:        name,
		description: description,
		formats:     []AllowedKeyValueFormats{FormatKeyValue},
	}
}

// Required marks the argument as mandatory.
//
func (kv *KeyValue) Required() *KeyValue {
	kv.required = true
	return kv
}

// DependsOn adds arguments that must be present alongside this one.
//
func (kv *KeyValue) DependsOn(names ...string) *KeyValue {
	kv.dependsOn = append(kv.dependsOn, names...)
	return kv
}

// Excludes adds arguments that must not appear alongside this one.
//
func (kv *KeyValue) Excludes(names ...string) *KeyValue {
	kv.excludes = append(kv.excludes, names...)
	return kv
}

// WithFormats replaces the accepted formats.
//
func (kv *KeyValue) WithFormats(formats ...AllowedKeyValueFormats) *KeyValue {
	kv.formats = formats
	return kv
}

// WithValues restricts the argument to an explicit value list.
//
func (kv *KeyValue) WithValues(values ...string) *KeyValue {
	kv.values = values
	return kv
}

// WithConverter attaches a type converter applied to the raw value.
//
func (kv *KeyValue) WithConverter(fn ConvertValueFunc) *KeyValue {
	kv.converter = fn
	return kv
}

// Name
//
func (kv *KeyValue) Name() string { return kv.name }

// Description
//
func (kv *KeyValue) Description() string { return kv.description }

// IsRequired
//
func (kv *KeyValue) IsRequired() bool { return kv.required }

// Dependencies
//
func (kv *KeyValue) Dependencies() []string { return kv.dependsOn }

// Exclusions
//
func (kv *KeyValue) Exclusions() []string { return kv.excludes }

// Formats
//
func (kv *KeyValue) Formats() []AllowedKeyValueFormats { return kv.formats }

// AllowedValues
//
func (kv *KeyValue) AllowedValues() []string { return kv.values }

// HasConverter
//
func (kv *KeyValue) HasConverter() bool { return kv.converter != nil }

// ConvertValue runs the attached converter on a raw value. Without a
// converter the raw string passes through. Trimming matches Convert:
// plain whitespace trim once at entry, surrounding quotes kept.
//
func (kv *KeyValue) ConvertValue(raw string, cfg *ConverterConfig) (any, error) {
	if kv.converter == nil {
		return Convert(raw, cfg, String)
	}
	if cfg == nil {
		cfg = DefaultConverterConfig()
	}
	if cfg.TrimWhitespace {
		raw = strings.TrimSpace(raw)
	}
	return kv.converter(raw, cfg)
}

// IsValueAllowed reports whether v passes the allowed-value list. An empty
// list allows everything.
//
func (kv *KeyValue) IsValueAllowed(v string, caseSensitive bool) bool {
	if len(kv.values) == 0 {
		return true
	}
	for _, allowed := range kv.values {
		if util.Equal(v, allowed, caseSensitive) {
			return true
		}
	}
	return false
}
