// Package errs defines the sentinel errors shared across the library.
// Errors returned to callers wrap these with detail via fmt.Errorf("%w: ...")
// and are matched with errors.Is.
package errs

import "errors"

var (
	// ErrUnclosedDelimiter flags an opened bracket or quote with no matching close.
	//
	ErrUnclosedDelimiter = errors.New("unclosed delimiter")

	// ErrNestedBrackets flags an open bracket inside an already-open bracket.
	//
	ErrNestedBrackets = errors.New("nested brackets are not supported")

	// ErrTrailingEscape flags an escape character with no character following it.
	//
	ErrTrailingEscape = errors.New("trailing escape character")

	// ErrInvalidKeyValue flags a token whose detected format is not allowed.
	//
	ErrInvalidKeyValue = errors.New("invalid key-value format")

	// ErrInvalidIntValue flags a value that could not be parsed as an integer.
	//
	ErrInvalidIntValue = errors.New("invalid integer value")

	// ErrInvalidBoolValue flags a value outside the boolean literal tables.
	//
	ErrInvalidBoolValue = errors.New("invalid boolean value")

	// ErrInvalidCharValue flags a value that is not exactly one character.
	//
	ErrInvalidCharValue = errors.New("invalid character value")

	// ErrInvalidEscape flags an escape sequence outside the fixed vocabulary.
	//
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrInvalidInput flags input that is malformed in some other way.
	//
	ErrInvalidInput = errors.New("invalid input")
)
