package pamargs

import (
	"errors"

	"github.com/tekwizely/pam-args/internal/errs"
)

// Sentinel errors returned by the library. Wrapped errors carry detail;
// match them with errors.Is.
//
var (
	ErrUnclosedDelimiter = errs.ErrUnclosedDelimiter
	ErrNestedBrackets    = errs.ErrNestedBrackets
	ErrTrailingEscape    = errs.ErrTrailingEscape
	ErrInvalidKeyValue   = errs.ErrInvalidKeyValue
	ErrInvalidIntValue   = errs.ErrInvalidIntValue
	ErrInvalidBoolValue  = errs.ErrInvalidBoolValue
	ErrInvalidCharValue  = errs.ErrInvalidCharValue
	ErrInvalidEscape     = errs.ErrInvalidEscape
	ErrInvalidInput      = errs.ErrInvalidInput
)

// ErrorCode maps an error to a stable machine-readable code, for callers
// that log or report failures without string-matching error text.
//
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errs.ErrUnclosedDelimiter):
		return "UNCLOSED_DELIMITER"
	case errors.Is(err, errs.ErrNestedBrackets):
		return "NESTED_BRACKETS"
	case errors.Is(err, errs.ErrTrailingEscape):
		return "TRAILING_ESCAPE"
	case errors.Is(err, errs.ErrInvalidKeyValue):
		return "INVALID_KEY_VALUE"
	case errors.Is(err, errs.ErrInvalidIntValue):
		return "INVALID_INT_VALUE"
	case errors.Is(err, errs.ErrInvalidBoolValue):
		return "INVALID_BOOL_VALUE"
	case errors.Is(err, errs.ErrInvalidCharValue):
		return "INVALID_CHAR_VALUE"
	case errors.Is(err, errs.ErrInvalidEscape):
		return "INVALID_ESCAPE"
	case errors.Is(err, errs.ErrInvalidInput):
		return "INVALID_INPUT"
	}
	return "UNEXPECTED_ERROR"
}
