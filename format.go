package pamargs

import (
	"fmt"
	"strings"

	"github.com/tekwizely/pam-args/internal/errs"
)

// FormatDetection is the classified shape of a single token: which format it
// matched, the key, and the value when one is present. An empty value after
// the equals sign is present-but-empty; a bare key has no value at all.
//
type FormatDetection struct {
	Format AllowedKeyValueFormats
	Key    string
	Value  Optional[string]
}

// DetectFormat classifies a token by its first equals sign:
//
//	key=value -> FormatKeyValue
//	key=      -> FormatKeyEquals
//	key       -> FormatKeyOnly
//
// Everything after the first equals sign belongs to the value, so
// key=a=b yields the value "a=b".
//
func DetectFormat(token string) FormatDetection {
	i := strings.IndexByte(token, '=')
	if i < 0 {
		return FormatDetection{Format: FormatKeyOnly, Key: token, Value: None[string]()}
	}
	key, value := token[:i], token[i+1:]
	if value == "" {
		return FormatDetection{Format: FormatKeyEquals, Key: key, Value: Some("")}
	}
	return FormatDetection{Format: FormatKeyValue, Key: key, Value: Some(value)}
}

// Validate checks the detection against a list of accepted formats.
//
func (d FormatDetection) Validate(allowed []AllowedKeyValueFormats) error {
	if d.Format.IsCompatibleWithAny(allowed) {
		return nil
	}
	return fmt.Errorf("%w: %s format not accepted for key %q", errs.ErrInvalidKeyValue, d.Format, d.Key)
}
