// Package pamargs parses PAM-module style argument lists: flags, key=value
// pairs, bracket-delimited groups, quoting and escaping, plus a typed
// conversion chain for the values.
//
// The pipeline has three stages. The tokenizer expands bracket groups into
// logical tokens, the format detector classifies each token as key=value,
// key= or bare key, and the conversion chain turns raw values into typed
// ones. Scan runs the first two stages; conversion is applied per value by
// the caller through Convert or ValueOf.
package pamargs

import "log/slog"

// LevelTrace is the slog level used for per-token diagnostics, one notch
// below debug.
//
const LevelTrace = slog.LevelDebug - 4

// Version is the library version, overridable at build time via ldflags.
//
var Version = "DEV"
