// Command pamargs-demo exercises the argument pipeline from the command
// line: it declares a small set of flags and key-value arguments, scans the
// remaining command-line words, and prints what the scanner saw.
//
//	pamargs-demo debug user=alice '[host=example.com,port=22]'
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	pamargs "github.com/tekwizely/pam-args"

	"github.com/tekwizely/pam-args/internal/util"
)

var (
	flagVersion bool
	flagVerbose bool
	flagTrim    bool
)

// usage
//
func usage() {
	fmt.Print(heredoc.Doc(`
		usage: pamargs-demo [options] [module-args ...]

		Scans module-args the way a PAM module would: bracket groups are
		expanded, quotes and escapes are honored, and every token is
		classified as key=value, key= or a bare key.

		options:
		  -version   show version and exit
		  -v         log scan details to stderr
		  -no-trim   keep surrounding whitespace on values

		example:
		  pamargs-demo debug user=alice '[host=example.com,port=22]'
	`))
}

func main() {
	flag.Usage = usage
	flag.BoolVar(&flagVersion, "version", false, "")
	flag.BoolVar(&flagVerbose, "v", false, "")
	flag.BoolVar(&flagTrim, "no-trim", false, "")
	flag.Parse()

	if flagVersion {
		fmt.Println(versionString())
		os.Exit(0)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if flagVerbose {
		level := pamargs.LevelTrace
		if lvl := util.GetEnvOrDefault("PAMARGS_LOG", ""); strings.EqualFold(lvl, "debug") {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	cfg, err := pamargs.NewParserConfig().
		TrimValues(!flagTrim).
		Logger(log).
		Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pamargs-demo:", err)
		os.Exit(2)
	}

	result, err := cfg.Scan(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pamargs-demo: %s (%s)\n", err, pamargs.ErrorCode(err))
		os.Exit(1)
	}

	flags, pairs := bindArgs(result)

	fmt.Printf("tokens: %d (expanded: %v)\n", len(result.Tokens), result.Expanded)
	for i, d := range result.Detections {
		if v, ok := d.Value.Get(); ok {
			fmt.Printf("  [%d] %-9s key=%q value=%q\n", i, d.Format, d.Key, v)
		} else {
			fmt.Printf("  [%d] %-9s key=%q\n", i, d.Format, d.Key)
		}
	}
	if len(flags) > 0 {
		fmt.Println("flags:", strings.Join(flags, ", "))
	}
	for _, key := range pairs.Keys() {
		printTyped(pairs, key)
	}
}

// demoFlags and demoKeyValues declare the arguments the demo recognizes.
//
var (
	demoFlags = []*pamargs.Flag{
		pamargs.NewFlag("debug", "enable module debugging"),
		pamargs.NewFlag("use_first_pass", "reuse the password from the stack"),
	}
	demoKeyValues = []*pamargs.KeyValue{
		pamargs.NewKeyValue("user", "user name").
			WithConverter(pamargs.TypeConverter(pamargs.String)),
		pamargs.NewKeyValue("host", "target host").
			WithFormats(pamargs.FormatKeyValue, pamargs.FormatKeyEquals),
		pamargs.NewKeyValue("port", "target port").
			WithConverter(pamargs.TypeConverter(pamargs.Int)),
		pamargs.NewKeyValue("strict", "strict mode").
			WithConverter(pamargs.TypeConverter(pamargs.Bool)),
	}
)

// bindArgs matches detections against the declared arguments, returning the
// matched flag names and a store of matched key-value pairs. Unmatched
// tokens are reported but not fatal; the demo keeps going.
//
func bindArgs(result *pamargs.ScanResult) ([]string, *pamargs.MapKeyValueStore) {
	var flags []string
	store := pamargs.NewMapKeyValueStore()
	for _, d := range result.Detections {
		if d.Format == pamargs.FormatKeyOnly && flagName(d.Key) != "" {
			flags = append(flags, d.Key)
			continue
		}
		if kv := keyValueFor(d.Key); kv != nil {
			if err := d.Validate(kv.Formats()); err != nil {
				fmt.Fprintln(os.Stderr, "pamargs-demo:", err)
				continue
			}
			store.Add(d.Key, d.Value)
			continue
		}
		fmt.Fprintf(os.Stderr, "pamargs-demo: unrecognized argument %q\n", d.Key)
	}
	return flags, store
}

// flagName returns the declared flag name matching key, or "".
//
func flagName(key string) string {
	for _, f := range demoFlags {
		if f.Name() == key {
			return f.Name()
		}
	}
	return ""
}

// keyValueFor returns the declared key-value argument matching key, or nil.
//
func keyValueFor(key string) *pamargs.KeyValue {
	for _, kv := range demoKeyValues {
		if kv.Name() == key {
			return kv
		}
	}
	return nil
}

// printTyped converts a stored value through the declared converter and
// prints the result.
//
func printTyped(store *pamargs.MapKeyValueStore, key string) {
	kv := keyValueFor(key)
	opt, _ := store.Get(key)
	raw, present := opt.Get()
	if !present {
		fmt.Printf("%s: (no value)\n", key)
		return
	}
	if kv == nil || !kv.HasConverter() {
		fmt.Printf("%s: %q\n", key, raw)
		return
	}
	v, err := kv.ConvertValue(raw, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pamargs-demo: %s: %s (%s)\n", key, err, pamargs.ErrorCode(err))
		return
	}
	fmt.Printf("%s: %v\n", key, v)
}
