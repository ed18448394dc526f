package main

import "fmt"

// Overridden at build time via ldflags.
//
var (
	version    = "DEV"
	buildDate  = "UNKNOWN"
	gitSummary = ""
)

// versionString
//
func versionString() string {
	if gitSummary != "" {
		return fmt.Sprintf("pamargs-demo %s (%s) built %s", version, gitSummary, buildDate)
	}
	return fmt.Sprintf("pamargs-demo %s built %s", version, buildDate)
}
