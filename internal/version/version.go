// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags at release time
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("scenariolint %s (%s) built on %s with %s",
		Version, Commit, Date, runtime.Version())
}

// Short returns just the version string
func Short() string {
	return Version
}
