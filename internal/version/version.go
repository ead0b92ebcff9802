// Package version holds build-time version information.
package version

import "fmt"

// Build information. Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the short version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
