package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String returns the one line version banner printed by --version.
func String(name string) string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", name, Version, CommitHash, BuildDate)
}
