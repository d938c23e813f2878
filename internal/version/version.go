package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/wiloon/enxkit/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/wiloon/enxkit/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/wiloon/enxkit/internal/version.Date={{.Date}}
)

// String formats the build information for the version command
func String() string {
	return fmt.Sprintf("enxkit version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
