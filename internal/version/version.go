package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/notifyrules/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/notifyrules/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/notifyrules/internal/version.Date={{.Date}}
)

// String renders the build information on three lines.
func String() string {
	return fmt.Sprintf("notifyrules version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
