// Package version carries build metadata for the gospan binary.
package version

import "fmt"

// Set with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gospan/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2026"
)

// String returns a one-line description such as "gospan v0.3.0 (abc1234, built 2026-10-01)".
func String() string {
	if GitCommit == "unknown" && BuildTime == "unknown" {
		return fmt.Sprintf("gospan v%s (development build)", Version)
	}
	return fmt.Sprintf("gospan v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
