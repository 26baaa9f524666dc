// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/deviationview/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/deviationview/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/deviationview/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"
	// Commit is the full git commit SHA.
	Commit = "none"
	// Date is the UTC build timestamp.
	Date = "unknown"
)

// shortCommit is the length Short abbreviates the commit to.
const shortCommit = 7

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Short returns "version (commit)" with the commit abbreviated.
func Short() string {
	c := Commit
	if len(c) > shortCommit {
		c = c[:shortCommit]
	}
	return fmt.Sprintf("%s (%s)", Version, c)
}

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\nbuilt: %s\n", Short(), Date)
}
