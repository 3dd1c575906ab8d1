// Package buildinfo holds the version stamped into hemicycle binaries.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/hemicycle/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/hemicycle/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/hemicycle/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/hemicycle
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// Fields returns the build information as logger key/value pairs.
func Fields() []any {
	return []any{"version", Version, "commit", Commit, "built", Date}
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
