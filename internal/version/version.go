// Package version holds build information, set at link time with
// -ldflags "-X github.com/stupside/uaforge/internal/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)
