// Package version carries build-time version metadata, injected with
// -ldflags at release time.
package version

import "runtime"

var (
	// Version is the semantic version of this build.
	Version = "dev"
	// GitCommit is the short commit hash of this build.
	GitCommit = "unknown"
	// BuildTime is the RFC3339 timestamp of this build.
	BuildTime = "unknown"
)

// GoVersion reports the Go toolchain used for compilation.
func GoVersion() string {
	return runtime.Version()
}
