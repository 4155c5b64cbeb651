// Package version exposes build metadata set via -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/gleemora/survivors/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("survivors %s (commit %s, built %s, %s/%s)",
		version, gitCommit, buildDate, runtime.GOOS, runtime.GOARCH)
}
