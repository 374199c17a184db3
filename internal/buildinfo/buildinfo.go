// Package buildinfo carries release metadata injected at link time.
package buildinfo

// Set via -ldflags by the release build. Empty for local/dev builds, where
// the version command falls back to debug.ReadBuildInfo.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
