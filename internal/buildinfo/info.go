// Package buildinfo holds version metadata injected at build time.
package buildinfo

// Set via -ldflags "-X ..." during release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
