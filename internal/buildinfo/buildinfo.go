// Package buildinfo holds version information injected at build time via ldflags:
//
//	-X github.com/watchfire-io/deskshell/internal/buildinfo.Version=1.0.0
package buildinfo

var (
	Version    = "dev"
	Codename   = "unknown"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
