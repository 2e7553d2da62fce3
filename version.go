package muda

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the muda library.
const Version = "0.2.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.2.0")
	Version string
	// GitCommit is the git commit hash
	GitCommit string
	// BuildTime is the build or commit timestamp
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime come from -ldflags when set:
//
//	go build -ldflags="-X github.com/zaidbabid/muda.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/zaidbabid/muda.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/muda
//
// Otherwise they fall back to the VCS stamps recorded by the go command, and
// finally to "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "unknown":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "unknown":
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
