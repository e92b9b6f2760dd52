package id3meta

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3meta library.
const Version = "0.2.0"

// VersionInfo describes the build that is running. id3dump prints it for
// -version.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the version together with the VCS revision and time
// the binary was built from.
//
// Values set with -ldflags take precedence:
//
//	go build -ldflags="-X github.com/simonhull/id3meta.gitCommit=$(git rev-parse HEAD)" ./cmd/id3dump
//
// Otherwise the revision recorded by the Go toolchain is used, or "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = s.Value
				}
			}
		}
	}

	return info
}

// Set with -ldflags -X.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
