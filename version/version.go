// Package version provides build version information embedding.
//
// Version, git commit, and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/skillsenselab/rpckit/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
}

// Get returns the build's version information. When -ldflags did not set the
// commit, it falls back to the VCS stamp embedded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}

	if info.GitCommit == "" {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range buildInfo.Settings {
				switch setting.Key {
				case "vcs.revision":
					info.GitCommit = setting.Value
				case "vcs.time":
					if info.BuildTime == "" {
						info.BuildTime = setting.Value
					}
				}
			}
		}
	}
	return info
}

// Short returns a one-line version string for logs and introspection
// responses.
func Short() string {
	info := Get()
	if info.GitCommit == "" {
		return info.Version
	}
	commit := info.GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (%s)", info.Version, commit)
}
