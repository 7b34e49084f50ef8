// Package version exposes build information for the running binary.
//
// Version and Commit are set at compile time:
//
//	go build -ldflags "-X github.com/trendtrails/server/internal/version.Version=1.2.0"
package version

import (
	"runtime/debug"
)

var (
	// Version is the release tag, "dev" when built without ldflags.
	Version = "dev"
	// Commit is the short VCS revision.
	Commit = ""
)

// Info is the build information reported by the health endpoint.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"goVersion"`
}

// Get assembles build information, falling back to the VCS metadata the
// toolchain embeds when ldflags were not set.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
					if len(info.Commit) > 7 {
						info.Commit = info.Commit[:7]
					}
					break
				}
			}
		}
	}
	return info
}
