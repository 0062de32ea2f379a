// Package version reports the build version of tickbox.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/tickbox/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/tickbox/internal/version.Commit=abc123"
//
// When empty they are filled from the module and VCS build info.
var (
	Version = ""
	Commit  = ""
)

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	GoVersion string
}

var (
	resolved     Info
	resolvedOnce sync.Once
)

// Get returns the version info, resolving it on first use
func Get() Info {
	resolvedOnce.Do(func() {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			bi = nil
		}
		resolved = resolve(Version, Commit, bi)
	})
	return resolved
}

func resolve(version, commit string, bi *debug.BuildInfo) Info {
	info := Info{Version: version, Commit: commit, GoVersion: runtime.Version()}

	if bi != nil {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		var revision, modified string
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value
			}
		}
		if info.Commit == "" && revision != "" {
			if len(revision) > 7 {
				revision = revision[:7]
			}
			info.Commit = revision
			if modified == "true" {
				info.Commit += "-dirty"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

// String formats the info as a single line
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, %s)", i.Version, i.Commit, i.GoVersion)
}

// Full returns the version line for the running binary
func Full() string {
	return Get().String()
}
