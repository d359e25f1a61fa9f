// Package version exposes the build metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version, stamped at release time via
// -ldflags "-X github.com/retint/retint/internal/version.Version=x.y.z".
var Version = "dev"

// Commit and Date can be stamped the same way; when left empty they are
// filled from the VCS metadata the Go toolchain records in the binary.
var (
	Commit = ""
	Date   = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "" {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == "" {
				Date = s.Value
			}
		}
	}
}

// Short returns just the version number.
func Short() string {
	return Version
}

// String returns the full human-readable version line.
func String() string {
	s := fmt.Sprintf("retint version %s (%s, %s/%s)",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if c := shortCommit(); c != "" {
		s += ", commit " + c
	}
	if Date != "" {
		s += ", built " + Date
	}
	return s
}

func shortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
