// Package version reports the build version of civi.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time with:
//
//	go build -ldflags="-X github.com/muurk/civi/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/civi/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo takes the module version ("go install ...@v1.2.3") and
// the VCS revision stamped by the go tool.
func fillFromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if Commit != "" {
		return
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", strings.TrimPrefix(Version, "v"), Commit)
}
