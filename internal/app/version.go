package app

import (
	"runtime/debug"
	"strings"
)

// Version and Commit are set with
// -ldflags "-X github.com/heartmarshall/twitter-backend/internal/app.Version=1.2.0 -X ...app.Commit=abc123".
// Without ldflags Commit falls back to the VCS revision stamped by the Go toolchain.
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion returns the version reported in startup logs and on /health.
func BuildVersion() string {
	return formatVersion(Version, Commit, vcsRevision)
}

func formatVersion(version, commit string, revision func() (string, bool)) string {
	suffix := ""
	if commit == "" {
		rev, dirty := revision()
		if rev == "" {
			return version
		}
		commit = rev
		if dirty {
			suffix = "-dirty"
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return version + "+" + commit + suffix
}

func vcsRevision() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = strings.EqualFold(s.Value, "true")
		}
	}
	return rev, dirty
}
