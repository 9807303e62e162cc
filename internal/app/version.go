package app

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/heartmarshall/quecocino-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats version, commit and build time for logs and /health.
// When ldflags were not applied, the VCS revision recorded by the Go
// toolchain is used for the commit.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" {
		commit, built = vcsInfo(built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsInfo(fallbackTime string) (string, string) {
	commit, built := "unknown", fallbackTime

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, built
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 12 {
				commit = s.Value[:12]
			} else {
				commit = s.Value
			}
		case "vcs.time":
			built = s.Value
		}
	}
	return commit, built
}
