package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/flashcards-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported at startup and by GET /health. When the binary
// was built without ldflags, the VCS stamp embedded by the go tool is used.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = shortRevision(s.Value)
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
