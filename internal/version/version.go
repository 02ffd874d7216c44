// Package version reports swatch build information, injected with ldflags:
//
//	go build -ldflags "-X github.com/jmylchreest/swatch/internal/version.Version=1.0.0 \
//	  -X github.com/jmylchreest/swatch/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/swatch/internal/version.Date=$(date -u +%FT%TZ)"
package version

import (
	"fmt"
	"runtime"
)

// Name is the program name used in version strings and the HTTP User-Agent.
const Name = "swatch"

const unknown = "unknown"

var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown

	// GoVersion is the toolchain that built the binary.
	GoVersion = runtime.Version()
)

// Info is the JSON form printed by "swatch version --json".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information. Unknown commit and date are omitted.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		GoVersion: GoVersion,
		Platform:  platform(),
	}
	if Commit != unknown {
		info.Commit = Commit
	}
	if Date != unknown {
		info.Date = Date
	}
	return info
}

// ShortCommit returns the first eight characters of Commit, or "" for
// builds without one.
func ShortCommit() string {
	if Commit == unknown {
		return ""
	}
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}

// String returns the line printed by "swatch version".
func String() string {
	if c := ShortCommit(); c != "" && Date != unknown {
		return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
			Name, Version, c, Date, GoVersion, platform())
	}
	return fmt.Sprintf("%s version %s (%s, %s)", Name, Version, GoVersion, platform())
}

// Short returns the bare version for cobra's --version flag.
func Short() string {
	return Version
}

// UserAgent returns the User-Agent sent when downloading remote images,
// e.g. "swatch/1.2.0 (linux/amd64; +01234567)".
func UserAgent() string {
	if c := ShortCommit(); c != "" {
		return fmt.Sprintf("%s/%s (%s; +%s)", Name, Version, platform(), c)
	}
	return fmt.Sprintf("%s/%s (%s)", Name, Version, platform())
}

func platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
