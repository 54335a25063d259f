// Package version exposes build information injected at link time.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build variables set via ldflags:
//
//	-X 'github.com/rshade/roster/pkg/version.version=v0.3.0'
//	-X 'github.com/rshade/roster/pkg/version.commit=abc123'
//	-X 'github.com/rshade/roster/pkg/version.buildDate=2026-01-01T00:00:00Z'
//
//nolint:gochecknoglobals // Link-time build variables.
var (
	version   = "v0.1.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Info is the structured build information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}
}

// GetVersion returns the version string as injected.
func GetVersion() string {
	return version
}

// Parse validates v as a semantic version.
func Parse(v string) (*semver.Version, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return sv, nil
}

// Semver returns the parsed build version.
func Semver() (*semver.Version, error) {
	return Parse(version)
}

// String renders e.g. "roster v0.3.0 (commit abc123, built 2026-01-01)".
func (i Info) String() string {
	return fmt.Sprintf("roster %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
