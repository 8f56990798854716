// Package version provides build information for the update-version tool.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X".
var (
	Version  = "0.0.0-dev"
	Revision = ""
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			Revision = s.Value

			break
		}
	}
}

// String returns the version and revision.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
