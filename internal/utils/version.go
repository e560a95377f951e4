package utils

import (
	"runtime/debug"
	"strings"
)

// version is stamped through ldflags at release time
var version string

// GetVersion reports the running build's version without a leading "v".
// Unstamped builds fall back to the module version from Go build info,
// then to "unknown".
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		} else {
			v = "unknown"
		}
	}
	return strings.TrimPrefix(v, "v")
}
