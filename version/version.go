// Package version exposes the library's build version for identification
// purposes, primarily the default User-Agent of outbound requests.
//
// Version is set at build time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/streamkit/version.Version=1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

const modulePath = "github.com/kbukum/streamkit"

// Version is the library version, set at build time. When left at its
// default it is resolved from the embedded module build info if available.
var Version = "dev"

// String returns the effective version string.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == modulePath && dep.Version != "(devel)" {
				return dep.Version
			}
		}
	}
	return Version
}

// UserAgent returns the User-Agent value sent on outbound requests unless
// the caller overrides it.
func UserAgent() string {
	return fmt.Sprintf("streamkit/%s", String())
}
