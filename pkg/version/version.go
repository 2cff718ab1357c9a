// Package version exposes build metadata injected at link time.
package version

import "runtime/debug"

// Build-time variables, set via:
//
//	go build -ldflags "-X github.com/rshade/nutrispark/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version = ""
	commit  = ""
)

const devVersion = "dev"

// GetVersion returns the linked version, the module version recorded in the
// build info, or "dev" when neither is available.
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetCommit returns the linked commit hash, if any.
func GetCommit() string {
	return commit
}
