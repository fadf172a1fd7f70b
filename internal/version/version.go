// Package version holds the build version, set at link time:
//
//	go build -ldflags "-X github.com/spetersoncode/chat/internal/version.Version=v1.2.0" ./cmd/chat
package version

import "runtime/debug"

// Version is the release version of the binary.
var Version = ""

// String returns the link-time version, the module version recorded by
// go install, or "dev".
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
