// Package version reports the build version of the aoc binary.
//
// Version, Commit and BuildTime are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/prelude/version.Version=1.0.0" ./cmd/aoc
//
// Unset values fall back to the VCS stamp the Go toolchain embeds.
package version
