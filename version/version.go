// Package version holds the build version, set at link time with
// -ldflags "-X github.com/battlesnakeio/snek/version.Version=...".
package version

// Version of the snek binary.
var Version = "dev"
