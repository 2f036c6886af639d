// Package version holds the build version, set at link time with
// -ldflags "-X cmdkit/pkg/version.Version=...".
package version

// Version is the cmdkit release.
var Version = "dev"
