// Package version carries the build version reported by --version.
package version

// Version is overridden at build time via
// -ldflags "-X modelgen/internal/version.Version=...".
var Version = "0.11.0"
