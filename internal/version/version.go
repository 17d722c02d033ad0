// Package version provides build information for bookshelf.
package version

// Version is the release version. Overridden at build time with ldflags.
var Version = "development"

// Commit is the git commit hash. Overridden at build time with ldflags.
var Commit = "unknown"

const projectURL = "https://github.com/cristianoliveira/bookshelf"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// UserAgent identifies bookshelf to the catalog API.
func UserAgent() string {
	return "bookshelf/" + String() + " (+" + projectURL + ")"
}
