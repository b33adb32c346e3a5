// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Clipseek is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Clipseek = "clipseek"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the GitHub owner/name pair used for release lookups.
	Repository = "clipseek/clipseek"

	// UserAgent is the default HTTP User-Agent string sent to the provider.
	UserAgent = "clipseek/" + Version + " (+https://github.com/" + Repository + ")"
)

// Build metadata, overwritten through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
