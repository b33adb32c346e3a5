// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 16

// Provider API - these keys locate the remote search endpoint.
const (
	APIBaseURL = "api.base_url"
	APIVersion = "api.version"
)

// Search Defaults - these keys supply query values not given on the command line.
const (
	SearchPageSize        = "search.page_size"
	SearchMaxPages        = "search.max_pages"
	SearchSort            = "search.sort"
	SearchOrder           = "search.order"
	SearchRememberQueries = "search.remember_queries"
)

// Network - these keys tune the HTTP session used for page requests.
const (
	NetworkTimeout     = "network.timeout"
	NetworkFingerprint = "network.fingerprint"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern console behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliWrapWidth    = "cli.wrap_width"
)
