package errors

// Registered error codes.
const (
	CodeEmptyRouteName     = "N001"
	CodeDuplicateRouteName = "N002"
	CodeConfigNotFound     = "N010"
	CodeConfigInvalid      = "N011"
	CodeConfigFetchFailed  = "N012"
	CodeServerAddress      = "N020"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (N001-N009)
	// ============================================

	CodeEmptyRouteName: {
		Category: CategoryValidation,
		Message:  "Route definition has an empty name",
		Detail:   "Route names identify templates in the table and default the path template, so they cannot be empty.",
		DocURL:   "https://navstack.dev/docs/errors/N001",
	},
	CodeDuplicateRouteName: {
		Category: CategoryValidation,
		Message:  "Duplicate route name",
		Detail:   "Two route definitions share the same name. Lookups by name and the resulting match order would be undefined.",
		DocURL:   "https://navstack.dev/docs/errors/N002",
	},

	// ============================================
	// Config Errors (N010-N019)
	// ============================================

	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No navstack.json was found at the given path.",
		DocURL:   "https://navstack.dev/docs/errors/N010",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Configuration file is invalid",
		Detail:   "The configuration file could not be parsed as JSON.",
		DocURL:   "https://navstack.dev/docs/errors/N011",
	},
	CodeConfigFetchFailed: {
		Category: CategoryConfig,
		Message:  "Remote configuration fetch failed",
		Detail:   "The configuration object could not be fetched from the remote source.",
		DocURL:   "https://navstack.dev/docs/errors/N012",
	},

	// ============================================
	// Server Errors (N020-N029)
	// ============================================

	CodeServerAddress: {
		Category: CategoryServer,
		Message:  "Invalid listen address",
		DocURL:   "https://navstack.dev/docs/errors/N020",
	},
}
