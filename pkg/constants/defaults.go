package constants

import "time"

// Default values for model fields and system operations
const (
	DefaultTagColor   = "#cccccc"
	DefaultLabelColor = "#ffffff"
	DefaultLeadStatus = LeadStatusNew

	DefaultAccessTTL        = 5 * time.Minute
	DefaultRefreshTTL       = 24 * time.Hour
	DefaultPasswordResetTTL = time.Hour

	// LogTailLines is how many trailing lines the log viewer returns
	LogTailLines = 200

	PasswordMinLength = 8
	PasswordMaxLength = 128
	UsernameMaxLength = 150
)

// Logger names
const (
	LoggerHTTP         = "http"
	LoggerAuth         = "auth"
	LoggerExtension    = "extension"
	LoggerIntegrations = "integrations"
)
