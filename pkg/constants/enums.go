package constants

// LeadStatus is the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusWon       LeadStatus = "won"
)

// LeadStatuses lists the valid lead statuses in pipeline order
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusLost,
	LeadStatusWon,
}

// IsValid reports whether s is a known lead status
func (s LeadStatus) IsValid() bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// TokenType distinguishes access and refresh JWTs
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Log levels accepted by the extension ingest endpoint
const (
	LogLevelDebug   = "DEBUG"
	LogLevelInfo    = "INFO"
	LogLevelWarning = "WARNING"
	LogLevelError   = "ERROR"
)
