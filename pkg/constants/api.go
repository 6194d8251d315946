package constants

// HTTP and API constants
const (
	// Content types
	ContentTypeJSON = "application/json"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Auth
	BearerPrefix = "Bearer "

	// Response Keys
	ResponseError   = "error"
	ResponseDetails = "details"
	ResponseCode    = "code"
	ResponseDetail  = "detail"
	ResponseOK      = "ok"
)

// Context Keys
const (
	ContextKeyUser  = "user"
	ContextKeyToken = "token"
)

// Query parameter constants
const (
	ParamStatus   = "status"
	ParamCampaign = "campaign"
	ParamOwner    = "owner"
	ParamSearch   = "search"
	ParamArchived = "archived"
	ParamLevel    = "level"
)

// Throttle scopes
const (
	ThrottlePasswordForgot = "password_forgot"
	ThrottlePasswordReset  = "password_reset"
	ThrottlePasswordChange = "password_change"
	ThrottleLogIngest      = "log_ingest"
)
