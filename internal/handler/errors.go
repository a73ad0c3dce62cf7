package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Auth
	ErrMsgNotAuthenticated = "Invalid authentication credentials"
)

// Success messages for API responses
const (
	MsgLogoutSuccess = "Logout successful"
)

// Path and query parameter names
const (
	ParamSecurityID = "security_id"
	ParamPrice      = "price"
	ParamLimit      = "limit"
)

// MaxListLimit caps the limit query parameter on list endpoints
const MaxListLimit = 500
