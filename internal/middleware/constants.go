package middleware

// Authorization header parsing
const (
	// HeaderAuthorization carries the bearer token
	HeaderAuthorization = "Authorization"

	// HeaderWWWAuthenticate is set on every 401 so clients know the scheme
	HeaderWWWAuthenticate = "WWW-Authenticate"

	// BearerScheme is the only accepted authorization scheme
	BearerScheme = "Bearer"
)

// Response messages
const (
	// ErrMsgInvalidCredentials is returned for a missing, malformed, or unknown token
	ErrMsgInvalidCredentials = "Invalid authentication credentials"

	// ErrMsgAuthUnavailable is returned when the token could not be checked
	ErrMsgAuthUnavailable = "Authentication is temporarily unavailable"
)

// Log Messages
const (
	LogMsgMissingBearerToken = "Missing bearer token"
	LogMsgInvalidBearerToken = "Invalid bearer token"
	LogMsgAuthLookupFailed   = "Failed to resolve bearer token"
)
