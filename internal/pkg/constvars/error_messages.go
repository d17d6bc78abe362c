package constvars

const (
	ErrDevAcquireToken         = "failed to acquire access token"
	ErrDevEmptyAccessToken     = "identity provider returned no access token"
	ErrDevBuildCredential      = "failed to build client credential"
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevReadResponseBody     = "failed to read response body"
	ErrDevMarshalPayload       = "failed to marshal request payload"
	ErrDevCannotParseJSON      = "cannot parse JSON request body"
	ErrDevMissingRequiredField = "missing required field"
	ErrDevInvalidPayload       = "invalid request payload"
	ErrDevInvalidJSONResponse  = "remote returned a body that is not valid JSON"
	ErrDevListBusinesses       = "failed to list booking businesses"
	ErrDevListAppointments     = "failed to list appointments"
	ErrDevCreateAppointment    = "failed to create appointment"
	ErrDevUnknownPanic         = "unknown error"
	ErrDevRemoteStatusFormat   = "%s. status: %d, response: %s"
)
