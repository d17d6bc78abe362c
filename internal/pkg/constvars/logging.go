package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingBusinessIDKey     = "business_id"
	LoggingGraphUrlKey       = "graph_url"
	LoggingGraphStatusKey    = "graph_status_code"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKindKey      = "error_kind"
	LoggingLocationKey       = "location"
	LoggingTenantIDKey       = "tenant_id"
	LoggingClientIDKey       = "client_id"
	LoggingScopeKey          = "scope"
	LoggingTokenAppIDKey     = "token_app_id"
	LoggingTokenRolesKey     = "token_roles"
	LoggingTokenExpiresOnKey = "token_expires_on"
)
