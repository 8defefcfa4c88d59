package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingResourceKey       = "resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingPageKey           = "page"
	LoggingUpstreamURLKey    = "upstream_url"
	LoggingUpstreamStatusKey = "upstream_status"
	LoggingErrorCodeKey      = "error_code"
	LoggingCredentialKey     = "credential_key"
	LoggingSlotCountKey      = "slot_count"
	LoggingUsernameKey       = "username"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
)
