package constvars

// Validation messages, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"oneof":    "must be one of [%s]",
	"rfc3339":  "must be an RFC3339 timestamp",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientApiKeyNotProvided             = "Api key not provided"
	ErrClientUnableToConnectEHR            = "Unable to connect to EHR API"
	ErrClientUnableToLoadCredentials       = "Unable to load EHR credentials"
	ErrClientUnexpectedError               = "Unexpected error occurred"
	ErrClientInternalServerError           = "Internal server error"
	ErrClientEHRRequestFailedFmt           = "EHR API request failed with status %d"
	ErrClientFetchTokensFailed             = "Failed to fetch tokens"
	ErrClientNoSlotAvailable               = "No open slot available for the requested time"
	ErrClientSessionEnded                  = "your session ended, please acquire tokens again"
	ErrClientAppointmentFormIncomplete     = "Please provide required fields: start time, patient, practitioner, and location."
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientServiceUnavailable            = "service is not ready"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevURLParamValidationFailed  = "URL param %s validation failed"
	ErrDevCredentialsMissing        = "no cached EHR credentials under key %s"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevUpstreamStatus            = "upstream responded with status %d"
	ErrDevDecodeUpstreamResponse    = "failed to decode upstream response"
	ErrDevOutboundRateLimitWait     = "outbound rate limiter wait aborted"
	ErrDevServerProcess             = "server process failed"
	ErrDevServerAction              = "entry point %s failed"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevPanicRecovered            = "panic recovered"
	ErrDevNoSlotAvailable           = "slot search returned no entries"
	ErrDevAppointmentFormIncomplete = "appointment form is missing required fields"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthTokenInvalid          = "session token invalid"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevUnsupportedResource       = "unsupported resource type %s"
	ErrDevInboundRateLimited        = "inbound rate limit exceeded"
	ErrDevHealthCheckFailed         = "health check failed"
)
