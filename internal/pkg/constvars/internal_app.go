package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "EHR_GW_"
)

const (
	CredentialScopeGlobal  = "global"
	CredentialScopeSession = "session"
)

const (
	DefaultCredentialKey     = "ehr"
	SessionCredentialKeyFmt  = "%s:session:%s"
	JWTClaimSessionID        = "session_id"
	CredentialFieldAPIKey    = "apiKey"
	CredentialFieldAccess    = "accessToken"
	CredentialFieldRefresh   = "refreshToken"
	AppEnvironmentProduction = "production"
)

const (
	URLParamID     = "id"
	URLParamPageNo = "pageno"
)

const (
	MetricsNamespace = "ehr_gateway"
)
