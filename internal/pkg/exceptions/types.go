package exceptions

import (
	"fmt"

	"ehr-gateway-service/internal/pkg/constvars"
)

var (
	// Credentials
	ErrNotAuthorized = func(credentialKey string) *ApiError {
		return WrapWithoutError(CodeNotAuthorized, constvars.StatusUnauthorized, constvars.ErrClientApiKeyNotProvided, fmt.Sprintf(constvars.ErrDevCredentialsMissing, credentialKey))
	}
	ErrCredentialStore = func(err error) *ApiError {
		return WrapWithError(err, CodeNetworkError, 0, constvars.ErrClientUnableToLoadCredentials, constvars.ErrDevRedisGetData)
	}
	ErrSessionInvalid = func(err error) *ApiError {
		return WrapWithError(err, CodeNotAuthorized, constvars.StatusUnauthorized, constvars.ErrClientSessionEnded, constvars.ErrDevAuthTokenInvalid)
	}

	// Upstream
	ErrAPI = func(status int, message string, details interface{}) *ApiError {
		if message == "" {
			message = fmt.Sprintf(constvars.ErrClientEHRRequestFailedFmt, status)
		}
		apiErr := WrapWithoutError(CodeAPIError, status, message, fmt.Sprintf(constvars.ErrDevUpstreamStatus, status))
		apiErr.Details = details
		return apiErr
	}
	ErrNetwork = func(err error) *ApiError {
		return WrapWithError(err, CodeNetworkError, 0, constvars.ErrClientUnableToConnectEHR, constvars.ErrDevSendHTTPRequest)
	}
	ErrCreateHTTPRequest = func(err error) *ApiError {
		return WrapWithError(err, CodeUnknownError, constvars.StatusInternalServerError, constvars.ErrClientUnexpectedError, constvars.ErrDevCreateHTTPRequest)
	}
	ErrDecodeUpstreamResponse = func(err error) *ApiError {
		return WrapWithError(err, CodeUnknownError, constvars.StatusInternalServerError, constvars.ErrClientUnexpectedError, constvars.ErrDevDecodeUpstreamResponse)
	}
	ErrUnknown = func(err error) *ApiError {
		return WrapWithError(err, CodeUnknownError, constvars.StatusInternalServerError, constvars.ErrClientUnexpectedError, constvars.ErrDevServerProcess)
	}

	// Entry points
	ErrServerAction = func(err error, entryPoint string) *ApiError {
		return WrapWithError(err, CodeServerActionError, constvars.StatusInternalServerError, constvars.ErrClientInternalServerError, fmt.Sprintf(constvars.ErrDevServerAction, entryPoint))
	}
	ErrNoSlotAvailable = func(err error) *ApiError {
		return WrapWithError(err, CodeNoSlotAvailable, constvars.StatusConflict, constvars.ErrClientNoSlotAvailable, constvars.ErrDevNoSlotAvailable)
	}
	ErrUnsupportedResource = func(resource string) *ApiError {
		return WrapWithoutError(CodeValidationError, constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnsupportedResource, resource))
	}

	ErrAppointmentFormIncomplete = func(err error) *ApiError {
		return WrapWithError(err, CodeValidationError, constvars.StatusBadRequest, constvars.ErrClientAppointmentFormIncomplete, constvars.ErrDevAppointmentFormIncomplete)
	}

	// Inbound
	ErrInputValidation = func(err error) *ApiError {
		return WrapWithError(err, CodeValidationError, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *ApiError {
		return WrapWithError(err, CodeValidationError, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *ApiError {
		return WrapWithError(err, CodeValidationError, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *ApiError {
		return WrapWithError(err, CodeUnknownError, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *ApiError {
		apiErr := WrapWithError(err, CodeNetworkError, 0, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
		apiErr.ResponseStatus = constvars.StatusGatewayTimeout
		return apiErr
	}
	ErrTooManyRequests = func(err error) *ApiError {
		return WrapWithError(err, CodeValidationError, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevInboundRateLimited)
	}
	ErrHealthCheck = func(err error) *ApiError {
		apiErr := WrapWithError(err, CodeNetworkError, 0, constvars.ErrClientServiceUnavailable, constvars.ErrDevHealthCheckFailed)
		apiErr.ResponseStatus = constvars.StatusServiceUnavailable
		return apiErr
	}
	ErrPanicRecovered = func(err error) *ApiError {
		return WrapWithError(err, CodeServerActionError, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}

	// Session tokens
	ErrTokenGenerate = func(err error) *ApiError {
		return WrapWithError(err, CodeUnknownError, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}

	// Redis
	ErrRedisGet = func(err error) *ApiError {
		return WrapWithError(err, CodeNetworkError, 0, constvars.ErrClientUnableToLoadCredentials, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *ApiError {
		return WrapWithError(err, CodeUnknownError, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
)
