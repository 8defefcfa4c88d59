package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"ehr-gateway-service/internal/pkg/constvars"
)

type ErrorCode string

const (
	CodeNotAuthorized     ErrorCode = "NOT_AUTHORIZED"
	CodeAPIError          ErrorCode = "API_ERROR"
	CodeNetworkError      ErrorCode = "NETWORK_ERROR"
	CodeUnknownError      ErrorCode = "UNKNOWN_ERROR"
	CodeServerActionError ErrorCode = "SERVER_ACTION_ERROR"
	CodeNoSlotAvailable   ErrorCode = "NO_SLOT_AVAILABLE"
	CodeValidationError   ErrorCode = "VALIDATION_ERROR"
)

// ApiError is the single failure shape returned by every layer of the
// gateway. Status carries the upstream HTTP status for API_ERROR and is 0
// for NETWORK_ERROR. ResponseStatus overrides the inbound HTTP status for
// failures that carry no upstream status of their own.
type ApiError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Status         int         `json:"status"`
	Details        interface{} `json:"details,omitempty"`
	ResponseStatus int         `json:"-"`
	DevMessage     string      `json:"-"`
	Location       Location    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *ApiError) Error() string {
	if e.DevMessage == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s:%d %s)", e.Code, e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// HTTPStatus is the status used when the error is written back to an
// inbound caller. Transport failures have no upstream status and map to 502.
func (e *ApiError) HTTPStatus() int {
	if e.ResponseStatus != 0 {
		return e.ResponseStatus
	}
	if e.Status < 100 || e.Status > 599 {
		return constvars.StatusBadGateway
	}
	return e.Status
}

func (e *ApiError) Is(target error) bool {
	t, ok := target.(*ApiError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func WrapWithoutError(code ErrorCode, status int, clientMessage, devMessage string) *ApiError {
	location := getLocation(2)
	return &ApiError{
		Code:       code,
		Status:     status,
		Message:    clientMessage,
		DevMessage: devMessage,
		Location:   location,
	}
}

func WrapWithError(err error, code ErrorCode, status int, clientMessage, devMessage string) *ApiError {
	location := getLocation(2)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &ApiError{
		Code:       code,
		Status:     status,
		Message:    clientMessage,
		DevMessage: devMessage,
		Location:   location,
	}
}

// AsApiError reports whether err is, or wraps, an *ApiError.
func AsApiError(err error) (*ApiError, bool) {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HasCode reports whether err is an *ApiError carrying code.
func HasCode(err error, code ErrorCode) bool {
	apiErr, ok := AsApiError(err)
	return ok && apiErr.Code == code
}

// Normalize passes an *ApiError through untouched and converts anything else
// with fallback.
func Normalize(err error, fallback func(error) *ApiError) *ApiError {
	if err == nil {
		return nil
	}
	if apiErr, ok := AsApiError(err); ok {
		return apiErr
	}
	return fallback(err)
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
