package fhir_ema

import (
	"bytes"

	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

// oauthErrorBody is the RFC 6749 error shape some upstream auth failures use.
type oauthErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// newUpstreamError classifies a non-2xx upstream response. The body is kept
// as details: decoded when it is JSON, raw text otherwise.
func newUpstreamError(status int, body []byte) *exceptions.ApiError {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return exceptions.ErrAPI(status, "", nil)
	}

	var details interface{}
	if err := json.Unmarshal(trimmed, &details); err != nil {
		return exceptions.ErrAPI(status, "", string(trimmed))
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(trimmed, &outcome); err == nil {
		if diagnostics := outcome.FirstDiagnostics(); diagnostics != "" {
			return exceptions.ErrAPI(status, diagnostics, details)
		}
	}

	var oauthErr oauthErrorBody
	if err := json.Unmarshal(trimmed, &oauthErr); err == nil {
		if oauthErr.ErrorDescription != "" {
			return exceptions.ErrAPI(status, oauthErr.ErrorDescription, details)
		}
	}

	return exceptions.ErrAPI(status, "", details)
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
