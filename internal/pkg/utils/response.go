package utils

import (
	"net/http"

	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/responses"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildBundlePagination reads paging state out of a raw upstream payload.
// Payloads that are not bundles yield nil.
func BuildBundlePagination(payload json.RawMessage) *responses.Pagination {
	if len(payload) == 0 {
		return nil
	}

	var bundle fhir_dto.Bundle
	if err := json.Unmarshal(payload, &bundle); err != nil || bundle.ResourceType != constvars.ResourceBundle {
		return nil
	}

	pagination := &responses.Pagination{Total: bundle.Total}
	if nextPage, ok := bundle.NextPage(); ok {
		pagination.NextPage = &nextPage
	}
	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	apiErr := exceptions.Normalize(err, exceptions.ErrUnknown)

	log.Error(apiErr.DevMessage,
		zap.String(constvars.LoggingErrorCodeKey, string(apiErr.Code)),
		zap.Int(constvars.LoggingUpstreamStatusKey, apiErr.Status),
		zap.Any("location", map[string]interface{}{
			"file":          apiErr.Location.File,
			"line":          apiErr.Location.Line,
			"function_name": apiErr.Location.FunctionName,
		}),
	)

	response := responses.ErrorResponseDTO{
		Success: false,
		Message: apiErr.Message,
		Error:   apiErr,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if appEnvironment != constvars.AppEnvironmentProduction {
		response.DevMessage = apiErr.DevMessage
		location := apiErr.Location
		response.Location = &location
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(apiErr.HTTPStatus())
	json.NewEncoder(w).Encode(response)
}
