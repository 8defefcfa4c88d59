package exceptions

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("ApiError Passes Through", func(t *testing.T) {
		original := ErrNotAuthorized("ehr")

		normalized := Normalize(original, ErrUnknown)

		assert.Same(t, original, normalized, "an ApiError should not be rewrapped")
	})

	t.Run("Wrapped ApiError Is Found", func(t *testing.T) {
		original := ErrAPI(http.StatusBadRequest, "bad", nil)
		wrapped := fmt.Errorf("calling upstream: %w", original)

		normalized := Normalize(wrapped, ErrUnknown)

		assert.Equal(t, CodeAPIError, normalized.Code)
		assert.Equal(t, http.StatusBadRequest, normalized.Status)
	})

	t.Run("Plain Error Uses Fallback", func(t *testing.T) {
		normalized := Normalize(errors.New("boom"), func(err error) *ApiError {
			return ErrServerAction(err, "FetchByID")
		})

		assert.Equal(t, CodeServerActionError, normalized.Code)
		assert.Equal(t, http.StatusInternalServerError, normalized.Status)
		assert.Equal(t, "Internal server error", normalized.Message)
	})

	t.Run("Nil Stays Nil", func(t *testing.T) {
		assert.Nil(t, Normalize(nil, ErrUnknown))
	})
}

func TestApiErrorTaxonomy(t *testing.T) {
	t.Run("Not Authorized", func(t *testing.T) {
		err := ErrNotAuthorized("ehr")
		assert.Equal(t, CodeNotAuthorized, err.Code)
		assert.Equal(t, http.StatusUnauthorized, err.Status)
		assert.Equal(t, "Api key not provided", err.Message)
	})

	t.Run("Network Error Has No Status", func(t *testing.T) {
		err := ErrNetwork(errors.New("dial tcp: refused"))
		assert.Equal(t, 0, err.Status)
		assert.Equal(t, http.StatusBadGateway, err.HTTPStatus())
	})

	t.Run("Inbound Timeout Keeps Network Status", func(t *testing.T) {
		err := ErrServerDeadlineExceeded(errors.New("context deadline exceeded"))
		assert.Equal(t, CodeNetworkError, err.Code)
		assert.Equal(t, 0, err.Status)
		assert.Equal(t, http.StatusGatewayTimeout, err.HTTPStatus())
	})

	t.Run("Health Check Keeps Network Status", func(t *testing.T) {
		err := ErrHealthCheck(errors.New("dial tcp: refused"))
		assert.Equal(t, 0, err.Status)
		assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus())
	})

	t.Run("Appointment Form Incomplete", func(t *testing.T) {
		err := ErrAppointmentFormIncomplete(nil)
		assert.Equal(t, CodeValidationError, err.Code)
		assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
		assert.Equal(t, "appointment form is missing required fields", err.DevMessage)
	})

	t.Run("Api Error Default Message", func(t *testing.T) {
		err := ErrAPI(http.StatusServiceUnavailable, "", "upstream down")
		assert.Equal(t, "EHR API request failed with status 503", err.Message)
		assert.Equal(t, "upstream down", err.Details)
	})

	t.Run("Location Is Captured", func(t *testing.T) {
		err := ErrNoSlotAvailable(nil)
		assert.NotEmpty(t, err.Location.File)
		assert.Equal(t, http.StatusConflict, err.HTTPStatus())
	})

	t.Run("Errors Is Matches By Code", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", ErrNoSlotAvailable(nil))
		assert.True(t, errors.Is(err, &ApiError{Code: CodeNoSlotAvailable}))
		assert.False(t, errors.Is(err, &ApiError{Code: CodeAPIError}))
	})
}
