package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Status  int         `json:"status"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Upstream Status Is Passed Through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrAPI(http.StatusNotFound, "Resource not found", map[string]interface{}{"resourceType": "OperationOutcome"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "API_ERROR", body.Error.Code)
		assert.Equal(t, "Resource not found", body.Error.Message)
		assert.Equal(t, http.StatusNotFound, body.Error.Status)
		assert.NotNil(t, body.Error.Details)
	})

	t.Run("Network Error Maps To Bad Gateway", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrNetwork(errors.New("connection refused")))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "NETWORK_ERROR", body.Error.Code)
		assert.Equal(t, "Unable to connect to EHR API", body.Error.Message)
		assert.Equal(t, 0, body.Error.Status)
	})

	t.Run("Plain Error Becomes Unknown", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "UNKNOWN_ERROR", body.Error.Code)
	})
}

func TestBuildBundlePagination(t *testing.T) {
	t.Run("Bundle With Next Link", func(t *testing.T) {
		payload := json.RawMessage(`{"resourceType":"Bundle","total":42,"link":[{"relation":"self","url":"https://ehr.test/Patient?page=1"},{"relation":"next","url":"https://ehr.test/Patient?page=2"}]}`)

		pagination := BuildBundlePagination(payload)

		require.NotNil(t, pagination)
		require.NotNil(t, pagination.NextPage)
		assert.Equal(t, 2, *pagination.NextPage)
		require.NotNil(t, pagination.Total)
		assert.Equal(t, 42, *pagination.Total)
	})

	t.Run("Last Page", func(t *testing.T) {
		payload := json.RawMessage(`{"resourceType":"Bundle","link":[{"relation":"self","url":"https://ehr.test/Patient?page=9"}]}`)

		pagination := BuildBundlePagination(payload)

		require.NotNil(t, pagination)
		assert.Nil(t, pagination.NextPage)
	})

	t.Run("Single Resource", func(t *testing.T) {
		assert.Nil(t, BuildBundlePagination(json.RawMessage(`{"resourceType":"Patient","id":"1"}`)))
		assert.Nil(t, BuildBundlePagination(nil))
	})
}
