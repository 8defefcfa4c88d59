package fhir_ema

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/app/services/shared/ratelimiter"
	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCredentialProvider struct {
	credentials *models.Credentials
	err         error
}

func (s *stubCredentialProvider) CredentialKey(ctx context.Context) (string, error) {
	return "ehr", s.err
}

func (s *stubCredentialProvider) Load(ctx context.Context) (*models.Credentials, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.credentials, nil
}

func validCredentials() *stubCredentialProvider {
	return &stubCredentialProvider{credentials: &models.Credentials{APIKey: "api-key", AccessToken: "access-token", RefreshToken: "refresh-token"}}
}

func newTestEHRClient(provider *stubCredentialProvider) *ehrClient {
	return NewEHRClient(&http.Client{}, provider, ratelimiter.NewOutboundLimiter(0), nil, zap.NewNop()).(*ehrClient)
}

func TestEHRClientDo(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends Auth Headers And Returns Payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
			assert.Equal(t, "api-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{"resourceType":"Patient","id":"1"}`))
		}))
		defer server.Close()

		payload, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodGet, server.URL+"/Patient/1", nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"resourceType":"Patient","id":"1"}`, string(payload))
	})

	t.Run("Encodes Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"resourceType":"Slot","status":"free"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			w.Write(body)
		}))
		defer server.Close()

		body := map[string]string{"resourceType": "Slot", "status": "free"}
		payload, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourceSlot, http.MethodPost, server.URL, body)

		require.NoError(t, err)
		assert.NotEmpty(t, payload)
	})

	t.Run("Raw Body Is Sent Verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"id":"7"}`, string(body))
			w.Write(body)
		}))
		defer server.Close()

		_, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourceSlot, http.MethodPut, server.URL, json.RawMessage(`{"id":"7"}`))

		require.NoError(t, err)
	})

	t.Run("No Credentials Means No Request", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		provider := &stubCredentialProvider{err: exceptions.ErrNotAuthorized("ehr")}
		_, err := newTestEHRClient(provider).Do(ctx, models.ResourcePatient, http.MethodGet, server.URL, nil)

		require.Error(t, err)
		apiErr, ok := exceptions.AsApiError(err)
		require.True(t, ok)
		assert.Equal(t, exceptions.CodeNotAuthorized, apiErr.Code)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "Api key not provided", apiErr.Message)
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "upstream should not be called")
	})

	t.Run("Operation Outcome Diagnostics Become Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"error","diagnostics":"Patient 99 not found"}]}`))
		}))
		defer server.Close()

		_, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodGet, server.URL, nil)

		apiErr, ok := exceptions.AsApiError(err)
		require.True(t, ok)
		assert.Equal(t, exceptions.CodeAPIError, apiErr.Code)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "Patient 99 not found", apiErr.Message)
		details, ok := apiErr.Details.(map[string]interface{})
		require.True(t, ok, "JSON details should be decoded")
		assert.Equal(t, "OperationOutcome", details["resourceType"])
	})

	t.Run("Text Error Body Is Kept As Details", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("upstream maintenance"))
		}))
		defer server.Close()

		_, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodGet, server.URL, nil)

		apiErr, ok := exceptions.AsApiError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
		assert.Equal(t, "EHR API request failed with status 503", apiErr.Message)
		assert.Equal(t, "upstream maintenance", apiErr.Details)
	})

	t.Run("Every Non 2xx Status Is An Api Error", func(t *testing.T) {
		for _, status := range []int{http.StatusMultipleChoices, http.StatusBadRequest, http.StatusUnauthorized, http.StatusConflict, http.StatusInternalServerError} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			_, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodGet, server.URL, nil)
			server.Close()

			apiErr, ok := exceptions.AsApiError(err)
			require.True(t, ok)
			assert.Equal(t, exceptions.CodeAPIError, apiErr.Code)
			assert.Equal(t, status, apiErr.Status)
		}
	})

	t.Run("Empty Success Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		payload, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodPut, server.URL, nil)

		require.NoError(t, err)
		assert.Nil(t, payload)
	})

	t.Run("Undecodable Success Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>ok</html>"))
		}))
		defer server.Close()

		_, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodGet, server.URL, nil)

		assert.True(t, exceptions.HasCode(err, exceptions.CodeUnknownError))
	})

	t.Run("Unreachable Upstream Is Network Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := newTestEHRClient(validCredentials()).Do(ctx, models.ResourcePatient, http.MethodGet, url, nil)

		apiErr, ok := exceptions.AsApiError(err)
		require.True(t, ok)
		assert.Equal(t, exceptions.CodeNetworkError, apiErr.Code)
		assert.Equal(t, 0, apiErr.Status)
		assert.Equal(t, "Unable to connect to EHR API", apiErr.Message)
	})

	t.Run("Cancelled Context Is Network Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		cancelCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		_, err := newTestEHRClient(validCredentials()).Do(cancelCtx, models.ResourcePatient, http.MethodGet, server.URL, nil)

		assert.True(t, exceptions.HasCode(err, exceptions.CodeNetworkError))
	})
}
