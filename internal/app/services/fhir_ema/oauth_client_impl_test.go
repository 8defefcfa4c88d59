package fhir_ema

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ehr-gateway-service/internal/app/services/shared/ratelimiter"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOAuthClientPasswordGrant(t *testing.T) {
	request := &requests.AcquireTokens{Username: "doctor", Password: "s3cret", APIKey: "api-key"}

	t.Run("Posts Form And Decodes Tokens", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/acme/ema/ws/oauth2/grant", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "api-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "password", r.PostForm.Get("grant_type"))
			assert.Equal(t, "doctor", r.PostForm.Get("username"))
			assert.Equal(t, "s3cret", r.PostForm.Get("password"))
			w.Write([]byte(`{"access_token":"access-1","refresh_token":"refresh-1","token_type":"bearer","expires_in":3600}`))
		}))
		defer server.Close()

		client := NewOAuthClient(server.Client(), NewQueryBuilder(server.URL, "acme"), ratelimiter.NewOutboundLimiter(0), zap.NewNop())
		token, err := client.PasswordGrant(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, "access-1", token.AccessToken)
		assert.Equal(t, "refresh-1", token.RefreshToken)
	})

	t.Run("Rejected Grant Keeps Upstream Status And Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant","error_description":"Bad credentials"}`))
		}))
		defer server.Close()

		client := NewOAuthClient(server.Client(), NewQueryBuilder(server.URL, "acme"), ratelimiter.NewOutboundLimiter(0), zap.NewNop())
		_, err := client.PasswordGrant(context.Background(), request)

		apiErr, ok := exceptions.AsApiError(err)
		require.True(t, ok)
		assert.Equal(t, exceptions.CodeAPIError, apiErr.Code)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "Bad credentials", apiErr.Message)
		details, ok := apiErr.Details.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "invalid_grant", details["error"])
	})

	t.Run("Unreachable Upstream", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := NewOAuthClient(&http.Client{}, NewQueryBuilder(baseURL, "acme"), ratelimiter.NewOutboundLimiter(0), zap.NewNop())
		_, err := client.PasswordGrant(context.Background(), request)

		assert.True(t, exceptions.HasCode(err, exceptions.CodeNetworkError))
	})
}
