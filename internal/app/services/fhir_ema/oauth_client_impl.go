package fhir_ema

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/services/shared/ratelimiter"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type oauthClient struct {
	HTTPClient *http.Client
	Queries    contracts.EHRQueryBuilder
	Limiter    *ratelimiter.OutboundLimiter
	Log        *zap.Logger
}

func NewOAuthClient(httpClient *http.Client, queries contracts.EHRQueryBuilder, limiter *ratelimiter.OutboundLimiter, logger *zap.Logger) contracts.EHROAuthClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &oauthClient{
		HTTPClient: httpClient,
		Queries:    queries,
		Limiter:    limiter,
		Log:        logger,
	}
}

// PasswordGrant exchanges a username/password pair for upstream tokens.
// This call is unauthenticated, so no cached credentials are consulted.
func (c *oauthClient) PasswordGrant(ctx context.Context, request *requests.AcquireTokens) (*responses.OAuthToken, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("oauthClient.PasswordGrant called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	form := url.Values{}
	form.Set("grant_type", constvars.OAuthGrantTypePassword)
	form.Set("username", request.Username)
	form.Set("password", request.Password)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrNetwork(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.Queries.OAuthGrantURL(), strings.NewReader(form.Encode()))
	if err != nil {
		c.Log.Error("oauthClient.PasswordGrant error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAPIKey, request.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("oauthClient.PasswordGrant error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrNetwork(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrNetwork(err)
	}

	if !isSuccessStatus(resp.StatusCode) {
		apiErr := newUpstreamError(resp.StatusCode, bodyBytes)
		c.Log.Error("oauthClient.PasswordGrant upstream rejected grant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return nil, apiErr
	}

	token := new(responses.OAuthToken)
	err = json.Unmarshal(bodyBytes, token)
	if err != nil {
		c.Log.Error("oauthClient.PasswordGrant error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeUpstreamResponse(err)
	}

	c.Log.Info("oauthClient.PasswordGrant succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return token, nil
}
