package fhir_ema

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/app/services/shared/metrics"
	"ehr-gateway-service/internal/app/services/shared/ratelimiter"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const metricsResultOK = "ok"

type ehrClient struct {
	HTTPClient  *http.Client
	Credentials contracts.CredentialProvider
	Limiter     *ratelimiter.OutboundLimiter
	Metrics     *metrics.UpstreamMetrics
	Log         *zap.Logger
}

func NewEHRClient(
	httpClient *http.Client,
	credentialProvider contracts.CredentialProvider,
	limiter *ratelimiter.OutboundLimiter,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.EHRClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ehrClient{
		HTTPClient:  httpClient,
		Credentials: credentialProvider,
		Limiter:     limiter,
		Metrics:     upstreamMetrics,
		Log:         logger,
	}
}

// Do sends one authenticated call to the records API and returns the raw
// response payload. Every failure is an *exceptions.ApiError.
func (c *ehrClient) Do(ctx context.Context, resource models.Resource, method, url string, body interface{}) (json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("ehrClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamURLKey, url),
	)

	start := time.Now()
	payload, err := c.do(ctx, method, url, body)
	elapsed := time.Since(start)

	if err != nil {
		apiErr := exceptions.Normalize(err, exceptions.ErrUnknown)
		c.Metrics.ObserveRequest(resource.String(), method, string(apiErr.Code), elapsed.Seconds())
		c.Log.Error("ehrClient.Do failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamURLKey, url),
			zap.String(constvars.LoggingErrorCodeKey, string(apiErr.Code)),
			zap.Int(constvars.LoggingUpstreamStatusKey, apiErr.Status),
			zap.Duration(constvars.LoggingDurationKey, elapsed),
			zap.Error(apiErr),
		)
		return nil, apiErr
	}

	c.Metrics.ObserveRequest(resource.String(), method, metricsResultOK, elapsed.Seconds())
	c.Log.Info("ehrClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamURLKey, url),
		zap.Int(constvars.LoggingResponseLengthKey, len(payload)),
		zap.Duration(constvars.LoggingDurationKey, elapsed),
	)
	return payload, nil
}

func (c *ehrClient) do(ctx context.Context, method, url string, body interface{}) (json.RawMessage, error) {
	credentials, err := c.Credentials.Load(ctx)
	if err != nil {
		return nil, err
	}

	requestBody, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrNetwork(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+credentials.AccessToken)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAPIKey, credentials.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrNetwork(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrNetwork(err)
	}

	if !isSuccessStatus(resp.StatusCode) {
		return nil, newUpstreamError(resp.StatusCode, bodyBytes)
	}

	trimmed := bytes.TrimSpace(bodyBytes)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, exceptions.ErrDecodeUpstreamResponse(errInvalidJSON)
	}
	return json.RawMessage(trimmed), nil
}

// encodeBody returns a nil reader for a nil or empty body. Raw JSON is sent
// as is; anything else is marshaled.
func encodeBody(body interface{}) (io.Reader, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		if len(v) == 0 {
			return nil, nil
		}
		return bytes.NewReader(v), nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
		return bytes.NewReader(v), nil
	default:
		requestJSON, err := json.Marshal(v)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		return bytes.NewReader(requestJSON), nil
	}
}
