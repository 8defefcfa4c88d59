package auth

import (
	"context"

	"ehr-gateway-service/internal/app/config"
	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/app/services/shared/credentials"
	"ehr-gateway-service/internal/app/services/shared/metrics"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/dto/requests"
	"ehr-gateway-service/internal/pkg/dto/responses"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	OAuthClient     contracts.EHROAuthClient
	CredentialStore contracts.CredentialStore
	SessionService  contracts.SessionService
	Metrics         *metrics.UpstreamMetrics
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	oauthClient contracts.EHROAuthClient,
	credentialStore contracts.CredentialStore,
	sessionService contracts.SessionService,
	upstreamMetrics *metrics.UpstreamMetrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		OAuthClient:     oauthClient,
		CredentialStore: credentialStore,
		SessionService:  sessionService,
		Metrics:         upstreamMetrics,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// AcquireTokens runs the password grant and caches the resulting tokens
// together with the caller's api key. In session scope the record gets its
// own key and the caller receives a session token; in global scope the
// shared record is overwritten and nil is returned.
func (uc *authUsecase) AcquireTokens(ctx context.Context, request *requests.AcquireTokens) (*responses.AcquireTokens, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.AcquireTokens called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	token, err := uc.OAuthClient.PasswordGrant(ctx, request)
	if err != nil {
		apiErr := exceptions.Normalize(err, exceptions.ErrUnknown)
		uc.Metrics.ObserveTokenExchange(string(apiErr.Code))
		return nil, apiErr
	}

	record := models.Credentials{
		APIKey:       request.APIKey,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	if !uc.InternalConfig.IsSessionScoped() {
		err = uc.CredentialStore.Save(ctx, uc.InternalConfig.EHR.CredentialKey, record, 0)
		if err != nil {
			uc.Metrics.ObserveTokenExchange(string(exceptions.Normalize(err, exceptions.ErrUnknown).Code))
			return nil, err
		}
		uc.Metrics.ObserveTokenExchange(metricsResultOK)
		uc.Log.Info("authUsecase.AcquireTokens succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	sessionID := uc.SessionService.NewSession()
	sessionToken, expiresAt, err := uc.SessionService.IssueToken(sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.AcquireTokens error issuing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	key := credentials.SessionKey(uc.InternalConfig.EHR.CredentialKey, sessionID)
	err = uc.CredentialStore.Save(ctx, key, record, uc.SessionService.TTL())
	if err != nil {
		uc.Metrics.ObserveTokenExchange(string(exceptions.Normalize(err, exceptions.ErrUnknown).Code))
		return nil, err
	}

	uc.Metrics.ObserveTokenExchange(metricsResultOK)
	uc.Log.Info("authUsecase.AcquireTokens succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCredentialKey, key),
	)
	return &responses.AcquireTokens{
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt.Unix(),
	}, nil
}

const metricsResultOK = "ok"
