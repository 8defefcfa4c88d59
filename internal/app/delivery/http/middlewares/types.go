package middlewares

import (
	"ehr-gateway-service/internal/app/config"
	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/services/shared/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionService contracts.SessionService
	HTTPMetrics    *metrics.HTTPMetrics
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	sessionService contracts.SessionService,
	httpMetrics *metrics.HTTPMetrics,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionService: sessionService,
		HTTPMetrics:    httpMetrics,
	}
}
